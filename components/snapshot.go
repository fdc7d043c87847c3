package components

import (
	"github.com/automoto/brawlsim/config"
	"github.com/yohamta/donburi"
)

// FrameRef points at the frame an object showed.
type FrameRef struct {
	Sequence   config.SequenceID
	FrameIndex int
}

// VolumeSnapshotData records every object's frame before transitions run, so
// collision tests the volumes that were active this frame.
type VolumeSnapshotData struct {
	Frames map[donburi.Entity]FrameRef
}

var VolumeSnapshot = donburi.NewComponentType[VolumeSnapshotData]()
