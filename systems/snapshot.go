package systems

import (
	"github.com/automoto/brawlsim/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateVolumeSnapshot records the frame each object shows this tick before
// any transition replaces it. Collision tests those frames.
func UpdateVolumeSnapshot(ecs *ecs.ECS) {
	snap := mustSnapshot(ecs.World)
	snap.Frames = make(map[donburi.Entity]components.FrameRef, len(snap.Frames))
	components.Sequence.Each(ecs.World, func(e *donburi.Entry) {
		seq := components.Sequence.Get(e)
		snap.Frames[e.Entity()] = components.FrameRef{Sequence: seq.ID, FrameIndex: seq.FrameIndex}
	})
}
