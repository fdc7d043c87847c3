package components

import (
	"github.com/automoto/brawlsim/config"
	"github.com/automoto/brawlsim/shared/logicclock"
	"github.com/automoto/brawlsim/shared/sequencedata"
	"github.com/yohamta/donburi"
)

type SequenceStatus int

const (
	SequenceBegin SequenceStatus = iota
	SequenceOngoing
	SequenceEnd
)

func (s SequenceStatus) String() string {
	switch s {
	case SequenceBegin:
		return "begin"
	case SequenceOngoing:
		return "ongoing"
	case SequenceEnd:
		return "end"
	}
	return "unknown"
}

// SequenceData is the sequence an object is playing and how far into it it
// is. Frozen is set once End has passed with nothing taking over, holding the
// last frame.
type SequenceData struct {
	Asset      sequencedata.AssetID
	ID         config.SequenceID
	Status     SequenceStatus
	FrameIndex int
	FrameWait  logicclock.FrameWaitClock
	Frozen     bool
}

var Sequence = donburi.NewComponentType[SequenceData]()

// Enter restarts the object on sequence def at its first frame.
func (s *SequenceData) Enter(def *sequencedata.Definition) {
	s.ID = def.ID
	s.Status = SequenceBegin
	s.FrameIndex = 0
	s.FrameWait = logicclock.NewFrameWaitClock(def.Frames[0].Wait)
	s.Frozen = false
}
