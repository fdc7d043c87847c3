package systems

import (
	"github.com/automoto/brawlsim/components"
	"github.com/automoto/brawlsim/shared/logicclock"
	"github.com/automoto/brawlsim/shared/sequencedata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSequenceStatus moves every object one frame through its sequence.
func UpdateSequenceStatus(ecs *ecs.ECS) {
	store := components.MustStore(ecs.World)
	components.Sequence.Each(ecs.World, func(e *donburi.Entry) {
		seq := components.Sequence.Get(e)
		advanceSequence(seq, store.MustDefinition(seq.Asset, seq.ID))
	})
}

// advanceSequence ticks the current frame's wait. Begin lasts for the frame
// a sequence is entered, End for the frame its last wait completes, and a
// sequence nobody moves on from holds its last frame afterwards.
func advanceSequence(seq *components.SequenceData, def *sequencedata.Definition) {
	if seq.Frozen {
		return
	}
	if seq.Status == components.SequenceEnd {
		seq.Status = components.SequenceOngoing
		seq.Frozen = true
		return
	}

	seq.Status = components.SequenceOngoing
	seq.FrameWait.Tick()
	for seq.FrameWait.IsComplete() {
		if seq.FrameIndex >= len(def.Frames)-1 {
			seq.Status = components.SequenceEnd
			return
		}
		seq.FrameIndex++
		seq.FrameWait = logicclock.NewFrameWaitClock(def.Frames[seq.FrameIndex].Wait)
	}
}
