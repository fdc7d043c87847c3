package systems

import (
	"github.com/automoto/brawlsim/components"
	"github.com/automoto/brawlsim/config"
	"github.com/automoto/brawlsim/metrics"
	"github.com/automoto/brawlsim/shared/sequencedata"
	"github.com/automoto/brawlsim/systems/transition"
	"github.com/automoto/brawlsim/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSequenceTransitions asks each character's handler for its next
// sequence, turns it around when allowed, then lets the definition's end
// transition have its say.
func UpdateSequenceTransitions(ecs *ecs.ECS) {
	w := ecs.World
	store := components.MustStore(w)

	var deleted []*donburi.Entry
	components.Sequence.Each(w, func(e *donburi.Entry) {
		seq := components.Sequence.Get(e)
		def := store.MustDefinition(seq.Asset, seq.ID)

		next, ok := config.SequenceNone, false
		if e.HasComponent(tags.Character) {
			status := ObjectStatusOf(e)
			next, ok = transition.Resolve(status)
			components.Mirrored.Get(e).Mirrored = transition.MirroredFor(status)
		}

		next, ok, remove := applyEndTransition(seq, def, next, ok)
		if remove {
			deleted = append(deleted, e)
			return
		}
		if ok {
			enterSequence(w, e, next)
		}
	})

	for _, e := range deleted {
		deleteObject(w, e)
	}
}

// ObjectStatusOf gathers the status bundle of a character.
func ObjectStatusOf(e *donburi.Entry) transition.ObjectStatus {
	seq := components.Sequence.Get(e)
	return transition.ObjectStatus{
		Input:          *components.ControllerInput.Get(e),
		Health:         components.Health.Get(e).Points,
		SequenceID:     seq.ID,
		SequenceStatus: seq.Status,
		Position:       *components.Position.Get(e),
		Velocity:       *components.Velocity.Get(e),
		Mirrored:       components.Mirrored.Get(e).Mirrored,
		Grounding:      components.Grounding.Get(e).Kind,
		RunCounter:     *components.RunCounter.Get(e),
	}
}

// applyEndTransition folds the definition's end transition into the handler
// result. It only applies at End, and a handler that picked a different
// sequence keeps its choice.
func applyEndTransition(seq *components.SequenceData, def *sequencedata.Definition, next config.SequenceID, ok bool) (config.SequenceID, bool, bool) {
	if seq.Status != components.SequenceEnd {
		return next, ok, false
	}
	handlerDefault := !ok || next == seq.ID

	switch def.Next.Kind {
	case sequencedata.EndSwitch:
		if handlerDefault {
			return def.Next.Target, true, false
		}
	case sequencedata.EndRepeat:
		if !ok {
			return seq.ID, true, false
		}
	case sequencedata.EndDelete:
		if handlerDefault {
			return config.SequenceNone, false, true
		}
	}
	return next, ok, false
}

// enterSequence starts id on e from its first frame.
func enterSequence(w donburi.World, e *donburi.Entry, id config.SequenceID) {
	seq := components.Sequence.Get(e)
	def := components.MustStore(w).MustDefinition(seq.Asset, id)
	old := seq.ID
	seq.Enter(def)
	if e.HasComponent(components.HitTally) {
		components.HitTally.Get(e).Reset()
	}

	metrics.SequenceTransitions.Inc()
	SequenceChangedEvent.Publish(w, SequenceChanged{Entity: e.Entity(), Old: old, New: id})
}

func deleteObject(w donburi.World, e *donburi.Entry) {
	entity := e.Entity()
	w.Remove(entity)

	metrics.ObjectsDeleted.Inc()
	ObjectDeletedEvent.Publish(w, ObjectDeleted{Entity: entity})
}
