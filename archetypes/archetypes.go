package archetypes

import (
	"github.com/automoto/brawlsim/components"
	"github.com/automoto/brawlsim/tags"
	"github.com/yohamta/donburi"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Sequence,
		components.Position,
		components.Velocity,
		components.Mirrored,
		components.Grounding,
		components.Health,
		components.Skill,
		components.Stun,
		components.RunCounter,
		components.ControllerInput,
		components.Team,
		components.Charge,
		components.HitRepeatTrackers,
		components.HitTally,
	)
	Object = newArchetype(
		tags.Object,
		components.Sequence,
		components.Position,
		components.Velocity,
		components.Mirrored,
		components.Grounding,
		components.Team,
		components.HitRepeatTrackers,
		components.HitTally,
		components.OutOfBounds,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Definitions = newArchetype(
		components.Definitions,
	)
	GamePlay = newArchetype(
		components.GamePlay,
	)
	HitQueue = newArchetype(
		components.HitQueue,
	)
	VolumeSnapshot = newArchetype(
		components.VolumeSnapshot,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
