package factory

import (
	"fmt"

	"github.com/automoto/brawlsim/archetypes"
	"github.com/automoto/brawlsim/components"
	cfg "github.com/automoto/brawlsim/config"
	"github.com/automoto/brawlsim/shared/gamemath"
	"github.com/automoto/brawlsim/shared/points"
	"github.com/automoto/brawlsim/shared/sequencedata"
	"github.com/automoto/brawlsim/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CharacterOptions place a fighter in the arena.
type CharacterOptions struct {
	Asset    sequencedata.AssetID
	Team     int
	Position gamemath.Vec3
	Mirrored bool
}

// CreateCharacter spawns a fighter standing at its position with full health
// and skill. The asset must be a character asset in the world's store.
func CreateCharacter(ecs *ecs.ECS, opts CharacterOptions) (*donburi.Entry, error) {
	store := components.MustStore(ecs.World)
	if kind, ok := store.Kind(opts.Asset); !ok || kind != sequencedata.AssetCharacter {
		return nil, fmt.Errorf("create character %q: %w", opts.Asset, sequencedata.ErrMissingSequence)
	}
	def, ok := store.Definition(opts.Asset, cfg.Stand)
	if !ok {
		return nil, fmt.Errorf("create character %q: %w", opts.Asset, sequencedata.ErrMissingSequence)
	}

	e := archetypes.Character.Spawn(ecs.World)

	seq := components.Sequence.Get(e)
	seq.Asset = opts.Asset
	seq.Enter(def)

	components.Position.SetValue(e, opts.Position)
	components.Mirrored.SetValue(e, components.MirroredData{Mirrored: opts.Mirrored})
	components.Grounding.SetValue(e, components.GroundingData{
		Kind: systems.GroundingFor(opts.Position.Y, systems.Floor(ecs.World)),
	})
	components.Health.SetValue(e, components.HealthData{
		Points: points.HealthPoints(cfg.Fighter.Health),
		Max:    points.HealthPoints(cfg.Fighter.Health),
	})
	components.Skill.SetValue(e, components.SkillData{
		Points: points.SkillPoints(cfg.Fighter.Skill),
		Max:    points.SkillPoints(cfg.Fighter.Skill),
	})
	components.Team.SetValue(e, components.TeamData{ID: opts.Team})
	components.Charge.SetValue(e, components.NewChargeData())

	return e, nil
}
