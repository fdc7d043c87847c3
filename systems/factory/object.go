package factory

import (
	"fmt"

	"github.com/automoto/brawlsim/archetypes"
	"github.com/automoto/brawlsim/components"
	cfg "github.com/automoto/brawlsim/config"
	"github.com/automoto/brawlsim/shared/gamemath"
	"github.com/automoto/brawlsim/shared/logicclock"
	"github.com/automoto/brawlsim/shared/sequencedata"
	"github.com/automoto/brawlsim/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ObjectOptions describe a spawned object such as a projectile. Name is a
// sequence of Asset to start in.
type ObjectOptions struct {
	Asset    sequencedata.AssetID
	Name     string
	Team     int
	Position gamemath.Vec3
	Velocity gamemath.Vec3
	Mirrored bool
}

// CreateObject spawns a non-character object. It has no handler, so only its
// sequences' end transitions move it along.
func CreateObject(ecs *ecs.ECS, opts ObjectOptions) (*donburi.Entry, error) {
	store := components.MustStore(ecs.World)
	id, ok := store.SequenceID(opts.Asset, opts.Name)
	if !ok {
		return nil, fmt.Errorf("create object %s/%s: %w", opts.Asset, opts.Name, sequencedata.ErrUnknownSequence)
	}
	def := store.MustDefinition(opts.Asset, id)

	e := archetypes.Object.Spawn(ecs.World)

	seq := components.Sequence.Get(e)
	seq.Asset = opts.Asset
	seq.Enter(def)

	components.Position.SetValue(e, opts.Position)
	components.Velocity.SetValue(e, opts.Velocity)
	components.Mirrored.SetValue(e, components.MirroredData{Mirrored: opts.Mirrored})
	components.Grounding.SetValue(e, components.GroundingData{
		Kind: systems.GroundingFor(opts.Position.Y, systems.Floor(ecs.World)),
	})
	components.Team.SetValue(e, components.TeamData{ID: opts.Team})
	components.OutOfBounds.SetValue(e, components.OutOfBoundsData{
		Clock: logicclock.NewOutOfBoundsDeleteClock(cfg.Map.OutOfBoundsDeleteDelay),
	})

	return e, nil
}
