// Package simtest builds sequence stores and worlds for tests.
package simtest

import (
	"testing"

	"github.com/automoto/brawlsim/config"
	"github.com/automoto/brawlsim/shared/gamemath"
	"github.com/automoto/brawlsim/shared/leveldata"
	"github.com/automoto/brawlsim/shared/sequencedata"
	"github.com/automoto/brawlsim/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	Fighter  sequencedata.AssetID = "fighter"
	Fireball sequencedata.AssetID = "fireball"
)

// Body is the hurt box every fighter frame carries: 16 wide, 40 tall and 16
// deep, centred on the fighter's x and z.
var Body = sequencedata.Box(-8, 0, -8, 16, 40, 16)

// Reach is the hit box of a fighter attack, in front of the body.
var Reach = sequencedata.Box(8, 10, -8, 24, 20, 16)

// Waits lists frame waits that differ from the default of 4.
var Waits = map[config.SequenceID]int{
	config.Stand:        1,
	config.Walk:         6,
	config.Run:          6,
	config.Jump:         2,
	config.JumpOff:      1,
	config.Flinch0:      6,
	config.Flinch1:      6,
	config.Dazed:        12,
	config.LieFaceDown:  20,
	config.StandAttack0: 3,
	config.StandAttack1: 3,
}

// AttackHit is the hit every fighter attack deals.
func AttackHit() sequencedata.Hit {
	hit := sequencedata.DefaultHit()
	hit.HPDamage = 40
	hit.SPDamage = 10
	hit.Stun = 30
	hit.Acceleration = gamemath.Vec3{X: 4}
	return hit
}

func isAttack(id config.SequenceID) bool {
	switch id {
	case config.StandAttack0, config.StandAttack1, config.JumpAttack, config.DashAttack:
		return true
	}
	return false
}

// CharacterDocument defines every character sequence for asset. Attacks have
// a wind up frame followed by a frame that hits with Reach.
func CharacterDocument(asset sequencedata.AssetID) sequencedata.AssetDocument {
	doc := sequencedata.AssetDocument{
		Asset:     asset,
		Kind:      sequencedata.AssetCharacter,
		Sequences: make(map[string]sequencedata.SequenceDocument),
	}
	for id := config.Stand; int(id) < config.CharacterSequenceCount; id++ {
		wait, ok := Waits[id]
		if !ok {
			wait = 4
		}
		frames := []sequencedata.Frame{{Wait: wait, Body: []sequencedata.Volume{Body}}}
		if isAttack(id) {
			frames = append(frames, sequencedata.Frame{
				Wait: wait,
				Body: []sequencedata.Volume{Body},
				Interactions: []sequencedata.Interaction{{
					Kind:   sequencedata.InteractionHit,
					Hit:    AttackHit(),
					Bounds: []sequencedata.Volume{Reach},
				}},
			})
		}
		doc.Sequences[id.String()] = sequencedata.SequenceDocument{Frames: frames}
	}
	return doc
}

// FireballDocument defines a projectile that flies forever, hitting every
// target it touches, and a burst that removes it.
func FireballDocument() sequencedata.AssetDocument {
	hit := sequencedata.DefaultHit()
	hit.HPDamage = 12
	hit.Stun = 20
	hit.RepeatDelay = 5
	hit.HitLimit = sequencedata.Unlimited
	hit.Acceleration = gamemath.Vec3{X: 2, Y: 3}

	return sequencedata.AssetDocument{
		Asset: Fireball,
		Kind:  sequencedata.AssetObject,
		Sequences: map[string]sequencedata.SequenceDocument{
			"fly": {
				Next: sequencedata.EndTransitionRepeat,
				Frames: []sequencedata.Frame{{
					Wait: 2,
					Interactions: []sequencedata.Interaction{{
						Kind:     sequencedata.InteractionHit,
						Hit:      hit,
						Bounds:   []sequencedata.Volume{sequencedata.Sphere(0, 20, 0, 6)},
						Multiple: true,
					}},
				}},
			},
			"burst": {
				Next:   sequencedata.EndTransitionDelete,
				Frames: []sequencedata.Frame{{Wait: 3}},
			},
			"fizzle": {
				Next:   sequencedata.SwitchToName("burst"),
				Frames: []sequencedata.Frame{{Wait: 1}},
			},
		},
	}
}

// Store builds a store holding the fighter and fireball assets.
func Store(t testing.TB) *sequencedata.Store {
	t.Helper()
	b := sequencedata.NewBuilder()
	require.NoError(t, b.Add(CharacterDocument(Fighter)))
	require.NoError(t, b.Add(FireballDocument()))
	store, err := b.Build()
	require.NoError(t, err)
	return store
}

// NewECS returns a world with every singleton in place on the default arena.
func NewECS(t testing.TB) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateWorldSingletons(e, "test", leveldata.DefaultArena(), Store(t))
	return e
}

// SpawnFighter places a fighter of team at x, z on the floor.
func SpawnFighter(t testing.TB, e *ecs.ECS, team int, x, z float64, mirrored bool) *donburi.Entry {
	t.Helper()
	entry, err := factory.CreateCharacter(e, factory.CharacterOptions{
		Asset:    Fighter,
		Team:     team,
		Position: gamemath.Vec3{X: x, Z: z},
		Mirrored: mirrored,
	})
	require.NoError(t, err)
	return entry
}

// SpawnFireball launches a fireball of team from pos.
func SpawnFireball(t testing.TB, e *ecs.ECS, team int, pos, vel gamemath.Vec3) *donburi.Entry {
	t.Helper()
	entry, err := factory.CreateObject(e, factory.ObjectOptions{
		Asset:    Fireball,
		Name:     "fly",
		Team:     team,
		Position: pos,
		Velocity: vel,
	})
	require.NoError(t, err)
	return entry
}

// Run calls each system once in order.
func Run(e *ecs.ECS, systems ...ecs.System) {
	for _, s := range systems {
		s(e)
	}
}
