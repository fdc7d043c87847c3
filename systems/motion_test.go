package systems_test

import (
	"testing"

	"github.com/automoto/brawlsim/components"
	cfg "github.com/automoto/brawlsim/config"
	"github.com/automoto/brawlsim/internal/simtest"
	"github.com/automoto/brawlsim/shared/gamemath"
	"github.com/automoto/brawlsim/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestStandWalksOnInput(t *testing.T) {
	e := simtest.NewECS(t)
	a := simtest.SpawnFighter(t, e, 0, 100, 100, false)

	var changes []systems.SequenceChanged
	systems.SequenceChangedEvent.Subscribe(e.World, func(w donburi.World, ev systems.SequenceChanged) {
		changes = append(changes, ev)
	})

	components.ControllerInput.Get(a).Current = components.ControlState{XAxis: -1}
	systems.UpdateSequenceTransitions(e)

	assert.Equal(t, cfg.Walk, components.Sequence.Get(a).ID)
	assert.Equal(t, components.SequenceBegin, components.Sequence.Get(a).Status)
	assert.True(t, components.Mirrored.Get(a).Mirrored)

	systems.DispatchEvents(e)
	require.Len(t, changes, 1)
	assert.Equal(t, systems.SequenceChanged{Entity: a.Entity(), Old: cfg.Stand, New: cfg.Walk}, changes[0])
}

func TestObjectEndTransitions(t *testing.T) {
	e := simtest.NewECS(t)
	fb := simtest.SpawnFireball(t, e, 0, gamemath.Vec3{X: 100, Z: 100}, gamemath.Vec3{})

	store := components.MustStore(e.World)
	fizzle, ok := store.SequenceID(simtest.Fireball, "fizzle")
	require.True(t, ok)
	burst, ok := store.SequenceID(simtest.Fireball, "burst")
	require.True(t, ok)
	fly, ok := store.SequenceID(simtest.Fireball, "fly")
	require.True(t, ok)

	step := func() {
		systems.UpdateSequenceStatus(e)
		systems.UpdateSequenceTransitions(e)
	}

	// fly repeats forever
	for i := 0; i < 5; i++ {
		step()
		require.True(t, e.World.Valid(fb.Entity()))
		assert.Equal(t, fly, components.Sequence.Get(fb).ID)
	}

	components.Sequence.Get(fb).Enter(store.MustDefinition(simtest.Fireball, fizzle))
	step()
	assert.Equal(t, burst, components.Sequence.Get(fb).ID)

	step()
	step()
	require.True(t, e.World.Valid(fb.Entity()))
	step()
	assert.False(t, e.World.Valid(fb.Entity()))
}

func TestDefeatedFighterStaysDown(t *testing.T) {
	e := simtest.NewECS(t)
	a := simtest.SpawnFighter(t, e, 0, 100, 100, false)
	store := components.MustStore(e.World)
	components.Sequence.Get(a).Enter(store.MustDefinition(simtest.Fighter, cfg.LieFaceDown))
	components.Health.Get(a).Points = 0

	for i := 0; i < 3*simtest.Waits[cfg.LieFaceDown]; i++ {
		systems.UpdateSequenceStatus(e)
		systems.UpdateSequenceTransitions(e)
	}

	seq := components.Sequence.Get(a)
	assert.Equal(t, cfg.LieFaceDown, seq.ID)
	assert.True(t, seq.Frozen)
}

func TestJumpLaunchesAndLands(t *testing.T) {
	e := simtest.NewECS(t)
	a := simtest.SpawnFighter(t, e, 0, 100, 100, false)
	store := components.MustStore(e.World)
	components.Sequence.Get(a).Enter(store.MustDefinition(simtest.Fighter, cfg.JumpOff))

	systems.UpdatePhysics(e)
	pos := components.Position.Get(a)
	assert.InDelta(t, cfg.Physics.JumpVelocityY, pos.Y, 1e-9)
	assert.Equal(t, components.Airborne, components.Grounding.Get(a).Kind)

	components.Sequence.Get(a).Status = components.SequenceOngoing
	for i := 0; i < 100 && components.Grounding.Get(a).Kind == components.Airborne; i++ {
		systems.UpdatePhysics(e)
	}
	assert.Equal(t, components.OnGround, components.Grounding.Get(a).Kind)
	assert.Equal(t, 0.0, pos.Y)
	assert.Equal(t, 0.0, components.Velocity.Get(a).Y)
}

func TestCharactersStayInsideWalls(t *testing.T) {
	e := simtest.NewECS(t)
	a := simtest.SpawnFighter(t, e, 0, 2, 100, true)
	components.Velocity.SetValue(a, gamemath.Vec3{X: -10, Z: -500})

	systems.UpdatePhysics(e)

	pos := components.Position.Get(a)
	assert.Equal(t, 0.0, pos.X)
	assert.Equal(t, 0.0, pos.Z)
}

func TestChargeBuildsAndIsSpent(t *testing.T) {
	e := simtest.NewECS(t)
	a := simtest.SpawnFighter(t, e, 0, 100, 100, false)
	components.ControllerInput.Get(a).Current.Attack = true

	for i := 0; i < 1+cfg.Combat.ChargeBeginDelay+5; i++ {
		systems.UpdateCharge(e)
	}
	charge := components.Charge.Get(a)
	assert.Equal(t, components.Charging, charge.Status)
	assert.EqualValues(t, 5, charge.Points)

	store := components.MustStore(e.World)
	components.Sequence.Get(a).Enter(store.MustDefinition(simtest.Fighter, cfg.StandAttack0))
	systems.UpdateCharge(e)

	assert.InDelta(t, 5.0/float64(cfg.Combat.ChargeLimit), charge.AttackRatio, 1e-9)
	assert.EqualValues(t, 0, charge.Points)
	assert.Equal(t, components.ChargeIdle, charge.Status)
}

func TestChargeDecaysAfterRelease(t *testing.T) {
	e := simtest.NewECS(t)
	a := simtest.SpawnFighter(t, e, 0, 100, 100, false)
	charge := components.Charge.Get(a)
	charge.Points = 2
	charge.Status = components.Charging

	for i := 0; i < 1+2*cfg.Combat.ChargeDecayDelay; i++ {
		systems.UpdateCharge(e)
	}
	assert.EqualValues(t, 0, charge.Points)
	assert.Equal(t, components.ChargeIdle, charge.Status)
}

func TestInputLatch(t *testing.T) {
	e := simtest.NewECS(t)
	a := simtest.SpawnFighter(t, e, 0, 100, 100, false)
	in := components.ControllerInput.Get(a)
	in.Current.Jump = true
	assert.True(t, in.JumpPressed())

	systems.UpdateInputLatch(e)
	assert.False(t, in.JumpPressed())
	assert.True(t, in.Previous.Jump)
}
