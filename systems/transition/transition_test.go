package transition

import (
	"testing"

	"github.com/automoto/brawlsim/components"
	"github.com/automoto/brawlsim/config"
	"github.com/automoto/brawlsim/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func status(id config.SequenceID, st components.SequenceStatus) ObjectStatus {
	return ObjectStatus{
		Health:         100,
		SequenceID:     id,
		SequenceStatus: st,
		Grounding:      components.OnGround,
	}
}

func withInput(s ObjectStatus, cur, prev components.ControlState) ObjectStatus {
	s.Input = components.ControllerInputData{Current: cur, Previous: prev}
	return s
}

func assertNext(t *testing.T, want config.SequenceID, s ObjectStatus) {
	t.Helper()
	got, ok := Resolve(s)
	if assert.True(t, ok, "expected a transition to %s", want) {
		assert.Equal(t, want, got, "got %s", got)
	}
}

func assertStay(t *testing.T, s ObjectStatus) {
	t.Helper()
	got, ok := Resolve(s)
	assert.False(t, ok, "unexpected transition to %s", got)
}

func TestRunAirborneFalls(t *testing.T) {
	inputs := []components.ControlState{
		{},
		{XAxis: 1},
		{XAxis: -1, Jump: true},
		{Attack: true, Defend: true},
	}
	for _, st := range []components.SequenceStatus{components.SequenceBegin, components.SequenceOngoing, components.SequenceEnd} {
		for _, in := range inputs {
			s := withInput(status(config.Run, st), in, components.ControlState{})
			s.Grounding = components.Airborne
			assertNext(t, config.JumpDescend, s)
		}
	}
}

func TestWalkEndWithoutInputStands(t *testing.T) {
	assertNext(t, config.Stand, status(config.Walk, components.SequenceEnd))
}

func TestWalkEndWithInputRepeats(t *testing.T) {
	s := withInput(status(config.Walk, components.SequenceEnd), components.ControlState{XAxis: 1}, components.ControlState{XAxis: 1})
	assertNext(t, config.Walk, s)

	s.SequenceStatus = components.SequenceOngoing
	assertStay(t, s)
}

func TestJumpAscendDescendsBeforeEnd(t *testing.T) {
	s := status(config.JumpAscend, components.SequenceOngoing)
	s.Grounding = components.Airborne
	s.Velocity = gamemath.Vec3{Y: -1}
	assertNext(t, config.JumpDescend, s)

	s.Velocity.Y = 0
	assertStay(t, s)
}

func TestLandingBeatsEndVelocity(t *testing.T) {
	s := status(config.JumpAttack, components.SequenceEnd)
	s.Velocity = gamemath.Vec3{Y: 3}
	assertNext(t, config.JumpDescendLand, s)

	s.Grounding = components.Airborne
	assertNext(t, config.JumpAscend, s)
	s.Velocity.Y = 0
	assertNext(t, config.JumpDescend, s)
}

func TestAliveCheckHasPriority(t *testing.T) {
	s := withInput(status(config.Stand, components.SequenceEnd), components.ControlState{Attack: true, Jump: true}, components.ControlState{})
	s.Health = 0
	assertNext(t, config.FallForwardDescend, s)

	flinch := status(config.Flinch1, components.SequenceOngoing)
	flinch.Health = 0
	flinch.Grounding = components.Airborne
	assertNext(t, config.FallForwardAscend, flinch)
}

func TestStandInputs(t *testing.T) {
	tests := []struct {
		name string
		cur  components.ControlState
		prev components.ControlState
		want config.SequenceID
	}{
		{"attack press", components.ControlState{Attack: true}, components.ControlState{}, config.StandAttack0},
		{"jump press", components.ControlState{Jump: true}, components.ControlState{}, config.Jump},
		{"defend press", components.ControlState{Defend: true}, components.ControlState{}, config.Dodge},
		{"walk x", components.ControlState{XAxis: 1}, components.ControlState{}, config.Walk},
		{"walk z", components.ControlState{ZAxis: -1}, components.ControlState{}, config.Walk},
		{"attack before jump", components.ControlState{Attack: true, Jump: true}, components.ControlState{}, config.StandAttack0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNext(t, tt.want, withInput(status(config.Stand, components.SequenceOngoing), tt.cur, tt.prev))
		})
	}

	held := withInput(status(config.Stand, components.SequenceOngoing), components.ControlState{Attack: true}, components.ControlState{Attack: true})
	assertStay(t, held)
}

func TestDoubleTapRuns(t *testing.T) {
	s := withInput(status(config.Stand, components.SequenceOngoing), components.ControlState{XAxis: 1}, components.ControlState{})
	s.RunCounter = components.RunCounterData{Kind: components.RunDecrease, Ticks: 4}
	assertNext(t, config.Run, s)

	s.Mirrored = true
	assertNext(t, config.Walk, s)
}

func TestRunStops(t *testing.T) {
	running := withInput(status(config.Run, components.SequenceOngoing), components.ControlState{XAxis: 1}, components.ControlState{XAxis: 1})
	assertStay(t, running)

	released := status(config.Run, components.SequenceOngoing)
	assertNext(t, config.RunStop, released)

	reversed := withInput(status(config.Run, components.SequenceOngoing), components.ControlState{XAxis: -1}, components.ControlState{XAxis: 1})
	assertNext(t, config.RunStop, reversed)

	dash := withInput(status(config.Run, components.SequenceOngoing), components.ControlState{XAxis: 1, Jump: true}, components.ControlState{XAxis: 1})
	assertNext(t, config.DashForward, dash)
}

func TestStandAttackCombo(t *testing.T) {
	s := withInput(status(config.StandAttack0, components.SequenceEnd), components.ControlState{Attack: true}, components.ControlState{Attack: true})
	assertNext(t, config.StandAttack1, s)
	assertNext(t, config.Stand, status(config.StandAttack0, components.SequenceEnd))
	assertStay(t, status(config.StandAttack0, components.SequenceOngoing))
	assertNext(t, config.Stand, status(config.StandAttack1, components.SequenceEnd))
}

func TestFixedSuccessors(t *testing.T) {
	tests := []struct {
		from config.SequenceID
		want config.SequenceID
	}{
		{config.Dodge, config.Stand},
		{config.RunStop, config.Stand},
		{config.Jump, config.JumpOff},
		{config.JumpDescendLand, config.Stand},
		{config.DashDescendLand, config.Stand},
		{config.Flinch0, config.Stand},
		{config.Dazed, config.Stand},
		{config.FallForwardLand, config.LieFaceDown},
		{config.LieFaceDown, config.Stand},
	}
	for _, tt := range tests {
		t.Run(tt.from.String(), func(t *testing.T) {
			assertNext(t, tt.want, status(tt.from, components.SequenceEnd))
		})
	}

	s := status(config.JumpOff, components.SequenceEnd)
	s.Grounding = components.Airborne
	assertNext(t, config.JumpAscend, s)
}

func TestDefeatedStaysDown(t *testing.T) {
	s := status(config.LieFaceDown, components.SequenceEnd)
	s.Health = 0
	assertStay(t, s)
}

func TestFallLands(t *testing.T) {
	s := status(config.FallForwardAscend, components.SequenceOngoing)
	s.Grounding = components.Airborne
	s.Velocity.Y = 2
	assertStay(t, s)
	s.Velocity.Y = -2
	assertNext(t, config.FallForwardDescend, s)
	s.Grounding = components.OnGround
	assertNext(t, config.FallForwardLand, s)
}

func TestResolveIsDeterministic(t *testing.T) {
	for id := config.Stand; int(id) < config.CharacterSequenceCount; id++ {
		for _, st := range []components.SequenceStatus{components.SequenceBegin, components.SequenceOngoing, components.SequenceEnd} {
			for _, g := range []components.GroundingKind{components.OnGround, components.Airborne, components.Underground} {
				s := withInput(status(id, st), components.ControlState{XAxis: 0.5, Attack: true}, components.ControlState{})
				s.Grounding = g
				s.Velocity.Y = -0.5
				first, firstOK := Resolve(s)
				for i := 0; i < 3; i++ {
					again, againOK := Resolve(s)
					assert.Equal(t, firstOK, againOK)
					assert.Equal(t, first, again)
				}
			}
		}
	}
}

func TestResolvePanicsOutsideCharacterSet(t *testing.T) {
	assert.Panics(t, func() { Resolve(status(config.FirstDynamicSequenceID, components.SequenceEnd)) })
	assert.Panics(t, func() { Resolve(status(config.SequenceNone, components.SequenceEnd)) })
}

func TestMirroredFor(t *testing.T) {
	left := components.ControlState{XAxis: -1}
	for _, id := range []config.SequenceID{config.Stand, config.Walk, config.JumpAscend, config.JumpDescend} {
		s := withInput(status(id, components.SequenceOngoing), left, components.ControlState{})
		assert.True(t, MirroredFor(s), id.String())
		s.Mirrored = true
		assert.True(t, MirroredFor(s), id.String())
	}
	for _, id := range []config.SequenceID{config.StandAttack0, config.Run, config.JumpAttack, config.Flinch0} {
		s := withInput(status(id, components.SequenceOngoing), left, components.ControlState{})
		assert.False(t, MirroredFor(s), id.String())
	}

	s := withInput(status(config.Stand, components.SequenceOngoing), components.ControlState{XAxis: 1}, components.ControlState{})
	s.Mirrored = true
	assert.False(t, MirroredFor(s))
}
