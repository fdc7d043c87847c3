package transition

import (
	"fmt"

	"github.com/automoto/brawlsim/config"
)

// Handler is an ordered rule list; the first rule to ask for a sequence wins.
type Handler []Rule

func (h Handler) Update(s ObjectStatus) (config.SequenceID, bool) {
	for _, rule := range h {
		if id, ok := rule(s); ok {
			return id, true
		}
	}
	return config.SequenceNone, false
}

var handlers = newHandlerTable()

func newHandlerTable() [config.CharacterSequenceCount]Handler {
	var t [config.CharacterSequenceCount]Handler

	t[config.Stand] = Handler{
		AliveCheck, AirborneCheck, StandAttackCheck, JumpCheck, DodgeCheck,
		WalkXMovementCheck, WalkZMovementCheck, SequenceRepeat,
	}
	t[config.Walk] = Handler{
		AliveCheck, AirborneCheck, StandAttackCheck, JumpCheck, DodgeCheck,
		WalkNoMovementCheck, WalkXMovementCheck, WalkZMovementCheck, SequenceRepeat,
	}
	t[config.Run] = Handler{
		AliveCheck, AirborneCheck, DashCheck, DodgeCheck, RunStopCheck, SequenceRepeat,
	}

	backToStand := Handler{AliveCheck, AirborneCheck, SwitchSequenceOnEnd(config.Stand)}
	t[config.RunStop] = backToStand
	t[config.Dodge] = backToStand
	t[config.StandAttack1] = backToStand
	t[config.JumpDescendLand] = backToStand
	t[config.DashDescendLand] = backToStand
	t[config.StandAttack0] = Handler{AliveCheck, AirborneCheck, StandAttackComboCheck}

	t[config.Jump] = Handler{SwitchSequenceOnEnd(config.JumpOff)}
	t[config.JumpOff] = Handler{SwitchSequenceOnEnd(config.JumpAscend)}
	t[config.JumpAscend] = Handler{
		SwitchSequenceOnLand(config.JumpDescendLand),
		SwitchSequenceOnDescend(config.JumpDescend),
		JumpAttackCheck, SequenceRepeat,
	}
	t[config.JumpDescend] = Handler{
		SwitchSequenceOnLand(config.JumpDescendLand),
		JumpAttackCheck, SequenceRepeat,
	}
	t[config.JumpAttack] = Handler{
		SwitchSequenceOnLand(config.JumpDescendLand),
		SwitchSequenceOnEndYVelocity(config.JumpAscend, config.JumpDescend),
	}

	t[config.DashForward] = Handler{
		SwitchSequenceOnLand(config.DashDescendLand),
		SwitchSequenceOnEndYVelocity(config.DashForwardAscend, config.DashForwardDescend),
	}
	t[config.DashForwardAscend] = Handler{
		SwitchSequenceOnLand(config.DashDescendLand),
		SwitchSequenceOnDescend(config.DashForwardDescend),
		DashAttackCheck, SequenceRepeat,
	}
	t[config.DashForwardDescend] = Handler{
		SwitchSequenceOnLand(config.DashDescendLand),
		DashAttackCheck, SequenceRepeat,
	}
	t[config.DashBack] = Handler{
		SwitchSequenceOnLand(config.DashDescendLand),
		SwitchSequenceOnEndYVelocity(config.DashBackAscend, config.DashBackDescend),
	}
	t[config.DashBackAscend] = Handler{
		SwitchSequenceOnLand(config.DashDescendLand),
		SwitchSequenceOnDescend(config.DashBackDescend),
		SequenceRepeat,
	}
	t[config.DashBackDescend] = Handler{
		SwitchSequenceOnLand(config.DashDescendLand),
		SequenceRepeat,
	}
	t[config.DashAttack] = Handler{
		SwitchSequenceOnLand(config.DashDescendLand),
		SwitchSequenceOnEndYVelocity(config.DashForwardAscend, config.DashForwardDescend),
	}

	flinch := Handler{
		AliveCheckTo(config.FallForwardAscend),
		AirborneCheckTo(config.FallForwardDescend),
		SwitchSequenceOnEnd(config.Stand),
	}
	t[config.Flinch0] = flinch
	t[config.Flinch1] = flinch
	t[config.Dazed] = Handler{
		AliveCheckTo(config.FallForwardAscend),
		SwitchSequenceOnEnd(config.Stand),
	}

	t[config.FallForwardAscend] = Handler{
		SwitchSequenceOnLand(config.FallForwardLand),
		SwitchSequenceOnDescend(config.FallForwardDescend),
		SequenceRepeat,
	}
	t[config.FallForwardDescend] = Handler{
		SwitchSequenceOnLand(config.FallForwardLand),
		SequenceRepeat,
	}
	t[config.FallForwardLand] = Handler{SwitchSequenceOnEnd(config.LieFaceDown)}
	t[config.LieFaceDown] = Handler{SwitchSequenceOnEndAlive(config.Stand)}

	for id := config.Stand; int(id) < config.CharacterSequenceCount; id++ {
		if len(t[id]) == 0 {
			panic(fmt.Sprintf("transition: no handler for sequence %s", id))
		}
	}
	return t
}

// Resolve returns the sequence a character should switch to, or false to
// stay. It panics for ids outside the character set.
func Resolve(s ObjectStatus) (config.SequenceID, bool) {
	if !s.SequenceID.IsCharacter() {
		panic(fmt.Sprintf("transition: sequence %d has no handler", s.SequenceID))
	}
	return handlers[s.SequenceID].Update(s)
}

// MirroredFor returns the facing after this frame's input. Only standing,
// walking and mid-jump objects turn around.
func MirroredFor(s ObjectStatus) bool {
	switch s.SequenceID {
	case config.Stand, config.Walk, config.JumpAscend, config.JumpDescend:
		if s.xOpposesFacing() {
			return !s.Mirrored
		}
	}
	return s.Mirrored
}
