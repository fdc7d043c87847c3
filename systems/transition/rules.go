package transition

import (
	"github.com/automoto/brawlsim/components"
	"github.com/automoto/brawlsim/config"
)

// Rule asks for a sequence, or returns false to let the next rule decide.
type Rule func(s ObjectStatus) (config.SequenceID, bool)

func some(id config.SequenceID) (config.SequenceID, bool) { return id, true }
func none() (config.SequenceID, bool)                     { return config.SequenceNone, false }

// AliveCheckTo sends a defeated object to id.
func AliveCheckTo(id config.SequenceID) Rule {
	return func(s ObjectStatus) (config.SequenceID, bool) {
		if !s.Health.Alive() {
			return some(id)
		}
		return none()
	}
}

// AirborneCheckTo sends an object that lost its footing to id.
func AirborneCheckTo(id config.SequenceID) Rule {
	return func(s ObjectStatus) (config.SequenceID, bool) {
		if s.Grounding == components.Airborne {
			return some(id)
		}
		return none()
	}
}

var (
	// AliveCheck drops a defeated fighter.
	AliveCheck = AliveCheckTo(config.FallForwardDescend)
	// AirborneCheck starts falling when the ground disappears.
	AirborneCheck = AirborneCheckTo(config.JumpDescend)
)

func StandAttackCheck(s ObjectStatus) (config.SequenceID, bool) {
	if s.Input.AttackPressed() {
		return some(config.StandAttack0)
	}
	return none()
}

func JumpCheck(s ObjectStatus) (config.SequenceID, bool) {
	if s.Input.JumpPressed() {
		return some(config.Jump)
	}
	return none()
}

func DodgeCheck(s ObjectStatus) (config.SequenceID, bool) {
	if s.Input.DefendPressed() {
		return some(config.Dodge)
	}
	return none()
}

// WalkNoMovementCheck stops walking once both axes are released.
func WalkNoMovementCheck(s ObjectStatus) (config.SequenceID, bool) {
	if !s.xInput() && !s.zInput() {
		return some(config.Stand)
	}
	return none()
}

// WalkXMovementCheck starts a walk, restarts it after a turn, or starts a run
// on a double tap.
func WalkXMovementCheck(s ObjectStatus) (config.SequenceID, bool) {
	if !s.xInput() {
		return none()
	}
	if s.runReady() {
		return some(config.Run)
	}
	if s.SequenceID != config.Walk || s.xOpposesFacing() {
		return some(config.Walk)
	}
	return none()
}

// WalkZMovementCheck starts a walk along the depth axis.
func WalkZMovementCheck(s ObjectStatus) (config.SequenceID, bool) {
	if s.zInput() && s.SequenceID != config.Walk {
		return some(config.Walk)
	}
	return none()
}

// RunStopCheck ends a run when x is released or reversed.
func RunStopCheck(s ObjectStatus) (config.SequenceID, bool) {
	if !s.xInput() || s.xOpposesFacing() {
		return some(config.RunStop)
	}
	return none()
}

// DashCheck turns a jump out of a run into a forward dash.
func DashCheck(s ObjectStatus) (config.SequenceID, bool) {
	if s.Input.JumpPressed() {
		return some(config.DashForward)
	}
	return none()
}

func JumpAttackCheck(s ObjectStatus) (config.SequenceID, bool) {
	if s.Input.AttackPressed() {
		return some(config.JumpAttack)
	}
	return none()
}

func DashAttackCheck(s ObjectStatus) (config.SequenceID, bool) {
	if s.Input.AttackPressed() {
		return some(config.DashAttack)
	}
	return none()
}

// StandAttackComboCheck chains into the second attack while attack is held
// at the end of the first.
func StandAttackComboCheck(s ObjectStatus) (config.SequenceID, bool) {
	if !s.ended() {
		return none()
	}
	if s.Input.Current.Attack {
		return some(config.StandAttack1)
	}
	return some(config.Stand)
}

// SwitchSequenceOnLand switches to id once the object touches the ground.
func SwitchSequenceOnLand(id config.SequenceID) Rule {
	return func(s ObjectStatus) (config.SequenceID, bool) {
		if s.Grounding == components.OnGround {
			return some(id)
		}
		return none()
	}
}

// SwitchSequenceOnDescend switches to id as soon as the object moves down,
// whatever the sequence status.
func SwitchSequenceOnDescend(id config.SequenceID) Rule {
	return func(s ObjectStatus) (config.SequenceID, bool) {
		if s.Velocity.Y < 0 {
			return some(id)
		}
		return none()
	}
}

// SwitchSequenceOnEndYVelocity picks up while rising and down otherwise, at
// the end of the sequence.
func SwitchSequenceOnEndYVelocity(up, down config.SequenceID) Rule {
	return func(s ObjectStatus) (config.SequenceID, bool) {
		if !s.ended() {
			return none()
		}
		if s.Velocity.Y > 0 {
			return some(up)
		}
		return some(down)
	}
}

// SwitchSequenceOnEnd switches to id at the end of the sequence.
func SwitchSequenceOnEnd(id config.SequenceID) Rule {
	return func(s ObjectStatus) (config.SequenceID, bool) {
		if s.ended() {
			return some(id)
		}
		return none()
	}
}

// SwitchSequenceOnEndAlive switches to id at the end of the sequence unless
// the object is defeated, which leaves it where it is.
func SwitchSequenceOnEndAlive(id config.SequenceID) Rule {
	return func(s ObjectStatus) (config.SequenceID, bool) {
		if s.ended() && s.Health.Alive() {
			return some(id)
		}
		return none()
	}
}

// SequenceRepeat restarts the current sequence at its end.
func SequenceRepeat(s ObjectStatus) (config.SequenceID, bool) {
	if s.ended() {
		return some(s.SequenceID)
	}
	return none()
}
