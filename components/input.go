package components

import "github.com/yohamta/donburi"

type Action int

const (
	ActionDefend Action = iota
	ActionJump
	ActionAttack
	ActionSpecial
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// ControlState is one controller sample. Axes are in [-1, 1].
type ControlState struct {
	XAxis   float64
	ZAxis   float64
	Defend  bool
	Jump    bool
	Attack  bool
	Special bool
}

func (c ControlState) button(a Action) bool {
	switch a {
	case ActionDefend:
		return c.Defend
	case ActionJump:
		return c.Jump
	case ActionAttack:
		return c.Attack
	case ActionSpecial:
		return c.Special
	}
	return false
}

// ControllerInputData stores this frame's and the previous frame's samples.
// Edges are computed on demand by comparing them.
type ControllerInputData struct {
	Current  ControlState
	Previous ControlState
}

var ControllerInput = donburi.NewComponentType[ControllerInputData]()

func (c ControllerInputData) Action(a Action) ActionState {
	now, before := c.Current.button(a), c.Previous.button(a)
	return ActionState{
		Pressed:      now,
		JustPressed:  now && !before,
		JustReleased: !now && before,
	}
}

func (c ControllerInputData) JumpPressed() bool   { return c.Action(ActionJump).JustPressed }
func (c ControllerInputData) AttackPressed() bool { return c.Action(ActionAttack).JustPressed }
func (c ControllerInputData) DefendPressed() bool { return c.Action(ActionDefend).JustPressed }
