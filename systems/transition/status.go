// Package transition decides which sequence a character plays next. Every
// character sequence has a handler built from small rules; the first rule
// that asks for a sequence wins.
package transition

import (
	"math"

	"github.com/automoto/brawlsim/components"
	"github.com/automoto/brawlsim/config"
	"github.com/automoto/brawlsim/shared/gamemath"
	"github.com/automoto/brawlsim/shared/points"
)

// ObjectStatus is everything a rule may look at. Rules never change it.
type ObjectStatus struct {
	Input          components.ControllerInputData
	Health         points.HealthPoints
	SequenceID     config.SequenceID
	SequenceStatus components.SequenceStatus
	Position       gamemath.Vec3
	Velocity       gamemath.Vec3
	Mirrored       bool
	Grounding      components.GroundingKind
	RunCounter     components.RunCounterData
}

func (s ObjectStatus) ended() bool {
	return s.SequenceStatus == components.SequenceEnd
}

func (s ObjectStatus) xInput() bool {
	return math.Abs(s.Input.Current.XAxis) > config.Physics.AxisDeadZone
}

func (s ObjectStatus) zInput() bool {
	return math.Abs(s.Input.Current.ZAxis) > config.Physics.AxisDeadZone
}

// xOpposesFacing is true when x input points away from where the object faces.
func (s ObjectStatus) xOpposesFacing() bool {
	x := s.Input.Current.XAxis
	if s.Mirrored {
		return x > config.Physics.AxisDeadZone
	}
	return x < -config.Physics.AxisDeadZone
}

// runReady is a second tap in the facing direction inside the tap window.
func (s ObjectStatus) runReady() bool {
	return s.RunCounter.Kind == components.RunDecrease && s.xInput() && !s.xOpposesFacing()
}
