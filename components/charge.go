package components

import (
	"github.com/automoto/brawlsim/config"
	"github.com/automoto/brawlsim/shared/logicclock"
	"github.com/automoto/brawlsim/shared/points"
	"github.com/yohamta/donburi"
)

type ChargeStatus int

const (
	ChargeIdle ChargeStatus = iota
	ChargeBeginDelay
	Charging
	ChargeRetaining
)

// ChargeData tracks charge built by holding attack. AttackRatio is the
// charge spent on the attack currently playing.
type ChargeData struct {
	Points      points.ChargePoints
	Limit       points.ChargePoints
	Status      ChargeStatus
	BeginDelay  logicclock.ChargeBeginDelayClock
	Delay       logicclock.ChargeDelayClock
	Tracker     logicclock.ChargeTrackerClock
	AttackRatio float64
}

var Charge = donburi.NewComponentType[ChargeData]()

func NewChargeData() ChargeData {
	return ChargeData{
		Limit:      points.ChargePoints(config.Combat.ChargeLimit),
		BeginDelay: logicclock.NewChargeBeginDelayClock(config.Combat.ChargeBeginDelay),
		Delay:      logicclock.NewChargeDelayClock(config.Combat.ChargeDelay),
		Tracker:    logicclock.NewChargeTrackerClock(config.Combat.ChargeDecayDelay),
	}
}

// Ratio is the charge as a fraction of its limit.
func (c ChargeData) Ratio() float64 {
	if c.Limit == 0 {
		return 0
	}
	return float64(c.Points) / float64(c.Limit)
}
