package systems

import (
	"github.com/automoto/brawlsim/components"
	cfg "github.com/automoto/brawlsim/config"
	"github.com/automoto/brawlsim/shared/points"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCharge builds charge while attack is held in a sequence that allows
// it, lets it decay once released, and spends it when an attack starts.
func UpdateCharge(ecs *ecs.ECS) {
	components.Charge.Each(ecs.World, func(e *donburi.Entry) {
		charge := components.Charge.Get(e)
		seq := components.Sequence.Get(e)
		held := components.ControllerInput.Get(e).Current.Attack

		if seq.Status == components.SequenceBegin && isAttack(seq.ID) {
			spendCharge(charge)
			return
		}
		if held && canCharge(seq.ID) {
			buildCharge(charge)
			return
		}
		releaseCharge(charge)
	})
}

func isAttack(id cfg.SequenceID) bool {
	switch id {
	case cfg.StandAttack0, cfg.StandAttack1, cfg.JumpAttack, cfg.DashAttack:
		return true
	}
	return false
}

func canCharge(id cfg.SequenceID) bool {
	return id == cfg.Stand || id == cfg.Walk
}

func spendCharge(c *components.ChargeData) {
	c.AttackRatio = c.Ratio()
	c.Points = 0
	c.Status = components.ChargeIdle
}

func buildCharge(c *components.ChargeData) {
	switch c.Status {
	case components.ChargeIdle, components.ChargeRetaining:
		c.Status = components.ChargeBeginDelay
		c.BeginDelay.Reset()
	case components.ChargeBeginDelay:
		c.BeginDelay.Tick()
		if c.BeginDelay.IsComplete() {
			c.Status = components.Charging
			c.Delay.Reset()
		}
	case components.Charging:
		c.Delay.Tick()
		if c.Delay.IsComplete() {
			c.Points = points.ClampAdd(c.Points, 1, c.Limit)
			c.Delay.Reset()
		}
	}
}

func releaseCharge(c *components.ChargeData) {
	switch c.Status {
	case components.ChargeBeginDelay, components.Charging:
		if c.Points == 0 {
			c.Status = components.ChargeIdle
			return
		}
		c.Status = components.ChargeRetaining
		c.Tracker.Reset()
	case components.ChargeRetaining:
		c.Tracker.Tick()
		if c.Tracker.IsComplete() {
			c.Points = points.SaturatingSub(c.Points, 1)
			c.Tracker.Reset()
		}
		if c.Points == 0 {
			c.Status = components.ChargeIdle
		}
	}
}
