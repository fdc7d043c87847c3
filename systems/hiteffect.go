package systems

import (
	"github.com/automoto/brawlsim/components"
	"github.com/automoto/brawlsim/config"
	"github.com/automoto/brawlsim/shared/gamemath"
	"github.com/automoto/brawlsim/shared/points"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHitEffects applies every admitted hit in queue order and puts the
// target into the reaction its stun and health call for.
func UpdateHitEffects(ecs *ecs.ECS) {
	w := ecs.World
	queue := mustHitQueue(w)
	for _, ev := range queue.Events {
		if !w.Valid(ev.From) || !w.Valid(ev.To) {
			continue
		}
		target := w.Entry(ev.To)
		if target.HasComponent(components.Health) && !components.Health.Get(target).Points.Alive() {
			continue
		}
		applyHit(w, w.Entry(ev.From), target, ev)
		HitEvent.Publish(w, ev)
	}
	queue.Events = queue.Events[:0]
}

func applyHit(w donburi.World, attacker, target *donburi.Entry, ev components.HitEvent) {
	hit := ev.Interaction.Hit

	if target.HasComponent(components.Health) {
		damage := hit.HPDamage
		if attacker.HasComponent(components.Charge) {
			damage = gamemath.ChargedDamage(damage, config.Combat.ChargeDamageBonus, components.Charge.Get(attacker).AttackRatio)
		}
		hp := components.Health.Get(target)
		hp.Points = hp.Points.Damage(damage)
	}
	if target.HasComponent(components.Skill) {
		sp := components.Skill.Get(target)
		sp.Points = sp.Points.Drain(hit.SPDamage)
	}
	if target.HasComponent(components.Stun) {
		stun := components.Stun.Get(target)
		stun.Points = stun.Points.Accumulate(hit.Stun)
	}
	if target.HasComponent(components.Velocity) {
		knockback := hit.Acceleration
		knockback.X *= mirroredFacing(attacker)
		components.Velocity.SetValue(target, knockback)
		if knockback.Y > 0 && target.HasComponent(components.Grounding) {
			components.Grounding.Get(target).Kind = components.Airborne
		}
	}
	if attacker.HasComponent(components.HitTally) {
		components.HitTally.Get(attacker).Increment(ev.Key, ev.To)
	}

	if !target.HasComponent(components.Health) || !target.HasComponent(components.Stun) {
		return
	}
	current := components.Sequence.Get(target).ID
	next := StunLadder(components.Health.Get(target).Points, components.Stun.Get(target).Points, current)
	enterSequence(w, target, next)
}

func mirroredFacing(e *donburi.Entry) float64 {
	if e.HasComponent(components.Mirrored) {
		return components.Mirrored.Get(e).Facing()
	}
	return config.DirectionRight
}

// StunLadder picks the hit reaction for a target left with hp and stun.
// Light stun alternates between the two flinches so repeated hits read.
func StunLadder(hp points.HealthPoints, stun points.StunPoints, current config.SequenceID) config.SequenceID {
	c := config.Combat
	switch {
	case !hp.Alive():
		return config.FallForwardAscend
	case stun < points.StunPoints(c.StunLow):
		if current == config.Flinch0 {
			return config.Flinch1
		}
		return config.Flinch0
	case stun < points.StunPoints(c.StunMid):
		return config.Flinch1
	case stun < points.StunPoints(c.StunHigh):
		return config.Dazed
	}
	return config.FallForwardAscend
}
