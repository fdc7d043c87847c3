// Package points holds the saturating point types carried by fighters.
package points

import "math"

type HealthPoints uint32
type SkillPoints uint32
type StunPoints uint32
type ChargePoints uint32

// Unsigned covers every point type in this package.
type Unsigned interface {
	~uint32
}

// SaturatingSub returns current - amount, stopping at 0.
func SaturatingSub[T Unsigned](current, amount T) T {
	if current < amount {
		return 0
	}
	return current - amount
}

// SaturatingAdd returns current + amount, stopping at the numeric maximum.
func SaturatingAdd[T Unsigned](current, amount T) T {
	if amount > T(math.MaxUint32)-current {
		return T(math.MaxUint32)
	}
	return current + amount
}

// ClampAdd adds amount to current without exceeding limit.
func ClampAdd[T Unsigned](current, amount, limit T) T {
	sum := SaturatingAdd(current, amount)
	if sum > limit {
		return limit
	}
	return sum
}

// Damage lowers hp by dmg without underflow.
func (hp HealthPoints) Damage(dmg uint32) HealthPoints {
	return SaturatingSub(hp, HealthPoints(dmg))
}

func (hp HealthPoints) Alive() bool { return hp > 0 }

// Drain lowers sp by cost without underflow.
func (sp SkillPoints) Drain(cost uint32) SkillPoints {
	return SaturatingSub(sp, SkillPoints(cost))
}

// Accumulate adds stun, saturating at the numeric maximum.
func (s StunPoints) Accumulate(stun StunPoints) StunPoints {
	return SaturatingAdd(s, stun)
}
