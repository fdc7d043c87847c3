package gamemath

import "math"

// ChargedDamage returns base damage raised by the attacker's charge. A full
// charge (ratio 1) adds maxBonus times the base damage.
func ChargedDamage(base uint32, maxBonus, chargeRatio float64) uint32 {
	ratio := Clamp(chargeRatio, 0, 1)
	total := float64(base) * (1 + maxBonus*ratio)
	if total >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(total)
}
