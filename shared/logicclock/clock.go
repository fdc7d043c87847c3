// Package logicclock provides bounded tick counters used for frame waits,
// hit-repeat delays, charge timing and out-of-bounds deletion.
package logicclock

// LogicClock counts ticks from 0 up to Limit. Value never leaves [0, Limit].
type LogicClock struct {
	Value int
	Limit int
}

// New returns a clock at value 0 with the given limit. Negative limits are
// treated as 0.
func New(limit int) LogicClock {
	if limit < 0 {
		limit = 0
	}
	return LogicClock{Limit: limit}
}

// Tick advances the clock by one, saturating at Limit.
func (c *LogicClock) Tick() {
	if c.Value < c.Limit {
		c.Value++
	}
}

// ReverseTick moves the clock back by one, saturating at 0.
func (c *LogicClock) ReverseTick() {
	if c.Value > 0 {
		c.Value--
	}
}

func (c *LogicClock) Reset() {
	c.Value = 0
}

// Complete jumps straight to Limit.
func (c *LogicClock) Complete() {
	c.Value = c.Limit
}

func (c LogicClock) IsBeginning() bool {
	return c.Value == 0
}

func (c LogicClock) IsOngoing() bool {
	return c.Value > 0 && c.Value < c.Limit
}

func (c LogicClock) IsComplete() bool {
	return c.Value == c.Limit
}

// Remaining reports how many ticks are left until completion.
func (c LogicClock) Remaining() int {
	return c.Limit - c.Value
}

// FrameWaitClock counts the ticks a sequence frame is displayed for.
type FrameWaitClock struct{ LogicClock }

func NewFrameWaitClock(wait int) FrameWaitClock { return FrameWaitClock{New(wait)} }

// HitRepeatClock suppresses repeated hits between one attacker and target.
type HitRepeatClock struct{ LogicClock }

func NewHitRepeatClock(delay int) HitRepeatClock { return HitRepeatClock{New(delay)} }

// ChargeDelayClock paces how fast charge points accumulate.
type ChargeDelayClock struct{ LogicClock }

func NewChargeDelayClock(delay int) ChargeDelayClock { return ChargeDelayClock{New(delay)} }

// ChargeTrackerClock paces how fast retained charge decays.
type ChargeTrackerClock struct{ LogicClock }

func NewChargeTrackerClock(delay int) ChargeTrackerClock { return ChargeTrackerClock{New(delay)} }

// ChargeBeginDelayClock is the hold time before charging starts.
type ChargeBeginDelayClock struct{ LogicClock }

func NewChargeBeginDelayClock(delay int) ChargeBeginDelayClock {
	return ChargeBeginDelayClock{New(delay)}
}

// OutOfBoundsDeleteClock counts consecutive ticks an object spends outside
// the arena.
type OutOfBoundsDeleteClock struct{ LogicClock }

func NewOutOfBoundsDeleteClock(delay int) OutOfBoundsDeleteClock {
	return OutOfBoundsDeleteClock{New(delay)}
}
