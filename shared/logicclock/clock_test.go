package logicclock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickSaturatesAtLimit(t *testing.T) {
	for _, limit := range []int{0, 1, 3, 10} {
		c := New(limit)
		for i := 0; i < limit; i++ {
			require.False(t, c.IsComplete(), "limit %d tick %d", limit, i)
			c.Tick()
		}
		assert.True(t, c.IsComplete())
		c.Tick()
		assert.Equal(t, limit, c.Value)
	}
}

func TestReverseTickSaturatesAtZero(t *testing.T) {
	c := New(4)
	c.Complete()
	for i := 0; i < 4; i++ {
		c.ReverseTick()
	}
	assert.Equal(t, 0, c.Value)
	c.ReverseTick()
	assert.Equal(t, 0, c.Value)
	assert.True(t, c.IsBeginning())
}

func TestStatePredicates(t *testing.T) {
	tests := []struct {
		name      string
		value     int
		limit     int
		beginning bool
		ongoing   bool
		complete  bool
	}{
		{"fresh", 0, 3, true, false, false},
		{"middle", 1, 3, false, true, false},
		{"last step", 2, 3, false, true, false},
		{"done", 3, 3, false, false, true},
		{"zero limit", 0, 0, true, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := LogicClock{Value: tt.value, Limit: tt.limit}
			assert.Equal(t, tt.beginning, c.IsBeginning())
			assert.Equal(t, tt.ongoing, c.IsOngoing())
			assert.Equal(t, tt.complete, c.IsComplete())
		})
	}
}

func TestResetAndComplete(t *testing.T) {
	c := NewHitRepeatClock(5)
	c.Tick()
	c.Tick()
	assert.Equal(t, 3, c.Remaining())
	c.Complete()
	assert.True(t, c.IsComplete())
	c.Reset()
	assert.True(t, c.IsBeginning())
}

func TestNegativeLimitClamps(t *testing.T) {
	c := NewFrameWaitClock(-2)
	assert.Equal(t, 0, c.Limit)
	assert.True(t, c.IsComplete())
}
