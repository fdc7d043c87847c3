package systems

import (
	"math"

	"github.com/automoto/brawlsim/components"
	cfg "github.com/automoto/brawlsim/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRunCounter tracks x taps for double-tap runs. It runs after the
// transitions so they see the counter from before this frame's input.
func UpdateRunCounter(ecs *ecs.ECS) {
	components.RunCounter.Each(ecs.World, func(e *donburi.Entry) {
		rc := components.RunCounter.Get(e)
		x := components.ControllerInput.Get(e).Current.XAxis
		*rc = NextRunCounter(*rc, math.Abs(x) > cfg.Physics.AxisDeadZone)
	})
}

// NextRunCounter advances the counter by one frame. A press counts up while
// held; releasing inside the window opens a second window for the next tap.
func NextRunCounter(rc components.RunCounterData, xHeld bool) components.RunCounterData {
	window := cfg.Physics.RunTapWindow
	if !xHeld {
		switch rc.Kind {
		case components.RunIncrease:
			return components.RunCounterData{Kind: components.RunDecrease, Ticks: window}
		case components.RunDecrease:
			if rc.Ticks > 1 {
				return components.RunCounterData{Kind: components.RunDecrease, Ticks: rc.Ticks - 1}
			}
		}
		return components.RunCounterData{Kind: components.RunUnused}
	}

	switch rc.Kind {
	case components.RunUnused:
		return components.RunCounterData{Kind: components.RunIncrease}
	case components.RunIncrease:
		if rc.Ticks+1 > window {
			return components.RunCounterData{Kind: components.RunExceeded}
		}
		return components.RunCounterData{Kind: components.RunIncrease, Ticks: rc.Ticks + 1}
	}
	return components.RunCounterData{Kind: components.RunExceeded}
}
