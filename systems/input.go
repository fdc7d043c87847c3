package systems

import (
	"github.com/automoto/brawlsim/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInputLatch keeps this frame's controller sample as the previous one,
// so edges are seen once.
func UpdateInputLatch(ecs *ecs.ECS) {
	components.ControllerInput.Each(ecs.World, func(e *donburi.Entry) {
		in := components.ControllerInput.Get(e)
		in.Previous = in.Current
	})
}
