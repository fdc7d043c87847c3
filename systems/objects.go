package systems

import (
	"log"

	"github.com/automoto/brawlsim/components"
	cfg "github.com/automoto/brawlsim/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOutOfBounds removes objects that stay outside the arena, margin
// included, for longer than their delete delay. Coming back resets the clock.
func UpdateOutOfBounds(ecs *ecs.ECS) {
	w := ecs.World
	arena := mustLevel(w).Arena

	var gone []*donburi.Entry
	components.OutOfBounds.Each(w, func(e *donburi.Entry) {
		oob := components.OutOfBounds.Get(e)
		pos := components.Position.Get(e)
		if arena.Contains(pos.X, pos.Y, pos.Z, cfg.Map.OutOfBoundsMargin) {
			oob.Clock.Reset()
			return
		}
		oob.Clock.Tick()
		if oob.Clock.IsComplete() {
			gone = append(gone, e)
		}
	})

	for _, e := range gone {
		log.Printf("[objects] removing entity %d outside the arena", e.Entity().Id())
		deleteObject(w, e)
	}
}
