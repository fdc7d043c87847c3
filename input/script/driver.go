package script

import (
	"log"

	"github.com/automoto/brawlsim/components"
	cfg "github.com/automoto/brawlsim/config"
	"github.com/yohamta/donburi"
)

type binding struct {
	controller *Controller
	tuning     cfg.BotDifficultyConfig
	held       components.ControlState
	wait       int
}

// Driver feeds script output to the fighters it is bound to.
type Driver struct {
	bindings map[donburi.Entity]*binding
}

func NewDriver() *Driver {
	return &Driver{bindings: make(map[donburi.Entity]*binding)}
}

// Bind makes c control fighter with the given tuning, replacing any earlier
// binding.
func (d *Driver) Bind(fighter donburi.Entity, c *Controller, tuning cfg.BotDifficultyConfig) {
	d.bindings[fighter] = &binding{controller: c, tuning: tuning}
}

// Inputs runs every bound script that is due this tick. Between decisions a
// fighter keeps its last axes and defend but presses nothing. Fighters that
// are gone are unbound; a failing script leaves its fighter idle.
func (d *Driver) Inputs(w donburi.World, tick uint64) map[donburi.Entity]components.ControlState {
	out := make(map[donburi.Entity]components.ControlState, len(d.bindings))
	for fighter, b := range d.bindings {
		if !w.Valid(fighter) {
			delete(d.bindings, fighter)
			continue
		}
		if b.wait > 0 {
			b.wait--
			out[fighter] = b.held
			continue
		}

		cs, err := b.controller.Next(ViewOf(w, fighter, tick, b.tuning))
		if err != nil {
			log.Printf("[script] fighter %d: %v", fighter.Id(), err)
			cs = components.ControlState{}
		}
		b.held = components.ControlState{XAxis: cs.XAxis, ZAxis: cs.ZAxis, Defend: cs.Defend}
		b.wait = b.tuning.ReactionDelay
		out[fighter] = cs
	}
	return out
}
