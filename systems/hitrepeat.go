package systems

import (
	"github.com/automoto/brawlsim/components"
	"github.com/automoto/brawlsim/metrics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHitRepeat ages every attacker's trackers, forgets targets that are
// gone, then drops queued hits that land inside a repeat delay.
func UpdateHitRepeat(ecs *ecs.ECS) {
	w := ecs.World
	exists := func(e donburi.Entity) bool { return w.Valid(e) }

	components.HitRepeatTrackers.Each(w, func(e *donburi.Entry) {
		trackers := components.HitRepeatTrackers.Get(e)
		trackers.Tick()
		trackers.Prune(exists)
	})

	queue := mustHitQueue(w)
	kept := queue.Events[:0]
	for _, ev := range queue.Events {
		if admitHit(w, ev) {
			metrics.Hits.WithLabelValues(metrics.HitAdmitted).Inc()
			kept = append(kept, ev)
			continue
		}
		metrics.Hits.WithLabelValues(metrics.HitSuppressed).Inc()
	}
	queue.Events = kept
}

func admitHit(w donburi.World, ev components.HitEvent) bool {
	if !w.Valid(ev.From) || !w.Valid(ev.To) {
		return false
	}
	attacker := w.Entry(ev.From)
	if !attacker.HasComponent(components.HitRepeatTrackers) {
		return true
	}
	return components.HitRepeatTrackers.Get(attacker).Admit(ev.To, ev.Interaction.Hit.RepeatDelay)
}
