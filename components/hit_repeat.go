package components

import (
	"github.com/automoto/brawlsim/shared/logicclock"
	"github.com/yohamta/donburi"
)

// HitRepeatTracker remembers one target an attacker has hit.
type HitRepeatTracker struct {
	Entity donburi.Entity
	Clock  logicclock.HitRepeatClock
}

// HitRepeatTrackersData is owned by the attacker and keyed by target.
type HitRepeatTrackersData struct {
	Trackers map[donburi.Entity]*HitRepeatTracker
}

var HitRepeatTrackers = donburi.NewComponentType[HitRepeatTrackersData]()

// Admit decides whether a hit on target goes through. The first hit always
// does; later hits only once the tracker's clock has run out, which restarts
// it with delay.
func (h *HitRepeatTrackersData) Admit(target donburi.Entity, delay int) bool {
	if h.Trackers == nil {
		h.Trackers = make(map[donburi.Entity]*HitRepeatTracker)
	}
	tr, ok := h.Trackers[target]
	if !ok {
		h.Trackers[target] = &HitRepeatTracker{Entity: target, Clock: logicclock.NewHitRepeatClock(delay)}
		return true
	}
	if !tr.Clock.IsComplete() {
		return false
	}
	tr.Clock = logicclock.NewHitRepeatClock(delay)
	return true
}

// Blocks reports whether a hit on target would be refused this tick, counting
// the frame Tick is about to add. It changes nothing.
func (h HitRepeatTrackersData) Blocks(target donburi.Entity) bool {
	tr, ok := h.Trackers[target]
	if !ok {
		return false
	}
	clock := tr.Clock
	clock.Tick()
	return !clock.IsComplete()
}

// Tick advances every tracked clock by one frame.
func (h *HitRepeatTrackersData) Tick() {
	for _, tr := range h.Trackers {
		tr.Clock.Tick()
	}
}

// Prune drops trackers whose target no longer exists.
func (h *HitRepeatTrackersData) Prune(exists func(donburi.Entity) bool) {
	for e := range h.Trackers {
		if !exists(e) {
			delete(h.Trackers, e)
		}
	}
}

func (h *HitRepeatTrackersData) Clear() {
	h.Trackers = nil
}
