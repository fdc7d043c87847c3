package components

import "github.com/yohamta/donburi"

// InteractionKey names an interaction within the current sequence.
type InteractionKey struct {
	Frame int
	Index int
}

// HitTallyData records the distinct targets hit per interaction since the
// attacker entered its current sequence.
type HitTallyData struct {
	Targets map[InteractionKey]map[donburi.Entity]struct{}
}

var HitTally = donburi.NewComponentType[HitTallyData]()

// Count is the number of distinct targets key has hit.
func (h HitTallyData) Count(key InteractionKey) uint32 {
	return uint32(len(h.Targets[key]))
}

func (h HitTallyData) Has(key InteractionKey, target donburi.Entity) bool {
	_, ok := h.Targets[key][target]
	return ok
}

// Increment adds target to key's tally. Repeat hits on a target leave the
// count unchanged.
func (h *HitTallyData) Increment(key InteractionKey, target donburi.Entity) {
	if h.Targets == nil {
		h.Targets = make(map[InteractionKey]map[donburi.Entity]struct{})
	}
	set, ok := h.Targets[key]
	if !ok {
		set = make(map[donburi.Entity]struct{})
		h.Targets[key] = set
	}
	set[target] = struct{}{}
}

func (h *HitTallyData) Reset() {
	h.Targets = nil
}
