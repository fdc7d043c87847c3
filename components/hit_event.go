package components

import (
	"github.com/automoto/brawlsim/shared/sequencedata"
	"github.com/yohamta/donburi"
)

// HitEvent is one hit volume of From touching a body volume of To.
type HitEvent struct {
	From        donburi.Entity
	To          donburi.Entity
	Key         InteractionKey
	Interaction sequencedata.Interaction
	Body        sequencedata.Volume
}

// HitQueueData holds the hit events of the current tick. It is a singleton,
// filled by collision, filtered by hit repeat and drained by the hit effect.
type HitQueueData struct {
	Events []HitEvent
}

var HitQueue = donburi.NewComponentType[HitQueueData]()
