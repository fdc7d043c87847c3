package systems

import (
	"github.com/automoto/brawlsim/components"
	"github.com/automoto/brawlsim/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// SequenceChanged is published whenever an object enters a sequence,
// including restarts of the same one.
type SequenceChanged struct {
	Entity donburi.Entity
	Old    config.SequenceID
	New    config.SequenceID
}

// GamePlayEnd is published when a round is decided. WinningTeam is
// components.NoWinner when nobody is left standing.
type GamePlayEnd struct {
	Round       int
	WinningTeam int
}

type TeamAliveCountChanged struct {
	Count int
}

type ObjectDeleted struct {
	Entity donburi.Entity
}

var (
	SequenceChangedEvent       = events.NewEventType[SequenceChanged]()
	HitEvent                   = events.NewEventType[components.HitEvent]()
	GamePlayEndEvent           = events.NewEventType[GamePlayEnd]()
	TeamAliveCountChangedEvent = events.NewEventType[TeamAliveCountChanged]()
	ObjectDeletedEvent         = events.NewEventType[ObjectDeleted]()
)

// DispatchEvents delivers the signals queued during the step to subscribers.
func DispatchEvents(ecs *ecs.ECS) {
	SequenceChangedEvent.ProcessEvents(ecs.World)
	HitEvent.ProcessEvents(ecs.World)
	TeamAliveCountChangedEvent.ProcessEvents(ecs.World)
	GamePlayEndEvent.ProcessEvents(ecs.World)
	ObjectDeletedEvent.ProcessEvents(ecs.World)
}
