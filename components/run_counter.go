package components

import "github.com/yohamta/donburi"

type RunCounterKind int

const (
	RunUnused RunCounterKind = iota
	// RunIncrease counts how long x has been held since it was first pressed.
	RunIncrease
	// RunDecrease counts down the window for a second tap after release.
	RunDecrease
	// RunExceeded means the tap took too long or a run already started.
	RunExceeded
)

type RunCounterData struct {
	Kind  RunCounterKind
	Ticks int
}

var RunCounter = donburi.NewComponentType[RunCounterData]()
