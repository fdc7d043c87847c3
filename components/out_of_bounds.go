package components

import (
	"github.com/automoto/brawlsim/shared/logicclock"
	"github.com/yohamta/donburi"
)

type OutOfBoundsData struct {
	Clock logicclock.OutOfBoundsDeleteClock
}

var OutOfBounds = donburi.NewComponentType[OutOfBoundsData]()
