package components

import (
	"github.com/automoto/brawlsim/shared/gamemath"
	"github.com/yohamta/donburi"
)

type GroundingKind int

const (
	OnGround GroundingKind = iota
	Airborne
	Underground
)

func (g GroundingKind) String() string {
	switch g {
	case OnGround:
		return "on_ground"
	case Airborne:
		return "airborne"
	case Underground:
		return "underground"
	}
	return "unknown"
}

type GroundingData struct {
	Kind GroundingKind
}

type MirroredData struct {
	Mirrored bool
}

// Facing is -1 when mirrored and 1 otherwise.
func (m MirroredData) Facing() float64 {
	return gamemath.Facing(m.Mirrored)
}

var Position = donburi.NewComponentType[gamemath.Vec3]()
var Velocity = donburi.NewComponentType[gamemath.Vec3]()
var Grounding = donburi.NewComponentType[GroundingData]()
var Mirrored = donburi.NewComponentType[MirroredData]()
