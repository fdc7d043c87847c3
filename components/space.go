package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData is the broad phase grid for hit detection. Objects holds what was
// added this tick so it can be cleared before the next one.
type SpaceData struct {
	Space   *resolv.Space
	Objects []*resolv.Object
}

var Space = donburi.NewComponentType[SpaceData]()
