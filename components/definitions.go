package components

import (
	"github.com/automoto/brawlsim/shared/sequencedata"
	"github.com/yohamta/donburi"
)

type DefinitionsData struct {
	Store *sequencedata.Store
}

var Definitions = donburi.NewComponentType[DefinitionsData]()

// MustStore returns the world's sequence definitions. A world without them
// is a wiring bug.
func MustStore(w donburi.World) *sequencedata.Store {
	e, ok := Definitions.First(w)
	if !ok {
		panic("components: world has no sequence definitions")
	}
	return Definitions.Get(e).Store
}
