package components

import "github.com/yohamta/donburi"

type TeamData struct {
	ID int
}

var Team = donburi.NewComponentType[TeamData]()
