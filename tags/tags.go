package tags

import "github.com/yohamta/donburi"

var (
	Character = donburi.NewTag().SetName("Character")
	Object    = donburi.NewTag().SetName("Object")
)

// Resolv tags for hit detection
const (
	ResolvHurt = "hurt"
	ResolvHit  = "hit"
)
