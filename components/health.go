package components

import (
	"github.com/automoto/brawlsim/shared/points"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	Points points.HealthPoints
	Max    points.HealthPoints
}

type SkillData struct {
	Points points.SkillPoints
	Max    points.SkillPoints
}

// StunData accumulates without decay; hit reactions escalate with it.
type StunData struct {
	Points points.StunPoints
}

var Health = donburi.NewComponentType[HealthData]()
var Skill = donburi.NewComponentType[SkillData]()
var Stun = donburi.NewComponentType[StunData]()
