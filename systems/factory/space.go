package factory

import (
	"github.com/automoto/brawlsim/archetypes"
	"github.com/automoto/brawlsim/components"
	cfg "github.com/automoto/brawlsim/config"
	"github.com/automoto/brawlsim/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the hit detection grid for arena. The grid covers the
// out of bounds margin on every side so objects about to be removed still
// collide.
func CreateSpace(ecs *ecs.ECS, arena leveldata.Arena) *donburi.Entry {
	margin := cfg.Map.OutOfBoundsMargin
	width := int(arena.Width + 2*margin)
	height := int(arena.Height + 2*margin)
	cell := cfg.Map.CellSize

	space := archetypes.Space.Spawn(ecs.World)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cell, cell),
	})
	return space
}
