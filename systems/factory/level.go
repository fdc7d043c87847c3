package factory

import (
	"github.com/automoto/brawlsim/archetypes"
	"github.com/automoto/brawlsim/components"
	"github.com/automoto/brawlsim/shared/leveldata"
	"github.com/automoto/brawlsim/shared/sequencedata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, name string, arena leveldata.Arena) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs.World)
	components.Level.SetValue(level, components.LevelData{Name: name, Arena: arena})
	return level
}

// CreateWorldSingletons adds every singleton the systems expect: the level
// and its hit grid, the sequence definitions, the round state and the per
// tick hit and snapshot buffers.
func CreateWorldSingletons(ecs *ecs.ECS, name string, arena leveldata.Arena, store *sequencedata.Store) {
	CreateLevel(ecs, name, arena)
	CreateSpace(ecs, arena)

	defs := archetypes.Definitions.Spawn(ecs.World)
	components.Definitions.SetValue(defs, components.DefinitionsData{Store: store})

	gp := archetypes.GamePlay.Spawn(ecs.World)
	components.GamePlay.SetValue(gp, components.GamePlayData{
		Status:      components.GamePlayNone,
		WinningTeam: components.NoWinner,
	})

	archetypes.HitQueue.Spawn(ecs.World)

	snap := archetypes.VolumeSnapshot.Spawn(ecs.World)
	components.VolumeSnapshot.SetValue(snap, components.VolumeSnapshotData{
		Frames: make(map[donburi.Entity]components.FrameRef),
	})
}
