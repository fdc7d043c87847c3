package systems

import (
	"github.com/automoto/brawlsim/components"
	"github.com/yohamta/donburi"
)

// The singletons below are created by factory.CreateWorldSingletons. A world
// missing one is a wiring bug, so these panic.

func mustLevel(w donburi.World) *components.LevelData {
	e, ok := components.Level.First(w)
	if !ok {
		panic("systems: world has no level")
	}
	return components.Level.Get(e)
}

func mustHitQueue(w donburi.World) *components.HitQueueData {
	e, ok := components.HitQueue.First(w)
	if !ok {
		panic("systems: world has no hit queue")
	}
	return components.HitQueue.Get(e)
}

func mustSnapshot(w donburi.World) *components.VolumeSnapshotData {
	e, ok := components.VolumeSnapshot.First(w)
	if !ok {
		panic("systems: world has no volume snapshot")
	}
	return components.VolumeSnapshot.Get(e)
}

func mustSpace(w donburi.World) *components.SpaceData {
	e, ok := components.Space.First(w)
	if !ok {
		panic("systems: world has no space")
	}
	return components.Space.Get(e)
}

// GamePlayState returns the round state singleton.
func GamePlayState(w donburi.World) *components.GamePlayData {
	e, ok := components.GamePlay.First(w)
	if !ok {
		panic("systems: world has no game play state")
	}
	return components.GamePlay.Get(e)
}

// Floor returns the arena floor height of the world's level.
func Floor(w donburi.World) float64 {
	return mustLevel(w).Arena.Floor
}
