// Package leveldata parses arena maps. It is pure data with no donburi or
// resolv dependencies.
package leveldata

import "github.com/automoto/brawlsim/config"

// Arena is the fighting area. X runs along [0, Width], Z along [0, Depth] and
// the floor sits at Y == Floor with Height of headroom above it.
type Arena struct {
	Width  float64
	Height float64
	Depth  float64
	Floor  float64
	Spawns []SpawnPoint
}

// SpawnPoint is a fighter start location on the floor plane.
type SpawnPoint struct {
	X, Z  float64
	Index int
	Team  int
}

// DefaultArena returns an empty arena sized from config.Map.
func DefaultArena() Arena {
	return Arena{
		Width:  config.Map.Width,
		Height: config.Map.Height,
		Depth:  config.Map.Depth,
	}
}

// Contains reports whether (x, y, z) lies within the arena grown by margin on
// every side.
func (a Arena) Contains(x, y, z, margin float64) bool {
	return x >= -margin && x <= a.Width+margin &&
		y >= a.Floor-margin && y <= a.Floor+a.Height+margin &&
		z >= -margin && z <= a.Depth+margin
}

// Spawn returns the spawn point with the given index, falling back to the
// arena centre.
func (a Arena) Spawn(index int) SpawnPoint {
	for _, s := range a.Spawns {
		if s.Index == index {
			return s
		}
	}
	return SpawnPoint{X: a.Width / 2, Z: a.Depth / 2, Index: index}
}
