package leveldata

import (
	"os"
	"testing"

	"github.com/automoto/brawlsim/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadArena(t *testing.T) {
	arena, err := LoadArena(os.DirFS("testdata"), "dojo.tmx")
	require.NoError(t, err)

	assert.Equal(t, 800.0, arena.Width)
	assert.Equal(t, 320.0, arena.Height)
	assert.Equal(t, 160.0, arena.Depth)
	assert.Equal(t, 0.0, arena.Floor)

	require.Len(t, arena.Spawns, 2)
	assert.Equal(t, SpawnPoint{X: 100, Z: 80, Index: 0, Team: 0}, arena.Spawns[0])
	assert.Equal(t, SpawnPoint{X: 700, Z: 80, Index: 1, Team: 1}, arena.Spawns[1])
}

func TestLoadAllArenas(t *testing.T) {
	arenas, names, err := LoadAllArenas(os.DirFS("."), "testdata")
	require.NoError(t, err)
	assert.Equal(t, []string{"dojo"}, names)
	assert.Contains(t, arenas, "dojo")

	_, _, err = LoadAllArenas(os.DirFS("."), "missing")
	assert.Error(t, err)
}

func TestArenaSpawnFallsBackToCentre(t *testing.T) {
	arena := DefaultArena()
	s := arena.Spawn(3)
	assert.Equal(t, config.Map.Width/2, s.X)
	assert.Equal(t, config.Map.Depth/2, s.Z)
}

func TestArenaContains(t *testing.T) {
	arena := Arena{Width: 100, Height: 50, Depth: 20}
	assert.True(t, arena.Contains(50, 10, 10, 0))
	assert.False(t, arena.Contains(120, 10, 10, 0))
	assert.True(t, arena.Contains(120, 10, 10, 30))
	assert.False(t, arena.Contains(50, -5, 10, 0))
}
