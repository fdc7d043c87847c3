package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/brawlsim/config"
	"github.com/lafriks/go-tiled"
)

// LoadArena parses a TMX map into an Arena. The map's pixel size gives the
// width and headroom, the "depth" and "floor" map properties give the lane
// depth and floor height, and objects in the "Spawn" group become spawn
// points with their map y read as depth.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
		Depth:  config.Map.Depth,
	}
	if depth := levelMap.Properties.GetInt("depth"); depth > 0 {
		arena.Depth = float64(depth)
	}
	arena.Floor = float64(levelMap.Properties.GetInt("floor"))

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "Spawn" {
			continue
		}
		for _, o := range og.Objects {
			arena.Spawns = append(arena.Spawns, SpawnPoint{
				X:     o.X,
				Z:     o.Y,
				Index: o.Properties.GetInt("spawnIndex"),
				Team:  o.Properties.GetInt("team"),
			})
		}
	}

	sort.Slice(arena.Spawns, func(i, j int) bool {
		return arena.Spawns[i].Index < arena.Spawns[j].Index
	})

	for _, s := range arena.Spawns {
		if !arena.Contains(s.X, arena.Floor, s.Z, 0) {
			return nil, fmt.Errorf("TMX %s: spawn %d at (%.0f, %.0f) is outside the arena", tmxPath, s.Index, s.X, s.Z)
		}
	}
	return arena, nil
}

// LoadAllArenas loads every .tmx file in dir, keyed by stem name, and returns
// the sorted names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		arena, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		arenas[stem] = arena
		names = append(names, stem)
	}

	sort.Strings(names)
	return arenas, names, nil
}
