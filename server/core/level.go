package core

import (
	"fmt"
	"log"
	"os"

	"github.com/automoto/brawlsim/shared/leveldata"
)

// Level is a named arena a simulation can run on.
type Level struct {
	Name  string
	Arena leveldata.Arena
}

// DefaultLevel is the empty arena sized from config, used when no map is given.
func DefaultLevel() Level {
	return Level{Name: "default", Arena: leveldata.DefaultArena()}
}

// LoadAllLevels loads all .tmx arenas from the levels directory of assetsDir,
// returning them keyed by stem name plus a sorted name list.
func LoadAllLevels(assetsDir string) (map[string]Level, []string, error) {
	arenas, names, err := leveldata.LoadAllArenas(os.DirFS(assetsDir), "levels")
	if err != nil {
		return nil, nil, fmt.Errorf("load all levels: %w", err)
	}

	levels := make(map[string]Level, len(names))
	for _, name := range names {
		a := arenas[name]
		levels[name] = Level{Name: name, Arena: *a}
		log.Printf("[level] loaded %s: %.0fx%.0fx%.0f, %d spawn points",
			name, a.Width, a.Height, a.Depth, len(a.Spawns))
	}
	return levels, names, nil
}
