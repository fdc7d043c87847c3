package main

import (
	"encoding/json"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	cfg "github.com/automoto/brawlsim/config"
	"github.com/automoto/brawlsim/input/script"
	"github.com/automoto/brawlsim/server/core"
	"github.com/automoto/brawlsim/shared/sequencedata"
	"github.com/automoto/brawlsim/systems"
	"github.com/yohamta/donburi"
)

type runner struct {
	sim      *core.Simulation
	driver   *script.Driver
	defsDir  string
	script   string
	tuning   cfg.BotDifficultyConfig
	fighters []donburi.Entity
}

func main() {
	defsDir := flag.String("defs", "data/definitions", "Directory of sequence definition files")
	dataDir := flag.String("data", "data", "Directory holding levels/*.tmx")
	levelName := flag.String("level", "", "Level to run (empty = first level found)")
	asset := flag.String("fighter", "fighter", "Character asset every fighter uses")
	count := flag.Int("fighters", 2, "Fighters to spawn, one per spawn point")
	scriptPath := flag.String("script", "data/scripts/chaser.tengo", "Script driving every fighter (empty = idle)")
	botLevel := flag.String("bot", cfg.Bot.Default.String(), "Scripted fighter difficulty: easy, normal or hard")
	tickRate := flag.Int("tickrate", cfg.Sim.TickRate, "Simulation tick rate (steps per second)")
	restart := flag.Int("restart", cfg.Sim.RoundRestartWait, "Ticks between a round ending and the next (0 = never)")
	ticks := flag.Int("ticks", 0, "Run this many ticks as fast as possible, print the status and exit")
	addr := flag.String("addr", ":9090", "HTTP listen address for status and metrics (empty = off)")
	watch := flag.Bool("watch", false, "Reload definitions and scripts when their files change")
	record := flag.Bool("record", true, "Save decided rounds")
	flag.Parse()

	difficulty, ok := cfg.ParseBotDifficulty(*botLevel)
	if !ok {
		log.Fatalf("Unknown bot difficulty %q", *botLevel)
	}

	store, err := sequencedata.LoadFS(os.DirFS(*defsDir), ".")
	if err != nil {
		log.Fatalf("Failed to load definitions: %v", err)
	}
	log.Printf("[defs] loaded %d sequences across %d assets from %s", store.Len(), len(store.Assets()), *defsDir)

	level := pickLevel(*dataDir, *levelName)
	sim := core.NewSimulation(store, level)

	r := &runner{
		sim:     sim,
		driver:  script.NewDriver(),
		defsDir: *defsDir,
		script:  *scriptPath,
		tuning:  cfg.Bot.Tuning(difficulty),
	}
	for i := 0; i < *count; i++ {
		e, err := sim.SpawnFighter(sequencedata.AssetID(*asset), i)
		if err != nil {
			log.Fatalf("Failed to spawn fighter: %v", err)
		}
		r.fighters = append(r.fighters, e)
	}
	if r.script != "" {
		if err := r.bindScripts(); err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
		sim.AddInputSource(r.driver)
	}

	if *record {
		if err := systems.InitPersistence(cfg.Sim.AppName); err != nil {
			log.Printf("[persistence] round records disabled: %v", err)
		} else {
			sim.RecordRounds()
		}
	}
	sim.OnRoundEnd(func(ev systems.GamePlayEnd) {
		log.Printf("[sim] round %d over, winning team %d", ev.Round, ev.WinningTeam)
	})

	sim.StartRound()
	loop := core.NewGameLoop(sim, *tickRate, *restart)

	if *ticks > 0 {
		loop.RunFor(*ticks)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(statusOf(sim)); err != nil {
			log.Fatalf("Failed to write status: %v", err)
		}
		return
	}

	if *watch {
		w, err := NewWatcher(r.watchDirs()...)
		if err != nil {
			log.Fatalf("Failed to watch: %v", err)
		}
		defer w.Close()
		go r.reloadOnChange(w)
	}

	if *addr != "" {
		go func() {
			log.Printf("[api] listening on %s", *addr)
			if err := http.ListenAndServe(*addr, NewRouter(sim, true)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("[api] fatal: %v", err)
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down simulation...")
		loop.Stop()
	}()

	log.Printf("Starting brawlsim on %s with %d fighters (tick rate: %d/s)", level.Name, *count, *tickRate)
	loop.Run()
}

// pickLevel returns the named level from dataDir, the first one found when
// name is empty, or the default arena when there are none.
func pickLevel(dataDir, name string) core.Level {
	levels, names, err := core.LoadAllLevels(dataDir)
	if err != nil {
		if name != "" {
			log.Fatalf("Failed to load level %q: %v", name, err)
		}
		log.Printf("[level] %v, using the default arena", err)
		return core.DefaultLevel()
	}
	if name == "" {
		return levels[names[0]]
	}
	level, ok := levels[name]
	if !ok {
		log.Fatalf("Unknown level %q, have %v", name, names)
	}
	return level
}

// bindScripts compiles the script once and gives every fighter its own copy.
func (r *runner) bindScripts() error {
	c, err := script.Load(os.DirFS(filepath.Dir(r.script)), filepath.Base(r.script))
	if err != nil {
		return err
	}
	r.sim.Do(func(donburi.World) {
		for _, f := range r.fighters {
			r.driver.Bind(f, c.Clone(), r.tuning)
		}
	})
	return nil
}

func (r *runner) watchDirs() []string {
	dirs := []string{r.defsDir}
	if r.script != "" && filepath.Dir(r.script) != filepath.Clean(r.defsDir) {
		dirs = append(dirs, filepath.Dir(r.script))
	}
	return dirs
}

// reloadOnChange applies file changes until the watcher closes. A change that
// fails to load leaves the running definitions and scripts in place.
func (r *runner) reloadOnChange(w *Watcher) {
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			if isScriptFile(path) {
				if err := r.bindScripts(); err != nil {
					log.Printf("[watch] keeping old script: %v", err)
					continue
				}
				log.Printf("[watch] reloaded script %s", r.script)
				continue
			}
			store, err := sequencedata.LoadFS(os.DirFS(r.defsDir), ".")
			if err != nil {
				log.Printf("[watch] keeping old definitions: %v", err)
				continue
			}
			if err := r.sim.ReplaceDefinitions(store); err != nil {
				log.Printf("[watch] keeping old definitions: %v", err)
				continue
			}
			log.Printf("[watch] reloaded definitions after change to %s", path)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("[watch] error: %v", err)
		}
	}
}
