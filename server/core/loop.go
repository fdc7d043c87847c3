package core

import (
	"log"
	"time"

	"github.com/automoto/brawlsim/components"
)

type GameLoop struct {
	sim      *Simulation
	tickRate int
	// Ticks to wait after a round ends before starting the next, 0 to never restart
	restartWait int
	running     bool
	stopChan    chan struct{}
	doneChan    chan struct{}

	endedAt uint64
}

func NewGameLoop(sim *Simulation, tickRate, restartWait int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 1
	}
	return &GameLoop{
		sim:         sim,
		tickRate:    tickRate,
		restartWait: restartWait,
		stopChan:    make(chan struct{}),
		doneChan:    make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	g.running = true
	defer close(g.doneChan)
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[loop] started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("[loop] stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

// Stop ends Run and waits for the current tick to finish.
func (g *GameLoop) Stop() {
	close(g.stopChan)
	<-g.doneChan
}

// RunFor steps n ticks back to back, restarting rounds as Run would.
func (g *GameLoop) RunFor(n int) {
	for i := 0; i < n; i++ {
		g.tick()
	}
}

func (g *GameLoop) tick() {
	g.sim.Step()
	g.restartIfDue()
}

// restartIfDue starts a new round once the last one has been over for
// restartWait ticks.
func (g *GameLoop) restartIfDue() {
	if g.restartWait <= 0 {
		return
	}
	gp := g.sim.GamePlay()
	if gp.Status != components.GamePlayEnded {
		g.endedAt = 0
		return
	}
	now := g.sim.Tick()
	if g.endedAt == 0 {
		g.endedAt = now
		return
	}
	if now-g.endedAt >= uint64(g.restartWait) {
		g.endedAt = 0
		g.sim.StartRound()
	}
}
