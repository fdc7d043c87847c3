package core

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/brawlsim/components"
	cfg "github.com/automoto/brawlsim/config"
	"github.com/automoto/brawlsim/metrics"
	"github.com/automoto/brawlsim/shared/gamemath"
	"github.com/automoto/brawlsim/shared/points"
	"github.com/automoto/brawlsim/shared/sequencedata"
	"github.com/automoto/brawlsim/systems"
	"github.com/automoto/brawlsim/systems/factory"
	"github.com/automoto/brawlsim/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InputSource produces controller input for fighters before each step.
type InputSource interface {
	Inputs(w donburi.World, tick uint64) map[donburi.Entity]components.ControlState
}

// Simulation owns one world and steps it. Step runs the stages in a fixed
// order; every other method may be called from another goroutine.
type Simulation struct {
	ecs   *ecs.ECS
	level Level

	// Controller input written between steps, applied at the next one
	pending map[donburi.Entity]components.ControlState
	// Spawn index each fighter returns to when a round starts
	spawns  map[donburi.Entity]int
	sources []InputSource

	tick uint64
	mu   sync.Mutex
}

// NewSimulation builds a world on level with the given definitions and
// registers the tick stages.
func NewSimulation(store *sequencedata.Store, level Level) *Simulation {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateWorldSingletons(e, level.Name, level.Arena, store)

	s := &Simulation{
		ecs:     e,
		level:   level,
		pending: make(map[donburi.Entity]components.ControlState),
		spawns:  make(map[donburi.Entity]int),
	}
	s.registerSystems()
	return s
}

func (s *Simulation) registerSystems() {
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSequenceStatus))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateVolumeSnapshot))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSequenceTransitions))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateRunCounter))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCharge))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCollisions))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateHitRepeat))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateHitEffects))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateGamePlay))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateOutOfBounds))

	// Always run so signals and input edges stay in step while paused
	s.ecs.AddSystem(systems.DispatchEvents)
	s.ecs.AddSystem(systems.UpdateInputLatch)
}

// SpawnFighter places a character of asset at the level's spawn point with
// the given index, on that spawn's team. Fighters on the right half face left.
func (s *Simulation) SpawnFighter(asset sequencedata.AssetID, spawnIndex int) (donburi.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sp := s.level.Arena.Spawn(spawnIndex)
	e, err := factory.CreateCharacter(s.ecs, factory.CharacterOptions{
		Asset:    asset,
		Team:     sp.Team,
		Position: gamemath.Vec3{X: sp.X, Y: s.level.Arena.Floor, Z: sp.Z},
		Mirrored: sp.X > s.level.Arena.Width/2,
	})
	if err != nil {
		return 0, fmt.Errorf("spawn fighter at %d: %w", spawnIndex, err)
	}
	s.spawns[e.Entity()] = spawnIndex
	log.Printf("[sim] fighter %d (%s) spawned at %d on team %d", e.Entity().Id(), asset, spawnIndex, sp.Team)
	return e.Entity(), nil
}

// SpawnObject adds a non-character object such as a projectile.
func (s *Simulation) SpawnObject(opts factory.ObjectOptions) (donburi.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := factory.CreateObject(s.ecs, opts)
	if err != nil {
		return 0, err
	}
	return e.Entity(), nil
}

// AddInputSource asks src for input before every step. Input set with
// SetInput for the same fighter wins.
func (s *Simulation) AddInputSource(src InputSource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources = append(s.sources, src)
}

// SetInput stores the controller state fighter uses from the next step on.
func (s *Simulation) SetInput(fighter donburi.Entity, in components.ControlState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[fighter] = in
}

// StartRound puts every fighter back on its spawn point in full health and
// starts the next round.
func (s *Simulation) StartRound() {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.ecs.World
	store := components.MustStore(w)
	tags.Character.Each(w, func(e *donburi.Entry) {
		s.resetFighter(store, e)
	})
	components.HitRepeatTrackers.Each(w, func(e *donburi.Entry) {
		components.HitRepeatTrackers.Get(e).Clear()
	})

	gp := systems.GamePlayState(w)
	gp.Round++
	gp.Status = components.GamePlayPlaying
	gp.WinningTeam = components.NoWinner
	log.Printf("[sim] round %d started on %s", gp.Round, s.level.Name)
}

func (s *Simulation) resetFighter(store *sequencedata.Store, e *donburi.Entry) {
	seq := components.Sequence.Get(e)
	seq.Enter(store.MustDefinition(seq.Asset, cfg.Stand))

	if idx, ok := s.spawns[e.Entity()]; ok {
		sp := s.level.Arena.Spawn(idx)
		components.Position.SetValue(e, gamemath.Vec3{X: sp.X, Y: s.level.Arena.Floor, Z: sp.Z})
		components.Mirrored.SetValue(e, components.MirroredData{Mirrored: sp.X > s.level.Arena.Width/2})
	}
	components.Velocity.SetValue(e, gamemath.Vec3{})
	components.Grounding.SetValue(e, components.GroundingData{Kind: components.OnGround})

	hp := components.Health.Get(e)
	hp.Points = hp.Max
	sp := components.Skill.Get(e)
	sp.Points = sp.Max
	components.Stun.SetValue(e, components.StunData{Points: points.StunPoints(0)})
	components.Charge.SetValue(e, components.NewChargeData())
	components.RunCounter.SetValue(e, components.RunCounterData{})
	components.HitTally.Get(e).Reset()
}

// SetPaused pauses or resumes the running round.
func (s *Simulation) SetPaused(paused bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return systems.SetPaused(s.ecs, paused)
}

// Step advances the world by one tick.
func (s *Simulation) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	w := s.ecs.World
	for _, src := range s.sources {
		for fighter, in := range src.Inputs(w, s.tick) {
			s.applyInput(fighter, in)
		}
	}
	for fighter, in := range s.pending {
		s.applyInput(fighter, in)
	}
	clear(s.pending)

	s.ecs.Update()
	s.tick++

	metrics.Ticks.Inc()
	metrics.TickDuration.Observe(time.Since(start).Seconds())
}

func (s *Simulation) applyInput(fighter donburi.Entity, in components.ControlState) {
	w := s.ecs.World
	if w.Valid(fighter) {
		components.ControllerInput.Get(w.Entry(fighter)).Current = in
	}
}

// Do runs fn with the world while no step is in progress.
func (s *Simulation) Do(fn func(w donburi.World)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ecs.World)
}

// World returns the ECS world. Use Do when a loop may be stepping it.
func (s *Simulation) World() donburi.World {
	return s.ecs.World
}

// Tick returns the number of steps run so far.
func (s *Simulation) Tick() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tick
}

// GamePlay returns a copy of the round state.
func (s *Simulation) GamePlay() components.GamePlayData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *systems.GamePlayState(s.ecs.World)
}

// Level returns the level the simulation runs on.
func (s *Simulation) Level() Level {
	return s.level
}

// OnRoundEnd calls fn for every decided round, during the step that decides it.
func (s *Simulation) OnRoundEnd(fn func(systems.GamePlayEnd)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	systems.GamePlayEndEvent.Subscribe(s.ecs.World, func(w donburi.World, ev systems.GamePlayEnd) {
		fn(ev)
	})
}

// RecordRounds persists every decided round through gdata.
func (s *Simulation) RecordRounds() {
	s.mu.Lock()
	defer s.mu.Unlock()
	systems.RecordRounds(s.ecs.World)
}

// ReplaceDefinitions swaps in a reloaded store. Every running sequence is
// carried over by name; when one no longer exists the old store stays and an
// error is returned.
func (s *Simulation) ReplaceDefinitions(store *sequencedata.Store) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.ecs.World
	old := components.MustStore(w)

	type remap struct {
		entry *donburi.Entry
		def   *sequencedata.Definition
	}
	var moves []remap
	var err error
	components.Sequence.Each(w, func(e *donburi.Entry) {
		if err != nil {
			return
		}
		seq := components.Sequence.Get(e)
		name := old.Name(seq.ID)
		id, ok := store.SequenceID(seq.Asset, name)
		if !ok {
			err = fmt.Errorf("replace definitions: asset %q sequence %q: %w", seq.Asset, name, sequencedata.ErrUnknownSequence)
			return
		}
		def, _ := store.Definition(seq.Asset, id)
		moves = append(moves, remap{entry: e, def: def})
	})
	if err != nil {
		return err
	}

	for _, m := range moves {
		seq := components.Sequence.Get(m.entry)
		seq.ID = m.def.ID
		if last := len(m.def.Frames) - 1; seq.FrameIndex > last {
			seq.FrameIndex = last
		}
	}
	components.HitRepeatTrackers.Each(w, func(e *donburi.Entry) {
		components.HitRepeatTrackers.Get(e).Clear()
	})
	e, _ := components.Definitions.First(w)
	components.Definitions.Get(e).Store = store
	log.Printf("[sim] definitions replaced: %d sequences across %d assets", store.Len(), len(store.Assets()))
	return nil
}
