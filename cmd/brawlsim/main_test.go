package main

import (
	"os"
	"testing"

	cfg "github.com/automoto/brawlsim/config"
	"github.com/automoto/brawlsim/input/script"
	"github.com/automoto/brawlsim/server/core"
	"github.com/automoto/brawlsim/shared/sequencedata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shippedStore(t *testing.T) *sequencedata.Store {
	t.Helper()
	store, err := sequencedata.LoadFS(os.DirFS("../../data/definitions"), ".")
	require.NoError(t, err)
	return store
}

func TestShippedDefinitionsLoad(t *testing.T) {
	store := shippedStore(t)
	assert.Equal(t, []sequencedata.AssetID{"fighter", "fireball"}, store.Assets())

	kind, ok := store.Kind("fighter")
	require.True(t, ok)
	assert.Equal(t, sequencedata.AssetCharacter, kind)

	lie := store.MustDefinition("fighter", cfg.LieFaceDown)
	assert.Equal(t, sequencedata.EndNone, lie.Next.Kind)

	dash := store.MustDefinition("fighter", cfg.DashAttack)
	limit, bounded := dash.Frames[1].Interactions[0].Hit.HitLimit.Max()
	assert.True(t, bounded)
	assert.EqualValues(t, 2, limit)
}

func TestPickLevelFromData(t *testing.T) {
	level := pickLevel("../../data", "arena")
	assert.Equal(t, "arena", level.Name)
	assert.Len(t, level.Arena.Spawns, 4)

	assert.Equal(t, "default", pickLevel(t.TempDir(), "").Name)
}

func TestScriptedDuelPlaysOut(t *testing.T) {
	sim := core.NewSimulation(shippedStore(t), pickLevel("../../data", "arena"))
	r := &runner{
		sim:    sim,
		driver: script.NewDriver(),
		script: "../../data/scripts/chaser.tengo",
		tuning: cfg.Bot.Tuning(cfg.BotDifficultyHard),
	}
	for i := 0; i < 2; i++ {
		e, err := sim.SpawnFighter("fighter", i)
		require.NoError(t, err)
		r.fighters = append(r.fighters, e)
	}
	require.NoError(t, r.bindScripts())
	sim.AddInputSource(r.driver)
	sim.StartRound()

	core.NewGameLoop(sim, 60, 0).RunFor(600)

	var damaged bool
	for _, f := range statusOf(sim).Fighters {
		if f.Health < cfg.Fighter.Health {
			damaged = true
		}
	}
	assert.True(t, damaged, "scripted fighters should trade hits within ten seconds")
}
