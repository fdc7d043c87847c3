package script

import (
	"os"
	"testing"

	"github.com/automoto/brawlsim/components"
	cfg "github.com/automoto/brawlsim/config"
	"github.com/automoto/brawlsim/internal/simtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControllerReturnsControlState(t *testing.T) {
	c, err := Compile("fixed", []byte(`
update := func(view, state) {
	return {x: 2, z: -0.5, attack: true, jump: view.tick == 3}
}
`))
	require.NoError(t, err)

	cs, err := c.Next(View{Tick: 3})
	require.NoError(t, err)
	assert.Equal(t, components.ControlState{XAxis: 1, ZAxis: -0.5, Attack: true, Jump: true}, cs)

	cs, err = c.Next(View{Tick: 4})
	require.NoError(t, err)
	assert.False(t, cs.Jump)
}

func TestControllerKeepsState(t *testing.T) {
	src := []byte(`
update := func(view, state) {
	if is_undefined(state.n) { state.n = 0 }
	state.n = state.n + 1
	return {attack: state.n % 2 == 0}
}
`)
	c, err := Compile("counter", src)
	require.NoError(t, err)

	var attacks []bool
	for i := 0; i < 4; i++ {
		cs, err := c.Next(View{})
		require.NoError(t, err)
		attacks = append(attacks, cs.Attack)
	}
	assert.Equal(t, []bool{false, true, false, true}, attacks)

	clone := c.Clone()
	cs, err := clone.Next(View{})
	require.NoError(t, err)
	assert.False(t, cs.Attack, "clone starts with fresh state")
}

func TestControllerErrors(t *testing.T) {
	_, err := Compile("empty", []byte(`x := 1`))
	assert.Error(t, err)

	c, err := Compile("bad result", []byte(`update := func(view, state) { return 7 }`))
	require.NoError(t, err)
	_, err = c.Next(View{})
	assert.Error(t, err)

	c, err = Compile("nothing", []byte(`update := func(view, state) {}`))
	require.NoError(t, err)
	cs, err := c.Next(View{})
	require.NoError(t, err)
	assert.Equal(t, components.ControlState{}, cs)
}

func TestViewOfFindsNearestOpponent(t *testing.T) {
	e := simtest.NewECS(t)
	a := simtest.SpawnFighter(t, e, 0, 100, 100, false)
	simtest.SpawnFighter(t, e, 0, 110, 100, false)
	far := simtest.SpawnFighter(t, e, 1, 400, 100, true)
	near := simtest.SpawnFighter(t, e, 2, 200, 100, true)

	v := ViewOf(e.World, a.Entity(), 9, cfg.BotDifficultyConfig{})
	require.True(t, v.HasOpponent)
	assert.Equal(t, 200.0, v.Opponent.X)
	assert.Equal(t, 2, v.Opponent.Team)
	assert.Equal(t, "stand", v.Self.Sequence)
	assert.EqualValues(t, 9, v.Tick)
	assert.EqualValues(t, cfg.Fighter.Health, v.Self.MaxHealth)

	components.Health.Get(near).Points = 0
	v = ViewOf(e.World, a.Entity(), 10, cfg.BotDifficultyConfig{})
	assert.Equal(t, 400.0, v.Opponent.X)
	assert.True(t, v.Opponent.Mirrored)

	components.Health.Get(far).Points = 0
	assert.False(t, ViewOf(e.World, a.Entity(), 11, cfg.BotDifficultyConfig{}).HasOpponent)
}

func TestChaserScriptApproaches(t *testing.T) {
	c, err := Load(os.DirFS("../../data/scripts"), "chaser.tengo")
	require.NoError(t, err)

	e := simtest.NewECS(t)
	a := simtest.SpawnFighter(t, e, 0, 100, 100, false)
	b := simtest.SpawnFighter(t, e, 1, 300, 90, false)

	tuning := cfg.Bot.Tuning(cfg.BotDifficultyNormal)
	tuning.ReactionDelay = 0

	d := NewDriver()
	d.Bind(a.Entity(), c, tuning)
	in := d.Inputs(e.World, 0)
	assert.Equal(t, components.ControlState{XAxis: 1, ZAxis: -1}, in[a.Entity()])

	e.World.Remove(b.Entity())
	in = d.Inputs(e.World, 1)
	assert.Equal(t, components.ControlState{}, in[a.Entity()])

	e.World.Remove(a.Entity())
	assert.Empty(t, d.Inputs(e.World, 2))
}

func TestChaserScriptKeepsItsDistance(t *testing.T) {
	c, err := Load(os.DirFS("../../data/scripts"), "chaser.tengo")
	require.NoError(t, err)

	e := simtest.NewECS(t)
	a := simtest.SpawnFighter(t, e, 0, 100, 100, false)
	simtest.SpawnFighter(t, e, 1, 900, 100, true)

	tuning := cfg.BotDifficultyConfig{AttackRange: 28, ChaseRange: 500, RetreatThreshold: 0.5}
	cs, err := c.Next(ViewOf(e.World, a.Entity(), 0, tuning))
	require.NoError(t, err)
	assert.Equal(t, components.ControlState{}, cs, "out of chase range")

	tuning.ChaseRange = 1000
	components.Health.Get(a).Points = 100
	cs, err = c.Next(ViewOf(e.World, a.Entity(), 1, tuning))
	require.NoError(t, err)
	assert.Equal(t, -1.0, cs.XAxis, "retreats when hurt")
}

func TestDriverHoldsDecisionsForReactionDelay(t *testing.T) {
	c, err := Compile("presser", []byte(`
update := func(view, state) {
	return {x: 1, defend: true, attack: true}
}
`))
	require.NoError(t, err)

	e := simtest.NewECS(t)
	a := simtest.SpawnFighter(t, e, 0, 100, 100, false)

	d := NewDriver()
	d.Bind(a.Entity(), c, cfg.BotDifficultyConfig{ReactionDelay: 2})

	decided := components.ControlState{XAxis: 1, Defend: true, Attack: true}
	held := components.ControlState{XAxis: 1, Defend: true}
	var got []components.ControlState
	for tick := uint64(0); tick < 4; tick++ {
		got = append(got, d.Inputs(e.World, tick)[a.Entity()])
	}
	assert.Equal(t, []components.ControlState{decided, held, held, decided}, got)
}
