package script

import (
	"math"

	"github.com/automoto/brawlsim/components"
	cfg "github.com/automoto/brawlsim/config"
	"github.com/automoto/brawlsim/shared/sequencedata"
	"github.com/automoto/brawlsim/tags"
	"github.com/d5/tengo/v2"
	"github.com/yohamta/donburi"
)

// Fighter is what a script sees of one character.
type Fighter struct {
	X, Y, Z   float64
	Mirrored  bool
	Health    int
	MaxHealth int
	Team      int
	Sequence  string
}

// View is the script's picture of the world for one tick.
type View struct {
	Tick        uint64
	Self        Fighter
	Opponent    Fighter
	HasOpponent bool
	Bot         cfg.BotDifficultyConfig
}

// ViewOf describes the world from self's side, with the nearest living
// fighter of another team as the opponent.
func ViewOf(w donburi.World, self donburi.Entity, tick uint64, bot cfg.BotDifficultyConfig) View {
	v := View{Tick: tick, Bot: bot}
	if !w.Valid(self) {
		return v
	}
	store := components.MustStore(w)
	me := w.Entry(self)
	v.Self = fighterOf(store, me)

	best := math.Inf(1)
	tags.Character.Each(w, func(e *donburi.Entry) {
		if e.Entity() == self || !components.Health.Get(e).Points.Alive() {
			return
		}
		if components.Team.Get(e).ID == v.Self.Team {
			return
		}
		pos := components.Position.Get(e)
		d := math.Hypot(pos.X-v.Self.X, pos.Z-v.Self.Z)
		if d < best {
			best = d
			v.Opponent = fighterOf(store, e)
			v.HasOpponent = true
		}
	})
	return v
}

func fighterOf(store *sequencedata.Store, e *donburi.Entry) Fighter {
	pos := components.Position.Get(e)
	seq := components.Sequence.Get(e)
	hp := components.Health.Get(e)
	name := seq.ID.String()
	if !seq.ID.IsCharacter() {
		name = store.Name(seq.ID)
	}
	return Fighter{
		X:         pos.X,
		Y:         pos.Y,
		Z:         pos.Z,
		Mirrored:  components.Mirrored.Get(e).Mirrored,
		Health:    int(hp.Points),
		MaxHealth: int(hp.Max),
		Team:      components.Team.Get(e).ID,
		Sequence:  name,
	}
}

func (f Fighter) object() tengo.Object {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"x":          &tengo.Float{Value: f.X},
		"y":          &tengo.Float{Value: f.Y},
		"z":          &tengo.Float{Value: f.Z},
		"mirrored":   boolObject(f.Mirrored),
		"health":     &tengo.Int{Value: int64(f.Health)},
		"max_health": &tengo.Int{Value: int64(f.MaxHealth)},
		"team":       &tengo.Int{Value: int64(f.Team)},
		"sequence":   &tengo.String{Value: f.Sequence},
	}}
}

func (v View) object() tengo.Object {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"tick":         &tengo.Int{Value: int64(v.Tick)},
		"self":         v.Self.object(),
		"opponent":     v.Opponent.object(),
		"has_opponent": boolObject(v.HasOpponent),
		"bot": &tengo.ImmutableMap{Value: map[string]tengo.Object{
			"attack_range":      &tengo.Float{Value: v.Bot.AttackRange},
			"chase_range":       &tengo.Float{Value: v.Bot.ChaseRange},
			"retreat_threshold": &tengo.Float{Value: v.Bot.RetreatThreshold},
		}},
	}}
}

func boolObject(b bool) tengo.Object {
	if b {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}
