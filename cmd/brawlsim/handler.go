package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"

	"github.com/automoto/brawlsim/components"
	"github.com/automoto/brawlsim/server/core"
	"github.com/automoto/brawlsim/systems"
	"github.com/automoto/brawlsim/tags"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yohamta/donburi"
)

const maxRequestBody = 1 << 12 // 4 KB

type fighterStatus struct {
	ID       uint32  `json:"id"`
	Team     int     `json:"team"`
	Sequence string  `json:"sequence"`
	Health   uint32  `json:"health"`
	Skill    uint32  `json:"skill"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
}

type statusResponse struct {
	Level       string          `json:"level"`
	Tick        uint64          `json:"tick"`
	Round       int             `json:"round"`
	Status      string          `json:"status"`
	WinningTeam int             `json:"winningTeam"`
	AliveTeams  int             `json:"aliveTeams"`
	Fighters    []fighterStatus `json:"fighters"`
}

type pauseRequest struct {
	Paused bool `json:"paused"`
}

// NewRouter serves the simulation's status, round history and metrics.
func NewRouter(sim *core.Simulation, logRequests bool) *chi.Mux {
	r := chi.NewRouter()
	if logRequests {
		r.Use(middleware.Logger)
	}
	r.Use(middleware.Recoverer)

	r.Get("/health", Health())
	r.Get("/status", Status(sim))
	r.Get("/rounds", Rounds())
	r.Post("/pause", Pause(sim))
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func Status(sim *core.Simulation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(statusOf(sim)); err != nil {
			log.Printf("[api] status encode error: %v", err)
		}
	}
}

func statusOf(sim *core.Simulation) statusResponse {
	resp := statusResponse{Level: sim.Level().Name, Fighters: []fighterStatus{}}
	sim.Do(func(w donburi.World) {
		gp := systems.GamePlayState(w)
		resp.Round = gp.Round
		resp.Status = gp.Status.String()
		resp.WinningTeam = gp.WinningTeam
		resp.AliveTeams = gp.AliveTeams

		store := components.MustStore(w)
		tags.Character.Each(w, func(e *donburi.Entry) {
			pos := components.Position.Get(e)
			resp.Fighters = append(resp.Fighters, fighterStatus{
				ID:       uint32(e.Entity().Id()),
				Team:     components.Team.Get(e).ID,
				Sequence: store.Name(components.Sequence.Get(e).ID),
				Health:   uint32(components.Health.Get(e).Points),
				Skill:    uint32(components.Skill.Get(e).Points),
				X:        pos.X,
				Y:        pos.Y,
				Z:        pos.Z,
			})
		})
	})
	resp.Tick = sim.Tick()
	sort.Slice(resp.Fighters, func(i, j int) bool { return resp.Fighters[i].ID < resp.Fighters[j].ID })
	return resp
}

func Rounds() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		history, err := systems.LoadRoundHistory()
		if err != nil {
			http.Error(w, `{"error":"round history unavailable"}`, http.StatusInternalServerError)
			return
		}
		if history.Rounds == nil {
			history.Rounds = []systems.RoundRecord{}
		}
		if err := json.NewEncoder(w).Encode(history); err != nil {
			log.Printf("[api] rounds encode error: %v", err)
		}
	}
}

func Pause(sim *core.Simulation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		var req pauseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
			return
		}
		if !sim.SetPaused(req.Paused) {
			http.Error(w, `{"error":"no running round to change"}`, http.StatusConflict)
			return
		}

		log.Printf("[api] paused=%t", req.Paused)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
