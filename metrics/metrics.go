// Package metrics holds the prometheus collectors the simulation reports to.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "brawlsim_tick_duration_seconds",
		Help:    "Time spent running one simulation step",
		Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
	})

	Ticks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brawlsim_ticks_total",
		Help: "Total simulation steps run",
	})

	SequenceTransitions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brawlsim_sequence_transitions_total",
		Help: "Total sequences entered, repeats included",
	})

	Hits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brawlsim_hits_total",
		Help: "Hit events by outcome",
	}, []string{"outcome"})

	ObjectsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brawlsim_objects_deleted_total",
		Help: "Objects removed by end transitions or leaving the arena",
	})

	RoundsEnded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brawlsim_rounds_ended_total",
		Help: "Rounds that reached a result",
	})

	AliveTeams = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "brawlsim_alive_teams",
		Help: "Teams with at least one fighter standing",
	})
)

// Hit outcomes
const (
	HitAdmitted   = "admitted"
	HitSuppressed = "suppressed"
)
