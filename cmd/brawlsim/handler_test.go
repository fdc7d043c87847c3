package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	cfg "github.com/automoto/brawlsim/config"
	"github.com/automoto/brawlsim/internal/simtest"
	"github.com/automoto/brawlsim/server/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*core.Simulation, *httptest.Server) {
	t.Helper()
	sim := core.NewSimulation(simtest.Store(t), core.DefaultLevel())
	for i := 0; i < 2; i++ {
		_, err := sim.SpawnFighter(simtest.Fighter, i)
		require.NoError(t, err)
	}
	sim.StartRound()

	ts := httptest.NewServer(NewRouter(sim, false))
	t.Cleanup(ts.Close)
	return sim, ts
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestStatusListsFighters(t *testing.T) {
	sim, ts := newTestServer(t)
	sim.Step()

	resp, err := http.Get(ts.URL + "/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status statusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "default", status.Level)
	assert.EqualValues(t, 1, status.Tick)
	assert.Equal(t, 1, status.Round)
	assert.Equal(t, "playing", status.Status)
	require.Len(t, status.Fighters, 2)
	for _, f := range status.Fighters {
		assert.Equal(t, "stand", f.Sequence)
		assert.EqualValues(t, cfg.Fighter.Health, f.Health)
	}
	assert.Less(t, status.Fighters[0].ID, status.Fighters[1].ID)
}

func TestPause(t *testing.T) {
	sim, ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/pause", "application/json", strings.NewReader(`{"paused":true}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "paused", sim.GamePlay().Status.String())

	resp, err = http.Post(ts.URL+"/pause", "application/json", strings.NewReader(`{"paused":true}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/pause", "application/json", strings.NewReader(`not json`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRoundsWithoutPersistence(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/rounds")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string][]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body["rounds"])
}

func TestMetricsEndpoint(t *testing.T) {
	sim, ts := newTestServer(t)
	sim.Step()

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
