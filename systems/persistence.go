package systems

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/brawlsim/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
)

const roundsKey = "rounds"

// RoundRecord is one decided round as stored on disk.
type RoundRecord struct {
	Round       int    `json:"round"`
	Level       string `json:"level"`
	WinningTeam int    `json:"winningTeam"`
}

// SavedRounds is the round history kept between runs, oldest first.
type SavedRounds struct {
	Rounds []RoundRecord `json:"rounds"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for round records
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("[persistence] could not initialize: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadRoundHistory returns the stored rounds. Without persistence, or before
// anything was saved, the history is empty.
func LoadRoundHistory() (SavedRounds, error) {
	if !gdataInitialized || gdataManager == nil {
		return SavedRounds{}, nil
	}

	data, err := gdataManager.LoadItem(roundsKey)
	if err != nil {
		log.Printf("[persistence] could not load rounds: %v", err)
		return SavedRounds{}, err
	}
	return decodeRounds(data)
}

// SaveRoundRecord appends rec to the stored history. A stored history that
// cannot be read is left untouched and the error returned.
func SaveRoundRecord(rec RoundRecord) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	stored, err := gdataManager.LoadItem(roundsKey)
	if err != nil {
		log.Printf("[persistence] could not load rounds: %v", err)
		return err
	}
	data, err := mergeRound(stored, rec, cfg.Sim.MaxRoundHistory)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem(roundsKey, data); err != nil {
		log.Printf("[persistence] could not save rounds: %v", err)
		return err
	}
	return nil
}

// RecordRounds saves every decided round of w once events are dispatched.
func RecordRounds(w donburi.World) {
	level := mustLevel(w).Name
	GamePlayEndEvent.Subscribe(w, func(w donburi.World, ev GamePlayEnd) {
		_ = SaveRoundRecord(RoundRecord{
			Round:       ev.Round,
			Level:       level,
			WinningTeam: ev.WinningTeam,
		})
	})
}

func decodeRounds(data []byte) (SavedRounds, error) {
	if len(data) == 0 {
		return SavedRounds{}, nil
	}
	var history SavedRounds
	if err := json.Unmarshal(data, &history); err != nil {
		log.Printf("[persistence] could not parse rounds: %v", err)
		return SavedRounds{}, err
	}
	return history, nil
}

// mergeRound decodes stored, appends rec and encodes the result.
func mergeRound(stored []byte, rec RoundRecord, limit int) ([]byte, error) {
	history, err := decodeRounds(stored)
	if err != nil {
		return nil, fmt.Errorf("keep round history: %w", err)
	}
	data, err := json.Marshal(appendRound(history, rec, limit))
	if err != nil {
		log.Printf("[persistence] could not serialize rounds: %v", err)
		return nil, err
	}
	return data, nil
}

// appendRound adds rec and drops the oldest rounds beyond limit. A limit of
// zero or less keeps everything.
func appendRound(h SavedRounds, rec RoundRecord, limit int) SavedRounds {
	h.Rounds = append(h.Rounds, rec)
	if limit > 0 && len(h.Rounds) > limit {
		h.Rounds = append([]RoundRecord(nil), h.Rounds[len(h.Rounds)-limit:]...)
	}
	return h
}
