package components

import "github.com/yohamta/donburi"

type GamePlayStatus int

const (
	GamePlayNone GamePlayStatus = iota
	GamePlayPlaying
	GamePlayPaused
	GamePlayEnded
)

func (s GamePlayStatus) String() string {
	switch s {
	case GamePlayNone:
		return "none"
	case GamePlayPlaying:
		return "playing"
	case GamePlayPaused:
		return "paused"
	case GamePlayEnded:
		return "ended"
	}
	return "unknown"
}

// NoWinner is the winning team of a round nobody survived.
const NoWinner = -1

// GamePlayData stores the round state.
// This is a singleton component - only one round runs at a time.
type GamePlayData struct {
	Status      GamePlayStatus
	AliveTeams  int
	WinningTeam int
	Round       int
}

var GamePlay = donburi.NewComponentType[GamePlayData]()
