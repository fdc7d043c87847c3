package systems

import (
	"github.com/automoto/brawlsim/components"
	"github.com/yohamta/donburi/ecs"
)

// WithPauseCheck wraps a system to skip execution while the round is paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

// IsPaused reports whether the round is paused. A world without a round
// state is never paused.
func IsPaused(e *ecs.ECS) bool {
	entry, ok := components.GamePlay.First(e.World)
	if !ok {
		return false
	}
	return components.GamePlay.Get(entry).Status == components.GamePlayPaused
}

// SetPaused pauses a running round or resumes a paused one. Other states are
// left alone.
func SetPaused(e *ecs.ECS, paused bool) bool {
	gp := GamePlayState(e.World)
	switch {
	case paused && gp.Status == components.GamePlayPlaying:
		gp.Status = components.GamePlayPaused
	case !paused && gp.Status == components.GamePlayPaused:
		gp.Status = components.GamePlayPlaying
	default:
		return false
	}
	return true
}
