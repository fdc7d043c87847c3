package systems

import (
	"log"
	"sort"

	"github.com/automoto/brawlsim/components"
	"github.com/automoto/brawlsim/metrics"
	"github.com/automoto/brawlsim/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGamePlay counts the teams still standing and ends the round once one
// or none is left. A round that ended resumes if a second team comes back.
func UpdateGamePlay(ecs *ecs.ECS) {
	w := ecs.World
	gp := GamePlayState(w)
	alive := AliveTeams(w)

	if len(alive) != gp.AliveTeams {
		gp.AliveTeams = len(alive)
		metrics.AliveTeams.Set(float64(gp.AliveTeams))
		TeamAliveCountChangedEvent.Publish(w, TeamAliveCountChanged{Count: gp.AliveTeams})
	}

	switch gp.Status {
	case components.GamePlayPlaying:
		if len(alive) > 1 {
			return
		}
		gp.Status = components.GamePlayEnded
		gp.WinningTeam = components.NoWinner
		if len(alive) == 1 {
			gp.WinningTeam = alive[0]
		}
		metrics.RoundsEnded.Inc()
		log.Printf("[gameplay] round %d ended, winning team %d", gp.Round, gp.WinningTeam)
		GamePlayEndEvent.Publish(w, GamePlayEnd{Round: gp.Round, WinningTeam: gp.WinningTeam})
	case components.GamePlayEnded:
		if len(alive) > 1 {
			gp.Status = components.GamePlayPlaying
			gp.WinningTeam = components.NoWinner
			log.Printf("[gameplay] round %d resumed with %d teams", gp.Round, len(alive))
		}
	}
}

// AliveTeams returns the sorted ids of teams with a character whose health
// is above zero.
func AliveTeams(w donburi.World) []int {
	seen := make(map[int]struct{})
	tags.Character.Each(w, func(e *donburi.Entry) {
		if !e.HasComponent(components.Team) || !e.HasComponent(components.Health) {
			return
		}
		if components.Health.Get(e).Points.Alive() {
			seen[components.Team.Get(e).ID] = struct{}{}
		}
	})
	teams := make([]int, 0, len(seen))
	for id := range seen {
		teams = append(teams, id)
	}
	sort.Ints(teams)
	return teams
}
