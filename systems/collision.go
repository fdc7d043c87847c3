package systems

import (
	"sort"

	"github.com/automoto/brawlsim/components"
	cfg "github.com/automoto/brawlsim/config"
	"github.com/automoto/brawlsim/shared/gamemath"
	"github.com/automoto/brawlsim/shared/leveldata"
	"github.com/automoto/brawlsim/shared/sequencedata"
	"github.com/automoto/brawlsim/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// hurtVolume is the Data of a resolv object standing for one body volume.
type hurtVolume struct {
	entity donburi.Entity
	team   int
	alive  bool
	volume sequencedata.Volume
	placed gamemath.Placed
}

// UpdateCollisions finds hit volumes touching body volumes and queues one
// HitEvent per interaction and target. Body volumes go into the resolv space
// as the broad phase; each candidate is then confirmed with an exact overlap
// test. Nothing but the queue is changed here.
func UpdateCollisions(ecs *ecs.ECS) {
	w := ecs.World
	store := components.MustStore(w)
	snap := mustSnapshot(w)
	arena := mustLevel(w).Arena
	space := mustSpace(w)
	queue := mustHitQueue(w)
	queue.Events = queue.Events[:0]

	clearSpace(space)

	var attackers []*donburi.Entry
	components.Sequence.Each(w, func(e *donburi.Entry) {
		frame, ok := snapshotFrame(store, snap, e)
		if !ok {
			return
		}
		pos := *components.Position.Get(e)
		mirrored := mirroredOf(e)
		for _, v := range frame.Body {
			placed := v.Place(pos, mirrored)
			obj := spaceObject(placed, arena, tags.ResolvHurt)
			obj.Data = &hurtVolume{entity: e.Entity(), team: teamOf(e), alive: aliveOf(e), volume: v, placed: placed}
			addToSpace(space, obj)
		}
		if len(frame.Interactions) > 0 {
			attackers = append(attackers, e)
		}
	})

	sort.Slice(attackers, func(i, j int) bool {
		return attackers[i].Entity() < attackers[j].Entity()
	})
	for _, attacker := range attackers {
		frame, _ := snapshotFrame(store, snap, attacker)
		frameIndex := snap.Frames[attacker.Entity()].FrameIndex
		for i, in := range frame.Interactions {
			key := components.InteractionKey{Frame: frameIndex, Index: i}
			queue.Events = append(queue.Events, detectHits(space, arena, attacker, key, in)...)
		}
	}
}

// detectHits returns the targets one interaction of attacker touches, in
// entity order, after the self, team, repeat delay, multiple and hit limit
// filters. Targets already in the tally do not count against the limit again.
func detectHits(space *components.SpaceData, arena leveldata.Arena, attacker *donburi.Entry, key components.InteractionKey, in sequencedata.Interaction) []components.HitEvent {
	tally := components.HitTally.Get(attacker)
	used := tally.Count(key)
	var trackers *components.HitRepeatTrackersData
	if attacker.HasComponent(components.HitRepeatTrackers) {
		trackers = components.HitRepeatTrackers.Get(attacker)
	}

	self := attacker.Entity()
	team := teamOf(attacker)
	pos := *components.Position.Get(attacker)
	mirrored := mirroredOf(attacker)

	touched := make(map[donburi.Entity]*hurtVolume)
	for _, bound := range in.Bounds {
		placed := bound.Place(pos, mirrored)
		probe := spaceObject(placed, arena, tags.ResolvHit)
		addToSpace(space, probe)

		check := probe.Check(0, 0, tags.ResolvHurt)
		if check == nil {
			continue
		}
		for _, o := range check.Objects {
			hv, ok := o.Data.(*hurtVolume)
			if !ok || hv.entity == self || !hv.alive {
				continue
			}
			if hv.team == team && !in.FriendlyFire {
				continue
			}
			if _, seen := touched[hv.entity]; seen {
				continue
			}
			if gamemath.Overlaps(placed, hv.placed) {
				touched[hv.entity] = hv
			}
		}
	}

	targets := make([]donburi.Entity, 0, len(touched))
	for e := range touched {
		targets = append(targets, e)
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })

	var hits []components.HitEvent
	for _, target := range targets {
		if trackers != nil && trackers.Blocks(target) {
			continue
		}
		fresh := !tally.Has(key, target)
		if fresh && in.Hit.HitLimit.Exhausted(used) {
			continue
		}
		hits = append(hits, components.HitEvent{
			From:        self,
			To:          target,
			Key:         key,
			Interaction: in,
			Body:        touched[target].volume,
		})
		if fresh {
			used++
		}
		if !in.Multiple {
			break
		}
	}
	return hits
}

func snapshotFrame(store *sequencedata.Store, snap *components.VolumeSnapshotData, e *donburi.Entry) (*sequencedata.Frame, bool) {
	seq := components.Sequence.Get(e)
	ref, ok := snap.Frames[e.Entity()]
	if !ok {
		ref = components.FrameRef{Sequence: seq.ID, FrameIndex: seq.FrameIndex}
	}
	def, ok := store.Definition(seq.Asset, ref.Sequence)
	if !ok {
		return nil, false
	}
	return def.Frame(ref.FrameIndex), true
}

// spaceObject wraps a placed volume's xy bounds in a resolv object. Space
// coordinates are shifted by the out of bounds margin so they stay positive.
func spaceObject(p gamemath.Placed, arena leveldata.Arena, tag string) *resolv.Object {
	min, max := p.Bounds()
	margin := cfg.Map.OutOfBoundsMargin
	return resolv.NewObject(min.X+margin, min.Y-arena.Floor+margin, max.X-min.X, max.Y-min.Y, tag)
}

func addToSpace(s *components.SpaceData, obj *resolv.Object) {
	s.Space.Add(obj)
	s.Objects = append(s.Objects, obj)
}

func clearSpace(s *components.SpaceData) {
	if len(s.Objects) > 0 {
		s.Space.Remove(s.Objects...)
	}
	s.Objects = s.Objects[:0]
}

func teamOf(e *donburi.Entry) int {
	if e.HasComponent(components.Team) {
		return components.Team.Get(e).ID
	}
	return -1
}

func aliveOf(e *donburi.Entry) bool {
	if e.HasComponent(components.Health) {
		return components.Health.Get(e).Points.Alive()
	}
	return true
}

func mirroredOf(e *donburi.Entry) bool {
	if e.HasComponent(components.Mirrored) {
		return components.Mirrored.Get(e).Mirrored
	}
	return false
}
