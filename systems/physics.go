package systems

import (
	"math"

	"github.com/automoto/brawlsim/components"
	cfg "github.com/automoto/brawlsim/config"
	"github.com/automoto/brawlsim/shared/gamemath"
	"github.com/automoto/brawlsim/shared/leveldata"
	"github.com/automoto/brawlsim/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics drives character velocity from the sequence being played,
// applies gravity, moves every object and derives its grounding.
func UpdatePhysics(ecs *ecs.ECS) {
	arena := mustLevel(ecs.World).Arena
	components.Velocity.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		vel := components.Velocity.Get(e)
		grounding := components.Grounding.Get(e)

		character := e.HasComponent(tags.Character)
		if character {
			driveCharacter(e, vel, grounding.Kind)
			if grounding.Kind == components.Airborne {
				vel.Y = math.Max(vel.Y+cfg.Physics.Gravity, cfg.Physics.MaxFallSpeed)
			}
		}

		stepPosition(pos, vel, arena, character)
		grounding.Kind = GroundingFor(pos.Y, arena.Floor)
	})
}

// driveCharacter sets the velocity a sequence moves with. Launches only
// happen on the frame the sequence begins.
func driveCharacter(e *donburi.Entry, vel *gamemath.Vec3, grounding components.GroundingKind) {
	seq := components.Sequence.Get(e)
	in := components.ControllerInput.Get(e).Current
	facing := components.Mirrored.Get(e).Facing()
	begin := seq.Status == components.SequenceBegin

	switch seq.ID {
	case cfg.Walk:
		vel.X = in.XAxis * cfg.Physics.WalkSpeedX
		vel.Z = in.ZAxis * cfg.Physics.WalkSpeedZ
	case cfg.Run:
		vel.X = facing * cfg.Physics.RunSpeedX
		vel.Z = in.ZAxis * cfg.Physics.WalkSpeedZ
	case cfg.JumpOff:
		if begin {
			vel.Y = cfg.Physics.JumpVelocityY
			vel.X = in.XAxis * cfg.Physics.JumpVelocityX
			vel.Z = in.ZAxis * cfg.Physics.WalkSpeedZ
		}
	case cfg.DashForward:
		if begin {
			vel.Y = cfg.Physics.DashVelocityY
			vel.X = facing * cfg.Physics.DashVelocityX
		}
	case cfg.DashBack:
		if begin {
			vel.Y = cfg.Physics.DashVelocityY
			vel.X = -facing * cfg.Physics.DashVelocityX
		}
	default:
		if grounding == components.OnGround {
			vel.X = gamemath.ApplyFriction(vel.X, cfg.Physics.Friction)
			vel.Z = gamemath.ApplyFriction(vel.Z, cfg.Physics.Friction)
		}
	}
}

// stepPosition integrates velocity. Anything coming down through the floor
// lands on it; characters are also kept inside the arena walls.
func stepPosition(pos, vel *gamemath.Vec3, arena leveldata.Arena, character bool) {
	prevY := pos.Y
	*pos = pos.Add(*vel)

	if prevY >= arena.Floor && pos.Y < arena.Floor {
		pos.Y = arena.Floor
		vel.Y = 0
	}
	if character {
		pos.X = gamemath.Clamp(pos.X, 0, arena.Width)
		pos.Z = gamemath.Clamp(pos.Z, 0, arena.Depth)
	}
}

// GroundingFor classifies a height against the floor.
func GroundingFor(y, floor float64) components.GroundingKind {
	switch {
	case y > floor+cfg.Physics.GroundEpsilon:
		return components.Airborne
	case y < floor-cfg.Physics.GroundEpsilon:
		return components.Underground
	}
	return components.OnGround
}
