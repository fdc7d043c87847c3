package config

// CombatConfig contains hit-effect and charge tuning values
type CombatConfig struct {
	// Stun ladder, exclusive upper bounds checked low to high
	StunLow  uint32
	StunMid  uint32
	StunHigh uint32

	// Interaction defaults applied when a definition omits them
	DefaultRepeatDelay int
	DefaultHitLimit    uint32

	// Charge
	ChargeLimit       uint32
	ChargeBeginDelay  int     // frames attack must be held before charging
	ChargeDelay       int     // frames per charge point gained
	ChargeDecayDelay  int     // frames per retained charge point lost
	ChargeDamageBonus float64 // extra hp damage fraction at full charge
}

// PhysicsConfig contains movement values. Y points up.
type PhysicsConfig struct {
	// Global physics
	Gravity       float64 // added to velocity.Y each airborne frame
	MaxFallSpeed  float64 // most negative velocity.Y allowed
	GroundEpsilon float64 // distance from the floor still counted as grounded
	Friction      float64

	// Ground movement
	WalkSpeedX   float64
	WalkSpeedZ   float64
	RunSpeedX    float64
	AxisDeadZone float64 // axis values at or below this count as no input
	RunTapWindow int     // frames between taps that start a run

	// Jumps and dashes
	JumpVelocityY float64
	JumpVelocityX float64
	DashVelocityY float64
	DashVelocityX float64
}

// FighterConfig contains default fighter stats
type FighterConfig struct {
	Health uint32
	Skill  uint32
}

// MapConfig contains arena defaults used when a map omits them
type MapConfig struct {
	Width  float64
	Height float64
	Depth  float64

	CellSize int // resolv space cell size

	OutOfBoundsMargin      float64
	OutOfBoundsDeleteDelay int // frames outside the arena before deletion
}

// SimConfig contains loop settings
type SimConfig struct {
	TickRate int // ticks per second for the realtime loop

	AppName          string // gdata storage namespace for round records
	MaxRoundHistory  int
	RoundRestartWait int // ticks between a round ending and the next one starting, 0 disables
}

// Global configuration instances
var Combat CombatConfig
var Physics PhysicsConfig
var Fighter FighterConfig
var Map MapConfig
var Sim SimConfig

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Combat = CombatConfig{
		StunLow:  40,
		StunMid:  80,
		StunHigh: 120,

		DefaultRepeatDelay: 10,
		DefaultHitLimit:    1,

		ChargeLimit:       100,
		ChargeBeginDelay:  10,
		ChargeDelay:       1,
		ChargeDecayDelay:  4,
		ChargeDamageBonus: 1.0,
	}

	Physics = PhysicsConfig{
		Gravity:       -0.7,
		MaxFallSpeed:  -12.0,
		GroundEpsilon: 0.01,
		Friction:      0.5,

		WalkSpeedX:   3.0,
		WalkSpeedZ:   2.0,
		RunSpeedX:    6.0,
		AxisDeadZone: 0.1,
		RunTapWindow: 10,

		JumpVelocityY: 10.0,
		JumpVelocityX: 3.0,
		DashVelocityY: 6.0,
		DashVelocityX: 7.0,
	}

	Fighter = FighterConfig{
		Health: 400,
		Skill:  100,
	}

	Map = MapConfig{
		Width:  800,
		Height: 600,
		Depth:  200,

		CellSize: 32,

		OutOfBoundsMargin:      64,
		OutOfBoundsDeleteDelay: 60,
	}

	Sim = SimConfig{
		TickRate: 60,

		AppName:          "brawlsim",
		MaxRoundHistory:  50,
		RoundRestartWait: 180,
	}
}
