// Package sequencedata holds the immutable sequence definitions objects play:
// frames with their waits, hit and hurt volumes, interactions and the
// transition taken when a sequence ends.
package sequencedata

import (
	"fmt"

	"github.com/automoto/brawlsim/config"
	"github.com/automoto/brawlsim/shared/gamemath"
	"github.com/automoto/brawlsim/shared/points"
	"gopkg.in/yaml.v3"
)

// AssetID names the asset a set of sequences belongs to.
type AssetID string

// Key addresses one sequence definition.
type Key struct {
	Asset    AssetID
	Sequence config.SequenceID
}

type VolumeKind string

const (
	VolumeBox    VolumeKind = "box"
	VolumeSphere VolumeKind = "sphere"
)

// Volume is a box or sphere relative to the object position. Boxes use
// X/Y/Z as their near corner and W/H/D as their size; spheres use X/Y/Z as
// their centre and R as their radius.
type Volume struct {
	Kind VolumeKind `yaml:"kind" json:"kind" jsonschema:"enum=box,enum=sphere"`
	X    float64    `yaml:"x,omitempty" json:"x,omitempty"`
	Y    float64    `yaml:"y,omitempty" json:"y,omitempty"`
	Z    float64    `yaml:"z,omitempty" json:"z,omitempty"`
	W    float64    `yaml:"w,omitempty" json:"w,omitempty"`
	H    float64    `yaml:"h,omitempty" json:"h,omitempty"`
	D    float64    `yaml:"d,omitempty" json:"d,omitempty"`
	R    float64    `yaml:"r,omitempty" json:"r,omitempty"`
}

func Box(x, y, z, w, h, d float64) Volume {
	return Volume{Kind: VolumeBox, X: x, Y: y, Z: z, W: w, H: h, D: d}
}

func Sphere(x, y, z, r float64) Volume {
	return Volume{Kind: VolumeSphere, X: x, Y: y, Z: z, R: r}
}

// Place moves the volume to world space around origin.
func (v Volume) Place(origin gamemath.Vec3, mirrored bool) gamemath.Placed {
	offset := gamemath.Vec3{X: v.X, Y: v.Y, Z: v.Z}
	if v.Kind == VolumeSphere {
		return gamemath.PlaceSphere(origin, mirrored, offset, v.R)
	}
	return gamemath.PlaceBox(origin, mirrored, offset, gamemath.Vec3{X: v.W, Y: v.H, Z: v.D})
}

func (v Volume) validate() error {
	switch v.Kind {
	case VolumeBox:
		if v.W < 0 || v.H < 0 || v.D < 0 {
			return fmt.Errorf("box has negative size")
		}
	case VolumeSphere:
		if v.R < 0 {
			return fmt.Errorf("sphere has negative radius")
		}
	default:
		return fmt.Errorf("unknown volume kind %q", v.Kind)
	}
	return nil
}

type InteractionKind string

const InteractionHit InteractionKind = "hit"

// Hit is what a hit interaction does to the object it touches.
type Hit struct {
	RepeatDelay  int               `yaml:"repeat_delay" json:"repeat_delay,omitempty"`
	HitLimit     HitLimit          `yaml:"hit_limit" json:"hit_limit,omitempty"`
	HPDamage     uint32            `yaml:"hp_damage" json:"hp_damage,omitempty"`
	SPDamage     uint32            `yaml:"sp_damage" json:"sp_damage,omitempty"`
	Stun         points.StunPoints `yaml:"stun" json:"stun,omitempty"`
	Acceleration gamemath.Vec3     `yaml:"acceleration" json:"acceleration,omitempty"`
}

// DefaultHit returns a hit with the configured repeat delay and hit limit.
func DefaultHit() Hit {
	return Hit{
		RepeatDelay: config.Combat.DefaultRepeatDelay,
		HitLimit:    Limit(config.Combat.DefaultHitLimit),
	}
}

func (h *Hit) UnmarshalYAML(value *yaml.Node) error {
	type plain Hit
	decoded := plain(DefaultHit())
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	*h = Hit(decoded)
	return nil
}

// Interaction pairs hit volumes with their effect.
type Interaction struct {
	Kind         InteractionKind `yaml:"kind" json:"kind" jsonschema:"enum=hit"`
	Hit          Hit             `yaml:"hit" json:"hit"`
	Bounds       []Volume        `yaml:"bounds" json:"bounds"`
	Multiple     bool            `yaml:"multiple,omitempty" json:"multiple,omitempty"`
	FriendlyFire bool            `yaml:"friendly_fire,omitempty" json:"friendly_fire,omitempty"`
}

func (i *Interaction) UnmarshalYAML(value *yaml.Node) error {
	type plain Interaction
	decoded := plain{Kind: InteractionHit, Hit: DefaultHit()}
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	*i = Interaction(decoded)
	return nil
}

// Frame is one step of a sequence. Body holds the hurt volumes.
type Frame struct {
	Wait         int           `yaml:"wait" json:"wait"`
	Interactions []Interaction `yaml:"interactions,omitempty" json:"interactions,omitempty"`
	Body         []Volume      `yaml:"body,omitempty" json:"body,omitempty"`
}

// Definition is a loaded sequence.
type Definition struct {
	Asset  AssetID
	ID     config.SequenceID
	Name   string
	Frames []Frame
	Next   SequenceEndTransition
}

// TotalWait sums the frame waits.
func (d *Definition) TotalWait() int {
	total := 0
	for _, f := range d.Frames {
		total += f.Wait
	}
	return total
}

// Frame returns frame i, clamped to the last frame.
func (d *Definition) Frame(i int) *Frame {
	if i >= len(d.Frames) {
		i = len(d.Frames) - 1
	}
	if i < 0 {
		i = 0
	}
	return &d.Frames[i]
}
