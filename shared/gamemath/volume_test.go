package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceBoxMirrors(t *testing.T) {
	origin := Vec3{X: 100, Y: 0, Z: 10}
	b := PlaceBox(origin, false, Vec3{X: 10, Y: 20}, Vec3{X: 30, Y: 10, Z: 5})
	assert.Equal(t, Vec3{X: 110, Y: 20, Z: 10}, b.Min)

	m := PlaceBox(origin, true, Vec3{X: 10, Y: 20}, Vec3{X: 30, Y: 10, Z: 5})
	assert.Equal(t, Vec3{X: 60, Y: 20, Z: 10}, m.Min)
}

func TestPlaceSphereMirrors(t *testing.T) {
	s := PlaceSphere(Vec3{X: 50}, true, Vec3{X: 8, Y: 4}, 3)
	assert.Equal(t, Vec3{X: 42, Y: 4}, s.Min)
}

func TestOverlaps(t *testing.T) {
	box := func(x, y, z, w, h, d float64) Placed {
		return PlaceBox(Vec3{}, false, Vec3{X: x, Y: y, Z: z}, Vec3{X: w, Y: h, Z: d})
	}
	sphere := func(x, y, z, r float64) Placed {
		return PlaceSphere(Vec3{}, false, Vec3{X: x, Y: y, Z: z}, r)
	}

	tests := []struct {
		name string
		a, b Placed
		want bool
	}{
		{"boxes crossing", box(0, 0, 0, 10, 10, 10), box(5, 5, 0, 10, 10, 10), true},
		{"boxes apart", box(0, 0, 0, 10, 10, 10), box(30, 0, 0, 10, 10, 10), false},
		{"box inside box", box(0, 0, 0, 20, 20, 20), box(5, 5, 5, 2, 2, 2), true},
		{"boxes separated in depth", box(0, 0, 0, 10, 10, 10), box(5, 5, 30, 10, 10, 10), false},
		{"spheres crossing", sphere(0, 0, 0, 5), sphere(6, 0, 0, 5), true},
		{"spheres apart", sphere(0, 0, 0, 5), sphere(20, 0, 0, 5), false},
		{"sphere inside sphere", sphere(0, 0, 0, 10), sphere(1, 1, 0, 2), true},
		{"sphere crossing box", sphere(0, 5, 5, 4), box(2, 0, 0, 10, 10, 10), true},
		{"sphere inside box", box(0, 0, 0, 20, 20, 20), sphere(10, 10, 10, 2), true},
		{"box inside sphere", sphere(0, 0, 0, 20), box(-2, -2, -2, 4, 4, 4), true},
		{"sphere away from box", sphere(-20, 5, 5, 4), box(2, 0, 0, 10, 10, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a))
		})
	}
}

func TestChargedDamage(t *testing.T) {
	assert.Equal(t, uint32(20), ChargedDamage(20, 1, 0))
	assert.Equal(t, uint32(30), ChargedDamage(20, 1, 0.5))
	assert.Equal(t, uint32(40), ChargedDamage(20, 1, 2))
}

func TestApplyFriction(t *testing.T) {
	assert.Equal(t, 2.5, ApplyFriction(3, 0.5))
	assert.Equal(t, -2.5, ApplyFriction(-3, 0.5))
	assert.Equal(t, 0.0, ApplyFriction(0.2, 0.5))
}
