package gamemath

import (
	"math"

	"github.com/solarlune/resolv"
)

type Shape int

const (
	ShapeBox Shape = iota
	ShapeSphere
)

// Placed is a volume moved into world space. Boxes span [Min, Min+Size];
// spheres are centred on Min with radius R.
type Placed struct {
	Shape Shape
	Min   Vec3
	Size  Vec3
	R     float64
}

// PlaceBox positions a box given relative to origin. When mirrored the box is
// reflected around origin on the x axis.
func PlaceBox(origin Vec3, mirrored bool, offset, size Vec3) Placed {
	x := offset.X
	if mirrored {
		x = -(offset.X + size.X)
	}
	return Placed{
		Shape: ShapeBox,
		Min:   Vec3{X: origin.X + x, Y: origin.Y + offset.Y, Z: origin.Z + offset.Z},
		Size:  size,
	}
}

// PlaceSphere positions a sphere centre given relative to origin.
func PlaceSphere(origin Vec3, mirrored bool, centre Vec3, r float64) Placed {
	x := centre.X
	if mirrored {
		x = -x
	}
	return Placed{
		Shape: ShapeSphere,
		Min:   Vec3{X: origin.X + x, Y: origin.Y + centre.Y, Z: origin.Z + centre.Z},
		R:     r,
	}
}

// Bounds returns the axis aligned extents of p.
func (p Placed) Bounds() (min, max Vec3) {
	if p.Shape == ShapeSphere {
		r := Vec3{X: p.R, Y: p.R, Z: p.R}
		return Vec3{X: p.Min.X - r.X, Y: p.Min.Y - r.Y, Z: p.Min.Z - r.Z}, p.Min.Add(r)
	}
	return p.Min, p.Min.Add(p.Size)
}

// Overlaps tests two placed volumes. The xy plane goes through resolv shape
// intersection and depth is an interval test on z. resolv only reports
// crossing edges, so full containment is checked separately.
func Overlaps(a, b Placed) bool {
	aMin, aMax := a.Bounds()
	bMin, bMax := b.Bounds()
	if aMax.Z < bMin.Z || bMax.Z < aMin.Z {
		return false
	}
	if aMax.X < bMin.X || bMax.X < aMin.X || aMax.Y < bMin.Y || bMax.Y < aMin.Y {
		return false
	}
	return edgesCross(a, b) || a.containsXY(b) || b.containsXY(a)
}

func edgesCross(a, b Placed) bool {
	switch {
	case a.Shape == ShapeSphere && b.Shape == ShapeSphere:
		return a.circle().Intersection(0, 0, b.circle()) != nil
	case a.Shape == ShapeSphere:
		return a.circle().Intersection(0, 0, b.rectangle()) != nil
	case b.Shape == ShapeSphere:
		return a.rectangle().Intersection(0, 0, b.circle()) != nil
	default:
		return a.rectangle().Intersection(0, 0, b.rectangle()) != nil
	}
}

// containsXY reports whether inner lies entirely inside p on the xy plane.
func (p Placed) containsXY(inner Placed) bool {
	iMin, iMax := inner.Bounds()
	if p.Shape == ShapeBox {
		pMin, pMax := p.Bounds()
		return iMin.X >= pMin.X && iMax.X <= pMax.X && iMin.Y >= pMin.Y && iMax.Y <= pMax.Y
	}
	if inner.Shape == ShapeSphere {
		return math.Hypot(inner.Min.X-p.Min.X, inner.Min.Y-p.Min.Y)+inner.R <= p.R
	}
	for _, c := range [4][2]float64{{iMin.X, iMin.Y}, {iMax.X, iMin.Y}, {iMin.X, iMax.Y}, {iMax.X, iMax.Y}} {
		if math.Hypot(c[0]-p.Min.X, c[1]-p.Min.Y) > p.R {
			return false
		}
	}
	return true
}

func (p Placed) circle() *resolv.Circle {
	return resolv.NewCircle(p.Min.X, p.Min.Y, p.R)
}

func (p Placed) rectangle() *resolv.ConvexPolygon {
	return resolv.NewRectangle(p.Min.X, p.Min.Y, p.Size.X, p.Size.Y)
}
