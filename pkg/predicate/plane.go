package predicate

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/seamkit/seam/pkg/mesh"
)

// Plane is the supporting plane n·x = d with unit normal n.
type Plane struct {
	N v3.Vec
	D float64
}

// PlaneOf returns the supporting plane of a triangle. It panics on a
// zero-area triangle, which has no supporting plane.
func PlaneOf(t mesh.Triangle) Plane {
	n := t.Normal()
	if n.Length() == 0 {
		panic("predicate: supporting plane of a zero-area triangle")
	}
	n = n.Normalize()
	return Plane{N: n, D: n.Dot(t[0])}
}

// Distance returns the signed distance of p from the plane.
func (pl Plane) Distance(p v3.Vec) float64 {
	return pl.N.Dot(p) - pl.D
}

// Axis names a coordinate axis. Projection along an axis drops that
// coordinate and keeps the other two in (X,Y,Z) cyclic order.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// DominantAxis returns the axis of the normal's largest absolute
// component, the axis to project along for a maximal-area footprint.
func DominantAxis(n v3.Vec) Axis {
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	switch {
	case ax >= ay && ax >= az:
		return AxisX
	case ay >= az:
		return AxisY
	default:
		return AxisZ
	}
}

// uvComponents returns the two coordinates kept when projecting along axis.
func uvComponents(p v3.Vec, axis Axis) (float64, float64) {
	switch axis {
	case AxisX:
		return p.Y, p.Z
	case AxisY:
		return p.Z, p.X
	case AxisZ:
		return p.X, p.Y
	default:
		panic("predicate: invalid axis")
	}
}

// Lift is the inverse of projecting along axis: the dropped coordinate
// is recovered from the plane equation. It panics when the plane is
// parallel to the axis, which cannot happen for a dominant axis.
func Lift(u, v float64, axis Axis, pl Plane) v3.Vec {
	var known float64
	var nAxis float64
	switch axis {
	case AxisX:
		known = pl.N.Y*u + pl.N.Z*v
		nAxis = pl.N.X
	case AxisY:
		known = pl.N.Z*u + pl.N.X*v
		nAxis = pl.N.Y
	case AxisZ:
		known = pl.N.X*u + pl.N.Y*v
		nAxis = pl.N.Z
	default:
		panic("predicate: invalid axis")
	}
	if nAxis == 0 {
		panic("predicate: lift along an axis parallel to the plane")
	}
	w := (pl.D - known) / nAxis
	switch axis {
	case AxisX:
		return v3.Vec{X: w, Y: u, Z: v}
	case AxisY:
		return v3.Vec{X: v, Y: w, Z: u}
	default:
		return v3.Vec{X: u, Y: v, Z: w}
	}
}
