package predicate

import (
	"fmt"

	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/seamkit/seam/pkg/mesh"
)

// Adapter is the predicate surface the extraction pipeline consumes.
// Classification and the sample solvers must agree with each other: a
// pair classified KindSegment must yield segment samples, and so on.
// The pipeline treats a disagreement as a fatal defect, not an error.
type Adapter interface {
	// Classify reports how the two triangles intersect.
	Classify(a, b mesh.Triangle) Kind

	// IsCoplanar reports whether the triangles share a supporting plane.
	IsCoplanar(a, b mesh.Triangle) bool

	// NonCoplanarPoints returns the intersection samples of two
	// non-coplanar triangles as 3D points (0, 1, or 2 of them).
	NonCoplanarPoints(a, b mesh.Triangle) []v3.Vec

	// CoplanarPoints returns the overlap polygon of two coplanar
	// triangles projected along the returned dominant axis. Lift with
	// the shared supporting plane recovers world positions.
	CoplanarPoints(a, b mesh.Triangle) ([]v2.Vec, Axis)

	// Tolerance returns the world-unit tolerance behind the other
	// predicates. The broad phase inflates its query boxes by it so a
	// pair meeting in a single exactly-touching point still becomes a
	// candidate.
	Tolerance() float64
}

// Solver is the default floating-point Adapter. Eps is the world-unit
// tolerance for all containment and coincidence decisions; it must be
// chosen for the caller's unit scale.
type Solver struct {
	Eps float64
}

// Compile-time interface check.
var _ Adapter = (*Solver)(nil)

// NewSolver returns a Solver with the given world-unit tolerance.
func NewSolver(eps float64) (*Solver, error) {
	if eps <= 0 {
		return nil, fmt.Errorf("predicate: tolerance must be positive, got %g", eps)
	}
	return &Solver{Eps: eps}, nil
}

// Tolerance returns the solver's world-unit tolerance.
func (s *Solver) Tolerance() float64 {
	return s.Eps
}

// IsCoplanar reports whether the triangles share a supporting plane.
func (s *Solver) IsCoplanar(a, b mesh.Triangle) bool {
	return isCoplanar(a, b, s.Eps)
}

// NonCoplanarPoints returns the intersection segment endpoints of two
// non-coplanar triangles, or one point for a touch, or nothing.
func (s *Solver) NonCoplanarPoints(a, b mesh.Triangle) []v3.Vec {
	return nonCoplanarPoints(a, b, s.Eps)
}

// CoplanarPoints returns the projected overlap polygon of two coplanar
// triangles and the projection axis.
func (s *Solver) CoplanarPoints(a, b mesh.Triangle) ([]v2.Vec, Axis) {
	return coplanarPoints(a, b, s.Eps)
}

// Classify reports how the two triangles intersect. Classification is
// derived from the same primitives the sample solvers use, so the two
// can never disagree for this implementation.
func (s *Solver) Classify(a, b mesh.Triangle) Kind {
	if s.IsCoplanar(a, b) {
		poly, _ := s.CoplanarPoints(a, b)
		switch len(poly) {
		case 0:
			return KindNone
		case 1:
			return KindPoint
		case 2:
			return KindSegment
		default:
			if polygonArea(poly) <= s.Eps*s.Eps {
				// Collinear sliver: a contact along a line, not an area.
				return KindSegment
			}
			return KindArea
		}
	}

	pts := s.NonCoplanarPoints(a, b)
	switch len(pts) {
	case 0:
		return KindNone
	case 1:
		return KindPoint
	default:
		return KindSegment
	}
}

// polygonArea returns the absolute shoelace area of a polygon.
func polygonArea(poly []v2.Vec) float64 {
	var sum float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		sum += cross2(p, q)
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}
