package isect

import (
	"fmt"
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/seamkit/seam/pkg/mesh"
	"github.com/seamkit/seam/pkg/predicate"
)

// DefaultBaryTol is the barycentric coincidence tolerance for collapsing
// raw samples within one pair. Deduplication happens in barycentric
// space, not world space, so it tracks the solver's own rounding rather
// than the caller's unit scale.
const DefaultBaryTol = 1e-9

// ExtractFeatures reduces one pair's raw intersection samples to a
// minimal feature box matching the reported kind. The kind is never
// reclassified upward: a pair reported as a point stays a point no
// matter what the solver returned, and richer kinds degrade to lower
// ones when too few distinct samples survive. A non-None kind with zero
// surviving samples means the predicate and the solver disagree about
// this pair, which is a logic defect, so it panics rather than letting
// a corrupt box into the graph.
func ExtractFeatures(a, b mesh.Triangle, kind predicate.Kind, geo predicate.Adapter, baryTol float64) FeatureBox {
	if baryTol <= 0 {
		baryTol = DefaultBaryTol
	}

	var samples []v3.Vec
	coplanar := geo.IsCoplanar(a, b)
	if coplanar {
		pts, axis := geo.CoplanarPoints(a, b)
		pl := predicate.PlaneOf(a)
		for _, p := range pts {
			samples = append(samples, predicate.Lift(p.X, p.Y, axis, pl))
		}
	} else {
		samples = geo.NonCoplanarPoints(a, b)
	}

	verts := collapseSamples(a, b, samples, baryTol)

	switch kind {
	case predicate.KindNone:
		panic("isect: feature extraction for a pair classified None")
	case predicate.KindPoint:
		return pointBox(a, verts, kind)
	case predicate.KindSegment:
		return segmentBox(a, verts, kind)
	case predicate.KindArea:
		if !coplanar {
			panic("isect: pair classified Area is not coplanar")
		}
		return areaBox(a, verts, kind)
	default:
		panic(fmt.Sprintf("isect: unhandled intersection kind %v", kind))
	}
}

// collapseSamples converts world samples into local vertices with dual
// barycentric coordinates, merging samples whose coordinates match on
// both triangles within tol. First occurrences win; local ids are
// assigned after merging.
func collapseSamples(a, b mesh.Triangle, samples []v3.Vec, tol float64) []LocalVertex {
	var verts []LocalVertex
	for _, p := range samples {
		lv := LocalVertex{
			BaryA: predicate.Barycentric(a, p),
			BaryB: predicate.Barycentric(b, p),
		}
		dup := false
		for _, have := range verts {
			if baryClose(lv.BaryA, have.BaryA, tol) && baryClose(lv.BaryB, have.BaryB, tol) {
				dup = true
				break
			}
		}
		if !dup {
			lv.ID = len(verts)
			verts = append(verts, lv)
		}
	}
	return verts
}

func baryClose(p, q v3.Vec, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol && math.Abs(p.Z-q.Z) <= tol
}

// pointBox keeps one representative vertex and no segments.
func pointBox(a mesh.Triangle, verts []LocalVertex, kind predicate.Kind) FeatureBox {
	if len(verts) == 0 {
		panic(fmt.Sprintf("isect: pair classified %v produced no samples", kind))
	}
	best := verts[0]
	bestPos := predicate.FromBarycentric(a, best.BaryA)
	for _, lv := range verts[1:] {
		pos := predicate.FromBarycentric(a, lv.BaryA)
		if lexLess(pos, bestPos) {
			best, bestPos = lv, pos
		}
	}
	best.ID = 0
	return FeatureBox{Vertices: []LocalVertex{best}}
}

// segmentBox connects the two surviving vertices whose positions are
// farthest apart, or degrades to a point when fewer than two survive.
// The endpoint pair is chosen order-independently: strictly larger
// span wins, equal spans fall back to lexicographic position order.
func segmentBox(a mesh.Triangle, verts []LocalVertex, kind predicate.Kind) FeatureBox {
	if len(verts) < 2 {
		return pointBox(a, verts, kind)
	}

	pos := make([]v3.Vec, len(verts))
	for i, lv := range verts {
		pos[i] = predicate.FromBarycentric(a, lv.BaryA)
	}

	bi, bj, best := 0, 1, -1.0
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			d := pos[j].Sub(pos[i]).Length()
			switch {
			case d > best:
				bi, bj, best = i, j, d
			case d == best && pairLess(pos[i], pos[j], pos[bi], pos[bj]):
				bi, bj = i, j
			}
		}
	}

	from, to := verts[bi], verts[bj]
	if lexLess(pos[bj], pos[bi]) {
		from, to = to, from
	}
	from.ID, to.ID = 0, 1
	return FeatureBox{
		Vertices: []LocalVertex{from, to},
		Segments: []LocalSegment{{From: 0, To: 1}},
	}
}

// areaBox orders the surviving vertices into a convex boundary loop and
// emits its cyclic segments, degrading to a segment (and further to a
// point) when fewer than three survive.
func areaBox(a mesh.Triangle, verts []LocalVertex, kind predicate.Kind) FeatureBox {
	if len(verts) < 3 {
		return segmentBox(a, verts, kind)
	}

	axis := predicate.DominantAxis(predicate.PlaneOf(a).N)
	pos := make([]v3.Vec, len(verts))
	var centroid v3.Vec
	for i, lv := range verts {
		pos[i] = predicate.FromBarycentric(a, lv.BaryA)
		centroid = centroid.Add(pos[i])
	}
	centroid = centroid.DivScalar(float64(len(verts)))

	// Angular order about the centroid in the projection plane gives
	// the convex boundary; start at the lexicographically smallest
	// position so the loop is independent of sample order.
	order := make([]int, len(verts))
	for i := range order {
		order[i] = i
	}
	angle := func(i int) float64 {
		u, v := planeUV(pos[i].Sub(centroid), axis)
		return math.Atan2(v, u)
	}
	sortByAngle(order, angle)

	start := 0
	for i := 1; i < len(order); i++ {
		if lexLess(pos[order[i]], pos[order[start]]) {
			start = i
		}
	}

	box := FeatureBox{}
	n := len(order)
	for i := 0; i < n; i++ {
		lv := verts[order[(start+i)%n]]
		lv.ID = i
		box.Vertices = append(box.Vertices, lv)
	}
	for i := 0; i < n; i++ {
		box.Segments = append(box.Segments, LocalSegment{From: i, To: (i + 1) % n})
	}
	return box
}

// planeUV projects a vector into the plane orthogonal to axis.
func planeUV(p v3.Vec, axis predicate.Axis) (float64, float64) {
	switch axis {
	case predicate.AxisX:
		return p.Y, p.Z
	case predicate.AxisY:
		return p.Z, p.X
	default:
		return p.X, p.Y
	}
}

// sortByAngle is an insertion sort on the index slice; feature boxes
// hold a handful of vertices at most.
func sortByAngle(order []int, angle func(int) float64) {
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && angle(order[j]) < angle(order[j-1]); j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}
}

// lexLess orders positions lexicographically by (X, Y, Z).
func lexLess(p, q v3.Vec) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.Z < q.Z
}

// pairLess orders endpoint pairs lexicographically for tie-breaking.
func pairLess(a1, a2, b1, b2 v3.Vec) bool {
	lo1, hi1 := a1, a2
	if lexLess(hi1, lo1) {
		lo1, hi1 = hi1, lo1
	}
	lo2, hi2 := b1, b2
	if lexLess(hi2, lo2) {
		lo2, hi2 = hi2, lo2
	}
	if lo1 != lo2 {
		return lexLess(lo1, lo2)
	}
	return lexLess(hi1, hi2)
}
