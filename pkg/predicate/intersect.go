package predicate

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/seamkit/seam/pkg/mesh"
)

// edgePlaneCrossings returns the points where the edges of t cross the
// plane, with an eps deadzone so vertices sitting on the plane register
// once instead of flickering between sides.
func edgePlaneCrossings(t mesh.Triangle, pl Plane, eps float64) []v3.Vec {
	sign := func(d float64) int {
		switch {
		case d > eps:
			return 1
		case d < -eps:
			return -1
		default:
			return 0
		}
	}

	var pts []v3.Vec
	d := [3]float64{pl.Distance(t[0]), pl.Distance(t[1]), pl.Distance(t[2])}
	s := [3]int{sign(d[0]), sign(d[1]), sign(d[2])}

	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		switch {
		case s[i] == 0:
			pts = append(pts, t[i])
		case s[j] == 0:
			// Counted when the loop reaches j.
		case s[i] != s[j]:
			// Edge crosses the plane: p + alpha*(q-p) with alpha from
			// the signed distances.
			alpha := d[i] / (d[i] - d[j])
			pts = append(pts, t[i].Add(t[j].Sub(t[i]).MulScalar(alpha)))
		}
	}
	return dedupePoints(pts, eps)
}

// nonCoplanarPoints returns the endpoints of the intersection segment of
// two non-coplanar triangles: zero points for no contact, one for a
// touch, two for a proper segment. Both triangles' edge crossings are
// projected onto the shared plane-intersection line and the two
// parameter intervals are intersected.
func nonCoplanarPoints(a, b mesh.Triangle, eps float64) []v3.Vec {
	pa := PlaneOf(a)
	pb := PlaneOf(b)

	crossA := edgePlaneCrossings(a, pb, eps)
	crossB := edgePlaneCrossings(b, pa, eps)
	if len(crossA) == 0 || len(crossB) == 0 {
		return nil
	}

	dir := pa.N.Cross(pb.N)
	if dir.Length() == 0 {
		// Parallel planes do not cross; coplanar pairs take the 2D path.
		return nil
	}
	dir = dir.Normalize()
	origin := crossA[0]

	param := func(p v3.Vec) float64 { return dir.Dot(p.Sub(origin)) }
	interval := func(pts []v3.Vec) (lo, hi float64) {
		lo, hi = param(pts[0]), param(pts[0])
		for _, p := range pts[1:] {
			t := param(p)
			if t < lo {
				lo = t
			}
			if t > hi {
				hi = t
			}
		}
		return lo, hi
	}

	loA, hiA := interval(crossA)
	loB, hiB := interval(crossB)
	lo, hi := loA, hiA
	if loB > lo {
		lo = loB
	}
	if hiB < hi {
		hi = hiB
	}

	switch {
	case hi < lo-eps:
		return nil
	case hi-lo <= eps:
		mid := (lo + hi) / 2
		return []v3.Vec{origin.Add(dir.MulScalar(mid))}
	default:
		return []v3.Vec{
			origin.Add(dir.MulScalar(lo)),
			origin.Add(dir.MulScalar(hi)),
		}
	}
}

// dedupePoints collapses points closer than eps, keeping first occurrences.
func dedupePoints(pts []v3.Vec, eps float64) []v3.Vec {
	var out []v3.Vec
	for _, p := range pts {
		dup := false
		for _, q := range out {
			if p.Sub(q).Length() <= eps {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}
