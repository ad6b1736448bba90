package predicate

import (
	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/seamkit/seam/pkg/mesh"
)

// isCoplanar reports whether the triangles share a supporting plane:
// parallel normals and all of b's corners within eps of a's plane.
func isCoplanar(a, b mesh.Triangle, eps float64) bool {
	na := a.Normal()
	nb := b.Normal()
	if na.Length() == 0 || nb.Length() == 0 {
		return false
	}
	// Normal cross length relative to the normal magnitudes bounds the
	// angle between the planes.
	if na.Cross(nb).Length() > eps*na.Length()*nb.Length() {
		return false
	}
	pa := PlaneOf(a)
	for _, p := range b {
		if d := pa.Distance(p); d > eps || d < -eps {
			return false
		}
	}
	return true
}

// project drops the axis coordinate of each corner.
func project(t mesh.Triangle, axis Axis) [3]v2.Vec {
	var out [3]v2.Vec
	for i, p := range t {
		u, v := uvComponents(p, axis)
		out[i] = v2.Vec{X: u, Y: v}
	}
	return out
}

func cross2(a, b v2.Vec) float64 {
	return a.X*b.Y - a.Y*b.X
}

// signedArea2 returns twice the signed area of a 2D triangle.
func signedArea2(t [3]v2.Vec) float64 {
	return cross2(t[1].Sub(t[0]), t[2].Sub(t[0]))
}

// ccw flips the triangle's winding if needed so it is counter-clockwise.
func ccw(t [3]v2.Vec) [3]v2.Vec {
	if signedArea2(t) < 0 {
		t[1], t[2] = t[2], t[1]
	}
	return t
}

// clipByTriangle clips a subject polygon by a CCW triangle using
// Sutherland-Hodgman, with eps of slack so shared edges survive.
func clipByTriangle(subject []v2.Vec, clip [3]v2.Vec, eps float64) []v2.Vec {
	poly := subject
	for i := 0; i < 3 && len(poly) > 0; i++ {
		c1 := clip[i]
		c2 := clip[(i+1)%3]
		edge := c2.Sub(c1)
		edgeLen := edge.Length()
		if edgeLen == 0 {
			continue
		}

		// Signed distance of p left of the directed clip edge.
		dist := func(p v2.Vec) float64 {
			return cross2(edge, p.Sub(c1)) / edgeLen
		}

		var next []v2.Vec
		for j, cur := range poly {
			prev := poly[(j+len(poly)-1)%len(poly)]
			dc, dp := dist(cur), dist(prev)
			curIn := dc >= -eps
			prevIn := dp >= -eps

			if curIn != prevIn {
				alpha := dp / (dp - dc)
				next = append(next, prev.Add(cur.Sub(prev).MulScalar(alpha)))
			}
			if curIn {
				next = append(next, cur)
			}
		}
		poly = next
	}
	return poly
}

// coplanarPoints returns the overlap polygon of two coplanar triangles,
// projected along the dominant axis of a's normal, plus that axis. The
// polygon is convex with counter-clockwise boundary order; it may
// degenerate to two points (shared edge), one point (shared corner), or
// nothing.
func coplanarPoints(a, b mesh.Triangle, eps float64) ([]v2.Vec, Axis) {
	axis := DominantAxis(PlaneOf(a).N)
	pa := ccw(project(a, axis))
	pb := ccw(project(b, axis))

	poly := clipByTriangle(pa[:], pb, eps)
	return dedupePoints2(poly, eps), axis
}

// dedupePoints2 collapses 2D points closer than eps, keeping first
// occurrences in boundary order. The closing duplicate of a clipped
// polygon folds away here.
func dedupePoints2(pts []v2.Vec, eps float64) []v2.Vec {
	var out []v2.Vec
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
