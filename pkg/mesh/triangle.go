package mesh

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Triangle is a triangle by its three corner positions.
type Triangle [3]v3.Vec

// Normal returns the (unnormalized) face normal. Its length is twice
// the triangle area, which callers use as a scale reference.
func (t Triangle) Normal() v3.Vec {
	return t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))
}

// UnitNormal returns the normalized face normal.
func (t Triangle) UnitNormal() v3.Vec {
	return t.Normal().Normalize()
}

// Centroid returns the triangle centroid.
func (t Triangle) Centroid() v3.Vec {
	return t[0].Add(t[1]).Add(t[2]).DivScalar(3)
}

// Area returns the triangle area.
func (t Triangle) Area() float64 {
	return 0.5 * t.Normal().Length()
}

// Bounds returns the triangle's axis-aligned bounding box.
func (t Triangle) Bounds() Box {
	return BoxOf(t[0], t[1], t[2])
}

// LongestEdge returns the length of the longest edge.
func (t Triangle) LongestEdge() float64 {
	l := t[1].Sub(t[0]).Length()
	if d := t[2].Sub(t[1]).Length(); d > l {
		l = d
	}
	if d := t[0].Sub(t[2]).Length(); d > l {
		l = d
	}
	return l
}

// Degenerate reports whether the triangle is (near) zero-area: its
// corners are collinear within eps relative to its longest edge.
func (t Triangle) Degenerate(eps float64) bool {
	longest := t.LongestEdge()
	if longest == 0 {
		return true
	}
	// Height of the triangle over its longest edge.
	return t.Normal().Length()/longest <= eps
}
