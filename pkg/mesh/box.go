package mesh

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max v3.Vec
}

// BoxOf returns the smallest box containing the given points.
// It panics if called with no points.
func BoxOf(points ...v3.Vec) Box {
	if len(points) == 0 {
		panic("mesh: BoxOf needs at least one point")
	}
	b := Box{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b = b.Extend(p)
	}
	return b
}

// Extend returns the box grown to contain point p.
func (b Box) Extend(p v3.Vec) Box {
	return Box{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Union returns the smallest box containing both boxes.
func (b Box) Union(o Box) Box {
	return Box{Min: b.Min.Min(o.Min), Max: b.Max.Max(o.Max)}
}

// Size returns the box extents per axis.
func (b Box) Size() v3.Vec {
	return b.Max.Sub(b.Min)
}

// Center returns the box center.
func (b Box) Center() v3.Vec {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Inflate returns the box grown by d on every side.
func (b Box) Inflate(d float64) Box {
	v := v3.Vec{X: d, Y: d, Z: d}
	return Box{Min: b.Min.Sub(v), Max: b.Max.Add(v)}
}

// Intersects reports whether the boxes overlap, with tol of slack so
// that exactly touching boxes count as overlapping.
func (b Box) Intersects(o Box, tol float64) bool {
	if b.Min.X > o.Max.X+tol || o.Min.X > b.Max.X+tol {
		return false
	}
	if b.Min.Y > o.Max.Y+tol || o.Min.Y > b.Max.Y+tol {
		return false
	}
	if b.Min.Z > o.Max.Z+tol || o.Min.Z > b.Max.Z+tol {
		return false
	}
	return true
}

// Contains reports whether point p lies inside the box, with tol of slack.
func (b Box) Contains(p v3.Vec, tol float64) bool {
	return p.X >= b.Min.X-tol && p.X <= b.Max.X+tol &&
		p.Y >= b.Min.Y-tol && p.Y <= b.Max.Y+tol &&
		p.Z >= b.Min.Z-tol && p.Z <= b.Max.Z+tol
}
