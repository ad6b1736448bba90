package mesh

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Quad appends the planar quadrilateral a-b-c-d (corners in boundary
// order) as two triangles sharing the a-c diagonal.
func Quad(a, b, c, d v3.Vec) *Mesh {
	m := New()
	ia := m.AddVertex(a)
	ib := m.AddVertex(b)
	ic := m.AddVertex(c)
	id := m.AddVertex(d)
	m.AddFace(ia, ib, ic)
	m.AddFace(ia, ic, id)
	return m
}

// Icosphere builds a unit icosahedron subdivided n times, scaled to the
// given radius and translated to center. Subdivision 0 is the bare
// icosahedron (20 faces); each level quadruples the face count.
func Icosphere(center v3.Vec, radius float64, subdivisions int) *Mesh {
	// Golden-ratio icosahedron on the unit sphere.
	t := (1 + math.Sqrt(5)) / 2
	s := 1 / math.Sqrt(1+t*t)
	a, b := s, t*s

	verts := []v3.Vec{
		{X: -a, Y: b, Z: 0}, {X: a, Y: b, Z: 0}, {X: -a, Y: -b, Z: 0}, {X: a, Y: -b, Z: 0},
		{X: 0, Y: -a, Z: b}, {X: 0, Y: a, Z: b}, {X: 0, Y: -a, Z: -b}, {X: 0, Y: a, Z: -b},
		{X: b, Y: 0, Z: -a}, {X: b, Y: 0, Z: a}, {X: -b, Y: 0, Z: -a}, {X: -b, Y: 0, Z: a},
	}
	faces := [][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}

	for level := 0; level < subdivisions; level++ {
		midpoints := make(map[[2]int]int)
		midpoint := func(i, j int) int {
			key := [2]int{i, j}
			if j < i {
				key = [2]int{j, i}
			}
			if idx, ok := midpoints[key]; ok {
				return idx
			}
			m := verts[i].Add(verts[j]).MulScalar(0.5).Normalize()
			verts = append(verts, m)
			midpoints[key] = len(verts) - 1
			return len(verts) - 1
		}

		next := make([][3]int, 0, len(faces)*4)
		for _, f := range faces {
			ab := midpoint(f[0], f[1])
			bc := midpoint(f[1], f[2])
			ca := midpoint(f[2], f[0])
			next = append(next,
				[3]int{f[0], ab, ca},
				[3]int{f[1], bc, ab},
				[3]int{f[2], ca, bc},
				[3]int{ab, bc, ca},
			)
		}
		faces = next
	}

	m := New()
	for _, v := range verts {
		m.AddVertex(v.MulScalar(radius).Add(center))
	}
	m.Faces = faces
	return m
}
