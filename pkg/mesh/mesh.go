package mesh

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Mesh is an indexed triangle mesh. Vertices holds world positions and
// Faces holds vertex-index triples. The intersection pipeline treats a
// mesh as a frozen snapshot: build it, then stop mutating it.
type Mesh struct {
	Vertices []v3.Vec
	Faces    [][3]int
}

// New creates an empty mesh.
func New() *Mesh {
	return &Mesh{}
}

// FromArrays builds a mesh from flat arrays: 3 floats per vertex and
// 3 indices per triangle, the interchange layout render meshes use.
func FromArrays(vertices []float64, indices []uint32) (*Mesh, error) {
	if len(vertices)%3 != 0 {
		return nil, fmt.Errorf("mesh: vertex array length %d is not a multiple of 3", len(vertices))
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("mesh: index array length %d is not a multiple of 3", len(indices))
	}

	m := New()
	for i := 0; i+2 < len(vertices); i += 3 {
		m.Vertices = append(m.Vertices, v3.Vec{X: vertices[i], Y: vertices[i+1], Z: vertices[i+2]})
	}
	nv := len(m.Vertices)
	for i := 0; i+2 < len(indices); i += 3 {
		f := [3]int{int(indices[i]), int(indices[i+1]), int(indices[i+2])}
		for _, vi := range f {
			if vi >= nv {
				return nil, fmt.Errorf("mesh: face index %d out of range (have %d vertices)", vi, nv)
			}
		}
		m.Faces = append(m.Faces, f)
	}
	return m, nil
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v v3.Vec) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddTriangle appends a free-standing triangle (three new vertices) and
// returns its face index.
func (m *Mesh) AddTriangle(a, b, c v3.Vec) int {
	ia := m.AddVertex(a)
	ib := m.AddVertex(b)
	ic := m.AddVertex(c)
	m.Faces = append(m.Faces, [3]int{ia, ib, ic})
	return len(m.Faces) - 1
}

// AddFace appends a face referencing existing vertices and returns its index.
func (m *Mesh) AddFace(a, b, c int) int {
	m.Faces = append(m.Faces, [3]int{a, b, c})
	return len(m.Faces) - 1
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Faces) == 0
}

// Triangle returns triangle i by value.
func (m *Mesh) Triangle(i int) Triangle {
	f := m.Faces[i]
	return Triangle{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
}

// TriangleBounds returns the axis-aligned bounding box of triangle i.
func (m *Mesh) TriangleBounds(i int) Box {
	return m.Triangle(i).Bounds()
}

// Bounds returns the bounding box of the whole mesh. An empty mesh
// returns the zero Box.
func (m *Mesh) Bounds() Box {
	if len(m.Vertices) == 0 {
		return Box{}
	}
	b := BoxOf(m.Vertices[0])
	for _, v := range m.Vertices[1:] {
		b = b.Extend(v)
	}
	return b
}
