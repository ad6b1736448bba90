package isect

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/seamkit/seam/pkg/mesh"
	"github.com/seamkit/seam/pkg/predicate"
)

// PairRecord is one intersecting triangle pair: triangle TriA of mesh A
// against triangle TriB of mesh B. Kind is never predicate.KindNone;
// non-intersecting pairs are dropped at detection time.
type PairRecord struct {
	TriA int
	TriB int
	Kind predicate.Kind
}

// Set is a frozen snapshot of a mesh pair and its intersecting triangle
// pairs. The pipeline never mutates the meshes after a Set is built.
type Set struct {
	MeshA   *mesh.Mesh
	MeshB   *mesh.Mesh
	Records []PairRecord
}

// LocalVertex is one intersection point scoped to a single pair,
// expressed in barycentric coordinates on both triangles. ID is the
// vertex's index within its feature box; local ids never cross pair
// boundaries before the global merge.
type LocalVertex struct {
	ID    int
	BaryA v3.Vec
	BaryB v3.Vec
}

// LocalSegment connects two local vertices of the same feature box.
type LocalSegment struct {
	From int
	To   int
}

// FeatureBox is the minimal, type-consistent feature set of one pair:
// the surviving vertices and the segments connecting them. It is built
// once and never modified.
type FeatureBox struct {
	Vertices []LocalVertex
	Segments []LocalSegment
}

// Edge is an undirected deduplicated graph edge with A < B.
type Edge struct {
	A int
	B int
}

// Side selects one mesh of the pair.
type Side int

const (
	SideA Side = iota
	SideB
)

// String returns the side name.
func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}
