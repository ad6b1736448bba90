// Package spatial provides the broad-phase culling structure for
// triangle-pair detection: an R-tree over one mesh's triangle bounding
// boxes, queried with candidate boxes before any exact predicate runs.
package spatial

import (
	"fmt"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/seamkit/seam/pkg/mesh"
)

// minExtent pads degenerate (axis-aligned flat) boxes so the R-tree
// accepts them.
const minExtent = 1e-12

// rtree branching factors.
const (
	minBranch = 4
	maxBranch = 8
)

// triEntry is one indexed triangle in the tree.
type triEntry struct {
	index int
	rect  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *triEntry) Bounds() rtreego.Rect {
	return e.rect
}

// Index is a broad-phase spatial index over one mesh's triangles.
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex builds an index over every triangle of m.
func NewIndex(m *mesh.Mesh) *Index {
	tree := rtreego.NewTree(3, minBranch, maxBranch)
	for i := 0; i < m.TriangleCount(); i++ {
		tree.Insert(&triEntry{index: i, rect: toRect(m.TriangleBounds(i))})
	}
	return &Index{tree: tree}
}

// Size returns the number of indexed triangles.
func (ix *Index) Size() int {
	return ix.tree.Size()
}

// Query returns the indices of triangles whose bounding boxes intersect
// b, in ascending order.
func (ix *Index) Query(b mesh.Box) []int {
	hits := ix.tree.SearchIntersect(toRect(b))
	out := make([]int, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*triEntry).index)
	}
	sort.Ints(out)
	return out
}

// toRect converts a mesh.Box into an rtreego rectangle.
func toRect(b mesh.Box) rtreego.Rect {
	size := b.Size()
	lengths := []float64{size.X, size.Y, size.Z}
	for i := range lengths {
		if lengths[i] < minExtent {
			lengths[i] = minExtent
		}
	}
	r, err := rtreego.NewRect(rtreego.Point{b.Min.X, b.Min.Y, b.Min.Z}, lengths)
	if err != nil {
		panic(fmt.Sprintf("spatial: bad rectangle from box %+v: %v", b, err))
	}
	return r
}

// CandidatePairs runs the broad phase for a mesh pair: mesh B is
// indexed and every triangle of mesh A is swept against it, each query
// box inflated by pad. The tree culls exactly-touching rectangles, so
// without the pad a pair meeting in a single shared point would never
// reach classification. Pairs come back as (triangleA, triangleB) index
// pairs in ascending (a, b) order, so downstream ids are deterministic.
func CandidatePairs(a, b *mesh.Mesh, pad float64) [][2]int {
	idx := NewIndex(b)
	var pairs [][2]int
	for i := 0; i < a.TriangleCount(); i++ {
		for _, j := range idx.Query(a.TriangleBounds(i).Inflate(pad)) {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs
}
