package isect

import (
	"fmt"
	"sort"

	"github.com/golang/glog"

	"github.com/seamkit/seam/pkg/mesh"
	"github.com/seamkit/seam/pkg/predicate"
)

// SideView restricts the global graph to one mesh side: which global
// vertices lie on which of that side's triangles, which edges belong to
// the side, and the vertex adjacency over those edges. A view is a
// derived read-only projection; it holds no state of its own beyond the
// lookup tables built here.
type SideView struct {
	Side  Side
	Graph *Graph

	// TriangleVertices maps a triangle index of this side to the global
	// vertex ids lying on it, ascending.
	TriangleVertices map[int][]int

	// TriangleEdges maps a triangle index to the side edges both of
	// whose endpoints lie on it, ascending.
	TriangleEdges map[int][]int

	// EdgeIDs is the deduplicated, ascending list of side edges.
	EdgeIDs []int

	// Adjacency maps a vertex id to its incident side edges, ascending.
	Adjacency map[int][]int
}

// NewSideView builds the topology view of one mesh side.
//
// Vertex membership is not read off the builder's bookkeeping: each
// feature-box vertex's world position is re-derived independently on
// this side's own triangle, re-quantized, and matched against the
// graph's quantization table. The two derivations answer with the same
// vertex id iff the builder's tables are consistent, so a miss here is
// a hard failure, not something to paper over.
func NewSideView(g *Graph, side Side, geo predicate.Adapter) *SideView {
	set := g.Source
	view := &SideView{
		Side:             side,
		Graph:            g,
		TriangleVertices: make(map[int][]int),
		TriangleEdges:    make(map[int][]int),
		Adjacency:        make(map[int][]int),
	}

	triVerts := make(map[int]map[int]struct{})
	for i, box := range g.Boxes {
		rec := set.Records[i]
		var triIndex int
		if side == SideA {
			triIndex = rec.TriA
		} else {
			triIndex = rec.TriB
		}
		tri := sideTriangle(set, side, triIndex)

		for _, lv := range box.Vertices {
			bc := lv.BaryA
			if side == SideB {
				bc = lv.BaryB
			}
			world := predicate.FromBarycentric(tri, bc)
			id, ok := g.resolve(world)
			if !ok {
				panic(fmt.Sprintf(
					"isect: side %v reconstruction of pair %d vertex %d at %v not in the quantization table",
					side, i, lv.ID, world))
			}
			if triVerts[triIndex] == nil {
				triVerts[triIndex] = make(map[int]struct{})
			}
			triVerts[triIndex][id] = struct{}{}
		}
	}

	// Vertex -> triangles of this side it lies on.
	vertTris := make(map[int][]int)
	for tri, ids := range triVerts {
		sorted := setToSorted(ids)
		view.TriangleVertices[tri] = sorted
		for _, id := range sorted {
			vertTris[id] = append(vertTris[id], tri)
		}
	}
	for _, tris := range vertTris {
		sort.Ints(tris)
	}

	// An edge belongs to the side iff both endpoints share a triangle.
	for eid, e := range g.Edges {
		shared := commonTriangles(vertTris[e.A], vertTris[e.B])
		if len(shared) == 0 {
			continue
		}
		view.EdgeIDs = append(view.EdgeIDs, eid)
		for _, tri := range shared {
			view.TriangleEdges[tri] = append(view.TriangleEdges[tri], eid)
		}
		view.Adjacency[e.A] = append(view.Adjacency[e.A], eid)
		view.Adjacency[e.B] = append(view.Adjacency[e.B], eid)
	}
	for _, edges := range view.TriangleEdges {
		sort.Ints(edges)
	}
	for _, edges := range view.Adjacency {
		sort.Ints(edges)
	}

	glog.V(2).Infof("isect: side %v view covers %d triangles, %d edges, %d vertices",
		side, len(view.TriangleVertices), len(view.EdgeIDs), len(view.Adjacency))
	return view
}

// Other returns the endpoint of edge eid opposite v.
func (view *SideView) Other(eid, v int) int {
	e := view.Graph.Edges[eid]
	if e.A == v {
		return e.B
	}
	if e.B == v {
		return e.A
	}
	panic(fmt.Sprintf("isect: vertex %d is not an endpoint of edge %d", v, eid))
}

// GreedyLoop walks from start along the first unused incident edge
// until it returns to start or gets stuck, returning the visited vertex
// sequence. It is a diagnostic: on branching or noisy topology it fails
// silently by stalling or by eating a branch, which is exactly why
// final curves come from package curve instead.
func (view *SideView) GreedyLoop(start int) []int {
	walk := []int{start}
	used := make(map[int]bool)
	cur := start
	for {
		next := -1
		for _, eid := range view.Adjacency[cur] {
			if !used[eid] {
				next = eid
				break
			}
		}
		if next == -1 {
			return walk
		}
		used[next] = true
		cur = view.Other(next, cur)
		walk = append(walk, cur)
		if cur == start {
			return walk
		}
	}
}

// sideTriangle returns triangle i of the requested side.
func sideTriangle(set *Set, side Side, i int) mesh.Triangle {
	if side == SideA {
		return set.MeshA.Triangle(i)
	}
	return set.MeshB.Triangle(i)
}

// setToSorted flattens an id set into an ascending slice.
func setToSorted(ids map[int]struct{}) []int {
	out := make([]int, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// commonTriangles intersects two ascending triangle lists.
func commonTriangles(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}
