package isect

import (
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/seamkit/seam/pkg/mesh"
)

// One crossing pair: both sides see one edge whose endpoints have
// degree 1.
func TestSideViewCrossingSegment(t *testing.T) {
	geo := testSolver(t)
	meshA := singleTriangleMesh(mesh.Triangle{{X: -2, Y: -5}, {X: 2, Y: -5}, {Y: 5}})
	meshB := singleTriangleMesh(mesh.Triangle{{Y: -2, Z: -1}, {Y: 2, Z: -1}, {Z: 1}})

	g, err := BuildGraph(Detect(meshA, meshB, geo), geo, Options{Quantum: testQuantum})
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	for _, side := range []Side{SideA, SideB} {
		t.Run("side "+side.String(), func(t *testing.T) {
			view := NewSideView(g, side, geo)

			if len(view.EdgeIDs) != 1 {
				t.Fatalf("side has %d edges, want 1", len(view.EdgeIDs))
			}
			if got := len(view.TriangleVertices[0]); got != 2 {
				t.Errorf("triangle 0 has %d vertices, want 2", got)
			}
			if got := len(view.TriangleEdges[0]); got != 1 {
				t.Errorf("triangle 0 has %d edges, want 1", got)
			}
			for v, incident := range view.Adjacency {
				if len(incident) != 1 {
					t.Errorf("vertex %d has degree %d, want 1", v, len(incident))
				}
			}
		})
	}
}

// The shared-edge fixture: the middle vertex is incident to both
// segments on each side.
func TestSideViewSharedVertexDegree(t *testing.T) {
	geo := testSolver(t)
	meshA := mesh.New()
	meshA.AddTriangle(v3.Vec{X: -1, Z: -1}, v3.Vec{X: 1, Z: -1}, v3.Vec{X: 1, Z: 1})
	meshA.AddTriangle(v3.Vec{X: -1, Z: -1}, v3.Vec{X: 1, Z: 1}, v3.Vec{X: -1, Z: 1})
	meshB := singleTriangleMesh(mesh.Triangle{{X: -0.5, Y: -1}, {X: 0.5, Y: -1}, {Y: 1}})

	g, err := BuildGraph(Detect(meshA, meshB, geo), geo, Options{Quantum: testQuantum})
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	viewB := NewSideView(g, SideB, geo)
	if len(viewB.EdgeIDs) != 2 {
		t.Fatalf("side B has %d edges, want 2", len(viewB.EdgeIDs))
	}
	degrees := make(map[int]int)
	for _, incident := range viewB.Adjacency {
		degrees[len(incident)]++
	}
	if degrees[1] != 2 || degrees[2] != 1 {
		t.Errorf("degree histogram = %v, want two degree-1 ends and one degree-2 middle", degrees)
	}

	// On side A each triangle carries its own segment.
	viewA := NewSideView(g, SideA, geo)
	for tri := 0; tri < 2; tri++ {
		if got := len(viewA.TriangleEdges[tri]); got != 1 {
			t.Errorf("side A triangle %d has %d edges, want 1", tri, got)
		}
	}
}

// The greedy walk is a diagnostic: on an open chain it just stops at a
// dead end instead of producing a loop.
func TestGreedyLoopStallsOnOpenChain(t *testing.T) {
	geo := testSolver(t)
	meshA := mesh.New()
	meshA.AddTriangle(v3.Vec{X: -1, Z: -1}, v3.Vec{X: 1, Z: -1}, v3.Vec{X: 1, Z: 1})
	meshA.AddTriangle(v3.Vec{X: -1, Z: -1}, v3.Vec{X: 1, Z: 1}, v3.Vec{X: -1, Z: 1})
	meshB := singleTriangleMesh(mesh.Triangle{{X: -0.5, Y: -1}, {X: 0.5, Y: -1}, {Y: 1}})

	g, err := BuildGraph(Detect(meshA, meshB, geo), geo, Options{Quantum: testQuantum})
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	view := NewSideView(g, SideB, geo)

	// Start from a chain end: the walk crosses both edges and stalls.
	var end int
	for v, incident := range view.Adjacency {
		if len(incident) == 1 {
			end = v
			break
		}
	}
	walk := view.GreedyLoop(end)
	if len(walk) != 3 {
		t.Errorf("walk visited %d vertices, want 3", len(walk))
	}
	if walk[0] == walk[len(walk)-1] {
		t.Error("open chain walk should not close")
	}
}
