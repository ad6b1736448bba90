package curve

import (
	"sort"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/seamkit/seam/pkg/isect"
)

// buildFixture assembles a graph and side view directly from positions
// and undirected edges, the way the pipeline would have.
func buildFixture(positions []v3.Vec, edges [][2]int) (*isect.Graph, *isect.SideView) {
	g := &isect.Graph{Positions: positions, Quantum: 1e-6}
	view := &isect.SideView{
		Side:      isect.SideA,
		Graph:     g,
		Adjacency: make(map[int][]int),
	}
	for i, e := range edges {
		a, b := e[0], e[1]
		if b < a {
			a, b = b, a
		}
		g.Edges = append(g.Edges, isect.Edge{A: a, B: b})
		view.EdgeIDs = append(view.EdgeIDs, i)
		view.Adjacency[a] = append(view.Adjacency[a], i)
		view.Adjacency[b] = append(view.Adjacency[b], i)
	}
	for _, incident := range view.Adjacency {
		sort.Ints(incident)
	}
	return g, view
}

func checkClosed(t *testing.T, c Curve) {
	t.Helper()
	if len(c.Vertices) < 4 {
		t.Fatalf("curve has %d vertex entries, want >= 4", len(c.Vertices))
	}
	if c.Vertices[0] != c.Vertices[len(c.Vertices)-1] {
		t.Error("curve is not closed")
	}
	if len(c.Edges) != len(c.Vertices)-1 {
		t.Errorf("curve has %d edges for %d vertices", len(c.Edges), len(c.Vertices))
	}
	if len(c.Synthetic) != len(c.Edges) {
		t.Errorf("synthetic flags length %d != edge count %d", len(c.Synthetic), len(c.Edges))
	}
	seen := make(map[int]bool)
	for _, v := range c.Vertices[:len(c.Vertices)-1] {
		if seen[v] {
			t.Errorf("vertex %d repeats inside the cycle", v)
		}
		seen[v] = true
	}
}

func syntheticCount(c Curve) int {
	n := 0
	for _, s := range c.Synthetic {
		if s {
			n++
		}
	}
	return n
}

// A closed unit square is already a loop: one curve, no repair.
func TestRegularizeClosedLoop(t *testing.T) {
	g, view := buildFixture(
		[]v3.Vec{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}},
		[][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
	)
	res, err := Regularize(g, view, Options{})
	if err != nil {
		t.Fatalf("Regularize: %v", err)
	}
	if len(res.Components) != 1 {
		t.Fatalf("got %d components, want 1", len(res.Components))
	}
	if res.Components[0].Class != ClassLoopCandidate {
		t.Fatalf("component class = %v, want LoopCandidate", res.Components[0].Class)
	}
	if len(res.Curves) != 1 {
		t.Fatalf("got %d curves, want 1", len(res.Curves))
	}
	c := res.Curves[0]
	checkClosed(t, c)
	if syntheticCount(c) != 0 {
		t.Errorf("closed loop has %d synthetic edges, want 0", syntheticCount(c))
	}
	if c.Length < 3.999 || c.Length > 4.001 {
		t.Errorf("curve length = %g, want 4", c.Length)
	}
}

// An open L of four unit edges whose endpoints sit about 2.8 median
// lengths apart (threshold 3x) gets exactly one synthetic closure edge.
func TestRegularizeRepairsSmallGap(t *testing.T) {
	g, view := buildFixture(
		[]v3.Vec{
			{},
			{X: 1},
			{X: 2},
			{X: 2, Y: 1},
			{X: 2, Y: 2},
		},
		[][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}},
	)
	res, err := Regularize(g, view, Options{})
	if err != nil {
		t.Fatalf("Regularize: %v", err)
	}
	if len(res.Curves) != 1 {
		t.Fatalf("got %d curves, want 1 repaired loop", len(res.Curves))
	}
	c := res.Curves[0]
	checkClosed(t, c)
	if syntheticCount(c) != 1 {
		t.Errorf("repaired loop has %d synthetic edges, want exactly 1", syntheticCount(c))
	}
	for i, eid := range c.Edges {
		if c.Synthetic[i] != (eid < 0) {
			t.Errorf("edge %d: synthetic flag %v does not match negative id %d", i, c.Synthetic[i], eid)
		}
	}
}

// The same shape stretched out: endpoints 10 median lengths apart is
// not a repairable gap, so no curve is emitted.
func TestRegularizeRefusesWideGap(t *testing.T) {
	positions := make([]v3.Vec, 11)
	var edges [][2]int
	for i := range positions {
		positions[i] = v3.Vec{X: float64(i)}
		if i > 0 {
			edges = append(edges, [2]int{i - 1, i})
		}
	}
	g, view := buildFixture(positions, edges)

	res, err := Regularize(g, view, Options{})
	if err != nil {
		t.Fatalf("Regularize: %v", err)
	}
	if len(res.Components) != 1 {
		t.Fatalf("got %d components, want 1", len(res.Components))
	}
	if res.Components[0].Class != ClassLoopCandidate {
		t.Errorf("component class = %v, want LoopCandidate", res.Components[0].Class)
	}
	if len(res.Curves) != 0 {
		t.Errorf("got %d curves, want none for an unrepairable gap", len(res.Curves))
	}
}

// A single stub edge is spurious grazing contact.
func TestRegularizeClassifiesTinyNoise(t *testing.T) {
	g, view := buildFixture(
		[]v3.Vec{{}, {X: 0.01}},
		[][2]int{{0, 1}},
	)
	res, err := Regularize(g, view, Options{})
	if err != nil {
		t.Fatalf("Regularize: %v", err)
	}
	if len(res.Components) != 1 || res.Components[0].Class != ClassTinyNoise {
		t.Fatalf("components = %+v, want one TinyNoise", res.Components)
	}
	if len(res.Curves) != 0 {
		t.Error("noise must not produce curves")
	}
}

// Branching topology is ambiguous and never fabricated into a curve.
func TestRegularizeClassifiesBranchingAsAmbiguous(t *testing.T) {
	g, view := buildFixture(
		[]v3.Vec{{}, {X: 1}, {Y: 1}, {X: -1}, {Y: -1}},
		[][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}},
	)
	res, err := Regularize(g, view, Options{})
	if err != nil {
		t.Fatalf("Regularize: %v", err)
	}
	if len(res.Components) != 1 || res.Components[0].Class != ClassAmbiguous {
		t.Fatalf("components = %+v, want one Ambiguous", res.Components)
	}
	if len(res.Curves) != 0 {
		t.Error("ambiguous topology must not produce curves")
	}
}

// Components are independent: a loop and a noise stub coexist.
func TestRegularizeMixedComponents(t *testing.T) {
	g, view := buildFixture(
		[]v3.Vec{
			{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}, // square
			{X: 5}, {X: 5.01}, // stub
		},
		[][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}},
	)
	res, err := Regularize(g, view, Options{})
	if err != nil {
		t.Fatalf("Regularize: %v", err)
	}
	if len(res.Components) != 2 {
		t.Fatalf("got %d components, want 2", len(res.Components))
	}
	if len(res.Curves) != 1 {
		t.Errorf("got %d curves, want 1", len(res.Curves))
	}

	classes := map[Class]int{}
	for _, comp := range res.Components {
		classes[comp.Class]++
	}
	if classes[ClassLoopCandidate] != 1 || classes[ClassTinyNoise] != 1 {
		t.Errorf("class histogram = %v", classes)
	}
}

func TestRegularizeRejectsNegativeOptions(t *testing.T) {
	g, view := buildFixture([]v3.Vec{{}, {X: 1}}, [][2]int{{0, 1}})
	if _, err := Regularize(g, view, Options{GapMedianFactor: -1}); err == nil {
		t.Fatal("expected an error for negative thresholds")
	}
}
