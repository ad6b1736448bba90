package curve

import (
	"fmt"
	"sort"

	"github.com/seamkit/seam/pkg/isect"
)

// Class is the outcome of component classification.
type Class int

const (
	// ClassTinyNoise marks a fragment small enough to be spurious
	// grazing contact.
	ClassTinyNoise Class = iota

	// ClassLoopCandidate marks a component that is shaped like a
	// closed curve or a closed curve with one gap.
	ClassLoopCandidate

	// ClassAmbiguous marks branching or otherwise malformed topology.
	// Ambiguous components never produce curves.
	ClassAmbiguous
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassTinyNoise:
		return "TinyNoise"
	case ClassLoopCandidate:
		return "LoopCandidate"
	case ClassAmbiguous:
		return "Ambiguous"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Component is one maximal connected vertex/edge subset of a side view,
// with the measurements classification runs on.
type Component struct {
	Vertices []int // global vertex ids, ascending
	Edges    []int // global edge ids, ascending
	Degrees  map[int]int

	Length     float64 // sum of edge lengths
	MedianEdge float64
	Class      Class
}

// decompose flood-fills the view's adjacency into maximal connected
// components, visiting vertices in ascending id order so the component
// list is deterministic.
func decompose(view *isect.SideView) []Component {
	vertices := make([]int, 0, len(view.Adjacency))
	for v := range view.Adjacency {
		vertices = append(vertices, v)
	}
	sort.Ints(vertices)

	seen := make(map[int]bool)
	var comps []Component
	for _, start := range vertices {
		if seen[start] {
			continue
		}
		seen[start] = true
		queue := []int{start}
		vset := []int{}
		eset := make(map[int]struct{})

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			vset = append(vset, u)
			for _, eid := range view.Adjacency[u] {
				eset[eid] = struct{}{}
				w := view.Other(eid, u)
				if !seen[w] {
					seen[w] = true
					queue = append(queue, w)
				}
			}
		}

		comp := Component{Vertices: vset, Degrees: make(map[int]int)}
		sort.Ints(comp.Vertices)
		for eid := range eset {
			comp.Edges = append(comp.Edges, eid)
		}
		sort.Ints(comp.Edges)
		for _, v := range comp.Vertices {
			comp.Degrees[v] = len(view.Adjacency[v])
		}
		comps = append(comps, comp)
	}
	return comps
}

// measure fills in the component's length statistics.
func (c *Component) measure(g *isect.Graph) {
	lengths := make([]float64, 0, len(c.Edges))
	for _, eid := range c.Edges {
		e := g.Edges[eid]
		l := g.Positions[e.B].Sub(g.Positions[e.A]).Length()
		lengths = append(lengths, l)
		c.Length += l
	}
	c.MedianEdge = median(lengths)
}

// classify assigns the component's class from its measurements.
func (c *Component) classify(opts Options) {
	degree1 := 0
	maxDegree := 0
	for _, d := range c.Degrees {
		if d == 1 {
			degree1++
		}
		if d > maxDegree {
			maxDegree = d
		}
	}

	switch {
	case len(c.Edges) <= opts.NoiseMaxEdges && c.Length <= opts.NoiseLengthFactor*c.MedianEdge:
		c.Class = ClassTinyNoise
	case maxDegree <= 2 && degree1 <= 2 &&
		len(c.Edges) >= opts.LoopMinEdges && c.Length >= opts.LoopLengthFactor*c.MedianEdge:
		c.Class = ClassLoopCandidate
	default:
		c.Class = ClassAmbiguous
	}
}

// endpoints returns the component's degree-1 vertices, ascending.
func (c *Component) endpoints() []int {
	var out []int
	for _, v := range c.Vertices {
		if c.Degrees[v] == 1 {
			out = append(out, v)
		}
	}
	return out
}

// median of a slice of lengths; the mean of the middle pair for even
// counts. Zero for an empty slice.
func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
