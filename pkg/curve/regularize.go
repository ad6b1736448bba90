package curve

import (
	"fmt"
	"sort"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/seamkit/seam/pkg/isect"
)

// Curve is one closed intersection curve. Vertices is a simple cycle
// with Vertices[0] == Vertices[len-1]; Edges runs parallel between
// consecutive vertices (len(Edges) == len(Vertices)-1); Synthetic flags
// the edges inserted by gap repair (negative ids, absent from the
// graph's edge table); Length is the cached total.
type Curve struct {
	Vertices  []int
	Edges     []int
	Synthetic []bool
	Length    float64
}

// Result is the output of one regularization pass: the curves that
// survived, and every component with its classification for callers
// that want to inspect what was excluded.
type Result struct {
	Curves     []Curve
	Components []Component
}

// Regularize decomposes a side's topology view into components,
// classifies them, repairs at most one small gap per loop candidate,
// and emits the components that walk into true 2-regular simple cycles.
// It is a pure function of the (immutable) graph and view.
func Regularize(g *isect.Graph, view *isect.SideView, opts Options) (Result, error) {
	opts, err := opts.normalize()
	if err != nil {
		return Result{}, err
	}

	var res Result
	res.Components = decompose(view)
	for ci := range res.Components {
		comp := &res.Components[ci]
		comp.measure(g)
		comp.classify(opts)
		glog.V(2).Infof("curve: side %v component %d: %d vertices, %d edges, length %.4g, median %.4g -> %v",
			view.Side, ci, len(comp.Vertices), len(comp.Edges), comp.Length, comp.MedianEdge, comp.Class)

		if comp.Class != ClassLoopCandidate {
			continue
		}
		if c, ok := emitCurve(g, view, comp, ci, opts); ok {
			res.Curves = append(res.Curves, c)
		}
	}
	return res, nil
}

// RegularizeBoth regularizes both sides concurrently. Both sides only
// read the immutable graph, so they are safe to run in parallel.
func RegularizeBoth(g *isect.Graph, viewA, viewB *isect.SideView, opts Options) (a, b Result, err error) {
	var eg errgroup.Group
	eg.Go(func() error {
		var err error
		a, err = Regularize(g, viewA, opts)
		return err
	})
	eg.Go(func() error {
		var err error
		b, err = Regularize(g, viewB, opts)
		return err
	})
	err = eg.Wait()
	return a, b, err
}

// emitCurve turns one loop candidate into a curve: directly when it is
// already closed, after inserting one synthetic closure edge when it
// has exactly two endpoints within the gap threshold. Anything else
// yields no curve.
func emitCurve(g *isect.Graph, view *isect.SideView, comp *Component, ci int, opts Options) (Curve, bool) {
	ends := comp.endpoints()
	var syn *syntheticEdge

	switch len(ends) {
	case 0:
		// Already closed.
	case 2:
		gap := g.Positions[ends[1]].Sub(g.Positions[ends[0]]).Length()
		limit := opts.GapMedianFactor * comp.MedianEdge
		if t := opts.GapTotalFactor * comp.Length; t > limit {
			limit = t
		}
		if gap > limit {
			glog.V(2).Infof("curve: component %d gap %.4g exceeds limit %.4g, not repaired", ci, gap, limit)
			return Curve{}, false
		}
		syn = &syntheticEdge{id: -(ci + 1), a: ends[0], b: ends[1], length: gap}
	default:
		// Multi-gap repair is not a thing this stage does; how such
		// components should pair their endpoints is unresolved, so
		// they stay unemitted.
		return Curve{}, false
	}

	return walkCycle(g, view, comp, syn)
}

// syntheticEdge is a closure edge injected for the walk only. Its id is
// negative, distinct from every real edge id.
type syntheticEdge struct {
	id     int
	a, b   int
	length float64
}

// walkCycle walks the component's edges (plus the synthetic edge, if
// any) from the smallest vertex id, always taking the smallest-id
// unused incident edge. The component fails unless the walk returns to
// its start having consumed every edge exactly once.
func walkCycle(g *isect.Graph, view *isect.SideView, comp *Component, syn *syntheticEdge) (Curve, bool) {
	if len(comp.Vertices) == 0 {
		return Curve{}, false
	}

	// Incident edge ids per vertex, component-restricted.
	incident := make(map[int][]int, len(comp.Vertices))
	for _, v := range comp.Vertices {
		incident[v] = append([]int(nil), view.Adjacency[v]...)
	}
	if syn != nil {
		incident[syn.a] = append(incident[syn.a], syn.id)
		incident[syn.b] = append(incident[syn.b], syn.id)
		for _, v := range []int{syn.a, syn.b} {
			sort.Ints(incident[v])
		}
	}

	other := func(eid, v int) int {
		if syn != nil && eid == syn.id {
			if v == syn.a {
				return syn.b
			}
			if v == syn.b {
				return syn.a
			}
			panic(fmt.Sprintf("curve: vertex %d is not an endpoint of synthetic edge %d", v, eid))
		}
		return view.Other(eid, v)
	}
	edgeLength := func(eid int) float64 {
		if syn != nil && eid == syn.id {
			return syn.length
		}
		e := g.Edges[eid]
		return g.Positions[e.B].Sub(g.Positions[e.A]).Length()
	}

	total := len(comp.Edges)
	if syn != nil {
		total++
	}

	start := comp.Vertices[0]
	c := Curve{Vertices: []int{start}}
	used := make(map[int]bool, total)
	cur := start

	for len(c.Edges) < total {
		next := -1
		found := false
		for _, eid := range incident[cur] {
			if !used[eid] {
				next = eid
				found = true
				break
			}
		}
		if !found {
			// Stalled before consuming the component.
			return Curve{}, false
		}
		used[next] = true
		cur = other(next, cur)
		c.Edges = append(c.Edges, next)
		c.Synthetic = append(c.Synthetic, syn != nil && next == syn.id)
		c.Length += edgeLength(next)
		c.Vertices = append(c.Vertices, cur)
		if cur == start && len(c.Edges) < total {
			// Closed early without consuming every edge.
			return Curve{}, false
		}
	}

	if cur != start || len(c.Vertices) != total+1 {
		return Curve{}, false
	}
	// A closed walk that consumed every edge of a max-degree-2
	// component is a simple cycle; re-check anyway so a bad view can
	// never hand malformed geometry downstream.
	seen := make(map[int]bool, len(c.Vertices))
	for _, v := range c.Vertices[:len(c.Vertices)-1] {
		if seen[v] {
			return Curve{}, false
		}
		seen[v] = true
	}
	return c, true
}
