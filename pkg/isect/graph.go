package isect

import (
	"fmt"
	"math"
	"runtime"

	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/seamkit/seam/pkg/predicate"
)

// Options configures graph construction.
type Options struct {
	// Quantum is the world-unit grid size for vertex identity. Two
	// reconstructed positions landing in the same grid cell are the
	// same global vertex. Required; it must be chosen for the caller's
	// unit scale, well above solver noise and well below real feature
	// spacing.
	Quantum float64

	// BaryTol overrides the barycentric coincidence tolerance used by
	// feature extraction. Zero means DefaultBaryTol.
	BaryTol float64

	// Parallel extracts per-pair feature boxes concurrently. The merge
	// into the shared tables always runs as one sequential pass.
	Parallel bool
}

// cellKey is a quantized world position.
type cellKey struct {
	X, Y, Z int64
}

// Graph is the deduplicated vertex/edge graph of one mesh pair.
// Positions is indexed by global vertex id, Edges by global edge id,
// and Boxes is index-aligned with Source.Records. A Graph is immutable
// once BuildGraph returns it.
type Graph struct {
	Positions []v3.Vec
	Edges     []Edge
	Boxes     []FeatureBox
	Source    *Set
	Quantum   float64

	cells     map[cellKey]int
	edgeIndex map[Edge]int
}

// VertexCount returns the number of global vertices.
func (g *Graph) VertexCount() int {
	return len(g.Positions)
}

// EdgeCount returns the number of global edges.
func (g *Graph) EdgeCount() int {
	return len(g.Edges)
}

// quantize maps a world position to its grid cell.
func quantize(p v3.Vec, quantum float64) cellKey {
	return cellKey{
		X: int64(math.Round(p.X / quantum)),
		Y: int64(math.Round(p.Y / quantum)),
		Z: int64(math.Round(p.Z / quantum)),
	}
}

// BuildGraph merges every record's feature box into one global graph.
//
// Vertex identity is the single dedup point of the pipeline: each local
// vertex's world position is reconstructed by evaluating its barycentric
// coordinates on triangle A of its own pair, then quantized by Quantum.
// The A side is a fixed canonical choice. Evaluating on whichever side
// happens to be at hand would let A-side and B-side floating asymmetry
// split one physical point into two cells, so id assignment would stop
// being a pure function of position.
func BuildGraph(set *Set, geo predicate.Adapter, opts Options) (*Graph, error) {
	if opts.Quantum <= 0 {
		return nil, fmt.Errorf("isect: quantum must be positive, got %g", opts.Quantum)
	}

	boxes := make([]FeatureBox, len(set.Records))
	extract := func(i int) {
		rec := set.Records[i]
		boxes[i] = ExtractFeatures(
			set.MeshA.Triangle(rec.TriA),
			set.MeshB.Triangle(rec.TriB),
			rec.Kind, geo, opts.BaryTol,
		)
	}
	if opts.Parallel {
		var eg errgroup.Group
		eg.SetLimit(runtime.GOMAXPROCS(0))
		for i := range set.Records {
			eg.Go(func() error {
				extract(i)
				return nil
			})
		}
		// Workers only signal completion; invariant violations panic.
		_ = eg.Wait()
	} else {
		for i := range set.Records {
			extract(i)
		}
	}

	g := &Graph{
		Boxes:     boxes,
		Source:    set,
		Quantum:   opts.Quantum,
		cells:     make(map[cellKey]int),
		edgeIndex: make(map[Edge]int),
	}

	// Sequential merge pass, in record order.
	for i, box := range boxes {
		triA := set.MeshA.Triangle(set.Records[i].TriA)
		local := make([]int, len(box.Vertices))
		for j, lv := range box.Vertices {
			local[j] = g.internVertex(predicate.FromBarycentric(triA, lv.BaryA))
		}
		for _, seg := range box.Segments {
			u, v := local[seg.From], local[seg.To]
			if u == v {
				// Endpoints collapsed under quantization; a zero-length
				// edge would be a self-loop.
				continue
			}
			g.internEdge(u, v)
		}
	}

	glog.V(2).Infof("isect: graph has %d vertices, %d edges from %d pairs",
		g.VertexCount(), g.EdgeCount(), len(set.Records))
	return g, nil
}

// internVertex resolves a world position to its global vertex id,
// allocating a new id on the first occurrence of its grid cell.
func (g *Graph) internVertex(p v3.Vec) int {
	key := quantize(p, g.Quantum)
	if id, ok := g.cells[key]; ok {
		return id
	}
	id := len(g.Positions)
	g.Positions = append(g.Positions, p)
	g.cells[key] = id
	return id
}

// internEdge resolves an undirected vertex pair to its global edge id,
// allocating on first sight. Callers must have ruled out u == v.
func (g *Graph) internEdge(u, v int) int {
	if v < u {
		u, v = v, u
	}
	e := Edge{A: u, B: v}
	if id, ok := g.edgeIndex[e]; ok {
		return id
	}
	id := len(g.Edges)
	g.Edges = append(g.Edges, e)
	g.edgeIndex[e] = id
	return id
}

// resolve maps a world position back to a global vertex id. The exact
// cell is checked first; a position re-derived on the other mesh side
// can land in a neighboring cell when it sits on a cell boundary, so
// the 26 surrounding cells are accepted when the stored position is
// within one quantum. A miss returns false.
func (g *Graph) resolve(p v3.Vec) (int, bool) {
	key := quantize(p, g.Quantum)
	if id, ok := g.cells[key]; ok {
		return id, true
	}
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				if dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				n := cellKey{X: key.X + dx, Y: key.Y + dy, Z: key.Z + dz}
				if id, ok := g.cells[n]; ok {
					if g.Positions[id].Sub(p).Length() <= g.Quantum {
						return id, true
					}
				}
			}
		}
	}
	return 0, false
}
