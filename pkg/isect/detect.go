package isect

import (
	"github.com/golang/glog"

	"github.com/seamkit/seam/pkg/mesh"
	"github.com/seamkit/seam/pkg/predicate"
	"github.com/seamkit/seam/pkg/spatial"
)

// Detect finds all intersecting triangle pairs of two meshes: broad
// phase over mesh B's triangle boxes, then exact classification of the
// surviving candidates. Records keep broad-phase order (ascending
// (triA, triB)) so every later id assignment is reproducible.
func Detect(meshA, meshB *mesh.Mesh, geo predicate.Adapter) *Set {
	set := &Set{MeshA: meshA, MeshB: meshB}

	candidates := spatial.CandidatePairs(meshA, meshB, geo.Tolerance())
	for _, c := range candidates {
		kind := geo.Classify(meshA.Triangle(c[0]), meshB.Triangle(c[1]))
		if kind == predicate.KindNone {
			continue
		}
		set.Records = append(set.Records, PairRecord{TriA: c[0], TriB: c[1], Kind: kind})
	}

	glog.V(2).Infof("isect: detect kept %d of %d candidate pairs", len(set.Records), len(candidates))
	return set
}
