// Package curve extracts robust closed intersection curves from one
// side's topology view. The restricted graph is decomposed into
// connected components; each component is classified as noise, loop
// candidate, or ambiguous; a candidate with exactly one small gap gets
// one synthetic closure edge; and only components that walk into true
// 2-regular simple cycles are emitted as curves. Branching or malformed
// topology is excluded rather than fabricated into geometry, so callers
// must expect fewer curves than components.
//
// All classification thresholds are multiples of the component's median
// edge length, which keeps the noise/signal cutoff scale-invariant
// across meshes of very different size.
package curve
