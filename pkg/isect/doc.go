// Package isect turns raw per-pair triangle intersection samples into
// one globally deduplicated vertex/edge graph shared by both meshes of
// a boolean operation, plus per-side topology views of that graph.
//
// The flow is: Detect finds intersecting triangle pairs (broad phase +
// classification), ExtractFeatures reduces each pair's samples to a
// minimal type-consistent feature box in dual barycentric coordinates,
// BuildGraph merges all boxes under quantized-position vertex identity,
// and NewSideView restricts the result to one mesh side. Curve
// extraction on top of the views lives in package curve.
//
// Vertex identity is a pure function of quantized world position, with
// positions always reconstructed on triangle A of the owning pair; see
// BuildGraph for why that canonical-side rule matters.
package isect
