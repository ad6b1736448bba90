// Package predicate classifies triangle-pair intersections and produces
// the raw intersection samples the extraction pipeline consumes: segment
// endpoints for crossing triangles, overlap polygons for coplanar ones,
// and barycentric conversion both ways.
//
// The pipeline depends on the Adapter interface; Solver is the default
// floating-point implementation with a caller-supplied tolerance.
package predicate
