// Package mesh provides the indexed triangle-mesh container consumed by
// the intersection pipeline, together with triangle accessors, axis-aligned
// bounding boxes, and primitive builders used by tests and demos.
package mesh
