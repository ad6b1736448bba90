package predicate

import (
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/seamkit/seam/pkg/mesh"
)

// Barycentric returns the barycentric coordinates (u,v,w), u+v+w=1, of
// point p with respect to triangle t. The point is assumed to lie on
// the triangle's supporting plane; any off-plane component is ignored.
// It panics on a degenerate triangle.
func Barycentric(t mesh.Triangle, p v3.Vec) v3.Vec {
	e0 := t[1].Sub(t[0])
	e1 := t[2].Sub(t[0])
	e2 := p.Sub(t[0])

	d00 := e0.Dot(e0)
	d01 := e0.Dot(e1)
	d11 := e1.Dot(e1)
	d20 := e2.Dot(e0)
	d21 := e2.Dot(e1)

	denom := d00*d11 - d01*d01
	if denom == 0 {
		panic("predicate: barycentric coordinates of a degenerate triangle")
	}
	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	return v3.Vec{X: 1 - v - w, Y: v, Z: w}
}

// FromBarycentric evaluates barycentric coordinates bc on triangle t.
func FromBarycentric(t mesh.Triangle, bc v3.Vec) v3.Vec {
	return t[0].MulScalar(bc.X).Add(t[1].MulScalar(bc.Y)).Add(t[2].MulScalar(bc.Z))
}