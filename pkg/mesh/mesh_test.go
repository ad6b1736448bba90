package mesh

import (
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestCounts(t *testing.T) {
	m := New()
	if !m.IsEmpty() {
		t.Fatal("new mesh should be empty")
	}
	m.AddTriangle(v3.Vec{}, v3.Vec{X: 1}, v3.Vec{Y: 1})
	if m.TriangleCount() != 1 {
		t.Errorf("triangle count = %d, want 1", m.TriangleCount())
	}
	if m.VertexCount() != 3 {
		t.Errorf("vertex count = %d, want 3", m.VertexCount())
	}
	if m.IsEmpty() {
		t.Error("mesh with a triangle should not be empty")
	}
}

func TestFromArrays(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float64
		indices  []uint32
		wantErr  bool
	}{
		{"one triangle", []float64{0, 0, 0, 1, 0, 0, 0, 1, 0}, []uint32{0, 1, 2}, false},
		{"ragged vertices", []float64{0, 0}, nil, true},
		{"ragged indices", []float64{0, 0, 0}, []uint32{0, 0}, true},
		{"index out of range", []float64{0, 0, 0, 1, 0, 0, 0, 1, 0}, []uint32{0, 1, 3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FromArrays(tt.vertices, tt.indices)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("FromArrays: %v", err)
			}
			if m.TriangleCount() != len(tt.indices)/3 {
				t.Errorf("triangle count = %d, want %d", m.TriangleCount(), len(tt.indices)/3)
			}
		})
	}
}

func TestTriangleProperties(t *testing.T) {
	tri := Triangle{{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 0, Y: 2, Z: 0}}

	if got := tri.Area(); math.Abs(got-2) > 1e-12 {
		t.Errorf("area = %g, want 2", got)
	}
	n := tri.UnitNormal()
	if math.Abs(n.Z-1) > 1e-12 || math.Abs(n.X) > 1e-12 || math.Abs(n.Y) > 1e-12 {
		t.Errorf("unit normal = %v, want +Z", n)
	}
	c := tri.Centroid()
	want := v3.Vec{X: 2.0 / 3, Y: 2.0 / 3}
	if c.Sub(want).Length() > 1e-12 {
		t.Errorf("centroid = %v, want %v", c, want)
	}
	if tri.Degenerate(1e-9) {
		t.Error("proper triangle reported degenerate")
	}

	flat := Triangle{{X: 0}, {X: 1}, {X: 2}}
	if !flat.Degenerate(1e-9) {
		t.Error("collinear triangle not reported degenerate")
	}
}

func TestBox(t *testing.T) {
	b := BoxOf(v3.Vec{X: 1, Y: 2, Z: 3}, v3.Vec{X: -1, Y: 0, Z: 5})
	if b.Min.X != -1 || b.Min.Y != 0 || b.Min.Z != 3 {
		t.Errorf("min = %v", b.Min)
	}
	if b.Max.X != 1 || b.Max.Y != 2 || b.Max.Z != 5 {
		t.Errorf("max = %v", b.Max)
	}

	other := BoxOf(v3.Vec{X: 2, Y: 0, Z: 3})
	if b.Intersects(other, 0) {
		t.Error("disjoint boxes reported intersecting")
	}
	if !b.Intersects(other, 1.5) {
		t.Error("boxes within tolerance reported disjoint")
	}
	if !b.Contains(v3.Vec{X: 0, Y: 1, Z: 4}, 0) {
		t.Error("interior point reported outside")
	}

	u := b.Union(other)
	if u.Min != b.Min || u.Max.X != 2 || u.Max.Y != 2 || u.Max.Z != 5 {
		t.Errorf("union = %+v", u)
	}

	grown := b.Inflate(0.5)
	if grown.Min.X != -1.5 || grown.Max.Z != 5.5 {
		t.Errorf("inflated box = %+v", grown)
	}
}

func TestQuad(t *testing.T) {
	m := Quad(v3.Vec{}, v3.Vec{X: 1}, v3.Vec{X: 1, Y: 1}, v3.Vec{Y: 1})
	if m.TriangleCount() != 2 || m.VertexCount() != 4 {
		t.Fatalf("quad has %d triangles, %d vertices; want 2, 4", m.TriangleCount(), m.VertexCount())
	}
	area := m.Triangle(0).Area() + m.Triangle(1).Area()
	if math.Abs(area-1) > 1e-12 {
		t.Errorf("total area = %g, want 1", area)
	}
}

func TestIcosphere(t *testing.T) {
	tests := []struct {
		subdivisions int
		wantFaces    int
		wantVerts    int
	}{
		{0, 20, 12},
		{1, 80, 42},
		{2, 320, 162},
		{3, 1280, 642},
	}
	for _, tt := range tests {
		m := Icosphere(v3.Vec{}, 2, tt.subdivisions)
		if m.TriangleCount() != tt.wantFaces {
			t.Errorf("subdiv %d: faces = %d, want %d", tt.subdivisions, m.TriangleCount(), tt.wantFaces)
		}
		if m.VertexCount() != tt.wantVerts {
			t.Errorf("subdiv %d: verts = %d, want %d", tt.subdivisions, m.VertexCount(), tt.wantVerts)
		}
		for _, v := range m.Vertices {
			if math.Abs(v.Length()-2) > 1e-9 {
				t.Fatalf("subdiv %d: vertex %v not on radius-2 sphere", tt.subdivisions, v)
			}
		}
	}

	off := Icosphere(v3.Vec{X: 5}, 1, 1)
	c := off.Bounds().Center()
	if c.Sub(v3.Vec{X: 5}).Length() > 1e-9 {
		t.Errorf("offset sphere center = %v, want (5,0,0)", c)
	}
}
