package shapes

import (
	"math"
	"testing"
)

func checkMesh(t *testing.T, m *Mesh) {
	t.Helper()

	if len(m.Interleaved)%Stride != 0 {
		t.Fatalf("interleaved data length %d is not a multiple of stride %d", len(m.Interleaved), Stride)
	}
	if len(m.Indices)%3 != 0 {
		t.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}

	vertexCount := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= vertexCount {
			t.Fatalf("index %d at position %d out of range (%d vertices)", idx, i, vertexCount)
		}
	}

	// Every normal must be unit length
	for v := 0; v < m.VertexCount(); v++ {
		nx := float64(m.Interleaved[v*Stride+5])
		ny := float64(m.Interleaved[v*Stride+6])
		nz := float64(m.Interleaved[v*Stride+7])
		length := math.Sqrt(nx*nx + ny*ny + nz*nz)
		if math.Abs(length-1.0) > 0.001 {
			t.Fatalf("vertex %d normal has length %f", v, length)
		}
	}
}

func TestBuildAllKinds(t *testing.T) {
	for _, kind := range Kinds() {
		mesh, err := Build(kind)
		if err != nil {
			t.Fatalf("Build(%q) failed: %v", kind, err)
		}
		if mesh.VertexCount() == 0 || len(mesh.Indices) == 0 {
			t.Errorf("Build(%q) returned empty mesh", kind)
		}
		checkMesh(t, mesh)
	}
}

func TestBuildUnknownKind(t *testing.T) {
	if _, err := Build(Kind("dodecahedron")); err == nil {
		t.Error("expected an error for an unknown shape kind")
	}
}

func TestPlaneIsFlat(t *testing.T) {
	m := NewPlane()

	if m.VertexCount() != 4 || len(m.Indices) != 6 {
		t.Fatalf("plane should be 4 vertices / 6 indices, got %d/%d", m.VertexCount(), len(m.Indices))
	}
	for v := 0; v < m.VertexCount(); v++ {
		if m.Interleaved[v*Stride+1] != 0 {
			t.Errorf("plane vertex %d not at y=0", v)
		}
		if m.Interleaved[v*Stride+6] != 1 {
			t.Errorf("plane vertex %d normal not +Y", v)
		}
	}
}

func TestBoxBounds(t *testing.T) {
	m := NewBox()

	if m.VertexCount() != 24 || len(m.Indices) != 36 {
		t.Fatalf("box should be 24 vertices / 36 indices, got %d/%d", m.VertexCount(), len(m.Indices))
	}
	for v := 0; v < m.VertexCount(); v++ {
		for axis := 0; axis < 3; axis++ {
			coord := float64(m.Interleaved[v*Stride+axis])
			if math.Abs(coord) > 0.5001 {
				t.Fatalf("box vertex %d outside unit cube: %f", v, coord)
			}
		}
	}
}

func TestCylinderExtent(t *testing.T) {
	m := NewCylinder(16)
	checkMesh(t, m)

	for v := 0; v < m.VertexCount(); v++ {
		y := m.Interleaved[v*Stride+1]
		if y < 0 || y > 1 {
			t.Fatalf("cylinder vertex %d outside y range [0,1]: %f", v, y)
		}
		x := float64(m.Interleaved[v*Stride])
		z := float64(m.Interleaved[v*Stride+2])
		if r := math.Sqrt(x*x + z*z); r > 1.0001 {
			t.Fatalf("cylinder vertex %d outside unit radius: %f", v, r)
		}
	}
}

func TestTaperedCylinderNarrows(t *testing.T) {
	m := NewTaperedCylinder(16)
	checkMesh(t, m)

	for v := 0; v < m.VertexCount(); v++ {
		y := float64(m.Interleaved[v*Stride+1])
		x := float64(m.Interleaved[v*Stride])
		z := float64(m.Interleaved[v*Stride+2])
		r := math.Sqrt(x*x + z*z)
		if y > 0.999 && r > 0.5001 {
			t.Fatalf("tapered cylinder top vertex %d has radius %f, want <= 0.5", v, r)
		}
	}
}

func TestConeApex(t *testing.T) {
	m := NewCone(16)
	checkMesh(t, m)

	foundApex := false
	for v := 0; v < m.VertexCount(); v++ {
		y := float64(m.Interleaved[v*Stride+1])
		x := float64(m.Interleaved[v*Stride])
		z := float64(m.Interleaved[v*Stride+2])
		if y > 0.999 {
			foundApex = true
			if r := math.Sqrt(x*x + z*z); r > 0.0001 {
				t.Fatalf("cone apex vertex %d has radius %f", v, r)
			}
		}
	}
	if !foundApex {
		t.Error("cone has no apex vertices at y=1")
	}
}

func TestSphereRadius(t *testing.T) {
	m := NewSphere(8, 16)
	checkMesh(t, m)

	for v := 0; v < m.VertexCount(); v++ {
		x := float64(m.Interleaved[v*Stride])
		y := float64(m.Interleaved[v*Stride+1])
		z := float64(m.Interleaved[v*Stride+2])
		r := math.Sqrt(x*x + y*y + z*z)
		if math.Abs(r-1.0) > 0.001 {
			t.Fatalf("sphere vertex %d has radius %f", v, r)
		}
	}
}

func TestTorusLiesInRingPlane(t *testing.T) {
	m := NewTorus(16, 8)
	checkMesh(t, m)

	// Tube radius is 0.25, so |z| never exceeds it and the outer radius
	// never exceeds major + tube.
	for v := 0; v < m.VertexCount(); v++ {
		x := float64(m.Interleaved[v*Stride])
		y := float64(m.Interleaved[v*Stride+1])
		z := float64(m.Interleaved[v*Stride+2])
		if math.Abs(z) > 0.2501 {
			t.Fatalf("torus vertex %d has |z|=%f, want <= tube radius", v, math.Abs(z))
		}
		if r := math.Sqrt(x*x + y*y); r > 1.2501 {
			t.Fatalf("torus vertex %d outside outer radius: %f", v, r)
		}
	}
}

func TestLatheLowSegmentClamp(t *testing.T) {
	m := NewCylinder(1)
	checkMesh(t, m)
	if m.VertexCount() == 0 {
		t.Error("clamped cylinder should still produce geometry")
	}
}
