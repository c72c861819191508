// Package shapes tessellates the primitive meshes the desk scene is built
// from. Each constructor returns CPU-side geometry in the interleaved
// layout the renderer uploads: position(3) + texcoord(2) + normal(3).
package shapes

import (
	"fmt"
	"math"
)

type Kind string

const (
	Plane           Kind = "plane"
	Box             Kind = "box"
	Cylinder        Kind = "cylinder"
	TaperedCylinder Kind = "tapered-cylinder"
	Cone            Kind = "cone"
	Torus           Kind = "torus"
	Sphere          Kind = "sphere"
)

// Kinds lists every shape the scene loader may reference.
func Kinds() []Kind {
	return []Kind{Plane, Box, Cylinder, TaperedCylinder, Cone, Torus, Sphere}
}

// Stride is the number of float32 values per vertex.
const Stride = 8

// Default tessellation resolution. High enough that the coursework scene
// silhouettes read as smooth, low enough that startup stays instant.
const (
	defaultSegments = 32
	defaultStacks   = 16
)

type Mesh struct {
	Interleaved []float32 // x, y, z, u, v, nx, ny, nz
	Indices     []uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Interleaved) / Stride
}

// Build returns the unit mesh for the given shape kind.
func Build(kind Kind) (*Mesh, error) {
	switch kind {
	case Plane:
		return NewPlane(), nil
	case Box:
		return NewBox(), nil
	case Cylinder:
		return NewCylinder(defaultSegments), nil
	case TaperedCylinder:
		return NewTaperedCylinder(defaultSegments), nil
	case Cone:
		return NewCone(defaultSegments), nil
	case Torus:
		return NewTorus(defaultSegments, defaultStacks), nil
	case Sphere:
		return NewSphere(defaultStacks, defaultSegments), nil
	default:
		return nil, fmt.Errorf("unknown shape kind %q", kind)
	}
}

func (m *Mesh) addVertex(px, py, pz, u, v, nx, ny, nz float32) uint32 {
	index := uint32(m.VertexCount())
	m.Interleaved = append(m.Interleaved, px, py, pz, u, v, nx, ny, nz)
	return index
}

// NewPlane builds a 2x2 plane in the XZ plane, centered at the origin and
// facing +Y. The scene scales it into the desk top.
func NewPlane() *Mesh {
	m := &Mesh{}
	m.addVertex(-1, 0, 1, 0, 0, 0, 1, 0)
	m.addVertex(1, 0, 1, 1, 0, 0, 1, 0)
	m.addVertex(1, 0, -1, 1, 1, 0, 1, 0)
	m.addVertex(-1, 0, -1, 0, 1, 0, 1, 0)
	m.Indices = append(m.Indices, 0, 1, 2, 0, 2, 3)
	return m
}

// NewBox builds a unit cube centered at the origin with per-face normals
// and a full 0..1 texture mapping on each face.
func NewBox() *Mesh {
	m := &Mesh{}
	const h = 0.5

	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		// +Z front
		{[3]float32{0, 0, 1}, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		// -Z back
		{[3]float32{0, 0, -1}, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		// +X right
		{[3]float32{1, 0, 0}, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		// -X left
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		// +Y top
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		// -Y bottom
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}

	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for _, face := range faces {
		base := uint32(m.VertexCount())
		for i, c := range face.corners {
			m.addVertex(c[0], c[1], c[2], uvs[i][0], uvs[i][1],
				face.normal[0], face.normal[1], face.normal[2])
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// NewCylinder builds a cylinder of radius 1 with its base at y=0 and its
// top at y=1, capped at both ends.
func NewCylinder(segments int) *Mesh {
	return lathe(segments, 1.0, 1.0, true)
}

// NewTaperedCylinder is a capped cylinder whose radius narrows from 1 at
// the base to 0.5 at the top.
func NewTaperedCylinder(segments int) *Mesh {
	return lathe(segments, 1.0, 0.5, true)
}

// NewCone builds a cone with base radius 1 at y=0 and its apex at y=1.
func NewCone(segments int) *Mesh {
	return lathe(segments, 1.0, 0.0, false)
}

// lathe sweeps a straight profile around the Y axis between y=0 and y=1.
// topRadius of zero collapses the top ring into an apex; withTopCap is
// ignored in that case.
func lathe(segments int, bottomRadius, topRadius float32, withTopCap bool) *Mesh {
	if segments < 3 {
		segments = 3
	}
	m := &Mesh{}

	// Lateral surface. The slope of the profile tilts the normals: for a
	// radius change of (bottom-top) over a height of 1 the y component of
	// the unnormalized normal is exactly that difference.
	ny := bottomRadius - topRadius
	sideBase := uint32(0)
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		c := float32(math.Cos(theta))
		s := float32(math.Sin(theta))
		u := float32(i) / float32(segments)

		length := float32(math.Sqrt(float64(c*c + ny*ny + s*s)))
		nx, nyn, nz := c/length, ny/length, s/length

		m.addVertex(c*bottomRadius, 0, s*bottomRadius, u, 0, nx, nyn, nz)
		m.addVertex(c*topRadius, 1, s*topRadius, u, 1, nx, nyn, nz)
	}
	for i := 0; i < segments; i++ {
		b0 := sideBase + uint32(i)*2
		t0 := b0 + 1
		b1 := b0 + 2
		t1 := b0 + 3
		m.Indices = append(m.Indices, b0, b1, t1, b0, t1, t0)
	}

	// Bottom cap, facing -Y.
	center := m.addVertex(0, 0, 0, 0.5, 0.5, 0, -1, 0)
	ringStart := uint32(m.VertexCount())
	for i := 0; i <= segments; i++ {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		c := float32(math.Cos(theta))
		s := float32(math.Sin(theta))
		m.addVertex(c*bottomRadius, 0, s*bottomRadius, 0.5+c*0.5, 0.5+s*0.5, 0, -1, 0)
	}
	for i := 0; i < segments; i++ {
		m.Indices = append(m.Indices, center, ringStart+uint32(i), ringStart+uint32(i)+1)
	}

	if withTopCap && topRadius > 0 {
		center := m.addVertex(0, 1, 0, 0.5, 0.5, 0, 1, 0)
		ringStart := uint32(m.VertexCount())
		for i := 0; i <= segments; i++ {
			theta := 2 * math.Pi * float64(i) / float64(segments)
			c := float32(math.Cos(theta))
			s := float32(math.Sin(theta))
			m.addVertex(c*topRadius, 1, s*topRadius, 0.5+c*0.5, 0.5+s*0.5, 0, 1, 0)
		}
		for i := 0; i < segments; i++ {
			m.Indices = append(m.Indices, center, ringStart+uint32(i)+1, ringStart+uint32(i))
		}
	}
	return m
}

// NewSphere builds a unit sphere centered at the origin.
func NewSphere(stacks, slices int) *Mesh {
	if stacks < 2 {
		stacks = 2
	}
	if slices < 3 {
		slices = 3
	}
	m := &Mesh{}

	for st := 0; st <= stacks; st++ {
		phi := math.Pi*float64(st)/float64(stacks) - math.Pi/2
		y := float32(math.Sin(phi))
		r := float32(math.Cos(phi))
		for sl := 0; sl <= slices; sl++ {
			theta := 2 * math.Pi * float64(sl) / float64(slices)
			x := r * float32(math.Cos(theta))
			z := r * float32(math.Sin(theta))
			u := float32(sl) / float32(slices)
			v := float32(st) / float32(stacks)
			// Unit sphere: the position doubles as the normal
			m.addVertex(x, y, z, u, v, x, y, z)
		}
	}

	ringSize := uint32(slices + 1)
	for st := 0; st < stacks; st++ {
		for sl := 0; sl < slices; sl++ {
			a := uint32(st)*ringSize + uint32(sl)
			b := a + ringSize
			m.Indices = append(m.Indices, a, b, b+1, a, b+1, a+1)
		}
	}
	return m
}

// NewTorus builds a torus with major radius 1 and tube radius 0.25. The
// ring lies in the XY plane, so the scene rotates it 90 degrees about X to
// rest flat on the desk — same convention as the cup rims it draws.
func NewTorus(ringSegments, tubeSegments int) *Mesh {
	if ringSegments < 3 {
		ringSegments = 3
	}
	if tubeSegments < 3 {
		tubeSegments = 3
	}
	const major = 1.0
	const tube = 0.25
	m := &Mesh{}

	for i := 0; i <= ringSegments; i++ {
		u := 2 * math.Pi * float64(i) / float64(ringSegments)
		cu := float32(math.Cos(u))
		su := float32(math.Sin(u))
		for j := 0; j <= tubeSegments; j++ {
			v := 2 * math.Pi * float64(j) / float64(tubeSegments)
			cv := float32(math.Cos(v))
			sv := float32(math.Sin(v))

			px := (major + tube*cv) * cu
			py := (major + tube*cv) * su
			pz := tube * sv
			m.addVertex(px, py, pz,
				float32(i)/float32(ringSegments), float32(j)/float32(tubeSegments),
				cv*cu, cv*su, sv)
		}
	}

	ringSize := uint32(tubeSegments + 1)
	for i := 0; i < ringSegments; i++ {
		for j := 0; j < tubeSegments; j++ {
			a := uint32(i)*ringSize + uint32(j)
			b := a + ringSize
			m.Indices = append(m.Indices, a, b, b+1, a, b+1, a+1)
		}
	}
	return m
}
