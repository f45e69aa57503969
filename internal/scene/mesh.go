package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the interleaved layout: position (3) + normal (3).
const FloatsPerVertex = 6

// Mesh is an unindexed triangle list with per-vertex normals.
type Mesh struct {
	Name     string
	Vertices []float32
}

// VertexCount returns the number of vertices (3 per triangle).
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

func (m *Mesh) vertex(p, n mgl32.Vec3) {
	m.Vertices = append(m.Vertices, p[0], p[1], p[2], n[0], n[1], n[2])
}

// tri appends a triangle with a flat normal.
func (m *Mesh) tri(a, b, c, n mgl32.Vec3) {
	m.vertex(a, n)
	m.vertex(b, n)
	m.vertex(c, n)
}

// quad appends a-b-c-d (counter-clockwise seen from the normal side) as two
// triangles.
func (m *Mesh) quad(a, b, c, d, n mgl32.Vec3) {
	m.tri(a, b, c, n)
	m.tri(a, c, d, n)
}

// Box is centred on the origin with extents w (X), h (Y), d (Z).
func Box(w, h, d float32) *Mesh {
	x, y, z := w/2, h/2, d/2
	m := &Mesh{Name: "box"}
	// +X, -X, +Y, -Y, +Z, -Z
	m.quad(mgl32.Vec3{x, -y, z}, mgl32.Vec3{x, -y, -z}, mgl32.Vec3{x, y, -z}, mgl32.Vec3{x, y, z}, mgl32.Vec3{1, 0, 0})
	m.quad(mgl32.Vec3{-x, -y, -z}, mgl32.Vec3{-x, -y, z}, mgl32.Vec3{-x, y, z}, mgl32.Vec3{-x, y, -z}, mgl32.Vec3{-1, 0, 0})
	m.quad(mgl32.Vec3{-x, y, z}, mgl32.Vec3{x, y, z}, mgl32.Vec3{x, y, -z}, mgl32.Vec3{-x, y, -z}, mgl32.Vec3{0, 1, 0})
	m.quad(mgl32.Vec3{-x, -y, -z}, mgl32.Vec3{x, -y, -z}, mgl32.Vec3{x, -y, z}, mgl32.Vec3{-x, -y, z}, mgl32.Vec3{0, -1, 0})
	m.quad(mgl32.Vec3{-x, -y, z}, mgl32.Vec3{x, -y, z}, mgl32.Vec3{x, y, z}, mgl32.Vec3{-x, y, z}, mgl32.Vec3{0, 0, 1})
	m.quad(mgl32.Vec3{x, -y, -z}, mgl32.Vec3{-x, -y, -z}, mgl32.Vec3{-x, y, -z}, mgl32.Vec3{x, y, -z}, mgl32.Vec3{0, 0, -1})
	return m
}

// Plane lies flat on the XZ plane facing +Y, width w along X and depth d along Z.
func Plane(w, d float32) *Mesh {
	x, z := w/2, d/2
	m := &Mesh{Name: "plane"}
	m.quad(mgl32.Vec3{-x, 0, z}, mgl32.Vec3{x, 0, z}, mgl32.Vec3{x, 0, -z}, mgl32.Vec3{-x, 0, -z}, mgl32.Vec3{0, 1, 0})
	return m
}

// Cylinder stands along Y, centred on the origin, with capped ends.
func Cylinder(radiusTop, radiusBottom, height float32, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	m := &Mesh{Name: "cylinder"}
	hy := height / 2
	slope := (radiusBottom - radiusTop) / height
	top := mgl32.Vec3{0, hy, 0}
	bottom := mgl32.Vec3{0, -hy, 0}

	for i := 0; i < segments; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(segments)
		a1 := 2 * math.Pi * float64(i+1) / float64(segments)
		s0, c0 := float32(math.Sin(a0)), float32(math.Cos(a0))
		s1, c1 := float32(math.Sin(a1)), float32(math.Cos(a1))

		t0 := mgl32.Vec3{radiusTop * s0, hy, radiusTop * c0}
		t1 := mgl32.Vec3{radiusTop * s1, hy, radiusTop * c1}
		b0 := mgl32.Vec3{radiusBottom * s0, -hy, radiusBottom * c0}
		b1 := mgl32.Vec3{radiusBottom * s1, -hy, radiusBottom * c1}

		n0 := mgl32.Vec3{s0, slope, c0}.Normalize()
		n1 := mgl32.Vec3{s1, slope, c1}.Normalize()

		m.vertex(b0, n0)
		m.vertex(b1, n1)
		m.vertex(t1, n1)
		m.vertex(b0, n0)
		m.vertex(t1, n1)
		m.vertex(t0, n0)

		m.tri(top, t0, t1, mgl32.Vec3{0, 1, 0})
		m.tri(bottom, b1, b0, mgl32.Vec3{0, -1, 0})
	}
	return m
}

// Sphere is a UV sphere centred on the origin.
func Sphere(radius float32, segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}
	m := &Mesh{Name: "sphere"}
	point := func(seg, ring int) mgl32.Vec3 {
		theta := math.Pi * float64(ring) / float64(rings)
		phi := 2 * math.Pi * float64(seg) / float64(segments)
		return mgl32.Vec3{
			float32(math.Sin(theta) * math.Sin(phi)),
			float32(math.Cos(theta)),
			float32(math.Sin(theta) * math.Cos(phi)),
		}
	}
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			n00 := point(s, r)
			n10 := point(s+1, r)
			n01 := point(s, r+1)
			n11 := point(s+1, r+1)
			m.vertex(n00.Mul(radius), n00)
			m.vertex(n01.Mul(radius), n01)
			m.vertex(n11.Mul(radius), n11)
			m.vertex(n00.Mul(radius), n00)
			m.vertex(n11.Mul(radius), n11)
			m.vertex(n10.Mul(radius), n10)
		}
	}
	return m
}
