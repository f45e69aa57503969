package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Road and scenery layout. The road runs along Z; laps are driven on its middle
// section so the far ends never come into view.
const (
	RoadWidth  = 100
	RoadLength = 1000

	MarkingWidth   = 0.5
	MarkingLength  = 10
	MarkingSpacing = 20
	MarkingHeight  = 0.01

	TreeOffsetX  = 15
	TreeSpacing  = 50
	TreeExtentZ  = 400
	TreeTrunkH   = 2
	TreeLeavesR  = 2
	TreeLeavesY  = 3
	TreeSegments = 8

	BuildingOffsetX   = 25
	BuildingSpacing   = 80
	BuildingExtentZ   = 300
	BuildingFootprint = 8
	BuildingMinH      = 5
	BuildingMaxH      = 15

	WheelSegments = 8
)

// Transform places an object: translation, then Euler rotation applied X, Y, Z.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
}

func At(x, y, z float32) Transform {
	return Transform{Position: mgl32.Vec3{x, y, z}}
}

// Matrix returns T * Rx * Ry * Rz.
func (t Transform) Matrix() mgl32.Mat4 {
	m := mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2])
	if t.Rotation[0] != 0 {
		m = m.Mul4(mgl32.HomogRotate3DX(t.Rotation[0]))
	}
	if t.Rotation[1] != 0 {
		m = m.Mul4(mgl32.HomogRotate3DY(t.Rotation[1]))
	}
	if t.Rotation[2] != 0 {
		m = m.Mul4(mgl32.HomogRotate3DZ(t.Rotation[2]))
	}
	return m
}

// Object is one coloured mesh instance.
type Object struct {
	Mesh      *Mesh
	Color     RGB
	Transform Transform
}

// Scene holds the static world and the car model. Car parts are positioned
// relative to the car; the renderer applies the car's own transform on top.
type Scene struct {
	Road      []Object
	Trees     []Object
	Buildings []Object
	Car       []Object
}

// Static returns every object that never moves.
func (s *Scene) Static() []Object {
	out := make([]Object, 0, len(s.Road)+len(s.Trees)+len(s.Buildings))
	out = append(out, s.Road...)
	out = append(out, s.Trees...)
	out = append(out, s.Buildings...)
	return out
}

// Build lays out the track. The seed drives building heights and colours.
func Build(seed uint64) *Scene {
	return &Scene{
		Road:      buildRoad(),
		Trees:     buildTrees(),
		Buildings: buildBuildings(NewRand(seed)),
		Car:       BuildCar(),
	}
}

func buildRoad() []Object {
	out := []Object{{Mesh: Plane(RoadWidth, RoadLength), Color: Palette.Road}}
	marking := Plane(MarkingWidth, MarkingLength)
	for z := -RoadLength / 2; z < RoadLength/2; z += MarkingSpacing {
		out = append(out, Object{
			Mesh:      marking,
			Color:     Palette.Marking,
			Transform: At(0, MarkingHeight, float32(z)),
		})
	}
	return out
}

func buildTrees() []Object {
	trunk := Cylinder(0.3, 0.4, TreeTrunkH, TreeSegments)
	leaves := Sphere(TreeLeavesR, 12, 8)
	var out []Object
	for z := -TreeExtentZ; z < TreeExtentZ; z += TreeSpacing {
		for _, x := range []float32{TreeOffsetX, -TreeOffsetX} {
			out = append(out,
				Object{Mesh: trunk, Color: Palette.Trunk, Transform: At(x, TreeTrunkH/2, float32(z))},
				Object{Mesh: leaves, Color: Palette.Leaves, Transform: At(x, TreeLeavesY, float32(z))},
			)
		}
	}
	return out
}

func buildBuildings(r *Rand) []Object {
	var out []Object
	for z := -BuildingExtentZ; z < BuildingExtentZ; z += BuildingSpacing {
		for _, x := range []float32{BuildingOffsetX, -BuildingOffsetX} {
			h := float32(r.RangeF(BuildingMinH, BuildingMaxH))
			color := Hex(uint32(r.Float64() * 0xFFFFFF))
			out = append(out, Object{
				Mesh:      Box(BuildingFootprint, h, BuildingFootprint),
				Color:     color,
				Transform: At(x, h/2, float32(z)),
			})
		}
	}
	return out
}

// BuildCar returns the car parts relative to the car origin: body, roof and
// four wheels lying on their side.
func BuildCar() []Object {
	wheel := Cylinder(0.3, 0.3, 0.2, WheelSegments)
	out := []Object{
		{Mesh: Box(2, 0.5, 4), Color: Palette.CarBody},
		{Mesh: Box(1.5, 0.5, 2), Color: Palette.CarRoof, Transform: At(0, 0.5, 0)},
	}
	for _, p := range [][2]float32{{-1, -1.2}, {1, -1.2}, {-1, 1.2}, {1, 1.2}} {
		t := At(p[0], 0.8, p[1])
		t.Rotation[2] = math.Pi / 2
		out = append(out, Object{Mesh: wheel, Color: Palette.Wheel, Transform: t})
	}
	return out
}

// CarTransform places the car model for a vehicle at (x, y, z) facing heading.
func CarTransform(x, y, z, heading float64) Transform {
	t := At(float32(x), float32(y), float32(z))
	t.Rotation[1] = float32(heading)
	return t
}
