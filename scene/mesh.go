package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a transform component. Tweens hold pointers to its fields.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Material holds the surface parameters used by the lighting model.
type Material struct {
	Roughness float64
	Metalness float64
}

// A Mesh is the geometry and material of the logo with its transform.
type Mesh struct {
	Geometry *Geometry
	Material Material

	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

// NewMesh creates an instance of a Mesh at the origin with unit scale.
func NewMesh(geometry *Geometry, material Material) *Mesh {
	m := new(Mesh)
	m.Geometry = geometry
	m.Material = material
	m.Scale = Vec3{1, 1, 1}
	return m
}

// RotationMatrix applies the Euler rotation in XYZ order.
func (m *Mesh) RotationMatrix() mgl64.Mat4 {
	rx := mgl64.HomogRotate3DX(m.Rotation.X)
	ry := mgl64.HomogRotate3DY(m.Rotation.Y)
	rz := mgl64.HomogRotate3DZ(m.Rotation.Z)
	return rx.Mul4(ry).Mul4(rz)
}

// ModelMatrix is translation * rotation * scale.
func (m *Mesh) ModelMatrix() mgl64.Mat4 {
	t := mgl64.Translate3D(m.Position.X, m.Position.Y, m.Position.Z)
	s := mgl64.Scale3D(m.Scale.X, m.Scale.Y, m.Scale.Z)
	return t.Mul4(m.RotationMatrix()).Mul4(s)
}
