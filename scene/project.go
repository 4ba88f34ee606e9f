package scene

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// ScreenVertex is a projected vertex in pixels, y down, with texture
// coordinates in [0, 1], v down.
type ScreenVertex struct {
	X, Y float32
	U, V float32
}

// DrawFace is a visible face ready to be rasterised.
type DrawFace struct {
	Vertices []ScreenVertex
	Indices  []uint16
	Color    colorful.Color
	Depth    float64
}

// Project transforms the mesh into screen space. Faces turned away from the
// camera or crossing the camera plane are dropped; the rest are ordered far
// to near.
func (d *Director) Project() []DrawFace {
	m := d.Mesh
	model := m.ModelMatrix()
	rot := m.RotationMatrix()
	mvp := d.Camera.Projection().Mul4(d.Camera.View()).Mul4(model)
	eye := d.Camera.Position
	w, h := float64(d.Viewport.Width), float64(d.Viewport.Height)

	faces := make([]DrawFace, 0, len(m.Geometry.Faces))
	for _, f := range m.Geometry.Faces {
		normal := rot.Mul4x1(f.Normal.Vec4(0)).Vec3().Normalize()
		centre := model.Mul4x1(faceCentre(f).Vec4(1)).Vec3()
		if normal.Dot(eye.Sub(centre)) <= 0 {
			continue
		}

		out := DrawFace{
			Vertices: make([]ScreenVertex, 0, len(f.Vertices)),
			Indices:  f.Indices,
			Color:    d.Lights.Shade(m.Material, centre, normal, eye),
			Depth:    eye.Sub(centre).Len(),
		}
		visible := true
		for _, v := range f.Vertices {
			clip := mvp.Mul4x1(v.Pos.Vec4(1))
			if clip.W() <= 0 {
				visible = false
				break
			}
			ndc := clip.Vec3().Mul(1 / clip.W())
			out.Vertices = append(out.Vertices, ScreenVertex{
				X: float32((ndc.X() + 1) / 2 * w),
				Y: float32((1 - ndc.Y()) / 2 * h),
				U: float32(v.U),
				V: float32(1 - v.V),
			})
		}
		if visible {
			faces = append(faces, out)
		}
	}

	sort.SliceStable(faces, func(i, j int) bool {
		return faces[i].Depth > faces[j].Depth
	})
	return faces
}

func faceCentre(f Face) mgl64.Vec3 {
	var c mgl64.Vec3
	for _, v := range f.Vertices {
		c = c.Add(v.Pos)
	}
	return c.Mul(1 / float64(len(f.Vertices)))
}
