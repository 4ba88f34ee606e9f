package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// A Vertex is a point of a face with its texture coordinates. V grows upwards.
type Vertex struct {
	Pos  mgl64.Vec3
	U, V float64
}

// A Face is one flat side of the geometry, split into a grid of triangles.
type Face struct {
	Normal   mgl64.Vec3
	Vertices []Vertex
	Indices  []uint16
}

// Geometry is a set of flat faces in model space.
type Geometry struct {
	Width, Height, Depth float64
	Faces                []Face
}

// NewBoxGeometry builds a box centred on the origin. Every face is split
// into segments x segments quads, which keeps the affine texture mapping of
// each triangle close to perspective correct.
func NewBoxGeometry(width, height, depth float64, segments int) *Geometry {
	g := &Geometry{Width: width, Height: height, Depth: depth}
	hw, hh, hd := width/2, height/2, depth/2

	// origin, u axis, v axis, normal
	sides := [][4]mgl64.Vec3{
		{{hw, -hh, hd}, {0, 0, -depth}, {0, height, 0}, {1, 0, 0}},
		{{-hw, -hh, -hd}, {0, 0, depth}, {0, height, 0}, {-1, 0, 0}},
		{{-hw, hh, hd}, {width, 0, 0}, {0, 0, -depth}, {0, 1, 0}},
		{{-hw, -hh, -hd}, {width, 0, 0}, {0, 0, depth}, {0, -1, 0}},
		{{-hw, -hh, hd}, {width, 0, 0}, {0, height, 0}, {0, 0, 1}},
		{{hw, -hh, -hd}, {-width, 0, 0}, {0, height, 0}, {0, 0, -1}},
	}
	for _, s := range sides {
		g.Faces = append(g.Faces, gridFace(s[0], s[1], s[2], s[3], segments))
	}
	return g
}

// NewPlaneGeometry builds a double sided plane facing +Z.
func NewPlaneGeometry(width, height float64, segments int) *Geometry {
	g := &Geometry{Width: width, Height: height}
	hw, hh := width/2, height/2
	g.Faces = []Face{
		gridFace(mgl64.Vec3{-hw, -hh, 0}, mgl64.Vec3{width, 0, 0}, mgl64.Vec3{0, height, 0}, mgl64.Vec3{0, 0, 1}, segments),
		gridFace(mgl64.Vec3{hw, -hh, 0}, mgl64.Vec3{-width, 0, 0}, mgl64.Vec3{0, height, 0}, mgl64.Vec3{0, 0, -1}, segments),
	}
	return g
}

// Flat reports whether the geometry is a plane.
func (g *Geometry) Flat() bool {
	return g.Depth == 0
}

func gridFace(origin, uAxis, vAxis, normal mgl64.Vec3, segments int) Face {
	if segments < 1 {
		segments = 1
	}
	n := segments + 1
	f := Face{
		Normal:   normal,
		Vertices: make([]Vertex, 0, n*n),
		Indices:  make([]uint16, 0, segments*segments*6),
	}
	for j := 0; j < n; j++ {
		v := float64(j) / float64(segments)
		for i := 0; i < n; i++ {
			u := float64(i) / float64(segments)
			pos := origin.Add(uAxis.Mul(u)).Add(vAxis.Mul(v))
			f.Vertices = append(f.Vertices, Vertex{Pos: pos, U: u, V: v})
		}
	}
	for j := 0; j < segments; j++ {
		for i := 0; i < segments; i++ {
			a := uint16(j*n + i)
			b := a + 1
			c := a + uint16(n)
			d := c + 1
			f.Indices = append(f.Indices, a, b, d, a, d, c)
		}
	}
	return f
}
