package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxGeometry(t *testing.T) {
	g := NewBoxGeometry(5, 5, 5, 3)
	require.Len(t, g.Faces, 6)
	for _, f := range g.Faces {
		assert.Len(t, f.Vertices, 16)
		assert.Len(t, f.Indices, 54)
		for _, v := range f.Vertices {
			// every vertex lies on its face plane
			assert.InDelta(t, 2.5, v.Pos.Dot(f.Normal), 1e-9)
		}
	}
	assert.False(t, g.Flat())
	assert.True(t, NewPlaneGeometry(5, 5, 1).Flat())
}

func TestProjectFrontFaceOnly(t *testing.T) {
	d, _ := newTestDirector(t, 1, nil)
	faces := d.Project()
	require.Len(t, faces, 1)

	f := faces[0]
	minX, maxX := f.Vertices[0].X, f.Vertices[0].X
	for _, v := range f.Vertices {
		minX = min(minX, v.X)
		maxX = max(maxX, v.X)
		assert.GreaterOrEqual(t, v.U, float32(0))
		assert.LessOrEqual(t, v.V, float32(1))
	}
	assert.InDelta(t, 512, (minX+maxX)/2, 1e-3)
	assert.Less(t, minX, maxX)
}

func TestProjectRotatedCube(t *testing.T) {
	d, _ := newTestDirector(t, 1, nil)
	d.Mesh.Rotation = Vec3{0.6, 0.7, 0.2}
	faces := d.Project()
	assert.GreaterOrEqual(t, len(faces), 2)
	assert.LessOrEqual(t, len(faces), 3)
	for i := 1; i < len(faces); i++ {
		assert.GreaterOrEqual(t, faces[i-1].Depth, faces[i].Depth)
	}
}

func TestProjectPlaneShowsOneSide(t *testing.T) {
	d, _ := newTestDirector(t, 1, func(c *Config) { c.Cube.Depth = 0 })
	for _, y := range []float64{0, 1, 2, 3, 4, 5} {
		d.Mesh.Rotation.Y = y
		assert.Len(t, d.Project(), 1)
	}
}

func TestShadeFacingLightIsBrighter(t *testing.T) {
	d, _ := newTestDirector(t, 1, nil)
	eye := mgl64.Vec3{0, 0, 15}
	p := mgl64.Vec3{0, 0, 2.5}

	towards := d.Lights.Shade(d.Mesh.Material, p, mgl64.Vec3{1, 1, 1}.Normalize(), eye)
	away := d.Lights.Shade(d.Mesh.Material, p, mgl64.Vec3{0, 0, -1}, eye)

	assert.Greater(t, towards.R, away.R)
	for _, c := range []float64{towards.R, towards.G, towards.B, away.R, away.G, away.B} {
		assert.GreaterOrEqual(t, c, 0.0)
		assert.LessOrEqual(t, c, 1.0)
	}
	// only the ambient term reaches a face turned away from every light
	assert.InDelta(t, d.Lights.Ambient.R*0.75, away.R, 1e-9)
}

func TestUnprojectCentre(t *testing.T) {
	d, _ := newTestDirector(t, 1, nil)
	p, err := d.Camera.Unproject(mgl64.Vec3{0, 0, 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 0, p.X(), 1e-6)
	assert.InDelta(t, 0, p.Y(), 1e-6)
	assert.Less(t, p.Z(), 15.0)
}

func TestBoundsKeepCentreSectionInView(t *testing.T) {
	d, _ := newTestDirector(t, 1, nil)
	bx, by := d.Bounds()

	corner := mgl64.Vec4{bx + d.Mesh.Geometry.Width/2, by + d.Mesh.Geometry.Height/2, 0, 1}
	clip := d.Camera.Projection().Mul4(d.Camera.View()).Mul4x1(corner)
	assert.InDelta(t, 1, clip.X()/clip.W(), 1e-9)
	assert.InDelta(t, 1, clip.Y()/clip.W(), 1e-9)

	// The front face sits nearer the camera and so reaches past the edge.
	front := mgl64.Vec4{corner.X(), corner.Y(), d.Mesh.Geometry.Depth / 2, 1}
	clip = d.Camera.Projection().Mul4(d.Camera.View()).Mul4x1(front)
	assert.Greater(t, clip.X()/clip.W(), 1.0)
}
