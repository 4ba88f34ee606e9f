package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// A Camera is a perspective camera looking down -Z.
type Camera struct {
	Fov      float64
	Aspect   float64
	Near     float64
	Far      float64
	Position mgl64.Vec3

	projection mgl64.Mat4
	view       mgl64.Mat4
}

// NewCamera creates an instance of a Camera. fov is vertical, in degrees.
func NewCamera(fov, aspect, near, far float64) *Camera {
	c := new(Camera)
	c.Fov = fov
	c.Aspect = aspect
	c.Near = near
	c.Far = far
	c.view = mgl64.Ident4()
	c.UpdateProjection()
	return c
}

// SetPosition moves the camera.
func (c *Camera) SetPosition(x, y, z float64) {
	c.Position = mgl64.Vec3{x, y, z}
	c.view = mgl64.Translate3D(-x, -y, -z)
}

// UpdateProjection recomputes the projection matrix after Fov, Aspect, Near
// or Far changed.
func (c *Camera) UpdateProjection() {
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

func (c *Camera) Projection() mgl64.Mat4 {
	return c.projection
}

func (c *Camera) View() mgl64.Mat4 {
	return c.view
}

// VisibleHalfExtents returns half the width and height of the view frustum
// at the given distance in front of the camera.
func (c *Camera) VisibleHalfExtents(distance float64) (float64, float64) {
	halfH := math.Tan(mgl64.DegToRad(c.Fov)/2) * distance
	return halfH * c.Aspect, halfH
}

// Unproject maps a point in normalised device coordinates back to world space.
func (c *Camera) Unproject(ndc mgl64.Vec3) (mgl64.Vec3, error) {
	const size = 2
	win := mgl64.Vec3{(ndc[0] + 1) / 2 * size, (ndc[1] + 1) / 2 * size, (ndc[2] + 1) / 2}
	return mgl64.UnProject(win, c.view, c.projection, 0, 0, size, size)
}
