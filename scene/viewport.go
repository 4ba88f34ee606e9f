package scene

// Viewport is the size of the drawing surface in pixels.
type Viewport struct {
	Width  int
	Height int
	Aspect float64
}

// NewViewport creates a Viewport of the given size.
func NewViewport(width, height int) Viewport {
	v := Viewport{Aspect: 1}
	v.Resize(width, height)
	return v
}

// Resize updates the size and aspect ratio. Non-positive dimensions are
// ignored so the aspect stays finite while a window is minimised.
func (v *Viewport) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if v.Width == width && v.Height == height {
		return false
	}
	v.Width = width
	v.Height = height
	v.Aspect = float64(width) / float64(height)
	return true
}

// Normalize maps pixel coordinates to normalised device coordinates with y up.
func (v Viewport) Normalize(x, y float64) (float64, float64) {
	if v.Width <= 0 || v.Height <= 0 {
		return 0, 0
	}
	nx := (x/float64(v.Width))*2 - 1
	ny := -(y/float64(v.Height))*2 + 1
	return nx, ny
}
