package scene

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// PointLight emits from a position and fades out to zero at Distance.
type PointLight struct {
	Color     colorful.Color
	Intensity float64
	Distance  float64
	Decay     float64
	Position  mgl64.Vec3
}

// Lighting is an ambient term plus any number of point lights.
type Lighting struct {
	Ambient colorful.Color
	Points  []PointLight
}

// NewLighting builds the lights described by cfg.
func NewLighting(cfg LightsConfig) (*Lighting, error) {
	l := new(Lighting)

	ambient, err := colorful.Hex(cfg.Ambient.Color)
	if err != nil {
		return nil, fmt.Errorf("ambient light: %w", err)
	}
	l.Ambient = scaleColor(ambient, cfg.Ambient.Intensity)

	for i, p := range cfg.Points {
		c, err := colorful.Hex(p.Color)
		if err != nil {
			return nil, fmt.Errorf("point light %d: %w", i, err)
		}
		if len(p.Position) != 3 {
			return nil, fmt.Errorf("point light %d: position needs 3 components", i)
		}
		l.Points = append(l.Points, PointLight{
			Color:     c,
			Intensity: p.Intensity,
			Distance:  p.Distance,
			Decay:     p.Decay,
			Position:  mgl64.Vec3{p.Position[0], p.Position[1], p.Position[2]},
		})
	}

	return l, nil
}

func (p PointLight) attenuation(distance float64) float64 {
	if p.Distance <= 0 {
		return 1
	}
	f := 1 - distance/p.Distance
	if f <= 0 {
		return 0
	}
	return math.Pow(f, p.Decay)
}

// Shade returns the light reflected towards eye by a flat surface at point
// with the given unit normal. The result multiplies the surface texture.
func (l *Lighting) Shade(m Material, point, normal, eye mgl64.Vec3) colorful.Color {
	diffuse := 1 - 0.5*m.Metalness
	specular := 0.04 + 0.96*m.Metalness*(1-m.Roughness)
	shininess := 2/math.Max(math.Pow(m.Roughness, 4), 1e-4) - 2
	shininess = math.Max(1, math.Min(256, shininess))

	out := scaleColor(l.Ambient, diffuse)
	view := eye.Sub(point).Normalize()
	for _, p := range l.Points {
		toLight := p.Position.Sub(point)
		att := p.attenuation(toLight.Len()) * p.Intensity
		if att == 0 {
			continue
		}
		dir := toLight.Normalize()
		ndotl := normal.Dot(dir)
		if ndotl <= 0 {
			continue
		}

		half := dir.Add(view).Normalize()
		spec := math.Pow(math.Max(0, normal.Dot(half)), shininess) * specular

		k := att * (ndotl*diffuse + spec)
		out = addColor(out, scaleColor(p.Color, k))
	}

	return out.Clamped()
}

func scaleColor(c colorful.Color, k float64) colorful.Color {
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}
}

func addColor(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B}
}
