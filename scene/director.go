package scene

import (
	"context"
	"image"
	"math"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/logocube/tween"
	"github.com/matt-g-everett/logocube/util"
	"go.uber.org/zap"
)

// Director owns the camera, the viewport and the single logo mesh, and
// animates the mesh every frame and on pointer presses. Apart from Snapshot
// its methods must be called from one goroutine.
type Director struct {
	cfg  Config
	log  *zap.Logger
	rng  *rand.Rand
	tick time.Duration

	moveEase  tween.Func
	pulseEase tween.Func

	Viewport   Viewport
	Camera     *Camera
	Mesh       *Mesh
	Lights     *Lighting
	ClearColor colorful.Color
	Texture    image.Image
	SpinSpeed  float64

	timeline *tween.Timeline
	frame    uint64
	state    atomic.Pointer[State]
}

// An Option customises a Director.
type Option func(*Director)

// WithRand sets the random source used for movement.
func WithRand(rng *rand.Rand) Option {
	return func(d *Director) {
		d.rng = rng
	}
}

// NewDirector creates an instance of a Director. Init must be called before
// the first frame.
func NewDirector(cfg Config, logger *zap.Logger, opts ...Option) (*Director, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	d := new(Director)
	d.cfg = cfg
	d.log = logger
	if d.log == nil {
		d.log = zap.NewNop()
	}
	d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	d.tick = time.Second / time.Duration(cfg.Window.TPS)
	var err error
	if d.moveEase, err = tween.Lookup(cfg.Interaction.MoveEase); err != nil {
		return nil, err
	}
	if d.pulseEase, err = tween.Lookup(cfg.Interaction.PulseEase); err != nil {
		return nil, err
	}
	d.timeline = tween.NewTimeline()

	for _, opt := range opts {
		opt(d)
	}

	d.state.Store(&State{})
	return d, nil
}

// Init constructs the camera, mesh and lights and loads the texture. A
// texture that fails to load is logged and the mesh is drawn untextured.
func (d *Director) Init(width, height int) {
	d.Viewport = NewViewport(width, height)

	cam := d.cfg.Camera
	d.Camera = NewCamera(cam.Fov, d.Viewport.Aspect, cam.Near, cam.Far)
	d.Camera.SetPosition(0, 0, cam.Z)

	cube := d.cfg.Cube
	var geometry *Geometry
	if cube.Depth == 0 {
		geometry = NewPlaneGeometry(cube.Width, cube.Height, cube.Segments)
	} else {
		geometry = NewBoxGeometry(cube.Width, cube.Height, cube.Depth, cube.Segments)
	}
	d.Mesh = NewMesh(geometry, Material{Roughness: cube.Roughness, Metalness: cube.Metalness})

	// Validate already checked the colours.
	d.Lights, _ = NewLighting(d.cfg.Lights)
	d.ClearColor, _ = colorful.Hex(d.cfg.ClearColor)

	d.SpinSpeed = d.cfg.Interaction.InitialSpin

	if d.cfg.Texture.Path != "" {
		tex, err := LoadTexture(d.cfg.Texture.Path, d.cfg.Texture.MaxSize)
		if err != nil {
			d.log.Error("An error occurred while loading the texture",
				zap.String("path", d.cfg.Texture.Path), zap.Error(err))
		} else {
			d.Texture = tex
			b := tex.Bounds()
			d.log.Info("Texture loaded", zap.String("path", d.cfg.Texture.Path),
				zap.Int("width", b.Dx()), zap.Int("height", b.Dy()))
		}
	}

	d.publish()
}

// OnFrame advances the tweens by one tick and spins the mesh.
func (d *Director) OnFrame() {
	d.timeline.Advance(d.tick)

	if d.Mesh.Geometry.Flat() {
		d.Mesh.Rotation.Y += d.SpinSpeed
	} else {
		d.Mesh.Rotation.X += d.SpinSpeed
		d.Mesh.Rotation.Y += d.SpinSpeed
	}

	d.frame++
	d.publish()
}

// Step runs one iteration of a host loop: queued events are applied, then one
// frame is rendered. Once ctx is done it returns ctx.Err() without rendering.
func (d *Director) Step(ctx context.Context, inbox <-chan PointerEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if inbox != nil {
		d.Drain(inbox)
	}
	d.OnFrame()
	return nil
}

// Tick returns the time each frame advances the tweens by.
func (d *Director) Tick() time.Duration {
	return d.tick
}

// OnResize updates the viewport and the camera aspect.
func (d *Director) OnResize(width, height int) {
	if !d.Viewport.Resize(width, height) {
		return
	}
	d.Camera.Aspect = d.Viewport.Aspect
	d.Camera.UpdateProjection()
	d.log.Debug("Viewport resized", zap.Int("width", width), zap.Int("height", height))
}

// Bounds returns how far the mesh centre may move from the origin on X and Y
// while its unscaled, unrotated cross section through the centre stays inside
// the view frustum. Nearer faces and corners may cross the edge, most of all
// while the mesh pulses or spins.
func (d *Director) Bounds() (float64, float64) {
	halfW, halfH := d.Camera.VisibleHalfExtents(d.Camera.Position.Z() - d.Mesh.Position.Z)
	g := d.Mesh.Geometry
	bx := math.Max(0, halfW-g.Width/2)
	by := math.Max(0, halfH-g.Height/2)
	return bx, by
}

// SpinFor derives the spin speed for a press at normalised device coordinates.
func (d *Director) SpinFor(nx, ny float64) float64 {
	ic := d.cfg.Interaction
	return util.Clamp((math.Abs(nx)+math.Abs(ny))*ic.SpinGain, ic.MinSpin, ic.MaxSpin)
}

// OnPointer reacts to a press at pixel coordinates x, y: the spin speed
// follows the distance from the centre, the mesh jumps to a random nearby
// position and pulses in scale and roll.
func (d *Director) OnPointer(x, y float64) {
	ic := d.cfg.Interaction
	nx, ny := d.Viewport.Normalize(x, y)

	if world, err := d.Camera.Unproject(mgl64.Vec3{nx, ny, 0.5}); err == nil {
		d.log.Debug("Pointer", zap.Float64("x", x), zap.Float64("y", y),
			zap.Float64("worldX", world.X()), zap.Float64("worldY", world.Y()), zap.Float64("worldZ", world.Z()))
	}

	d.SpinSpeed = d.SpinFor(nx, ny)

	bx, by := d.Bounds()
	newX := util.Clamp(d.Mesh.Position.X+util.RandomSpread(d.rng, ic.MoveRange), -bx, bx)
	newY := util.Clamp(d.Mesh.Position.Y+util.RandomSpread(d.rng, ic.MoveRange), -by, by)

	pos := &d.Mesh.Position
	d.timeline.To(ic.MoveDuration, d.moveEase, tween.Prop(&pos.X, newX), tween.Prop(&pos.Y, newY)).
		OnComplete(func() {
			if newX != -bx && newX != bx && newY != -by && newY != by {
				return
			}
			backX := util.Clamp(newX+bounceBack(newX, bx), -bx, bx)
			backY := util.Clamp(newY+bounceBack(newY, by), -by, by)
			d.timeline.To(ic.MoveDuration, d.moveEase, tween.Prop(&pos.X, backX), tween.Prop(&pos.Y, backY))
		})

	d.pulse(ic.PulseScale, ic.PulseRotation)
	d.timeline.After(ic.RevertDelay, func() {
		d.pulse(1, -ic.PulseRotation)
	})
}

func (d *Director) pulse(scale, roll float64) {
	ic := d.cfg.Interaction
	s := &d.Mesh.Scale
	d.timeline.To(ic.PulseDuration, d.pulseEase, tween.Prop(&s.X, scale), tween.Prop(&s.Y, scale), tween.Prop(&s.Z, scale))
	d.timeline.To(ic.PulseDuration, d.pulseEase, tween.By(&d.Mesh.Rotation.Z, roll))
}

// bounceBack moves a coordinate resting on a bound half way back towards the
// opposite side of its remaining room.
func bounceBack(v, bound float64) float64 {
	dir := -1.0
	if v == -bound {
		dir = 1
	}
	return dir * (bound - math.Abs(v)) * 0.5
}

// Dispatch applies ev. Normalized coordinates are scaled to the viewport.
func (d *Director) Dispatch(ev PointerEvent) {
	x, y := ev.X, ev.Y
	if ev.Normalized {
		x *= float64(d.Viewport.Width)
		y *= float64(d.Viewport.Height)
	}
	d.OnPointer(x, y)
}

// Drain dispatches every event queued in inbox without blocking.
func (d *Director) Drain(inbox <-chan PointerEvent) int {
	n := 0
	for {
		select {
		case ev := <-inbox:
			d.Dispatch(ev)
			n++
		default:
			return n
		}
	}
}

// Timeline exposes the tween timeline driving the mesh.
func (d *Director) Timeline() *tween.Timeline {
	return d.timeline
}

// Frame returns the number of frames rendered so far.
func (d *Director) Frame() uint64 {
	return d.frame
}

// Snapshot returns the state published after the last frame. It is safe to
// call from any goroutine.
func (d *Director) Snapshot() State {
	return *d.state.Load()
}

func (d *Director) publish() {
	m := d.Mesh
	d.state.Store(&State{
		Frame:     d.frame,
		Width:     d.Viewport.Width,
		Height:    d.Viewport.Height,
		Aspect:    d.Viewport.Aspect,
		Position:  m.Position,
		Rotation:  m.Rotation,
		Scale:     m.Scale,
		SpinSpeed: d.SpinSpeed,
		Textured:  d.Texture != nil,
	})
}
