package render

import (
	"context"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/matt-g-everett/logocube/scene"
	"go.uber.org/zap"
)

// Game adapts a scene.Director to ebiten's update and draw loop.
type Game struct {
	ctx      context.Context
	director *scene.Director
	inbox    <-chan scene.PointerEvent
	log      *zap.Logger
	hud      *hud

	texture *ebiten.Image
	white   *ebiten.Image

	touchIDs []ebiten.TouchID
	vertices []ebiten.Vertex
	indices  []uint16
	width    int
	height   int
}

// NewGame creates an instance of a Game. The director must already be
// initialised. The window closes once ctx is done.
func NewGame(ctx context.Context, d *scene.Director, inbox <-chan scene.PointerEvent, hudCfg scene.HudConfig, logger *zap.Logger) (*Game, error) {
	g := new(Game)
	g.ctx = ctx
	g.director = d
	g.inbox = inbox
	g.log = logger
	g.width = d.Viewport.Width
	g.height = d.Viewport.Height

	if hudCfg.Enabled {
		h, err := newHud(hudCfg.Size)
		if err != nil {
			return nil, err
		}
		g.hud = h
	}

	return g, nil
}

// Run opens the window and blocks until it is closed or the game's context
// is done.
func Run(g *Game, window scene.WindowConfig) error {
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(window.TPS)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.director.OnPointer(float64(x), float64(y))
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.director.OnPointer(float64(x), float64(y))
	}

	if err := g.director.Step(g.ctx, g.inbox); err != nil {
		g.log.Info("Closing window", zap.Error(err))
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	d := g.director
	screen.Fill(d.ClearColor)

	src := g.source()
	b := src.Bounds()
	sw, sh := float32(b.Dx()), float32(b.Dy())
	ox, oy := float32(b.Min.X), float32(b.Min.Y)

	op := &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear}
	for _, f := range d.Project() {
		cr, cg, cb := float32(f.Color.R), float32(f.Color.G), float32(f.Color.B)
		g.vertices = g.vertices[:0]
		for _, v := range f.Vertices {
			g.vertices = append(g.vertices, ebiten.Vertex{
				DstX:   v.X,
				DstY:   v.Y,
				SrcX:   ox + v.U*sw,
				SrcY:   oy + v.V*sh,
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: 1,
			})
		}
		g.indices = append(g.indices[:0], f.Indices...)
		screen.DrawTriangles(g.vertices, g.indices, src, op)
	}

	if g.hud != nil {
		g.hud.draw(screen, d.Snapshot())
	}
}

// source returns the texture, or a single white pixel when there is none.
func (g *Game) source() *ebiten.Image {
	if g.texture == nil && g.director.Texture != nil {
		g.texture = ebiten.NewImageFromImage(g.director.Texture)
		b := g.texture.Bounds()
		g.log.Debug("Texture uploaded", zap.Int("width", b.Dx()), zap.Int("height", b.Dy()))
	}
	if g.texture != nil {
		return g.texture
	}
	if g.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		g.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return g.white
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.director.OnResize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
