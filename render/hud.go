package render

import (
	"fmt"
	"image/color"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/matt-g-everett/logocube/scene"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type hud struct {
	face   font.Face
	height int
}

func newHud(size float64) (*hud, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("hud font: %w", err)
	}
	face := truetype.NewFace(tt, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	return &hud{face: face, height: face.Metrics().Height.Ceil()}, nil
}

func (h *hud) draw(screen *ebiten.Image, s scene.State) {
	lines := []string{
		fmt.Sprintf("frame %d  %dx%d", s.Frame, s.Width, s.Height),
		fmt.Sprintf("spin %.3f  scale %.2f", s.SpinSpeed, s.Scale.X),
		fmt.Sprintf("pos %.2f, %.2f", s.Position.X, s.Position.Y),
	}
	for i, l := range lines {
		text.Draw(screen, l, h.face, 8, 8+h.height*(i+1), color.Gray{Y: 0x40})
	}
}
