package scene

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}
	path := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestLoadTextureScalesDown(t *testing.T) {
	path := writePNG(t, 400, 200)

	img, err := LoadTexture(path, 100)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 50), img.Bounds())

	img, err = LoadTexture(path, 0)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
}

func TestLoadTextureErrors(t *testing.T) {
	_, err := LoadTexture(filepath.Join(t.TempDir(), "none.png"), 0)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	_, err = LoadTexture(path, 0)
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestDirectorLoadsTexture(t *testing.T) {
	path := writePNG(t, 64, 64)
	d, logs := newTestDirector(t, 1, func(c *Config) { c.Texture.Path = path })
	require.NotNil(t, d.Texture)
	assert.True(t, d.Snapshot().Textured)
	assert.Equal(t, 1, logs.FilterMessage("Texture loaded").Len())
}
