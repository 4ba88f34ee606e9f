package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeConfigOverridesDefaults(t *testing.T) {
	const doc = `
window:
  width: 640
  height: 480
cube:
  depth: 0
interaction:
  revertDelay: 500ms
  moveEase: elastic.out
lights:
  points:
    - color: "#ff0000"
      intensity: 2
      distance: 50
      position: [0, 5, 5]
mqtt:
  enabled: true
  topics:
    pointer: tree/pointer
`
	c, err := DecodeConfig(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 640, c.Window.Width)
	assert.Equal(t, 60, c.Window.TPS)
	assert.Equal(t, 0.0, c.Cube.Depth)
	assert.Equal(t, 5.0, c.Cube.Width)
	assert.Equal(t, 500*time.Millisecond, c.Interaction.RevertDelay)
	assert.Equal(t, "elastic.out", c.Interaction.MoveEase)
	require.Len(t, c.Lights.Points, 1)
	assert.Equal(t, []float64{0, 5, 5}, c.Lights.Points[0].Position)
	assert.Equal(t, "tree/pointer", c.Mqtt.Topics.Pointer)
	assert.Equal(t, "logocube/state", c.Mqtt.Topics.State)
}

func TestDecodeConfigEmpty(t *testing.T) {
	c, err := DecodeConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestDecodeConfigRejects(t *testing.T) {
	tests := map[string]string{
		"syntax":     "window: [",
		"ease":       "interaction: {pulseEase: wobble}",
		"spin range": "interaction: {minSpin: 0.5, maxSpin: 0.1}",
		"colour":     "clearColor: white",
		"position":   "lights: {points: [{color: '#ffffff', position: [1, 2]}]}",
		"segments":   "cube: {segments: 0}",
		"fov":        "camera: {fov: 180}",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeConfig(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("clearColor: '#000000'\n"), 0o644))
	c, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "#000000", c.ClearColor)
}
