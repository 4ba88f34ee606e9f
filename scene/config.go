package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/logocube/logging"
	"github.com/matt-g-everett/logocube/tween"
	"gopkg.in/yaml.v2"
)

// Config is the complete application configuration.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Camera      CameraConfig      `yaml:"camera"`
	Cube        CubeConfig        `yaml:"cube"`
	Texture     TextureConfig     `yaml:"texture"`
	ClearColor  string            `yaml:"clearColor"`
	Lights      LightsConfig      `yaml:"lights"`
	Interaction InteractionConfig `yaml:"interaction"`
	Hud         HudConfig         `yaml:"hud"`
	Log         logging.Config    `yaml:"log"`
	Mqtt        MqttConfig        `yaml:"mqtt"`
	Api         ApiConfig         `yaml:"api"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
}

type CameraConfig struct {
	Fov  float64 `yaml:"fov"`
	Near float64 `yaml:"near"`
	Far  float64 `yaml:"far"`
	Z    float64 `yaml:"z"`
}

// CubeConfig describes the box mesh. A zero Depth gives a flat logo plane.
type CubeConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Depth     float64 `yaml:"depth"`
	Segments  int     `yaml:"segments"`
	Roughness float64 `yaml:"roughness"`
	Metalness float64 `yaml:"metalness"`
}

type TextureConfig struct {
	Path    string `yaml:"path"`
	MaxSize int    `yaml:"maxSize"`
}

type PointLightConfig struct {
	Color     string    `yaml:"color"`
	Intensity float64   `yaml:"intensity"`
	Distance  float64   `yaml:"distance"`
	Decay     float64   `yaml:"decay"`
	Position  []float64 `yaml:"position"`
}

type LightsConfig struct {
	Ambient struct {
		Color     string  `yaml:"color"`
		Intensity float64 `yaml:"intensity"`
	} `yaml:"ambient"`
	Points []PointLightConfig `yaml:"points"`
}

// InteractionConfig holds the constants of the pointer reaction.
type InteractionConfig struct {
	InitialSpin   float64       `yaml:"initialSpin"`
	MinSpin       float64       `yaml:"minSpin"`
	MaxSpin       float64       `yaml:"maxSpin"`
	SpinGain      float64       `yaml:"spinGain"`
	MoveRange     float64       `yaml:"moveRange"`
	MoveDuration  time.Duration `yaml:"moveDuration"`
	MoveEase      string        `yaml:"moveEase"`
	PulseScale    float64       `yaml:"pulseScale"`
	PulseRotation float64       `yaml:"pulseRotation"`
	PulseDuration time.Duration `yaml:"pulseDuration"`
	PulseEase     string        `yaml:"pulseEase"`
	RevertDelay   time.Duration `yaml:"revertDelay"`
}

type HudConfig struct {
	Enabled bool    `yaml:"enabled"`
	Size    float64 `yaml:"size"`
}

type MqttConfig struct {
	Enabled         bool          `yaml:"enabled"`
	URL             string        `yaml:"url"`
	Username        string        `yaml:"username"`
	Password        string        `yaml:"password"`
	ClientID        string        `yaml:"clientID"`
	PublishInterval time.Duration `yaml:"publishInterval"`
	Topics          struct {
		Pointer string `yaml:"pointer"`
		State   string `yaml:"state"`
	} `yaml:"topics"`
}

type ApiConfig struct {
	Addr string `yaml:"addr"`
}

// DefaultConfig returns the configuration of the original logo scene.
func DefaultConfig() Config {
	var c Config

	c.Window.Title = "logocube"
	c.Window.Width = 1024
	c.Window.Height = 768
	c.Window.TPS = 60

	c.Camera.Fov = 75
	c.Camera.Near = 0.1
	c.Camera.Far = 1000
	c.Camera.Z = 15

	c.Cube.Width = 5
	c.Cube.Height = 5
	c.Cube.Depth = 5
	c.Cube.Segments = 4
	c.Cube.Roughness = 0.5
	c.Cube.Metalness = 0.5

	c.Texture.Path = "lafourmi.png"
	c.Texture.MaxSize = 1024

	c.ClearColor = "#ffffff"

	c.Lights.Ambient.Color = "#404040"
	c.Lights.Ambient.Intensity = 1
	c.Lights.Points = []PointLightConfig{
		{Color: "#ffffff", Intensity: 1, Distance: 100, Decay: 2, Position: []float64{10, 10, 10}},
		{Color: "#ffffff", Intensity: 0.5, Distance: 100, Decay: 2, Position: []float64{-10, -10, 10}},
	}

	c.Interaction.InitialSpin = 0.01
	c.Interaction.MinSpin = 0.01
	c.Interaction.MaxSpin = 0.1
	c.Interaction.SpinGain = 0.1
	c.Interaction.MoveRange = 10
	c.Interaction.MoveDuration = time.Second
	c.Interaction.MoveEase = "bounce.out"
	c.Interaction.PulseScale = 1.5
	c.Interaction.PulseRotation = 0.7853981633974483
	c.Interaction.PulseDuration = 300 * time.Millisecond
	c.Interaction.PulseEase = "power1.inOut"
	c.Interaction.RevertDelay = 300 * time.Millisecond

	c.Hud.Size = 14

	c.Log.Level = "info"
	c.Log.MaxSizeMB = 10
	c.Log.MaxBackups = 3
	c.Log.MaxAgeDays = 7

	c.Mqtt.URL = "tcp://localhost:1883"
	c.Mqtt.ClientID = "logocube"
	c.Mqtt.PublishInterval = 100 * time.Millisecond
	c.Mqtt.Topics.Pointer = "logocube/pointer"
	c.Mqtt.Topics.State = "logocube/state"

	return c
}

// LoadConfig reads YAML from path over the defaults. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return DecodeConfig(f)
}

// DecodeConfig decodes YAML over the defaults and validates the result.
func DecodeConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window tps %d must be positive", c.Window.TPS)
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		return fmt.Errorf("camera fov %v out of range", c.Camera.Fov)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("camera clip planes near=%v far=%v invalid", c.Camera.Near, c.Camera.Far)
	}
	if c.Cube.Width <= 0 || c.Cube.Height <= 0 || c.Cube.Depth < 0 {
		return fmt.Errorf("cube size %vx%vx%v invalid", c.Cube.Width, c.Cube.Height, c.Cube.Depth)
	}
	if c.Cube.Segments < 1 || c.Cube.Segments > 32 {
		return fmt.Errorf("cube segments %d out of range [1, 32]", c.Cube.Segments)
	}
	if c.Interaction.MinSpin > c.Interaction.MaxSpin {
		return fmt.Errorf("minSpin %v greater than maxSpin %v", c.Interaction.MinSpin, c.Interaction.MaxSpin)
	}
	if c.Interaction.MoveDuration < 0 || c.Interaction.PulseDuration < 0 || c.Interaction.RevertDelay < 0 {
		return errors.New("interaction durations must not be negative")
	}
	for _, name := range []string{c.Interaction.MoveEase, c.Interaction.PulseEase} {
		if _, err := tween.Lookup(name); err != nil {
			return fmt.Errorf("interaction: %w", err)
		}
	}
	for _, hex := range []string{c.ClearColor, c.Lights.Ambient.Color} {
		if _, err := colorful.Hex(hex); err != nil {
			return fmt.Errorf("colour %q: %w", hex, err)
		}
	}
	for i, p := range c.Lights.Points {
		if _, err := colorful.Hex(p.Color); err != nil {
			return fmt.Errorf("point light %d colour %q: %w", i, p.Color, err)
		}
		if len(p.Position) != 3 {
			return fmt.Errorf("point light %d position needs 3 components, got %d", i, len(p.Position))
		}
	}
	if c.Hud.Enabled && c.Hud.Size <= 0 {
		return fmt.Errorf("hud size %v must be positive", c.Hud.Size)
	}
	if c.Mqtt.Enabled && c.Mqtt.PublishInterval <= 0 {
		return fmt.Errorf("mqtt publishInterval %v must be positive", c.Mqtt.PublishInterval)
	}
	return nil
}
