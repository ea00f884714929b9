// Package config provides configuration loading and access for the ocean effect.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of the backdrop, the cursor follower and the hosts.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Ocean     OceanConfig     `yaml:"ocean"`
	Ripple    RippleConfig    `yaml:"ripple"`
	Ring      RingConfig      `yaml:"ring"`
	Cursor    CursorConfig    `yaml:"cursor"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings for the desktop host.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// OceanConfig holds the background gradient colors.
type OceanConfig struct {
	TopColor    string `yaml:"top_color"`
	BottomColor string `yaml:"bottom_color"`
}

// RippleConfig holds pointer-triggered ripple parameters.
type RippleConfig struct {
	Color      string  `yaml:"color"`
	ColorAlpha float64 `yaml:"color_alpha"` // alpha baked into the stroke color
	Opacity    float64 `yaml:"opacity"`     // peak global alpha before fading
	LifetimeMS float64 `yaml:"lifetime_ms"`
	MinRadius  float64 `yaml:"min_radius"`
	MaxRadius  float64 `yaml:"max_radius"`
	LineWidth  float64 `yaml:"line_width"`
	Points     int     `yaml:"points"` // wobble polygon vertex count
	Wobble     float64 `yaml:"wobble"` // peak-to-peak radial jitter
	Throttle   int     `yaml:"throttle"`
}

// RingConfig holds ambient surface ring parameters.
type RingConfig struct {
	Color       string  `yaml:"color"`
	ColorAlpha  float64 `yaml:"color_alpha"`
	Opacity     float64 `yaml:"opacity"`
	LifetimeMS  float64 `yaml:"lifetime_ms"`
	MinRadius   float64 `yaml:"min_radius"`
	MaxRadius   float64 `yaml:"max_radius"`
	LineWidth   float64 `yaml:"line_width"`
	SpawnRate   float64 `yaml:"spawn_rate"`   // probability per frame
	StartSpread float64 `yaml:"start_spread"` // fraction of the radius range used for initial radii
}

// CursorConfig holds the spring follower parameters.
type CursorConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Size       float64 `yaml:"size"`
	BubbleSize float64 `yaml:"bubble_size"`
	Frequency  float64 `yaml:"frequency"` // angular frequency of both springs
	Damping    float64 `yaml:"damping"`   // damping ratio, 1 = critical
	Color      string  `yaml:"color"`
	GlowAlpha  float64 `yaml:"glow_alpha"`
}

// TelemetryConfig holds stats aggregation settings.
type TelemetryConfig struct {
	WindowFrames int `yaml:"window_frames"`
}

// DerivedConfig holds values computed from the loaded strings.
type DerivedConfig struct {
	OceanTop    color.NRGBA
	OceanBottom color.NRGBA
	RippleColor color.NRGBA
	RingColor   color.NRGBA
	CursorColor color.NRGBA
}

// Default returns the embedded defaults. It panics if they fail to parse.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Finalize validates the configuration and recomputes derived values. Call it
// after mutating fields directly, e.g. from command-line flags.
func (c *Config) Finalize() error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.computeDerived()
}

// Validate checks value ranges. The first violation is returned.
func (c *Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("screen: width and height must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	case c.Screen.TargetFPS <= 0:
		return fmt.Errorf("screen.target_fps must be positive, got %d", c.Screen.TargetFPS)
	case c.Ripple.LifetimeMS <= 0:
		return fmt.Errorf("ripple.lifetime_ms must be positive, got %v", c.Ripple.LifetimeMS)
	case c.Ripple.MinRadius <= 0:
		return fmt.Errorf("ripple.min_radius must be positive, got %v", c.Ripple.MinRadius)
	case c.Ripple.MaxRadius < c.Ripple.MinRadius:
		return fmt.Errorf("ripple.max_radius %v is below min_radius %v", c.Ripple.MaxRadius, c.Ripple.MinRadius)
	case c.Ripple.Points < 3:
		return fmt.Errorf("ripple.points must be at least 3, got %d", c.Ripple.Points)
	case c.Ripple.Wobble < 0:
		return fmt.Errorf("ripple.wobble must not be negative, got %v", c.Ripple.Wobble)
	case c.Ripple.Throttle < 1:
		return fmt.Errorf("ripple.throttle must be at least 1, got %d", c.Ripple.Throttle)
	case c.Ring.LifetimeMS <= 0:
		return fmt.Errorf("ring.lifetime_ms must be positive, got %v", c.Ring.LifetimeMS)
	case c.Ring.MinRadius < 0:
		return fmt.Errorf("ring.min_radius must not be negative, got %v", c.Ring.MinRadius)
	case c.Ring.MaxRadius < c.Ring.MinRadius:
		return fmt.Errorf("ring.max_radius %v is below min_radius %v", c.Ring.MaxRadius, c.Ring.MinRadius)
	case c.Ring.SpawnRate < 0 || c.Ring.SpawnRate > 1:
		return fmt.Errorf("ring.spawn_rate must be within [0,1], got %v", c.Ring.SpawnRate)
	case c.Ring.StartSpread < 0 || c.Ring.StartSpread > 1:
		return fmt.Errorf("ring.start_spread must be within [0,1], got %v", c.Ring.StartSpread)
	case c.Cursor.Size < 0 || c.Cursor.BubbleSize < 0:
		return fmt.Errorf("cursor sizes must not be negative")
	case c.Cursor.Frequency <= 0:
		return fmt.Errorf("cursor.frequency must be positive, got %v", c.Cursor.Frequency)
	case c.Cursor.Damping < 0:
		return fmt.Errorf("cursor.damping must not be negative, got %v", c.Cursor.Damping)
	case c.Telemetry.WindowFrames < 1:
		return fmt.Errorf("telemetry.window_frames must be at least 1, got %d", c.Telemetry.WindowFrames)
	}
	for key, v := range map[string]float64{
		"ripple.color_alpha": c.Ripple.ColorAlpha,
		"ripple.opacity":     c.Ripple.Opacity,
		"ring.color_alpha":   c.Ring.ColorAlpha,
		"ring.opacity":       c.Ring.Opacity,
		"cursor.glow_alpha":  c.Cursor.GlowAlpha,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be within [0,1], got %v", key, v)
		}
	}
	return nil
}

func (c *Config) computeDerived() error {
	var err error
	if c.Derived.OceanTop, err = parseColor("ocean.top_color", c.Ocean.TopColor, 1); err != nil {
		return err
	}
	if c.Derived.OceanBottom, err = parseColor("ocean.bottom_color", c.Ocean.BottomColor, 1); err != nil {
		return err
	}
	if c.Derived.RippleColor, err = parseColor("ripple.color", c.Ripple.Color, c.Ripple.ColorAlpha); err != nil {
		return err
	}
	if c.Derived.RingColor, err = parseColor("ring.color", c.Ring.Color, c.Ring.ColorAlpha); err != nil {
		return err
	}
	if c.Derived.CursorColor, err = parseColor("cursor.color", c.Cursor.Color, c.Cursor.GlowAlpha); err != nil {
		return err
	}
	return nil
}

func parseColor(key, hex string, alpha float64) (color.NRGBA, error) {
	col, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%s: %w", key, err)
	}
	r, g, b := col.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}, nil
}

// WriteYAML saves the configuration to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
