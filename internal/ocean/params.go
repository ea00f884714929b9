// Package ocean implements the animated ocean backdrop: pointer ripples, ambient
// surface rings, the registry that owns them and the controller that drives
// both animation chains.
package ocean

import (
	"image/color"

	"ocean-fx/internal/config"
)

// RippleParams controls ripple shape, growth and fading.
type RippleParams struct {
	Lifetime  float64 // ms
	MinRadius float64
	MaxRadius float64
	LineWidth float64
	Opacity   float64
	Color     color.Color
	Points    int
	Wobble    float64
	Throttle  int
}

// RingParams controls surface ring spawning, growth and fading.
type RingParams struct {
	Lifetime    float64 // ms
	MinRadius   float64
	MaxRadius   float64
	LineWidth   float64
	Opacity     float64
	Color       color.Color
	SpawnRate   float64
	StartSpread float64
}

// Params groups everything the backdrop needs.
type Params struct {
	Ripple      RippleParams
	Ring        RingParams
	OceanTop    color.Color
	OceanBottom color.Color
}

// DefaultParams returns the stock look of the backdrop.
func DefaultParams() Params {
	return ParamsFromConfig(config.Default())
}

// ParamsFromConfig extracts backdrop parameters from a loaded configuration.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		Ripple: RippleParams{
			Lifetime:  cfg.Ripple.LifetimeMS,
			MinRadius: cfg.Ripple.MinRadius,
			MaxRadius: cfg.Ripple.MaxRadius,
			LineWidth: cfg.Ripple.LineWidth,
			Opacity:   cfg.Ripple.Opacity,
			Color:     cfg.Derived.RippleColor,
			Points:    cfg.Ripple.Points,
			Wobble:    cfg.Ripple.Wobble,
			Throttle:  cfg.Ripple.Throttle,
		},
		Ring: RingParams{
			Lifetime:    cfg.Ring.LifetimeMS,
			MinRadius:   cfg.Ring.MinRadius,
			MaxRadius:   cfg.Ring.MaxRadius,
			LineWidth:   cfg.Ring.LineWidth,
			Opacity:     cfg.Ring.Opacity,
			Color:       cfg.Derived.RingColor,
			SpawnRate:   cfg.Ring.SpawnRate,
			StartSpread: cfg.Ring.StartSpread,
		},
		OceanTop:    cfg.Derived.OceanTop,
		OceanBottom: cfg.Derived.OceanBottom,
	}
}

// progress converts an age into the fraction of lifetime elapsed. alive is false
// once the age exceeds the lifetime. Ages before the start clamp to zero.
func progress(start, now, lifetime float64) (t float64, alive bool) {
	elapsed := now - start
	if elapsed > lifetime {
		return 1, false
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed / lifetime, true
}
