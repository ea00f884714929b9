package config

import (
	"strconv"

	"ocean-fx/internal/core"
)

// Parameters returns the effective tunables grouped for display.
func (c *Config) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Ocean",
			Params: []core.Parameter{
				colorParam("ocean.top_color", "Top color", c.Ocean.TopColor),
				colorParam("ocean.bottom_color", "Bottom color", c.Ocean.BottomColor),
			},
		},
		{
			Name:    "Ripples",
			Summary: "pointer wake",
			Params: []core.Parameter{
				floatParam("ripple.lifetime_ms", "Lifetime (ms)", c.Ripple.LifetimeMS),
				floatParam("ripple.min_radius", "Min radius", c.Ripple.MinRadius),
				floatParam("ripple.max_radius", "Max radius", c.Ripple.MaxRadius),
				floatParam("ripple.opacity", "Opacity", c.Ripple.Opacity),
				floatParam("ripple.line_width", "Line width", c.Ripple.LineWidth),
				intParam("ripple.points", "Wobble points", c.Ripple.Points),
				floatParam("ripple.wobble", "Wobble", c.Ripple.Wobble),
				intParam("ripple.throttle", "Throttle", c.Ripple.Throttle),
			},
		},
		{
			Name:    "Surface rings",
			Summary: "ambient",
			Params: []core.Parameter{
				floatParam("ring.lifetime_ms", "Lifetime (ms)", c.Ring.LifetimeMS),
				floatParam("ring.min_radius", "Min radius", c.Ring.MinRadius),
				floatParam("ring.max_radius", "Max radius", c.Ring.MaxRadius),
				floatParam("ring.opacity", "Opacity", c.Ring.Opacity),
				floatParam("ring.spawn_rate", "Spawn rate", c.Ring.SpawnRate),
				floatParam("ring.start_spread", "Start spread", c.Ring.StartSpread),
			},
		},
		{
			Name: "Cursor",
			Params: []core.Parameter{
				boolParam("cursor.enabled", "Enabled", c.Cursor.Enabled),
				floatParam("cursor.size", "Size", c.Cursor.Size),
				floatParam("cursor.bubble_size", "Bubble size", c.Cursor.BubbleSize),
				floatParam("cursor.frequency", "Spring frequency", c.Cursor.Frequency),
				floatParam("cursor.damping", "Spring damping", c.Cursor.Damping),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func colorParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeColor,
		Value: value,
	}
}
