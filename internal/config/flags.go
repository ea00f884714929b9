package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Bind attaches the most commonly tuned values to the provided FlagSet. Values
// parsed from flags override the file; call Finalize afterwards.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Screen.Width, "width", c.Screen.Width, "viewport width in pixels")
	fs.IntVar(&c.Screen.Height, "height", c.Screen.Height, "viewport height in pixels")
	fs.IntVar(&c.Screen.TargetFPS, "fps", c.Screen.TargetFPS, "frames per second")
	fs.IntVar(&c.Ripple.Throttle, "throttle", c.Ripple.Throttle, "admit every Nth pointer move as a ripple")
	fs.Float64Var(&c.Ring.SpawnRate, "ring-rate", c.Ring.SpawnRate, "surface ring spawn probability per frame")
	fs.BoolVar(&c.Cursor.Enabled, "cursor", c.Cursor.Enabled, "draw the spring cursor follower")
}

// ApplyFlags copies every flag the user set on fs onto c. fs must carry the
// flags registered by Bind; unchanged flags leave c untouched so values loaded
// from a file survive.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	scratch := pflag.NewFlagSet("config", pflag.ContinueOnError)
	c.Bind(scratch)
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil || scratch.Lookup(f.Name) == nil {
			return
		}
		if setErr := scratch.Set(f.Name, f.Value.String()); setErr != nil {
			err = fmt.Errorf("flag --%s: %w", f.Name, setErr)
		}
	})
	if err != nil {
		return err
	}
	return c.Finalize()
}
