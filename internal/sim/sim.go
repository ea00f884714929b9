// Package sim drives the backdrop without a display: a virtual frame clock
// ticks the animation chains while a synthetic pointer sweeps the surface.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ocean-fx/internal/canvas"
	"ocean-fx/internal/config"
	"ocean-fx/internal/core"
	"ocean-fx/internal/frame"
	"ocean-fx/internal/ocean"
	"ocean-fx/internal/telemetry"
)

// Options configures a headless run.
type Options struct {
	Frames        int
	Seed          int64
	Path          string // pointer path name, see PathNames
	MovesPerFrame int    // pointer events delivered per frame
	Width         int    // 0 = screen.width
	Height        int    // 0 = screen.height

	// Canvas receives the drawing. Nil uses an in-memory recorder.
	Canvas canvas.Backing
	// Output receives window stats and the effective config. May be nil.
	Output   *telemetry.OutputManager
	LogStats bool
}

// Summary describes a finished run.
type Summary struct {
	Frames   int
	TimeMS   float64
	Ripples  int
	Rings    int
	Counters ocean.Counters
	Stats    ocean.FrameStats
	Windows  int
}

// surface adapts a backing canvas to the controller. Headless surfaces sit at
// the client origin.
type surface struct {
	backing canvas.Backing
}

func (s *surface) Context() canvas.Context { return s.backing }
func (s *surface) Resize(w, h int)         { s.backing.Resize(w, h) }
func (s *surface) Origin() core.Point      { return core.Point{} }

// Run animates the backdrop for opts.Frames frames and reports what happened.
// It stops early with ctx's error when ctx is cancelled.
func Run(ctx context.Context, cfg *config.Config, opts Options) (Summary, error) {
	if opts.Frames < 0 {
		return Summary{}, fmt.Errorf("frames must not be negative, got %d", opts.Frames)
	}
	if opts.Path == "" {
		opts.Path = "circle"
	}
	path, err := LookupPath(opts.Path)
	if err != nil {
		return Summary{}, err
	}
	if opts.MovesPerFrame < 1 {
		opts.MovesPerFrame = 1
	}
	if opts.Width <= 0 {
		opts.Width = cfg.Screen.Width
	}
	if opts.Height <= 0 {
		opts.Height = cfg.Screen.Height
	}
	if opts.Canvas == nil {
		opts.Canvas = canvas.NewRecorder(float64(opts.Width), float64(opts.Height))
	}
	if err := opts.Output.WriteConfig(cfg); err != nil {
		return Summary{}, err
	}

	clock := core.NewFrameClock(cfg.Screen.TargetFPS)
	loop := frame.NewLoop()
	ctl := ocean.NewController(ocean.ParamsFromConfig(cfg), &surface{opts.Canvas}, loop, clock.Now, core.NewRNG(opts.Seed))
	ctl.Resize(opts.Width, opts.Height)
	ctl.Mount()
	defer ctl.Dispose()

	collector := telemetry.NewCollector(cfg.Telemetry.WindowFrames)
	emit := func(ws telemetry.WindowStats) error {
		if opts.LogStats {
			ws.LogStats()
		}
		return opts.Output.WriteStats(ws)
	}

	slog.Debug("headless run", "frames", opts.Frames, "path", opts.Path, "seed", opts.Seed,
		"width", opts.Width, "height", opts.Height)

	summary := func() Summary {
		reg := ctl.Registry()
		return Summary{
			Frames:   loop.Frames(),
			TimeMS:   clock.Now(),
			Ripples:  len(reg.Ripples()),
			Rings:    len(reg.Rings()),
			Counters: reg.Counters(),
			Stats:    ctl.Stats(),
			Windows:  collector.Windows(),
		}
	}

	vp := ctl.Viewport()
	for i := 0; i < opts.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return summary(), err
		}
		prev := clock.Now()
		now := clock.Advance()
		step := (now - prev) / float64(opts.MovesPerFrame)
		for k := 1; k <= opts.MovesPerFrame; k++ {
			if pt, ok := path(prev+step*float64(k), vp); ok {
				ctl.PointerMove(pt.X, pt.Y)
			}
		}

		start := time.Now()
		loop.Tick(now)
		elapsed := float64(time.Since(start).Microseconds()) / 1000

		reg := ctl.Registry()
		ws, ok := collector.Add(telemetry.Sample{
			Frame:    clock.Ticks(),
			TimeMS:   now,
			FrameMS:  elapsed,
			Ripples:  len(reg.Ripples()),
			Rings:    len(reg.Rings()),
			Counters: reg.Counters(),
		})
		if ok {
			if err := emit(ws); err != nil {
				return summary(), err
			}
		}
	}
	if ws, ok := collector.Flush(); ok {
		if err := emit(ws); err != nil {
			return summary(), err
		}
	}
	return summary(), nil
}
