// Package telemetry aggregates per-frame samples of the backdrop into windows
// and writes them out for offline inspection.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"ocean-fx/internal/ocean"
)

// Sample is the state of one rendered frame.
type Sample struct {
	Frame    int
	TimeMS   float64
	FrameMS  float64 // wall or simulated time spent on the frame
	Ripples  int
	Rings    int
	Counters ocean.Counters
}

// WindowStats holds aggregated statistics for a window of frames.
type WindowStats struct {
	WindowStart int     `csv:"-"`
	WindowEnd   int     `csv:"window_end"`
	SimTimeMS   float64 `csv:"sim_time_ms"`

	// Live counts at window end
	Ripples int `csv:"ripples"`
	Rings   int `csv:"rings"`

	// Events during window
	PointerMoves   uint64 `csv:"pointer_moves"`
	RipplesSpawned uint64 `csv:"ripples_spawned"`
	RipplesExpired uint64 `csv:"ripples_expired"`
	RingsSpawned   uint64 `csv:"rings_spawned"`
	RingsExpired   uint64 `csv:"rings_expired"`

	// Frame timing
	FrameMeanMS float64 `csv:"frame_mean_ms"`
	FrameStdMS  float64 `csv:"frame_std_ms"`
	FrameP90MS  float64 `csv:"frame_p90_ms"`
}

// Collector groups samples into fixed-size windows.
type Collector struct {
	windowSize int
	frameTimes []float64
	first      Sample
	last       Sample
	base       ocean.Counters
	count      int
	windows    int
}

// NewCollector creates a collector emitting one window every windowSize frames.
func NewCollector(windowSize int) *Collector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &Collector{
		windowSize: windowSize,
		frameTimes: make([]float64, 0, windowSize),
	}
}

// Windows returns how many windows have been emitted.
func (c *Collector) Windows() int { return c.windows }

// Add records a sample. When the sample completes a window the aggregated
// stats are returned with ok set.
func (c *Collector) Add(s Sample) (WindowStats, bool) {
	if c.count == 0 {
		c.first = s
	}
	c.last = s
	c.count++
	c.frameTimes = append(c.frameTimes, s.FrameMS)
	if c.count < c.windowSize {
		return WindowStats{}, false
	}
	return c.emit(), true
}

// Flush emits the partial window, if any.
func (c *Collector) Flush() (WindowStats, bool) {
	if c.count == 0 {
		return WindowStats{}, false
	}
	return c.emit(), true
}

func (c *Collector) emit() WindowStats {
	end := c.last.Counters
	ws := WindowStats{
		WindowStart:    c.first.Frame,
		WindowEnd:      c.last.Frame,
		SimTimeMS:      c.last.TimeMS,
		Ripples:        c.last.Ripples,
		Rings:          c.last.Rings,
		PointerMoves:   end.PointerMoves - c.base.PointerMoves,
		RipplesSpawned: end.RipplesSpawned - c.base.RipplesSpawned,
		RipplesExpired: end.RipplesExpired - c.base.RipplesExpired,
		RingsSpawned:   end.RingsSpawned - c.base.RingsSpawned,
		RingsExpired:   end.RingsExpired - c.base.RingsExpired,
	}
	ws.FrameMeanMS, ws.FrameStdMS, ws.FrameP90MS = FrameStats(c.frameTimes)

	c.base = end
	c.frameTimes = c.frameTimes[:0]
	c.count = 0
	c.windows++
	return ws
}

// FrameStats returns mean, standard deviation and 90th percentile of frame
// durations. The standard deviation of a single sample is 0.
func FrameStats(values []float64) (mean, std, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0
	}
	if n == 1 {
		return values[0], 0, values[0]
	}
	mean, std = stat.MeanStdDev(values, nil)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return mean, std, p90
}

// LogStats logs window statistics.
func (s WindowStats) LogStats() {
	slog.Info("window",
		"end", s.WindowEnd,
		"sim_ms", int(s.SimTimeMS),
		"ripples", s.Ripples,
		"rings", s.Rings,
		"ripples_spawned", s.RipplesSpawned,
		"ripples_expired", s.RipplesExpired,
		"rings_spawned", s.RingsSpawned,
		"rings_expired", s.RingsExpired,
		"frame_mean_ms", s.FrameMeanMS,
		"frame_p90_ms", s.FrameP90MS,
	)
}
