package ocean

import (
	"math"

	"ocean-fx/internal/core"
)

const (
	// DefaultWobblePoints is the vertex count of a ripple silhouette.
	DefaultWobblePoints = 32
	// DefaultWobble is the peak-to-peak radial jitter in pixels.
	DefaultWobble = 2.0
)

// Wobble returns points offsets around the origin approximating a circle of the
// given radius. Angles are evenly spaced; each radius is jittered uniformly
// within ±wobble/2. Non-positive point counts fall back to DefaultWobblePoints
// and negative amplitudes to DefaultWobble; zero yields a plain circle.
func Wobble(rng core.Rand, radius float64, points int, wobble float64) []core.Point {
	if points <= 0 {
		points = DefaultWobblePoints
	}
	if wobble < 0 {
		wobble = DefaultWobble
	}
	out := make([]core.Point, points)
	for i := range out {
		angle := float64(i) / float64(points) * 2 * math.Pi
		r := radius + (rng.Float64()-0.5)*wobble
		out[i] = core.Point{X: math.Cos(angle) * r, Y: math.Sin(angle) * r}
	}
	return out
}
