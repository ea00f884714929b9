package ocean

import (
	"ocean-fx/internal/canvas"
	"ocean-fx/internal/core"
)

// SurfaceRing is an ambient ring that grows from its initial radius to the
// configured maximum while fading out.
type SurfaceRing struct {
	Origin        core.Point
	Start         float64 // ms
	InitialRadius float64
}

// NewSurfaceRing places a ring uniformly inside viewport with an initial radius
// in the lower StartSpread fraction of the configured radius range.
func NewSurfaceRing(rng core.Rand, viewport core.Size, now float64, p RingParams) SurfaceRing {
	origin := core.Point{
		X: rng.Float64() * float64(viewport.W),
		Y: rng.Float64() * float64(viewport.H),
	}
	initial := p.MinRadius + rng.Float64()*(p.MaxRadius-p.MinRadius)*p.StartSpread
	return SurfaceRing{Origin: origin, Start: now, InitialRadius: initial}
}

// Progress returns the fraction of p.Lifetime elapsed at now and whether the
// ring is still alive.
func (r *SurfaceRing) Progress(now float64, p RingParams) (float64, bool) {
	return progress(r.Start, now, p.Lifetime)
}

// Radius returns the ring radius at progress t.
func (r *SurfaceRing) Radius(t float64, p RingParams) float64 {
	return core.Lerp(r.InitialRadius, p.MaxRadius, t)
}

// Render strokes the ring at time now and reports whether it survives.
func (r *SurfaceRing) Render(ctx canvas.Context, now float64, p RingParams) bool {
	t, alive := r.Progress(now, p)
	if !alive {
		return false
	}
	ctx.Save()
	ctx.SetGlobalAlpha((1 - t) * p.Opacity)
	ctx.SetStrokeStyle(p.Color)
	ctx.SetLineWidth(p.LineWidth)
	ctx.StrokeArc(r.Origin.X, r.Origin.Y, r.Radius(t, p))
	ctx.Restore()
	return true
}
