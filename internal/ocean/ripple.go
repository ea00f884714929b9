package ocean

import (
	"math"

	"ocean-fx/internal/canvas"
	"ocean-fx/internal/core"
)

// Ripple is one pointer-triggered ring. Its wobble silhouette is captured at
// creation and only scaled afterwards, so the outline stays coherent while it
// grows.
type Ripple struct {
	Origin core.Point
	Start  float64 // ms
	Shape  []core.Point
	Angle  float64 // direction of pointer travel, radians
}

// Progress returns the fraction of p.Lifetime elapsed at now and whether the
// ripple is still alive.
func (r *Ripple) Progress(now float64, p RippleParams) (float64, bool) {
	return progress(r.Start, now, p.Lifetime)
}

// Radius returns the nominal radius at progress t.
func (p RippleParams) Radius(t float64) float64 {
	return core.Lerp(p.MinRadius, p.MaxRadius, t)
}

// Outline returns the silhouette at progress t in canvas coordinates. Without
// a positive MinRadius the shape cannot be scaled and collapses onto Origin.
func (r *Ripple) Outline(t float64, p RippleParams) []core.Point {
	scale := 0.0
	if p.MinRadius > 0 {
		scale = p.Radius(t) / p.MinRadius
	}
	out := make([]core.Point, len(r.Shape))
	for i, pt := range r.Shape {
		out[i] = r.Origin.Add(pt.Scale(scale))
	}
	return out
}

// Render draws the ripple at time now and reports whether it survives. Expired
// ripples draw nothing.
//
// Each outline segment is stroked on its own so its opacity can follow the
// direction of travel: segments along the movement axis stay bright, segments
// across it fade out.
func (r *Ripple) Render(ctx canvas.Context, now float64, p RippleParams) bool {
	t, alive := r.Progress(now, p)
	if !alive {
		return false
	}
	pts := r.Outline(t, p)
	total := len(pts)
	if total < 2 {
		return true
	}
	fade := (1 - t) * p.Opacity

	ctx.Save()
	ctx.SetStrokeStyle(p.Color)
	ctx.SetLineWidth(p.LineWidth)
	for i := 0; i < total; i++ {
		segAngle := float64(i) / float64(total) * 2 * math.Pi
		ctx.SetGlobalAlpha(fade * DirectionalFade(segAngle, r.Angle))
		a, b := pts[i], pts[(i+1)%total]
		ctx.StrokeLine(a.X, a.Y, b.X, b.Y)
	}
	ctx.Restore()
	return true
}

// AngularDistance returns the absolute difference between two angles wrapped
// into [0, π].
func AngularDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// DirectionalFade returns the opacity factor of a segment at segAngle for a
// ripple moving along moveAngle: 1 along the movement axis (either way), 0
// perpendicular to it.
func DirectionalFade(segAngle, moveAngle float64) float64 {
	d := AngularDistance(segAngle, moveAngle)
	return 0.5 + 0.5*math.Cos(2*d)
}
