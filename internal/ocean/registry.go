package ocean

import (
	"math"

	"ocean-fx/internal/canvas"
	"ocean-fx/internal/core"
)

// Counters are cumulative lifecycle totals.
type Counters struct {
	PointerMoves   uint64
	RipplesSpawned uint64
	RipplesExpired uint64
	RingsSpawned   uint64
	RingsExpired   uint64
}

// Registry owns the live ripples and surface rings. Collections keep creation
// order; expiry filters them in place.
type Registry struct {
	params Params
	rng    core.Rand

	ripples []Ripple
	rings   []SurfaceRing

	lastPointer core.Point
	hasPointer  bool

	counters Counters
}

// NewRegistry returns an empty registry. A throttle below 1 admits every move;
// a non-positive ripple MinRadius is raised to minRippleRadius.
func NewRegistry(p Params, rng core.Rand) *Registry {
	if p.Ripple.Throttle < 1 {
		p.Ripple.Throttle = 1
	}
	if p.Ripple.MinRadius <= 0 {
		p.Ripple.MinRadius = minRippleRadius
		if p.Ripple.MaxRadius < minRippleRadius {
			p.Ripple.MaxRadius = minRippleRadius
		}
	}
	return &Registry{params: p, rng: rng}
}

// Params returns the parameters the registry spawns and renders with.
func (r *Registry) Params() Params { return r.params }

// Ripples exposes the live ripples in creation order.
func (r *Registry) Ripples() []Ripple { return r.ripples }

// Rings exposes the live surface rings in creation order.
func (r *Registry) Rings() []SurfaceRing { return r.rings }

// Counters returns lifecycle totals.
func (r *Registry) Counters() Counters { return r.counters }

// Clear drops every particle and forgets the last pointer position.
func (r *Registry) Clear() {
	r.ripples = r.ripples[:0]
	r.rings = r.rings[:0]
	r.hasPointer = false
}

// PointerMoved counts one pointer-move event at canvas-local position p and
// admits a ripple on every Throttle-th event. The ripple's direction is taken
// from the previously admitted position; the first ripple has direction 0.
func (r *Registry) PointerMoved(p core.Point, now float64) bool {
	r.counters.PointerMoves++
	if r.counters.PointerMoves%uint64(r.params.Ripple.Throttle) != 0 {
		return false
	}
	angle := 0.0
	if r.hasPointer {
		angle = math.Atan2(p.Y-r.lastPointer.Y, p.X-r.lastPointer.X)
	}
	r.lastPointer = p
	r.hasPointer = true

	rp := r.params.Ripple
	r.ripples = append(r.ripples, Ripple{
		Origin: p,
		Start:  now,
		Shape:  Wobble(r.rng, rp.MinRadius, rp.Points, rp.Wobble),
		Angle:  angle,
	})
	r.counters.RipplesSpawned++
	return true
}

// MaybeSpawnRing runs one Bernoulli trial with the configured spawn rate and on
// success adds a ring somewhere inside viewport.
func (r *Registry) MaybeSpawnRing(viewport core.Size, now float64) bool {
	if viewport.Empty() {
		return false
	}
	if r.rng.Float64() >= r.params.Ring.SpawnRate {
		return false
	}
	r.rings = append(r.rings, NewSurfaceRing(r.rng, viewport, now, r.params.Ring))
	r.counters.RingsSpawned++
	return true
}

// RenderRipples draws every live ripple and drops the expired ones.
func (r *Registry) RenderRipples(ctx canvas.Context, now float64) {
	kept := r.ripples[:0]
	for i := range r.ripples {
		if r.ripples[i].Render(ctx, now, r.params.Ripple) {
			kept = append(kept, r.ripples[i])
			continue
		}
		r.counters.RipplesExpired++
	}
	clearTail(r.ripples, len(kept))
	r.ripples = kept
}

// RenderRings draws every live ring and drops the expired ones.
func (r *Registry) RenderRings(ctx canvas.Context, now float64) {
	kept := r.rings[:0]
	for i := range r.rings {
		if r.rings[i].Render(ctx, now, r.params.Ring) {
			kept = append(kept, r.rings[i])
			continue
		}
		r.counters.RingsExpired++
	}
	r.rings = kept
}

// DrawRings draws live rings without removing expired ones.
func (r *Registry) DrawRings(ctx canvas.Context, now float64) {
	for i := range r.rings {
		r.rings[i].Render(ctx, now, r.params.Ring)
	}
}

// clearTail releases the shapes of ripples filtered out of s[n:].
func clearTail(s []Ripple, n int) {
	for i := n; i < len(s); i++ {
		s[i] = Ripple{}
	}
}

const minRippleRadius = 1.0
