package ocean

import (
	"ocean-fx/internal/canvas"
	"ocean-fx/internal/core"
	"ocean-fx/internal/frame"
)

// Surface is the drawing target the controller renders into.
type Surface interface {
	// Context returns the drawing context, or nil when none is available. A nil
	// context turns the frame into a no-op.
	Context() canvas.Context
	// Resize changes the backing store. Resizing clears it.
	Resize(w, h int)
	// Origin is the surface's top-left corner in pointer (client) coordinates.
	Origin() core.Point
}

// Clock returns the current high-resolution time in milliseconds.
type Clock func() float64

// FrameStats are the controller's per-chain frame totals.
type FrameStats struct {
	PrimaryFrames   uint64
	SecondaryFrames uint64
	SkippedFrames   uint64 // frames without a drawing context
}

// Controller owns both animation chains of one mounted backdrop.
//
// The secondary chain spawns and expires surface rings; the primary chain
// clears the surface, paints the background, renders and expires ripples, then
// draws the rings. Mount requests the secondary chain first so that, with a
// FIFO scheduler, every frame's ring spawns are drawn by that same frame's
// primary pass.
type Controller struct {
	reg     *Registry
	surface Surface
	sched   frame.Scheduler
	clock   Clock

	viewport core.Size

	primary   frame.Handle
	secondary frame.Handle
	mounted   bool

	primaryFn   frame.Callback
	secondaryFn frame.Callback

	stats FrameStats
}

// NewController wires a registry to a surface and a scheduler.
func NewController(p Params, surface Surface, sched frame.Scheduler, clock Clock, rng core.Rand) *Controller {
	c := &Controller{
		reg:     NewRegistry(p, rng),
		surface: surface,
		sched:   sched,
		clock:   clock,
	}
	c.primaryFn = c.primaryFrame
	c.secondaryFn = c.secondaryFrame
	return c
}

// Registry exposes the particle registry.
func (c *Controller) Registry() *Registry { return c.reg }

// Viewport returns the current drawing size.
func (c *Controller) Viewport() core.Size { return c.viewport }

// Stats returns frame totals.
func (c *Controller) Stats() FrameStats { return c.stats }

// Mounted reports whether the animation chains are running.
func (c *Controller) Mounted() bool { return c.mounted }

// Mount starts both animation chains. Mounting twice does nothing.
func (c *Controller) Mount() {
	if c.mounted {
		return
	}
	c.mounted = true
	c.secondary = c.sched.RequestFrame(c.secondaryFn)
	c.primary = c.sched.RequestFrame(c.primaryFn)
}

// Dispose cancels both animation chains. It is safe to call more than once.
func (c *Controller) Dispose() {
	if !c.mounted {
		return
	}
	c.mounted = false
	c.sched.CancelFrame(c.primary)
	c.sched.CancelFrame(c.secondary)
	c.primary, c.secondary = 0, 0
}

// Resize records the new viewport and resizes the surface.
func (c *Controller) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c.viewport = core.Size{W: w, H: h}
	if c.surface != nil {
		c.surface.Resize(w, h)
	}
}

// PointerMove handles a pointer-move event in client coordinates. Events that
// fall outside the surface are ignored. It reports whether a ripple was
// admitted.
func (c *Controller) PointerMove(clientX, clientY float64) bool {
	if c.surface == nil {
		return false
	}
	origin := c.surface.Origin()
	local := core.Point{X: clientX - origin.X, Y: clientY - origin.Y}
	if !c.viewport.Contains(local) {
		return false
	}
	return c.reg.PointerMoved(local, c.clock())
}

func (c *Controller) context() canvas.Context {
	if c.surface == nil {
		return nil
	}
	return c.surface.Context()
}

func (c *Controller) primaryFrame(now float64) {
	if !c.mounted {
		return
	}
	c.primary = c.sched.RequestFrame(c.primaryFn)
	ctx := c.context()
	if ctx == nil {
		c.stats.SkippedFrames++
		return
	}
	c.stats.PrimaryFrames++
	w, h := float64(c.viewport.W), float64(c.viewport.H)
	ctx.ClearRect(0, 0, w, h)
	DrawBackground(ctx, c.viewport, c.reg.params)
	c.reg.RenderRipples(ctx, now)
	c.reg.DrawRings(ctx, now)
}

func (c *Controller) secondaryFrame(now float64) {
	if !c.mounted {
		return
	}
	c.secondary = c.sched.RequestFrame(c.secondaryFn)
	ctx := c.context()
	if ctx == nil {
		c.stats.SkippedFrames++
		return
	}
	c.stats.SecondaryFrames++
	c.reg.MaybeSpawnRing(c.viewport, now)
	c.reg.RenderRings(ctx, now)
}
