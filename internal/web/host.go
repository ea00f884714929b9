//go:build js && wasm

package web

import (
	"fmt"
	"image/color"
	"log/slog"
	"syscall/js"
	"time"

	"ocean-fx/internal/canvas"
	"ocean-fx/internal/config"
	"ocean-fx/internal/core"
	"ocean-fx/internal/cursor"
	"ocean-fx/internal/frame"
	"ocean-fx/internal/ocean"
)

// Surface is a full-viewport <canvas> element.
type Surface struct {
	el  js.Value
	ctx *Context
}

// Context implements ocean.Surface. It returns nil when the element has no 2D
// context.
func (s *Surface) Context() canvas.Context {
	if s.ctx == nil {
		return nil
	}
	return s.ctx
}

// Resize implements ocean.Surface.
func (s *Surface) Resize(w, h int) {
	s.el.Set("width", w)
	s.el.Set("height", h)
}

// Origin implements ocean.Surface.
func (s *Surface) Origin() core.Point {
	r := s.el.Call("getBoundingClientRect")
	return core.Point{X: r.Get("left").Float(), Y: r.Get("top").Float()}
}

// Host mounts the backdrop on a page and tears it down on unload.
type Host struct {
	ctl       *ocean.Controller
	window    js.Value
	sched     *RAF
	listeners []listener
	done      chan struct{}

	follower   *cursor.Follower
	boxEl      js.Value
	bubbleEl   js.Value
	bubbleSize float64
	pointer    core.Point
	hasPointer bool
	cursorReq  frame.Handle
}

type listener struct {
	target js.Value
	event  string
	fn     js.Func
}

// Mount attaches the backdrop to the canvas with the given id, creating a
// fixed full-viewport canvas behind the page content when none exists.
func Mount(cfg *config.Config, canvasID string, seed int64) (*Host, error) {
	window := js.Global()
	doc := window.Get("document")
	if doc.IsUndefined() {
		return nil, fmt.Errorf("no document")
	}
	el := doc.Call("getElementById", canvasID)
	if el.IsNull() || el.IsUndefined() {
		el = doc.Call("createElement", "canvas")
		el.Set("id", canvasID)
		style := el.Get("style")
		style.Set("position", "fixed")
		style.Set("inset", "0")
		style.Set("zIndex", "-1")
		style.Set("pointerEvents", "none")
		doc.Get("body").Call("appendChild", el)
	}

	surface := &Surface{el: el}
	if ctx := el.Call("getContext", "2d"); ctx.Truthy() {
		surface.ctx = NewContext(ctx)
	}

	perf := window.Get("performance")
	clock := func() float64 { return perf.Call("now").Float() }

	h := &Host{window: window, sched: NewRAF(), done: make(chan struct{})}
	h.ctl = ocean.NewController(ocean.ParamsFromConfig(cfg), surface, h.sched, clock, core.NewRNG(seed))
	h.resize()
	if cfg.Cursor.Enabled {
		h.mountFollower(doc, cfg)
	}

	h.listen(doc, "mousemove", func(args []js.Value) {
		e := args[0]
		x, y := e.Get("clientX").Float(), e.Get("clientY").Float()
		h.pointer, h.hasPointer = core.Point{X: x, Y: y}, true
		h.ctl.PointerMove(x, y)
	})
	h.listen(window, "resize", func([]js.Value) { h.resize() })
	h.listen(window, "beforeunload", func([]js.Value) { h.Dispose() })

	h.ctl.Mount()
	slog.Info("backdrop mounted", "canvas", canvasID, "width", h.ctl.Viewport().W, "height", h.ctl.Viewport().H)
	return h, nil
}

// mountFollower adds the glow box and trailing bubble above the page and
// starts the chain that springs them toward the pointer.
func (h *Host) mountFollower(doc js.Value, cfg *config.Config) {
	p := cursor.ParamsFromConfig(cfg)
	h.follower = cursor.NewFollower(p)
	h.bubbleSize = p.BubbleSize
	bubbleCol := cfg.Derived.CursorColor
	bubbleCol.A /= 3
	h.bubbleEl = h.glowElement(doc, p.BubbleSize, bubbleCol)
	h.boxEl = h.glowElement(doc, p.Size, cfg.Derived.CursorColor)
	h.cursorReq = h.sched.RequestFrame(h.followerFrame)
}

func (h *Host) glowElement(doc js.Value, diameter float64, col color.NRGBA) js.Value {
	el := doc.Call("createElement", "div")
	style := el.Get("style")
	for k, v := range glowStyle(diameter, col) {
		style.Set(k, v)
	}
	style.Set("zIndex", "9999")
	doc.Get("body").Call("appendChild", el)
	return el
}

func (h *Host) followerFrame(float64) {
	h.cursorReq = h.sched.RequestFrame(h.followerFrame)
	if !h.hasPointer {
		return
	}
	h.follower.Update(h.pointer)
	box := h.boxEl.Get("style")
	box.Set("transform", translate(h.follower.Box()))
	box.Set("opacity", "1")
	c := h.follower.BubbleCenter()
	half := h.bubbleSize / 2
	bubble := h.bubbleEl.Get("style")
	bubble.Set("transform", translate(core.Point{X: c.X - half, Y: c.Y - half}))
	bubble.Set("opacity", "1")
}

func (h *Host) resize() {
	h.ctl.Resize(h.window.Get("innerWidth").Int(), h.window.Get("innerHeight").Int())
}

func (h *Host) listen(target js.Value, event string, handler func([]js.Value)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		handler(args)
		return nil
	})
	target.Call("addEventListener", event, fn)
	h.listeners = append(h.listeners, listener{target: target, event: event, fn: fn})
}

// Dispose cancels both animation chains and removes the listeners. It is safe
// to call more than once.
func (h *Host) Dispose() {
	select {
	case <-h.done:
		return
	default:
	}
	close(h.done)
	h.ctl.Dispose()
	if h.follower != nil {
		h.sched.CancelFrame(h.cursorReq)
		h.boxEl.Call("remove")
		h.bubbleEl.Call("remove")
	}
	for _, l := range h.listeners {
		l.target.Call("removeEventListener", l.event, l.fn)
	}
	// Release after the current event handler returns.
	ls := h.listeners
	h.listeners = nil
	time.AfterFunc(0, func() {
		for _, l := range ls {
			l.fn.Release()
		}
	})
}

// Done is closed once the host is disposed.
func (h *Host) Done() <-chan struct{} { return h.done }
