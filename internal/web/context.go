//go:build js && wasm

package web

import (
	"image/color"
	"math"
	"syscall/js"

	"ocean-fx/internal/canvas"
)

// Context forwards canvas.Context calls to a CanvasRenderingContext2D.
type Context struct {
	v js.Value
}

// NewContext wraps a 2D rendering context.
func NewContext(v js.Value) *Context { return &Context{v: v} }

// Save implements canvas.Context.
func (c *Context) Save() { c.v.Call("save") }

// Restore implements canvas.Context.
func (c *Context) Restore() { c.v.Call("restore") }

// SetGlobalAlpha implements canvas.Context.
func (c *Context) SetGlobalAlpha(a float64) { c.v.Set("globalAlpha", a) }

// SetLineWidth implements canvas.Context.
func (c *Context) SetLineWidth(w float64) { c.v.Set("lineWidth", w) }

// SetStrokeStyle implements canvas.Context.
func (c *Context) SetStrokeStyle(col color.Color) {
	c.v.Set("strokeStyle", cssColor(col))
}

// ClearRect implements canvas.Context.
func (c *Context) ClearRect(x, y, w, h float64) {
	c.v.Call("clearRect", x, y, w, h)
}

// FillLinearGradient implements canvas.Context.
func (c *Context) FillLinearGradient(x, y, w, h float64, g canvas.Gradient) {
	grad := c.v.Call("createLinearGradient", x, y, x, y+h)
	for _, s := range g.Stops {
		grad.Call("addColorStop", s.Offset, cssColor(s.Color))
	}
	c.v.Set("fillStyle", grad)
	c.v.Call("fillRect", x, y, w, h)
}

// StrokeLine implements canvas.Context.
func (c *Context) StrokeLine(x0, y0, x1, y1 float64) {
	c.v.Call("beginPath")
	c.v.Call("moveTo", x0, y0)
	c.v.Call("lineTo", x1, y1)
	c.v.Call("stroke")
}

// StrokeArc implements canvas.Context.
func (c *Context) StrokeArc(cx, cy, r float64) {
	c.v.Call("beginPath")
	c.v.Call("arc", cx, cy, r, 0, 2*math.Pi)
	c.v.Call("stroke")
}
