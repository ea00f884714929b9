// Package svgcanvas implements canvas.Context by buffering one frame of drawing
// operations and writing them out as an SVG document.
package svgcanvas

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"ocean-fx/internal/canvas"
)

// precision is the number of SVG user units per pixel. svgo works in integers,
// so coordinates are scaled up and the viewBox scales them back.
const precision = 10

type drawOp func(doc *svg.SVG)

// Canvas buffers the operations issued since the last full clear.
type Canvas struct {
	canvas.StateStack

	w, h      int
	ops       []drawOp
	gradients []canvas.Gradient
	title     string
}

// New returns an SVG canvas of the given pixel size.
func New(w, h int) *Canvas {
	return &Canvas{w: w, h: h}
}

// SetTitle sets the document title.
func (c *Canvas) SetTitle(title string) { c.title = title }

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// Len returns the number of buffered drawing operations.
func (c *Canvas) Len() int { return len(c.ops) }

// Resize changes the canvas size and, like a canvas element, clears it.
func (c *Canvas) Resize(w, h int) {
	c.w, c.h = w, h
	c.ops = c.ops[:0]
	c.gradients = c.gradients[:0]
	c.StateStack.Reset()
}

// ClearRect implements canvas.Context. SVG has no erase primitive, so only a
// clear covering the whole canvas has an effect: it discards buffered output.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= float64(c.w) && y+h >= float64(c.h) {
		c.ops = c.ops[:0]
		c.gradients = c.gradients[:0]
	}
}

// FillLinearGradient implements canvas.Context.
func (c *Canvas) FillLinearGradient(x, y, w, h float64, g canvas.Gradient) {
	id := fmt.Sprintf("grad%d", len(c.gradients))
	c.gradients = append(c.gradients, g)
	alpha := c.Current().GlobalAlpha
	c.ops = append(c.ops, func(doc *svg.SVG) {
		doc.Rect(scale(x), scale(y), scale(w), scale(h),
			fmt.Sprintf("fill:url(#%s);fill-opacity:%s", id, formatAlpha(alpha)))
	})
}

// StrokeLine implements canvas.Context.
func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64) {
	style := strokeStyle(c.Current())
	c.ops = append(c.ops, func(doc *svg.SVG) {
		doc.Line(scale(x0), scale(y0), scale(x1), scale(y1), style)
	})
}

// StrokeArc implements canvas.Context.
func (c *Canvas) StrokeArc(cx, cy, r float64) {
	style := strokeStyle(c.Current())
	c.ops = append(c.ops, func(doc *svg.SVG) {
		doc.Circle(scale(cx), scale(cy), scale(r), style+";fill:none")
	})
}

// WriteTo writes the buffered frame as a complete SVG document.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	doc := svg.New(cw)
	doc.Startview(c.w, c.h, 0, 0, c.w*precision, c.h*precision)
	if c.title != "" {
		doc.Title(c.title)
	}
	if len(c.gradients) > 0 {
		doc.Def()
		for i, g := range c.gradients {
			doc.LinearGradient(fmt.Sprintf("grad%d", i), 0, 0, 0, 100, offcolors(g))
		}
		doc.DefEnd()
	}
	for _, op := range c.ops {
		op(doc)
	}
	doc.End()
	return cw.n, cw.err
}

func offcolors(g canvas.Gradient) []svg.Offcolor {
	out := make([]svg.Offcolor, 0, len(g.Stops))
	for _, s := range g.Stops {
		n := color.NRGBAModel.Convert(s.Color).(color.NRGBA)
		out = append(out, svg.Offcolor{
			Offset:  uint8(math.Round(clamp01(s.Offset) * 100)),
			Color:   fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B),
			Opacity: float64(n.A) / 255,
		})
	}
	return out
}

func strokeStyle(st canvas.State) string {
	col := color.NRGBAModel.Convert(st.StrokeStyle).(color.NRGBA)
	opacity := float64(col.A) / 255 * st.GlobalAlpha
	return fmt.Sprintf("stroke:rgb(%d,%d,%d);stroke-opacity:%s;stroke-width:%d;stroke-linecap:round",
		col.R, col.G, col.B, formatAlpha(opacity), scale(st.LineWidth))
}

func formatAlpha(a float64) string {
	return fmt.Sprintf("%.3f", clamp01(a))
}

func scale(v float64) int {
	return int(math.Round(v * precision))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	cw.err = err
	return n, err
}
