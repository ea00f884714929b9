//go:build ebiten

package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ocean-fx/internal/canvas"
)

// ImageContext implements canvas.Context on an ebiten image.
type ImageContext struct {
	canvas.StateStack

	dst       *ebiten.Image
	antialias bool

	gradImg *ebiten.Image
	gradBuf []byte
	gradH   int
}

// NewImageContext returns a context drawing into dst.
func NewImageContext(dst *ebiten.Image) *ImageContext {
	return &ImageContext{dst: dst, antialias: true}
}

// SetTarget redirects drawing to dst.
func (c *ImageContext) SetTarget(dst *ebiten.Image) { c.dst = dst }

// ClearRect implements canvas.Context.
func (c *ImageContext) ClearRect(x, y, w, h float64) {
	if c.dst == nil {
		return
	}
	b := c.dst.Bounds()
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	if r.Min.X <= b.Min.X && r.Min.Y <= b.Min.Y && r.Max.X >= b.Max.X && r.Max.Y >= b.Max.Y {
		c.dst.Clear()
		return
	}
	r = r.Intersect(b)
	if r.Empty() {
		return
	}
	c.dst.SubImage(r).(*ebiten.Image).Clear()
}

// FillLinearGradient implements canvas.Context. The gradient is rasterized
// into a one-pixel column and stretched over the rectangle.
func (c *ImageContext) FillLinearGradient(x, y, w, h float64, g canvas.Gradient) {
	if c.dst == nil || w <= 0 || h <= 0 {
		return
	}
	rows := int(math.Ceil(h))
	if c.gradImg == nil || c.gradH != rows {
		if c.gradImg != nil {
			c.gradImg.Deallocate()
		}
		c.gradImg = ebiten.NewImage(1, rows)
		c.gradBuf = make([]byte, 4*rows)
		c.gradH = rows
	}
	fillGradientRGBA(c.gradBuf, rows, g)
	c.gradImg.WritePixels(c.gradBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h/float64(rows))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(c.Current().GlobalAlpha))
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(c.gradImg, op)
}

// StrokeLine implements canvas.Context.
func (c *ImageContext) StrokeLine(x0, y0, x1, y1 float64) {
	if c.dst == nil {
		return
	}
	st := c.Current()
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1),
		float32(st.LineWidth), st.StrokeColor(), c.antialias)
}

// StrokeArc implements canvas.Context.
func (c *ImageContext) StrokeArc(cx, cy, r float64) {
	if c.dst == nil || r <= 0 {
		return
	}
	st := c.Current()
	vector.StrokeCircle(c.dst, float32(cx), float32(cy), float32(r),
		float32(st.LineWidth), st.StrokeColor(), c.antialias)
}

// DrawGlow paints a soft disc of the given radius centered on (cx, cy). The
// color's alpha is the peak opacity at the center.
func DrawGlow(dst *ebiten.Image, cx, cy, radius float64, col color.NRGBA) {
	peak := float64(col.A) / 255
	solid := col
	for _, l := range glowLayers(radius, peak, 6) {
		solid.A = uint8(l.alpha*255 + 0.5)
		vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(l.radius), solid, true)
	}
}
