package canvas

import (
	"image/color"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Stop is a gradient color stop at an offset in [0,1].
type Stop struct {
	Offset float64
	Color  color.Color
}

// Gradient is a linear gradient running from the top (offset 0) to the bottom
// (offset 1) of the filled rectangle.
type Gradient struct {
	Stops []Stop
}

// NewGradient returns a gradient with stops sorted by offset.
func NewGradient(stops ...Stop) Gradient {
	out := make([]Stop, len(stops))
	copy(out, stops)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return Gradient{Stops: out}
}

// VerticalGradient is the two-stop gradient used by the ocean background.
func VerticalGradient(top, bottom color.Color) Gradient {
	return NewGradient(Stop{Offset: 0, Color: top}, Stop{Offset: 1, Color: bottom})
}

// At returns the color at offset t. Colors are interpolated per sRGB channel,
// as canvas gradients are; alpha is interpolated linearly.
func (g Gradient) At(t float64) color.NRGBA {
	switch len(g.Stops) {
	case 0:
		return color.NRGBA{}
	case 1:
		return toNRGBA(g.Stops[0].Color)
	}
	first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
	if t <= first.Offset {
		return toNRGBA(first.Color)
	}
	if t >= last.Offset {
		return toNRGBA(last.Color)
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return toNRGBA(b.Color)
		}
		return blend(a.Color, b.Color, (t-a.Offset)/span)
	}
	return toNRGBA(last.Color)
}

func blend(a, b color.Color, t float64) color.NRGBA {
	na, nb := toNRGBA(a), toNRGBA(b)
	ca := colorful.Color{R: float64(na.R) / 255, G: float64(na.G) / 255, B: float64(na.B) / 255}
	cb := colorful.Color{R: float64(nb.R) / 255, G: float64(nb.G) / 255, B: float64(nb.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	alpha := float64(na.A) + t*(float64(nb.A)-float64(na.A))
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
