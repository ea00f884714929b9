// Package web hosts the backdrop on an HTML canvas when compiled to
// WebAssembly. Only the color formatting below builds on other platforms.
package web

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"

	"ocean-fx/internal/core"
)

// cssColor formats c for a canvas strokeStyle or gradient stop: opaque colors
// as hex, translucent ones as rgba().
func cssColor(c color.Color) string {
	if c == nil {
		return "transparent"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	cf := colorful.Color{R: float64(n.R) / 255, G: float64(n.G) / 255, B: float64(n.B) / 255}
	if n.A == 255 {
		return cf.Hex()
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", n.R, n.G, n.B,
		strconv.FormatFloat(float64(n.A)/255, 'f', 3, 64))
}

// glowStyle returns the inline style of a round glow element of the given
// diameter, fading from col at its center to transparent at the rim.
func glowStyle(diameter float64, col color.NRGBA) map[string]string {
	px := strconv.FormatFloat(diameter, 'f', -1, 64) + "px"
	rim := col
	rim.A = 0
	return map[string]string{
		"position":      "fixed",
		"left":          "0",
		"top":           "0",
		"width":         px,
		"height":        px,
		"borderRadius":  "50%",
		"pointerEvents": "none",
		"opacity":       "0",
		"willChange":    "transform",
		"background":    fmt.Sprintf("radial-gradient(circle, %s 0%%, %s 70%%)", cssColor(col), cssColor(rim)),
	}
}

// translate positions an element's top-left corner at p.
func translate(p core.Point) string {
	return fmt.Sprintf("translate3d(%.1fpx, %.1fpx, 0)", p.X, p.Y)
}
