package ocean

import (
	"ocean-fx/internal/canvas"
	"ocean-fx/internal/core"
)

// DrawBackground fills the viewport with the top-to-bottom ocean gradient.
func DrawBackground(ctx canvas.Context, viewport core.Size, p Params) {
	w, h := float64(viewport.W), float64(viewport.H)
	ctx.FillLinearGradient(0, 0, w, h, canvas.VerticalGradient(p.OceanTop, p.OceanBottom))
}
