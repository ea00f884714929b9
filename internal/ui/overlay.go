//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ocean-fx/internal/ocean"
)

// Overlay draws debugging visuals on top of the backdrop: each ripple's origin
// and direction of travel, and each ring's center. D toggles it.
type Overlay struct {
	reg  *ocean.Registry
	show bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(reg *ocean.Registry) *Overlay {
	return &Overlay{reg: reg}
}

// Update allows the overlay to update internal state.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.show = !o.show
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.reg == nil {
		return
	}
	arrow := color.RGBA{R: 255, G: 200, B: 64, A: 220}
	for _, r := range o.reg.Ripples() {
		x, y := float32(r.Origin.X), float32(r.Origin.Y)
		dx := float32(math.Cos(r.Angle) * directionLength)
		dy := float32(math.Sin(r.Angle) * directionLength)
		vector.StrokeLine(screen, x-dx, y-dy, x+dx, y+dy, 1, arrow, true)
		vector.DrawFilledCircle(screen, x, y, 2, arrow, true)
	}
	center := color.RGBA{R: 255, G: 80, B: 120, A: 200}
	for _, r := range o.reg.Rings() {
		vector.DrawFilledCircle(screen, float32(r.Origin.X), float32(r.Origin.Y), 2, center, true)
	}
}

const directionLength = 14
