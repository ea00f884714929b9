//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"ocean-fx/internal/core"
	"ocean-fx/internal/ocean"
)

// StatsSource supplies what the HUD reports each frame.
type StatsSource interface {
	Registry() *ocean.Registry
	Stats() ocean.FrameStats
}

// HUD renders a translucent panel with live counts and the parameter snapshot.
// H toggles it.
type HUD struct {
	src      StatsSource
	snapshot core.ParameterSnapshot
	width    int
	visible  bool
	lines    []hudLine

	panel *ebiten.Image
	pixel *ebiten.Image
}

type hudLine struct {
	text   string
	header bool
}

// NewHUD constructs a HUD for the provided controller and panel width.
func NewHUD(src StatsSource, snapshot core.ParameterSnapshot, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, snapshot: snapshot, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// Update handles the toggle key and refreshes the panel text.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if !h.visible {
		return
	}
	h.lines = h.lines[:0]
	h.lines = append(h.lines, hudLine{text: "Ocean", header: true})
	h.lines = append(h.lines, hudLine{text: fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS())})
	if h.src != nil {
		reg := h.src.Registry()
		c := reg.Counters()
		st := h.src.Stats()
		h.lines = append(h.lines,
			hudLine{text: fmt.Sprintf("ripples %d  rings %d", len(reg.Ripples()), len(reg.Rings()))},
			hudLine{text: fmt.Sprintf("spawned %d/%d", c.RipplesSpawned, c.RingsSpawned)},
			hudLine{text: fmt.Sprintf("expired %d/%d", c.RipplesExpired, c.RingsExpired)},
			hudLine{text: fmt.Sprintf("frames %d  skipped %d", st.PrimaryFrames, st.SkippedFrames)},
		)
	}
	for _, g := range h.snapshot.Groups {
		title := g.Name
		if g.Summary != "" {
			title = fmt.Sprintf("%s (%s)", g.Name, g.Summary)
		}
		h.lines = append(h.lines, hudLine{text: title, header: true})
		for _, p := range g.Params {
			h.lines = append(h.lines, hudLine{text: fmt.Sprintf("%-16s %s", p.Label, p.Value)})
		}
	}
}

// Draw paints the panel anchored to the top-right corner of screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || h.width <= 0 {
		return
	}
	height := panelPadding*2 + len(h.lines)*lineHeight
	if sh := screen.Bounds().Dy(); height > sh {
		height = sh
	}
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Deallocate()
		}
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, line := range h.lines {
		if y > height {
			break
		}
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if line.header {
			col = color.RGBA{R: 140, G: 210, B: 235, A: 255}
			h.drawRule(y - headerBaseline + 1)
		}
		text.Draw(h.panel, line.text, face, panelPadding, y, col)
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx()-h.width), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawRule(y int) {
	if h.pixel == nil || y <= panelPadding {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(h.width-2*panelPadding), 1)
	op.GeoM.Translate(panelPadding, float64(y))
	op.ColorScale.Scale(0.3, 0.3, 0.35, 0.8)
	h.panel.DrawImage(h.pixel, op)
}

const (
	panelPadding   = 12
	lineHeight     = 16
	headerBaseline = 12
)
