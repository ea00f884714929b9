//go:build !ebiten

package ui

import (
	"ocean-fx/internal/core"
	"ocean-fx/internal/ocean"
)

// StatsSource supplies what the HUD reports each frame.
type StatsSource interface {
	Registry() *ocean.Registry
	Stats() ocean.FrameStats
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(StatsSource, core.ParameterSnapshot, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
