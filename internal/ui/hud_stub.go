//go:build !ebiten

package ui

import "wildfire-ca/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, int) *HUD { return nil }

// Refresh is a no-op in the headless build.
func (h *HUD) Refresh(core.Sim) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int, Frame, ViewState) {}
