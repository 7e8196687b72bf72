//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"wildfire-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the readout panel to the right of the simulation view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string
	params     core.ParameterSnapshot
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width, title: "wildfire"}
	if sim != nil && sim.Name() != "" {
		h.title = sim.Name()
	}
	h.Refresh(sim)
	return h
}

// Refresh re-reads the parameter snapshot, e.g. after a reset with a new seed.
func (h *HUD) Refresh(sim core.Sim) {
	if h == nil {
		return
	}
	if provider, ok := sim.(core.ParameterProvider); ok {
		h.params = provider.Parameters()
	}
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int, f Frame, v ViewState) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, headerColor)
	y += sectionGap

	for _, line := range StatusLines(f, v) {
		text.Draw(h.panel, line, face, panelPadding, y, valueColor)
		y += lineHeight
	}
	y += sectionGap / 2
	text.Draw(h.panel, "Hotspots", face, panelPadding, y, headerColor)
	y += lineHeight
	for i, line := range HotspotLines(f) {
		col := dimColor
		if i < len(f.Metrics.Hotspots) {
			col = riskColor(int(f.Metrics.Hotspots[i].Risk))
		}
		text.Draw(h.panel, line, face, panelPadding, y, col)
		y += lineHeight
	}

	for _, group := range h.params.Groups {
		if y+lineHeight > height {
			break
		}
		y += sectionGap / 2
		text.Draw(h.panel, group.Name, face, panelPadding, y, headerColor)
		y += lineHeight
		for _, p := range group.Params {
			if y > height {
				break
			}
			text.Draw(h.panel, fmt.Sprintf("%s %s", p.Key, p.Value), face, panelPadding, y, dimColor)
			y += lineHeight
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	valueColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 15
	headerBaseline = 18
	sectionGap     = 12
)
