//go:build ebiten

package ui

import (
	"image/color"

	"aoc-automata/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const hudLineHeight = 16

// HUD renders the sim's parameter snapshot to the right of the grid.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// Update refreshes the cached lines from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	var snap core.ParameterSnapshot
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		snap = provider.Parameters()
	}
	h.lines = hudLines(h.sim.Name(), snap)
}

// Draw paints the HUD panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if need := h.Height(); height < need {
		height = need
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	for i, line := range h.lines {
		text.Draw(h.panel, line, basicfont.Face7x13, 8, (i+1)*hudLineHeight, color.White)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

// Height returns the panel height needed for the current lines.
func (h *HUD) Height() int {
	if h == nil {
		return 0
	}
	return (len(h.lines) + 1) * hudLineHeight
}
