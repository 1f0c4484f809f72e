//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/oechslein/AdventOfCode2024/internal/core"
)

const lineHeight = 16

// HUD renders the status panel to the right of the simulation view.
type HUD struct {
	sim   core.Sim
	width int
	lines []string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	return &HUD{sim: sim, width: max(width, 0)}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached status text.
func (h *HUD) Update(generation int, paused bool) {
	if h == nil || h.width == 0 {
		return
	}
	h.lines = StatusLines(h.sim, generation, paused)
}

// Draw paints the panel starting at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width == 0 {
		return
	}
	bounds := screen.Bounds()
	vector.DrawFilledRect(screen, float32(offsetX), 0, float32(h.width), float32(bounds.Dy()), color.RGBA{20, 20, 28, 255}, false)
	for i, line := range h.lines {
		ebitenutil.DebugPrintAt(screen, line, offsetX+8, 8+i*lineHeight)
	}
}
