//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a single status line in the top-left corner of the screen.
type HUD struct {
	face  *basicfont.Face
	color color.Color
}

// NewHUD constructs a HUD using the built-in bitmap font.
func NewHUD() *HUD {
	return &HUD{face: basicfont.Face7x13, color: color.White}
}

// Draw paints the status line onto the screen.
func (h *HUD) Draw(screen *ebiten.Image, line string) {
	if h == nil || line == "" {
		return
	}
	text.Draw(screen, line, h.face, 4, 14, h.color)
}
