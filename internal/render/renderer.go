//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on alive-flag cell data and
// scales it up so each cell covers a cellSize square on screen.
type GridPainter struct {
	w, h  int
	img   *ebiten.Image
	buf   []byte
	pixel *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	gp.pixel = ebiten.NewImage(1, 1)
	gp.pixel.Fill(color.White)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []bool, on, off color.Color, cellSize int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)
}

// DrawGridLines paints one-pixel cell boundaries over the blitted grid by
// stretching a 1x1 image into full-width and full-height lines.
func (gp *GridPainter) DrawGridLines(dst *ebiten.Image, col color.Color, cellSize int) {
	winW := gp.w * cellSize
	winH := gp.h * cellSize
	r, g, b, a := col.RGBA()
	cr := float64(r>>8) / 255.0
	cg := float64(g>>8) / 255.0
	cb := float64(b>>8) / 255.0
	ca := float64(a>>8) / 255.0

	for x := 0; x <= winW; x += cellSize {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(1, float64(winH))
		op.GeoM.Translate(float64(x), 0)
		op.ColorM.Scale(cr, cg, cb, ca)
		dst.DrawImage(gp.pixel, op)
	}
	for y := 0; y <= winH; y += cellSize {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(winW), 1)
		op.GeoM.Translate(0, float64(y))
		op.ColorM.Scale(cr, cg, cb, ca)
		dst.DrawImage(gp.pixel, op)
	}
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
