//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter paints a tiling into a single ebiten image.
type GridPainter struct {
	canvas *Canvas
	img    *ebiten.Image
	cellPx int
}

// NewGridPainter allocates a painter for a w×h pixel view.
func NewGridPainter(w, h, cellPx int) *GridPainter {
	c := NewCanvas(w, h)
	return &GridPainter{canvas: c, img: ebiten.NewImage(c.W, c.H), cellPx: cellPx}
}

// Blit repaints the tiling and draws it onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, t Tiling) {
	PaintTiling(gp.canvas, t, gp.cellPx)
	gp.img.WritePixels(gp.canvas.Pix)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.canvas.W, gp.canvas.H }
