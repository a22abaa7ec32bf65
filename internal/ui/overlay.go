//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay highlights bad blocks and uncovered squares on top of the diamond.
type Overlay struct {
	cellPx   int
	showBad  bool
	showOpen bool
	pixel    *ebiten.Image
}

// NewOverlay constructs an overlay for cells of cellPx pixels.
func NewOverlay(cellPx int) *Overlay {
	o := &Overlay{cellPx: cellPx}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the layers: 1 for bad blocks, 2 for open squares.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showBad = !o.showBad
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showOpen = !o.showOpen
	}
}

// Draw renders the enabled layers with the lattice origin at (cx, cy).
func (o *Overlay) Draw(screen *ebiten.Image, t Tiling, cx, cy int) {
	if o.showOpen {
		o.drawRects(screen, OpenSquares(t, o.cellPx), cx, cy, color.NRGBA{R: 255, G: 255, B: 255, A: 96})
	}
	if o.showBad {
		o.drawRects(screen, BadBlocks(t, o.cellPx), cx, cy, color.NRGBA{R: 255, G: 0, B: 255, A: 110})
	}
}

func (o *Overlay) drawRects(screen *ebiten.Image, rects []image.Rectangle, cx, cy int, tint color.Color) {
	for _, r := range rects {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
		op.GeoM.Translate(float64(r.Min.X+cx), float64(r.Min.Y+cy))
		op.ColorScale.ScaleWithColor(tint)
		screen.DrawImage(o.pixel, op)
	}
}
