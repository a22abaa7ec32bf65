package ui

import (
	"image"

	"aztec/internal/aztec"
	"aztec/internal/render"
)

// Tiling is what the overlay inspects.
type Tiling interface {
	render.Tiling
	Sweep(fn func(x, y int, f aztec.Facing))
}

// BadBlocks returns the 2x2 block around every vertex holding two opposed
// dominoes. Rectangles are in pixels relative to lattice vertex (0, 0),
// with y growing downwards.
func BadBlocks(t Tiling, cellPx int) []image.Rectangle {
	var out []image.Rectangle
	t.Sweep(func(x, y int, f aztec.Facing) {
		if !f.IsDouble() {
			return
		}
		out = append(out, image.Rect((x-1)*cellPx, -(y+1)*cellPx, (x+1)*cellPx, -(y-1)*cellPx))
	})
	return out
}

// OpenSquares returns the uncovered unit squares of the diamond in the same
// pixel space as BadBlocks.
func OpenSquares(t Tiling, cellPx int) []image.Rectangle {
	g := render.Rasterize(t)
	off := g.W / 2
	var out []image.Rectangle
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			if g.At(col, row) != render.SquareOpen {
				continue
			}
			x, y := (col-off)*cellPx, (row-off)*cellPx
			out = append(out, image.Rect(x, y, x+cellPx, y+cellPx))
		}
	}
	return out
}
