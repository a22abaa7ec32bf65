// Package render turns a domino tiling into pixels or terminal text.
package render

import (
	"aztec/internal/aztec"
	"aztec/internal/core"
)

// Tiling is the read-only surface the renderers need.
type Tiling interface {
	Order() int
	Dominoes() []aztec.Domino
}

// Square values stored in a rasterized grid.
const (
	SquareOutside uint8 = iota
	SquareOpen
	squareDirBase
)

// Values of squares covered by dominoes, one per direction.
const (
	SquareUp    = squareDirBase + uint8(aztec.Up)
	SquareDown  = squareDirBase + uint8(aztec.Down)
	SquareLeft  = squareDirBase + uint8(aztec.Left)
	SquareRight = squareDirBase + uint8(aztec.Right)
)

// SquareValue returns the grid value for a square covered by a domino
// pointing in d.
func SquareValue(d aztec.Direction) uint8 { return squareDirBase + uint8(d) }

// Rasterize maps the tiling onto a grid with one cell per unit square. Row 0
// is the top of the diamond. Squares inside the diamond without a domino are
// SquareOpen; everything else outside is SquareOutside.
func Rasterize(t Tiling) *core.ByteGrid {
	order := t.Order()
	offset := order - 1
	side := 2 * offset
	g := core.NewByteGrid(side, side)
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			s := aztec.Square{X: col - offset, Y: offset - 1 - row}
			if s.InDiamond(order) {
				g.Set(col, row, SquareOpen)
			}
		}
	}
	for _, d := range t.Dominoes() {
		for _, s := range d.Squares() {
			g.Set(s.X+offset, offset-1-s.Y, SquareValue(d.Dir))
		}
	}
	return g
}
