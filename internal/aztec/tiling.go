package aztec

import (
	"errors"
	"fmt"
)

var (
	// ErrOutside indicates a domino covers a square outside the diamond.
	ErrOutside = errors.New("aztec: domino extends outside the diamond")
	// ErrOverlap indicates a unit square is covered by two dominoes.
	ErrOverlap = errors.New("aztec: dominoes overlap")
	// ErrUncovered indicates a unit square inside the diamond has no domino.
	ErrUncovered = errors.New("aztec: square left uncovered")
)

// Square is a unit square identified by its lower-left corner.
type Square struct{ X, Y int }

// Domino is a placed domino: the vertex at the middle of its long side and
// the direction it points. Up and Down dominoes are horizontal, Left and Right
// dominoes are vertical.
type Domino struct {
	X, Y int
	Dir  Direction
}

// Squares returns the two unit squares covered by the domino. Up covers the
// two squares below its vertex, Down the two above, Left the two to the right
// and Right the two to the left.
func (d Domino) Squares() [2]Square {
	x, y := d.X, d.Y
	switch d.Dir {
	case Up:
		return [2]Square{{x - 1, y - 1}, {x, y - 1}}
	case Down:
		return [2]Square{{x - 1, y}, {x, y}}
	case Left:
		return [2]Square{{x, y}, {x, y - 1}}
	default:
		return [2]Square{{x - 1, y}, {x - 1, y - 1}}
	}
}

// InDiamond reports whether the square belongs to the Aztec diamond tiled by
// a lattice of the given order.
func (s Square) InDiamond(order int) bool {
	return abs(2*s.X+1)+abs(2*s.Y+1) <= 2*(order-1)
}

// SquareCount returns how many unit squares a lattice of the given order tiles.
func SquareCount(order int) int { return 2 * order * (order - 1) }

// Dominoes lists every domino on the lattice in storage order. A Double
// vertex yields both of its dominoes.
func (l *Lattice) Dominoes() []Domino {
	var out []Domino
	l.Sweep(func(x, y int, f Facing) {
		for _, d := range f.Dirs() {
			out = append(out, Domino{X: x, Y: y, Dir: d})
		}
	})
	return out
}

// Validate checks that the dominoes partition the diamond: none leaves it, no
// square is covered twice, and every square is covered.
func (l *Lattice) Validate() error {
	side := 2 * (l.order - 1)
	covered := make([]bool, side*side)
	offset := l.order - 1
	for _, d := range l.Dominoes() {
		for _, s := range d.Squares() {
			if !s.InDiamond(l.order) {
				return fmt.Errorf("%w: %s domino at (%d, %d)", ErrOutside, d.Dir, d.X, d.Y)
			}
			i := (s.Y+offset)*side + s.X + offset
			if covered[i] {
				return fmt.Errorf("%w: square (%d, %d)", ErrOverlap, s.X, s.Y)
			}
			covered[i] = true
		}
	}
	for sy := -offset; sy < offset; sy++ {
		for sx := -offset; sx < offset; sx++ {
			s := Square{sx, sy}
			if s.InDiamond(l.order) && !covered[(sy+offset)*side+sx+offset] {
				return fmt.Errorf("%w: square (%d, %d)", ErrUncovered, sx, sy)
			}
		}
	}
	return nil
}
