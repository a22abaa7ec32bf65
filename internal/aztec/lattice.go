package aztec

import "fmt"

// InitialOrder is the order every fresh shuffle starts from.
const InitialOrder = 2

// Lattice is the vertex lattice of an Aztec diamond. It stores one Facing per
// vertex (x, y) with |x|+|y| < order in a single dense slice. Rows run from
// y = order-1 down to y = -(order-1), x increasing within a row.
type Lattice struct {
	order int
	cells []Facing
}

// New allocates an empty lattice of the given order.
func New(order int) *Lattice {
	if order < 1 {
		panic(fmt.Sprintf("aztec: invalid lattice order %d", order))
	}
	return &Lattice{order: order, cells: make([]Facing, cellCount(order))}
}

func cellCount(order int) int { return 1 + 2*order*(order-1) }

// Order returns the diamond radius.
func (l *Lattice) Order() int { return l.order }

// Len returns the number of stored vertices.
func (l *Lattice) Len() int { return len(l.cells) }

// Contains reports whether (x, y) lies inside the diamond.
func (l *Lattice) Contains(x, y int) bool { return abs(x)+abs(y) < l.order }

// Get returns the state at (x, y). Vertices outside the diamond are Empty.
func (l *Lattice) Get(x, y int) Facing {
	if !l.Contains(x, y) {
		return Empty
	}
	return l.cells[l.index(x, y)]
}

// Mut returns a pointer to the stored state at (x, y). It panics outside the
// diamond so a coordinate bug can never be silently dropped.
func (l *Lattice) Mut(x, y int) *Facing {
	if !l.Contains(x, y) {
		panic(fmt.Sprintf("aztec: accessing out of bounds vertex (%d, %d) at order %d", x, y, l.order))
	}
	return &l.cells[l.index(x, y)]
}

// Reset replaces the lattice with an empty one of InitialOrder.
func (l *Lattice) Reset() {
	*l = *New(InitialOrder)
}

func (l *Lattice) index(x, y int) int {
	r := l.order
	if y < 0 {
		k := r + y
		return r*r + (r-1)*(r-1) - k*k + k - 1 + x
	}
	n := r - 1 - y
	return n*n + n + x
}

// Sweep calls fn for every vertex in storage order.
func (l *Lattice) Sweep(fn func(x, y int, f Facing)) {
	x, y := 0, l.order-1
	for _, f := range l.cells {
		fn(x, y, f)
		x++
		if x+abs(y) >= l.order {
			y--
			x = -l.order + abs(y) + 1
		}
	}
}

// Clone returns a deep copy.
func (l *Lattice) Clone() *Lattice {
	cells := make([]Facing, len(l.cells))
	copy(cells, l.cells)
	return &Lattice{order: l.order, cells: cells}
}

// Equal reports whether both lattices have the same order and states.
func (l *Lattice) Equal(o *Lattice) bool {
	if l.order != o.order || len(l.cells) != len(o.cells) {
		return false
	}
	for i := range l.cells {
		if l.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
