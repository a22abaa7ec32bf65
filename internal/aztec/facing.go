package aztec

import "fmt"

// Facing is the state of one lattice vertex: Empty, Single(dir) or
// Double(dir1, dir2). The zero value is Empty.
type Facing struct {
	n     uint8
	first Direction
	last  Direction
}

// Empty is the state of a vertex that holds no domino.
var Empty = Facing{}

// Single returns a vertex state holding one domino pointing in d.
func Single(d Direction) Facing { return Facing{n: 1, first: d} }

// Double returns a vertex state holding two dominoes, a then b.
func Double(a, b Direction) Facing { return Facing{n: 2, first: a, last: b} }

// Add records another direction on the vertex. Adding to a Double panics:
// it means migration or creation produced an impossible collision.
func (f *Facing) Add(d Direction) {
	switch f.n {
	case 0:
		f.first = d
	case 1:
		f.last = d
	default:
		panic(fmt.Sprintf("aztec: too many directions added to single vertex (%s, %s, %s)", f.first, f.last, d))
	}
	f.n++
}

// Count returns how many directions are recorded.
func (f Facing) Count() int { return int(f.n) }

// IsEmpty reports whether no domino is recorded.
func (f Facing) IsEmpty() bool { return f.n == 0 }

// IsSingle reports whether exactly one domino is recorded.
func (f Facing) IsSingle() bool { return f.n == 1 }

// IsDouble reports whether the vertex holds an opposed pair.
func (f Facing) IsDouble() bool { return f.n == 2 }

// Dir returns the direction of a Single vertex. ok is false otherwise.
func (f Facing) Dir() (d Direction, ok bool) {
	if f.n != 1 {
		return 0, false
	}
	return f.first, true
}

// Dirs returns the recorded directions in insertion order.
func (f Facing) Dirs() []Direction {
	switch f.n {
	case 0:
		return nil
	case 1:
		return []Direction{f.first}
	default:
		return []Direction{f.first, f.last}
	}
}

// Has reports whether d is among the recorded directions.
func (f Facing) Has(d Direction) bool {
	return (f.n >= 1 && f.first == d) || (f.n == 2 && f.last == d)
}

// singleOf reports whether f is Empty or a Single pointing in one of dirs.
func (f Facing) singleOf(dirs ...Direction) bool {
	if f.n == 0 {
		return true
	}
	if f.n != 1 {
		return false
	}
	for _, d := range dirs {
		if f.first == d {
			return true
		}
	}
	return false
}

func (f Facing) String() string {
	switch f.n {
	case 0:
		return "empty"
	case 1:
		return f.first.String()
	default:
		return f.first.String() + "+" + f.last.String()
	}
}
