package aztec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellCount(t *testing.T) {
	for order := 1; order <= 8; order++ {
		l := New(order)
		assert.Equal(t, 1+2*order*(order-1), l.Len(), "order %d", order)
	}
	assert.Equal(t, 5, New(2).Len())
}

func TestNewRejectsNonPositiveOrder(t *testing.T) {
	assert.Panics(t, func() { New(0) })
}

func TestSweepMatchesIndex(t *testing.T) {
	for order := 1; order <= 9; order++ {
		l := New(order)
		seen := make(map[[2]int]bool)
		pos := 0
		prevY := order
		l.Sweep(func(x, y int, f Facing) {
			require.True(t, l.Contains(x, y), "order %d: (%d,%d) outside", order, x, y)
			require.Equal(t, pos, l.index(x, y), "order %d: (%d,%d)", order, x, y)
			require.LessOrEqual(t, y, prevY, "rows must run top to bottom")
			require.False(t, seen[[2]int{x, y}], "visited (%d,%d) twice", x, y)
			seen[[2]int{x, y}] = true
			prevY = y
			pos++
		})
		assert.Equal(t, l.Len(), pos)

		want := 0
		for y := -order; y <= order; y++ {
			for x := -order; x <= order; x++ {
				if abs(x)+abs(y) < order {
					want++
					assert.True(t, seen[[2]int{x, y}], "order %d: (%d,%d) not visited", order, x, y)
				}
			}
		}
		assert.Equal(t, want, len(seen))
	}
}

func TestGetOutsideIsEmpty(t *testing.T) {
	l := New(3)
	l.Mut(0, 2).Add(Up)
	assert.Equal(t, Single(Up), l.Get(0, 2))
	assert.Equal(t, Empty, l.Get(0, 3))
	assert.Equal(t, Empty, l.Get(-2, 1))
	assert.Equal(t, Empty, l.Get(100, -100))
}

func TestMutOutsidePanics(t *testing.T) {
	l := New(3)
	assert.Panics(t, func() { l.Mut(3, 0) })
	assert.Panics(t, func() { l.Mut(1, -2) })
	assert.NotPanics(t, func() { l.Mut(1, -1) })
}

func TestReset(t *testing.T) {
	l := New(5)
	l.Mut(1, 1).Add(Left)
	l.Reset()
	assert.Equal(t, InitialOrder, l.Order())
	assert.Equal(t, 5, l.Len())
	l.Sweep(func(x, y int, f Facing) {
		assert.True(t, f.IsEmpty(), "(%d,%d) not empty after reset", x, y)
	})
}

func TestCloneIsIndependent(t *testing.T) {
	l := New(3)
	l.Mut(0, 0).Add(Down)
	c := l.Clone()
	assert.True(t, l.Equal(c))
	c.Mut(1, 0).Add(Right)
	assert.False(t, l.Equal(c))
	assert.True(t, l.Get(1, 0).IsEmpty())
	assert.False(t, l.Equal(New(4)))
}

func TestFacingTransitions(t *testing.T) {
	var f Facing
	assert.True(t, f.IsEmpty())
	assert.Nil(t, f.Dirs())

	f.Add(Left)
	assert.True(t, f.IsSingle())
	d, ok := f.Dir()
	assert.True(t, ok)
	assert.Equal(t, Left, d)
	assert.Equal(t, Single(Left), f)

	f.Add(Right)
	assert.True(t, f.IsDouble())
	assert.Equal(t, []Direction{Left, Right}, f.Dirs())
	assert.True(t, f.Has(Right))
	assert.False(t, f.Has(Up))
	assert.Equal(t, "left+right", f.String())
	_, ok = f.Dir()
	assert.False(t, ok)

	assert.PanicsWithValue(t,
		"aztec: too many directions added to single vertex (left, right, up)",
		func() { f.Add(Up) })
}

func TestDirectionDelta(t *testing.T) {
	for _, d := range Directions() {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		assert.Equal(t, 1, abs(dx)+abs(dy), d.String())
		assert.Equal(t, -dx, ox)
		assert.Equal(t, -dy, oy)
		assert.Equal(t, dx != 0, d.Horizontal())
	}
	dx, dy := Up.Delta()
	assert.Equal(t, [2]int{0, 1}, [2]int{dx, dy})
}
