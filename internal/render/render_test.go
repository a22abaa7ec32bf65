package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aztec/internal/aztec"
	"aztec/pkg/core"
)

type constCoin bool

func (c constCoin) Bool() bool { return bool(c) }

func orderTwo(horizontal bool) *aztec.Lattice {
	l := aztec.New(2)
	l.Fill(constCoin(horizontal))
	return l
}

func TestRasterizeOrderTwo(t *testing.T) {
	g := Rasterize(orderTwo(true))
	require.Equal(t, 2, g.W)
	require.Equal(t, 2, g.H)
	assert.Equal(t, SquareLeft, g.At(0, 0))
	assert.Equal(t, SquareLeft, g.At(0, 1))
	assert.Equal(t, SquareRight, g.At(1, 0))
	assert.Equal(t, SquareRight, g.At(1, 1))

	g = Rasterize(orderTwo(false))
	assert.Equal(t, SquareUp, g.At(0, 0))
	assert.Equal(t, SquareUp, g.At(1, 0))
	assert.Equal(t, SquareDown, g.At(0, 1))
	assert.Equal(t, SquareDown, g.At(1, 1))
}

func TestRasterizeMarksOpenAndOutside(t *testing.T) {
	l := orderTwo(true)
	l.Migrate()
	g := Rasterize(l)
	require.Equal(t, 4, g.W)

	counts := map[uint8]int{}
	for _, v := range g.Cells() {
		counts[v]++
	}
	assert.Equal(t, 4, counts[SquareOutside])
	assert.Equal(t, 8, counts[SquareOpen])
	assert.Equal(t, 2, counts[SquareLeft])
	assert.Equal(t, 2, counts[SquareRight])
	assert.Equal(t, SquareOutside, g.At(0, 0))
	assert.Equal(t, SquareLeft, g.At(0, 1))
}

func TestASCIIPlain(t *testing.T) {
	assert.Equal(t, "←←→→\n←←→→", ASCII(Rasterize(orderTwo(true)), false))
	assert.Equal(t, "↑↑↑↑\n↓↓↓↓", ASCII(Rasterize(orderTwo(false)), false))

	l := orderTwo(true)
	l.Migrate()
	want := strings.Join([]string{
		"  ····",
		"←←····→→",
		"←←····→→",
		"  ····",
	}, "\n")
	assert.Equal(t, want, ASCII(Rasterize(l), false))
}

func TestASCIIColourKeepsShape(t *testing.T) {
	l := aztec.New(2)
	l.Fill(core.NewRNG(3))
	out := ASCII(Rasterize(l), true)
	assert.Len(t, strings.Split(out, "\n"), 2)
	assert.Contains(t, out, "██")
}

func TestPaintTilingOrderTwo(t *testing.T) {
	const cell = 8
	c := NewCanvas(64, 64)
	PaintTiling(c, orderTwo(false), cell)

	// The Up domino sits on the two squares above the centre row.
	assert.Equal(t, Border, c.At(32-cell, 32-cell))
	assert.Equal(t, DirectionColor(aztec.Up), c.At(32-cell+3, 32-cell+3))
	assert.Equal(t, DirectionColor(aztec.Up), c.At(32+cell-3, 32-3))
	assert.Equal(t, DirectionColor(aztec.Down), c.At(32, 32+3))
	assert.Equal(t, Background, c.At(2, 2))
	assert.Equal(t, Background, c.At(32+cell+2, 32))
}

func TestPaintTilingClipsToCanvas(t *testing.T) {
	l := aztec.New(2)
	l.Fill(core.NewRNG(1))
	for l.Order() < 10 {
		l.Migrate()
		l.Fill(core.NewRNG(int64(l.Order())))
	}
	c := NewCanvas(40, 40)
	assert.NotPanics(t, func() { PaintTiling(c, l, 8) })
	assert.Equal(t, 40, c.Image().Bounds().Dx())
}
