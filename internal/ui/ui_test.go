package ui

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aztec/internal/aztec"
	"aztec/internal/core"
	pcore "aztec/pkg/core"
)

func TestBadBlocks(t *testing.T) {
	l := aztec.New(3)
	l.Mut(0, 0).Add(aztec.Up)
	l.Mut(0, 0).Add(aztec.Down)
	l.Mut(1, 0).Add(aztec.Left)

	assert.Equal(t, []image.Rectangle{image.Rect(-8, -8, 8, 8)}, BadBlocks(l, 8))
	assert.Empty(t, BadBlocks(aztec.New(3), 8))
}

func TestOpenSquares(t *testing.T) {
	l := aztec.New(2)
	assert.ElementsMatch(t, []image.Rectangle{
		image.Rect(-8, -8, 0, 0),
		image.Rect(0, -8, 8, 0),
		image.Rect(-8, 0, 0, 8),
		image.Rect(0, 0, 8, 8),
	}, OpenSquares(l, 8))

	// Up at (0, 1) covers the two squares just above the centre row.
	l.Mut(0, 1).Add(aztec.Up)
	assert.ElementsMatch(t, []image.Rectangle{
		image.Rect(-8, 0, 0, 8),
		image.Rect(0, 0, 8, 8),
	}, OpenSquares(l, 8))
}

func TestOpenSquaresEmptyAfterFill(t *testing.T) {
	s := aztec.NewShuffler(8, aztec.WithCoin(pcore.NewRNG(3)))
	for s.Order() < 6 {
		s.FullStep()
	}
	assert.Empty(t, OpenSquares(s.Lattice(), 4))

	s.HalfStep()
	require.Equal(t, aztec.PhaseFilling, s.Phase())
	assert.NotEmpty(t, OpenSquares(s.Lattice(), 4), "migration leaves blocks to fill")
}

func TestStatusLines(t *testing.T) {
	s := aztec.NewShuffler(6, aztec.WithCoin(pcore.NewRNG(1)))
	session := core.NewSession(s, core.DefaultInterval, core.ModeFull)
	session.Advance()
	session.TogglePause()

	got := map[string]string{}
	for _, line := range StatusLines(s, session) {
		got[line.Label] = line.Value
	}
	assert.Equal(t, "3 / 6", got["Order"])
	assert.Equal(t, "migrating", got["Next"])
	assert.Equal(t, "full-step", got["Mode"])
	assert.Equal(t, "paused", got["State"])
	assert.Equal(t, "300ms", got["Interval"])
	assert.Equal(t, "1", got["Steps"])
	assert.Equal(t, "0", got["Restarts"])
}
