package aztec

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aztec/pkg/core"
)

func allEmpty(v View) bool {
	empty := true
	v.Sweep(func(_, _ int, f Facing) {
		if !f.IsEmpty() {
			empty = false
		}
	})
	return empty
}

func TestShufflerStartsFilling(t *testing.T) {
	s := NewShuffler(10, WithCoin(core.NewRNG(1)))
	assert.Equal(t, InitialOrder, s.Order())
	assert.Equal(t, 10, s.MaxOrder())
	assert.Equal(t, PhaseFilling, s.Phase())
	assert.True(t, allEmpty(s.Lattice()))
}

func TestHalfStepAlternates(t *testing.T) {
	s := NewShuffler(10, WithCoin(core.NewRNG(2)))

	assert.False(t, s.HalfStep())
	assert.Equal(t, 2, s.Order())
	assert.Equal(t, PhaseMigrating, s.Phase())
	require.NoError(t, s.Lattice().Validate())

	assert.False(t, s.HalfStep())
	assert.Equal(t, 3, s.Order())
	assert.Equal(t, PhaseFilling, s.Phase())
	assert.ErrorIs(t, s.Lattice().Validate(), ErrUncovered)

	assert.False(t, s.HalfStep())
	require.NoError(t, s.Lattice().Validate())
}

func TestFullStepGrowsUntilCap(t *testing.T) {
	s := NewShuffler(6, WithCoin(core.NewRNG(3)))
	for want := 3; want <= 6; want++ {
		require.False(t, s.FullStep())
		require.Equal(t, want, s.Order())
		require.NoError(t, s.Lattice().Validate())
	}

	assert.True(t, s.FullStep(), "growing past the cap must reset")
	assert.Equal(t, InitialOrder, s.Order())
	assert.Equal(t, PhaseFilling, s.Phase())
	assert.Equal(t, 1, s.Generation())
	assert.True(t, allEmpty(s.Lattice()))

	require.False(t, s.FullStep())
	assert.Equal(t, 3, s.Order())
}

func TestFullStepAfterHalfStep(t *testing.T) {
	s := NewShuffler(10, WithCoin(core.NewRNG(4)))
	s.HalfStep()
	s.HalfStep()
	require.Equal(t, PhaseFilling, s.Phase())

	require.False(t, s.FullStep())
	assert.Equal(t, 4, s.Order())
	require.NoError(t, s.Lattice().Validate())

	// A full step leaves the diamond complete, so the next half-step migrates.
	s.HalfStep()
	assert.Equal(t, 5, s.Order())
}

func TestFullStepCapAtInitialOrder(t *testing.T) {
	s := NewShuffler(2, WithCoin(core.NewRNG(5)))
	require.False(t, s.HalfStep())
	require.NoError(t, s.Lattice().Validate())

	assert.True(t, s.FullStep())
	assert.Equal(t, 2, s.Order())
	assert.Equal(t, PhaseFilling, s.Phase())
	assert.True(t, allEmpty(s.Lattice()))
}

func TestHalfStepResetAtCap(t *testing.T) {
	s := NewShuffler(3, WithCoin(core.NewRNG(6)))
	assert.False(t, s.HalfStep())
	assert.False(t, s.HalfStep())
	assert.False(t, s.HalfStep())
	assert.True(t, s.HalfStep())
	assert.Equal(t, InitialOrder, s.Order())
	assert.Equal(t, PhaseFilling, s.Phase())
}

func TestShufflerStats(t *testing.T) {
	s := NewShuffler(40, WithCoin(core.NewRNG(7)))
	s.HalfStep()
	for i := 0; i < 12; i++ {
		prev := len(s.Lattice().Dominoes())
		s.FullStep()
		m := s.LastMigrate()
		assert.Equal(t, prev, m.Moved+m.Annihilated)
		assert.Positive(t, s.LastFill().Tiles)
	}
}

func TestShufflerReplay(t *testing.T) {
	a := NewShuffler(30, WithCoin(core.NewRNG(9)))
	b := NewShuffler(30, WithCoin(core.NewRNG(9)))
	for i := 0; i < 10; i++ {
		a.FullStep()
		b.HalfStep()
		b.HalfStep()
	}
	b.HalfStep()
	assert.Equal(t, a.Order(), b.Order())
	assert.True(t, a.Lattice().Snapshot().Equal(b.Lattice().Snapshot()))
}

func TestShufflerLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	s := NewShuffler(3, WithCoin(core.NewRNG(8)), WithLogger(logger))
	s.FullStep()
	assert.Contains(t, buf.String(), "filled")
	assert.Contains(t, buf.String(), "migrated")

	s.FullStep()
	assert.Contains(t, buf.String(), "order cap reached")
}

func TestMaxOrderForWindow(t *testing.T) {
	assert.Equal(t, 64, MaxOrderForWindow(1024))
	assert.Equal(t, 0, MaxOrderForWindow(8))
}
