package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aztec/internal/aztec"
	"aztec/internal/core"
	pcore "aztec/pkg/core"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	s := aztec.NewShuffler(6, aztec.WithCoin(pcore.NewRNG(7)))
	session := core.NewSession(s, core.DefaultInterval, core.ModeFull)
	return NewModel(s, session, false)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMaxOrderForTerminal(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want int
	}{
		{"tall and wide", 200, 44, 21},
		{"narrow", 40, 100, 11},
		{"tiny", 4, 4, aztec.InitialOrder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxOrderForTerminal(tt.w, tt.h))
		})
	}
}

func TestKeysDriveSession(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(runes("p"))
	m = next.(Model)
	assert.True(t, m.session.Paused())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	assert.Equal(t, 1, m.session.Steps(), "space on a paused session half-steps")
	assert.Equal(t, aztec.PhaseMigrating, m.shuffler.Phase())

	next, _ = m.Update(runes("m"))
	m = next.(Model)
	assert.Equal(t, core.ModeHalf, m.session.Mode())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(Model)
	assert.Less(t, m.session.Interval(), core.DefaultInterval)

	next, _ = m.Update(runes("r"))
	m = next.(Model)
	assert.Equal(t, core.DefaultInterval, m.session.Interval())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	assert.Greater(t, m.session.Interval(), core.DefaultInterval)
}

func TestTickAdvancesWhenRunning(t *testing.T) {
	m := newTestModel(t)
	start := time.Unix(0, 0)

	next, cmd := m.Update(TickMsg(start))
	m = next.(Model)
	require.NotNil(t, cmd)

	next, _ = m.Update(TickMsg(start.Add(core.DefaultInterval)))
	m = next.(Model)
	assert.Equal(t, 1, m.session.Steps())
	assert.Equal(t, 3, m.shuffler.Order())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.(Model).View())
}

func TestViewShowsDiamondAndStatus(t *testing.T) {
	m := newTestModel(t)
	m.session.Advance()

	view := m.View()
	lines := strings.Split(view, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Contains(t, view, "order 3/6")
	assert.Contains(t, view, "full-step")
	assert.Len(t, []rune(lines[1]), 8, "widest row of an order-3 diamond")

	next, _ := m.Update(runes("?"))
	assert.NotEqual(t, view, next.(Model).View())
}
