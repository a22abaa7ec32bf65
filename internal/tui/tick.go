// Package tui is the Bubble Tea terminal viewer for a shuffle session.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval is how often the model polls the session pacer.
const frameInterval = 16 * time.Millisecond

// TickMsg drives the session clock.
type TickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
