package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"aztec/internal/aztec"
	"aztec/internal/core"
	"aztec/internal/render"
)

// reservedRows is the number of terminal rows used by the status and help lines.
const reservedRows = 4

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8a8a"))

// Model is the Bubble Tea model wrapping a shuffle session.
type Model struct {
	shuffler *aztec.Shuffler
	session  *core.Session
	keys     KeyMap
	help     help.Model
	colour   bool
	quitting bool
}

// NewModel creates a viewer for the given shuffler and session.
func NewModel(shuffler *aztec.Shuffler, session *core.Session, colour bool) Model {
	return Model{
		shuffler: shuffler,
		session:  session,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		colour:   colour,
	}
}

// MaxOrderForTerminal returns the largest diamond order that fits in a
// terminal of w columns and h rows. Each cell is two columns wide.
func MaxOrderForTerminal(w, h int) int {
	byRows := (h-reservedRows)/2 + 1
	byCols := w/4 + 1
	r := min(byRows, byCols)
	if r < aztec.InitialOrder {
		return aztec.InitialOrder
	}
	return r
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and advances the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		m.session.Tick(time.Time(msg))
		return m, tickCmd()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Step):
		m.session.Space()
	case key.Matches(msg, m.keys.Pause):
		m.session.TogglePause()
	case key.Matches(msg, m.keys.Mode):
		m.session.ToggleMode()
	case key.Matches(msg, m.keys.Faster):
		m.session.Faster()
	case key.Matches(msg, m.keys.Slower):
		m.session.Slower()
	case key.Matches(msg, m.keys.Reset):
		m.session.ResetSpeed()
	case key.Matches(msg, m.keys.Colour):
		m.colour = !m.colour
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// View renders the diamond with a status line and key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(render.ASCII(render.Rasterize(m.shuffler.Lattice()), m.colour))
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) status() string {
	state := "running"
	if m.session.Paused() {
		state = "paused"
	}
	return fmt.Sprintf("order %d/%d  next %s  %s  %s  every %s  resets %d",
		m.shuffler.Order(), m.shuffler.MaxOrder(), m.shuffler.Phase(),
		m.session.Mode(), state, m.session.Interval(), m.shuffler.Generation())
}

// Run starts the terminal program and blocks until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
