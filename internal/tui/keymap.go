package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the viewer's key bindings.
type KeyMap struct {
	Step   key.Binding
	Pause  key.Binding
	Mode   key.Binding
	Faster key.Binding
	Slower key.Binding
	Reset  key.Binding
	Colour key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns bindings for the compact help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Step, k.Pause, k.Faster, k.Slower, k.Help, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Step, k.Pause, k.Mode},
		{k.Faster, k.Slower, k.Reset},
		{k.Colour, k.Help, k.Quit},
	}
}

// DefaultKeyMap mirrors the desktop viewer's bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Step: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "pause/step"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "half/full steps"),
		),
		Faster: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "slower"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset speed"),
		),
		Colour: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "colour/arrows"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
