//go:build !ebiten

package app

import (
	"errors"

	"aztec/internal/aztec"
	"aztec/internal/core"
)

// ErrNoGUI is returned when the binary was built without the ebiten tag.
var ErrNoGUI = errors.New("app: the desktop viewer requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New returns a placeholder game in the headless build.
func New(*aztec.Shuffler, *core.Session, int, int) *Game { return &Game{} }

// Run always reports that the GUI build tag is missing.
func Run(*Game) error { return ErrNoGUI }
