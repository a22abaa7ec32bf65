//go:build ebiten

package app

import (
	"errors"
	"time"

	"aztec/internal/aztec"
	"aztec/internal/core"
	"aztec/internal/render"
	"aztec/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a shuffle session to the ebiten.Game interface.
type Game struct {
	shuffler *aztec.Shuffler
	session  *core.Session
	painter  *render.GridPainter
	hud      *ui.HUD
	overlay  *ui.Overlay

	size int
}

// New constructs a Game drawing into a square window of windowPx pixels.
func New(shuffler *aztec.Shuffler, session *core.Session, windowPx, cellPx int) *Game {
	return &Game{
		shuffler: shuffler,
		session:  session,
		painter:  render.NewGridPainter(windowPx, windowPx, cellPx),
		hud:      ui.NewHUD(shuffler, session, ui.PanelWidth, windowPx),
		overlay:  ui.NewOverlay(cellPx),
		size:     windowPx,
	}
}

// Update handles per-frame logic and advances the shuffle.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.session.Space()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.session.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.session.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.session.Slower()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.ResetSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.session.ToggleMode()
	}
	g.overlay.Update()
	g.hud.Update(g.size)

	g.session.Tick(time.Now())
	return nil
}

// Draw renders the current tiling, the overlays and the side panel.
func (g *Game) Draw(screen *ebiten.Image) {
	view := g.shuffler.Lattice()
	g.painter.Blit(screen, view)
	g.overlay.Draw(screen, view, g.size/2, g.size/2)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size + g.hud.Width(), g.size
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowTitle("Aztec Diamonds")
	ebiten.SetWindowSize(g.size+g.hud.Width(), g.size)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
