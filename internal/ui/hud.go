//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// SpeedControls is the session surface the panel buttons drive.
type SpeedControls interface {
	Controls
	Faster()
	Slower()
}

// HUD renders the status panel to the right of the diamond.
type HUD struct {
	src   Source
	ctl   SpeedControls
	width int

	panel   *ebiten.Image
	pixel   *ebiten.Image
	offsetX int

	slowerRect image.Rectangle
	fasterRect image.Rectangle
}

// NewHUD constructs a panel of the given size.
func NewHUD(src Source, ctl SpeedControls, width, height int) *HUD {
	if width <= 0 || height <= 0 {
		return nil
	}
	h := &HUD{src: src, ctl: ctl, width: width}
	h.panel = ebiten.NewImage(width, height)
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)

	buttonY := height - panelPadding - buttonSize
	h.fasterRect = image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
	h.slowerRect = image.Rect(h.fasterRect.Min.X-buttonGap-buttonSize, buttonY, h.fasterRect.Min.X-buttonGap, buttonY+buttonSize)
	return h
}

// Width returns the panel width, zero for a nil panel.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update handles clicks on the speed buttons.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	p := image.Pt(mx-h.offsetX, my)
	switch {
	case p.In(h.slowerRect):
		h.ctl.Slower()
	case p.In(h.fasterRect):
		h.ctl.Faster()
	}
}

// Draw paints the panel at the offset given to Update.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	text.Draw(h.panel, "Aztec Diamond", face, panelPadding, panelPadding+headerBaseline, titleColor)

	y := controlsTop
	for _, line := range StatusLines(h.src, h.ctl) {
		text.Draw(h.panel, line.Label, face, panelPadding, y, labelColor)
		w := text.BoundString(face, line.Value).Dx()
		text.Draw(h.panel, line.Value, face, h.width-panelPadding-w, y, valueColor)
		y += lineHeight
	}

	text.Draw(h.panel, "Speed", face, panelPadding, h.slowerRect.Min.Y+labelBaseline-6, labelColor)
	h.drawButton(h.slowerRect, "-")
	h.drawButton(h.fasterRect, "+")

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 54, G: 56, B: 64, A: 255})
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, valueColor)
}

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	valueColor = color.RGBA{R: 230, G: 230, B: 240, A: 255}
)

const (
	// PanelWidth is the default HUD width in pixels.
	PanelWidth = 220

	panelPadding   = 12
	lineHeight     = 22
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 28
)
