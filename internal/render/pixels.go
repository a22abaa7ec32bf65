package render

import (
	"image"
	"image/color"

	"aztec/internal/aztec"
)

var (
	// Background fills everything that is not a domino.
	Background = color.RGBA{R: 0x1f, G: 0x1f, B: 0x1f, A: 0xff}
	// Border outlines every domino.
	Border = color.RGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 0xff}
)

// Palette is indexed by rasterized square value.
var Palette = []color.RGBA{
	SquareOutside: Background,
	SquareOpen:    {R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff},
	SquareUp:      {R: 0x1e, G: 0x71, B: 0xf7, A: 0xff},
	SquareDown:    {R: 0xf7, G: 0x1e, B: 0x1e, A: 0xff},
	SquareLeft:    {R: 0x30, G: 0xf7, B: 0x1e, A: 0xff},
	SquareRight:   {R: 0xf7, G: 0xd7, B: 0x1e, A: 0xff},
}

// DirectionColor returns the fill colour for dominoes pointing in d.
func DirectionColor(d aztec.Direction) color.RGBA { return Palette[SquareValue(d)] }

// Canvas is an RGBA pixel buffer in row-major order, 4 bytes per pixel.
type Canvas struct {
	W, H int
	Pix  []byte
}

// NewCanvas allocates a w×h canvas.
func NewCanvas(w, h int) *Canvas {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Canvas{W: w, H: h, Pix: make([]byte, 4*w*h)}
}

// Image wraps the buffer without copying.
func (c *Canvas) Image() *image.RGBA {
	return &image.RGBA{Pix: c.Pix, Stride: 4 * c.W, Rect: image.Rect(0, 0, c.W, c.H)}
}

// At returns the pixel colour at (x, y).
func (c *Canvas) At(x, y int) color.RGBA {
	i := 4 * (y*c.W + x)
	return color.RGBA{R: c.Pix[i], G: c.Pix[i+1], B: c.Pix[i+2], A: c.Pix[i+3]}
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col color.RGBA) { c.Fill(0, 0, c.W, c.H, col) }

// Fill paints a solid rectangle, clipped to the canvas.
func (c *Canvas) Fill(x, y, w, h int, col color.RGBA) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, c.W), min(y+h, c.H)
	for row := y0; row < y1; row++ {
		for px := x0; px < x1; px++ {
			i := 4 * (row*c.W + px)
			c.Pix[i+0] = col.R
			c.Pix[i+1] = col.G
			c.Pix[i+2] = col.B
			c.Pix[i+3] = col.A
		}
	}
}

// Bound paints a one-pixel outline of a rectangle.
func (c *Canvas) Bound(x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	c.Fill(x, y, w, 1, col)
	c.Fill(x, y+h-1, w, 1, col)
	c.Fill(x, y, 1, h, col)
	c.Fill(x+w-1, y, 1, h, col)
}

// PaintTiling clears the canvas and draws every domino as an outlined
// rectangle, cellPx pixels per unit square, with the diamond centred.
func PaintTiling(c *Canvas, t Tiling, cellPx int) {
	c.Clear(Background)
	cx, cy := c.W/2, c.H/2
	for _, d := range t.Dominoes() {
		x, y, w, h := dominoRect(d, cellPx)
		x += cx
		y += cy
		c.Bound(x, y, w, h, Border)
		c.Fill(x+1, y+1, w-2, h-2, DirectionColor(d.Dir))
	}
}

// dominoRect returns the pixel rectangle of d relative to the pixel at
// lattice vertex (0, 0). Pixel y grows downwards.
func dominoRect(d aztec.Domino, cellPx int) (x, y, w, h int) {
	sq := d.Squares()
	minX, maxY := min(sq[0].X, sq[1].X), max(sq[0].Y, sq[1].Y)
	x = minX * cellPx
	y = -(maxY + 1) * cellPx
	if d.Dir.Horizontal() {
		return x, y, cellPx, 2 * cellPx
	}
	return x, y, 2 * cellPx, cellPx
}
