package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"aztec/internal/core"
)

var glyphs = map[uint8]string{
	SquareOutside: "  ",
	SquareOpen:    "··",
	SquareUp:      "↑↑",
	SquareDown:    "↓↓",
	SquareLeft:    "←←",
	SquareRight:   "→→",
}

var squareStyles = buildSquareStyles()

func buildSquareStyles() map[uint8]lipgloss.Style {
	styles := make(map[uint8]lipgloss.Style, len(Palette))
	for v, c := range Palette {
		hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
		styles[uint8(v)] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return styles
}

// ASCII renders a rasterized tiling as text, two runes per unit square. With
// colour set, domino squares are drawn as coloured blocks; otherwise each
// square shows the arrow of the domino covering it. Trailing blanks are
// trimmed from every row.
func ASCII(g *core.ByteGrid, colour bool) string {
	var sb strings.Builder
	sb.Grow(g.W*g.H*3 + g.H)
	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		if colour {
			sb.WriteString(colourRow(g, y))
			continue
		}
		var row strings.Builder
		for x := 0; x < g.W; x++ {
			row.WriteString(glyph(g.At(x, y)))
		}
		sb.WriteString(strings.TrimRight(row.String(), " "))
	}
	return sb.String()
}

// colourRow groups consecutive squares of equal value so each run costs one
// style escape.
func colourRow(g *core.ByteGrid, y int) string {
	last := g.W
	for last > 0 && g.At(last-1, y) == SquareOutside {
		last--
	}
	var sb strings.Builder
	x := 0
	for x < last {
		v := g.At(x, y)
		n := 0
		for x < last && g.At(x, y) == v {
			n++
			x++
		}
		if v == SquareOutside {
			sb.WriteString(strings.Repeat("  ", n))
			continue
		}
		run := strings.Repeat("██", n)
		if v == SquareOpen {
			run = strings.Repeat("··", n)
		}
		sb.WriteString(squareStyles[v].Render(run))
	}
	return sb.String()
}

func glyph(v uint8) string {
	if s, ok := glyphs[v]; ok {
		return s
	}
	return "??"
}
