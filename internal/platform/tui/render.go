package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// foregrounds maps core.Color to terminal palette indexes.
var foregrounds = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// skies maps a difficulty background to the sky color painted behind
// every cell. Day keeps the terminal's own background.
var skies = map[string]lipgloss.Color{
	"night":      "17",
	"impossible": "52",
}

// Palette holds one lipgloss style per color for a given sky.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds the styles for the named background.
func NewPalette(background string) Palette {
	base := lipgloss.NewStyle()
	if sky, ok := skies[background]; ok {
		base = base.Background(sky)
	}

	p := Palette{core.ColorDefault: base}
	for c, fg := range foregrounds {
		p[c] = base.Foreground(fg)
	}
	return p
}

var palettes = map[string]Palette{
	"day":        NewPalette("day"),
	"night":      NewPalette("night"),
	"impossible": NewPalette("impossible"),
}

// paletteFor returns the palette of a difficulty label such as "hard".
// Unknown labels get the day palette.
func paletteFor(mode string) Palette {
	d, err := config.ParseDifficulty(mode)
	if err != nil {
		return palettes["day"]
	}
	if p, ok := palettes[d.Background()]; ok {
		return p
	}
	return palettes["day"]
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
