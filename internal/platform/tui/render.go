package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetris2048/internal/core"
)

// ansiCodes holds the 256-color code for each core.Color; empty means the
// terminal default.
var ansiCodes = [core.ColorCount]string{
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
	core.ColorDarkGray:      "238",
}

// Palette turns screen cells into styled text for one output.
// SSH sessions build their own so color support follows the client terminal.
type Palette struct {
	styles [core.ColorCount]lipgloss.Style
}

// NewPalette builds a palette on the given renderer; nil uses the default one.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Palette{}
	for c, code := range ansiCodes {
		st := r.NewStyle()
		if code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		p.styles[c] = st
	}
	return p
}

// Style returns the style for c; unknown colors get the default style.
func (p *Palette) Style(c core.Color) lipgloss.Style {
	if !c.Valid() {
		c = core.ColorDefault
	}
	return p.styles[c]
}

// Render converts a Screen buffer to a styled string.
// Adjacent cells of the same color share one styled run.
func (p *Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.GetCell(x, y).Color == color; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}
			sb.WriteString(p.Style(color).Render(run.String()))
		}
	}
	return sb.String()
}

var defaultPalette = NewPalette(nil)

// RenderScreen converts a Screen buffer using the default renderer.
func RenderScreen(s *core.Screen) string {
	return defaultPalette.Render(s)
}
