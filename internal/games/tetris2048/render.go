package tetris2048

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/vovakirdan/tetris2048/internal/core"
)

const (
	cellWidth   = 5  // Screen columns per board cell
	panelWidth  = 16 // Side panel width, excluding the gap
	panelHeight = 21
	hudHeight   = 1
)

// layoutSize returns the smallest screen that fits the board, its border,
// the HUD line and the side panel.
func layoutSize(d Dimensions) (w, h int) {
	return d.Width*cellWidth + 2 + 1 + panelWidth, max(d.Height+2, panelHeight) + hudHeight
}

// TileColor returns the display colour for a tile value.
func TileColor(value int) core.Color {
	switch value {
	case 2:
		return core.ColorWhite
	case 4:
		return core.ColorBrightWhite
	case 8:
		return core.ColorYellow
	case 16:
		return core.ColorOrange
	case 32:
		return core.ColorBrightRed
	case 64:
		return core.ColorRed
	case 128:
		return core.ColorBrightYellow
	case 256:
		return core.ColorGreen
	case 512:
		return core.ColorBrightGreen
	case 1024:
		return core.ColorCyan
	case 2048:
		return core.ColorBrightMagenta
	default:
		return core.ColorMagenta
	}
}

var superscripts = [...]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

// TileLabel shortens large values so they fit inside a board cell: plain
// digits, then kilo, then a power of two such as 2¹⁷.
func TileLabel(value int) string {
	switch {
	case value < 1000:
		return strconv.Itoa(value)
	case value < 100*1024:
		return strconv.Itoa(value/1024) + "k"
	}
	var sb strings.Builder
	sb.WriteByte('2')
	for _, d := range strconv.Itoa(bits.Len(uint(value)) - 1) {
		sb.WriteRune(superscripts[d-'0'])
	}
	return sb.String()
}

func centerText(s string, width int) string {
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	left := (width - len(r)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(r)-left)
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	dims := g.settings.Dims
	totalW, _ := layoutSize(dims)
	boardX := (g.screenW - totalW) / 2
	boardY := hudHeight
	boardW := dims.Width*cellWidth + 2
	boardH := dims.Height + 2

	g.renderHUD(dst, boardX)
	dst.DrawBoxColored(core.Rect{X: boardX, Y: boardY, W: boardW, H: boardH}, core.ColorBlue)
	g.renderBoard(dst, boardX+1, boardY+1)
	g.renderPanel(dst, boardX+boardW+1, boardY)
	g.renderOverlays(dst, boardX+boardW/2, boardY+boardH/2)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := layoutSize(g.settings.Dims)
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

func (g *Game) renderHUD(dst *core.Screen, x int) {
	s := g.session
	dst.DrawTextColored(x, 0, strings.ToUpper(g.Title()), core.ColorBrightCyan)
	info := fmt.Sprintf("Score: %d  Max: %d", s.Score(), s.Grid().MaxTile())
	dst.DrawText(x+len(g.Title())+3, 0, info)
}

// screenRow converts a grid row (0 at the floor) to a screen row.
func (g *Game) screenRow(originY, y int) int {
	return originY + g.settings.Dims.Height - 1 - y
}

func (g *Game) renderBoard(dst *core.Screen, originX, originY int) {
	s := g.session
	grid := s.Grid()

	for y := range grid.Height() {
		for x := range grid.Width() {
			sx := originX + x*cellWidth
			sy := g.screenRow(originY, y)
			t := grid.At(x, y)
			if t.Empty() {
				dst.SetColored(sx+cellWidth/2, sy, '·', core.ColorDarkGray)
				continue
			}
			drawTile(dst, sx, sy, t)
		}
	}

	if ghost, ok := s.Ghost(); ok {
		for _, c := range ghost.Cells() {
			if !grid.IsInside(c.X, c.Y) {
				continue
			}
			dst.DrawTextColored(originX+c.X*cellWidth, g.screenRow(originY, c.Y), "[   ]", core.ColorDarkGray)
		}
	}

	if cur := s.Current(); cur != nil {
		for _, c := range cur.Cells() {
			if !grid.IsInside(c.X, c.Y) {
				continue
			}
			drawTile(dst, originX+c.X*cellWidth, g.screenRow(originY, c.Y), c.Tile)
		}
	}
}

func drawTile(dst *core.Screen, x, y int, t Tile) {
	dst.DrawTextColored(x, y, "["+centerText(TileLabel(t.Value), cellWidth-2)+"]", TileColor(t.Value))
}

func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	s := g.session

	dst.DrawText(x, y, "Next:")
	drawPreview(dst, x+1, y+1, s.Next())

	dst.DrawText(x, y+6, "Hold:")
	drawPreview(dst, x+1, y+7, s.Held())
	if !s.CanHold() {
		dst.DrawTextColored(x+6, y+6, "(used)", core.ColorGray)
	}

	dst.DrawText(x, y+12, fmt.Sprintf("Level: %d", s.Level()))
	dst.DrawText(x, y+13, fmt.Sprintf("Delay: %dms", s.FallDelay().Milliseconds()))
	if r := s.LastReport(); r.Points() > 0 {
		dst.DrawTextColored(x, y+14, fmt.Sprintf("+%d", r.Points()), core.ColorBrightGreen)
	}

	legend := []string{
		"<- -> v  Move",
		"Space    Drop",
		"Up/R     Rotate",
		"H        Hold",
		"P Pause  F Fast",
	}
	for i, line := range legend {
		dst.DrawTextColored(x, y+16+i, line, core.ColorGray)
	}
}

// drawPreview draws the trimmed shape of p with one coloured square per tile.
func drawPreview(dst *core.Screen, x, y int, p *Piece) {
	if p == nil {
		return
	}
	b := p.Bounded()
	for row, line := range b.Tiles {
		for col, t := range line {
			if t.Empty() {
				continue
			}
			dst.SetColored(x+col*2, y+row, '■', TileColor(t.Value))
		}
	}
}

func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	s := g.session
	switch s.State() {
	case StatePaused:
		drawOverlay(dst, centerX, centerY, "PAUSED", "P: resume  R: restart", "F: faster")
	case StateWin:
		drawOverlay(dst, centerX, centerY, "YOU WIN!", fmt.Sprintf("Score: %d", s.Score()), "Press R to restart")
	case StateGameOver:
		maxStr := fmt.Sprintf("Max tile: %d", s.Grid().MaxTile())
		drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a boxed block of centred lines.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.CenteredRect(centerX, centerY, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→/↓: Move | Space: Drop | ↑/R: Rotate | H: Hold | P: Pause | F: Faster | Q: Quit"
}
