package seabattle

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-seabattle/internal/core"
	"github.com/vovakirdan/tui-seabattle/internal/games/seabattle/engine"
)

// Layout constants
const (
	hudHeight  = 2 // Score line and separator
	boardGap   = 6 // Columns between the two boards
	labelWidth = 3 // Row number column, e.g. "10 "
	cellWidth  = 2 // Glyph plus spacing
	footer     = maxLogLines + 2
)

var cellColors = map[engine.CellState]core.Color{
	engine.CellEmpty:    core.ColorBlue,
	engine.CellShip:     core.ColorBrightWhite,
	engine.CellHit:      core.ColorBrightRed,
	engine.CellMiss:     core.ColorGray,
	engine.CellRevealed: core.ColorCyan,
}

// boardWidth is the screen width of one board including its row labels.
func boardWidth(size int) int {
	return labelWidth + size*cellWidth
}

// MinScreen returns the smallest screen that fits both boards.
func MinScreen(size int) (w, h int) {
	return 2*boardWidth(size) + boardGap, hudHeight + 2 + size + 1 + footer
}

// Render draws both boards, the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	size := g.cfg.Board.Size
	minW, minH := MinScreen(size)
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	g.renderHUD(dst)

	if g.match == nil {
		g.renderLog(dst, hudHeight+1)
		return
	}

	left := (dst.Width() - minW) / 2
	top := hudHeight
	right := left + boardWidth(size) + boardGap

	g.renderBoard(dst, left, top, "Your fleet", g.match.OwnBoard(engine.Player), false)
	g.renderBoard(dst, right, top, "Enemy waters", g.match.TargetBoard(engine.Player), g.showCursor())

	g.renderLog(dst, top+2+size+1)
	g.renderOverlay(dst)
}

// renderHUD draws the score and turn line, then the intact ship cells of
// both fleets on the separator.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))

	if g.match != nil {
		turn := fmt.Sprintf("Turn %d", g.match.Turn())
		if !g.match.Over() {
			if g.match.Current() == engine.Player {
				turn += " · Your move"
			} else {
				turn += " · Computer's move"
			}
		}
		dst.DrawTextCentered(0, turn)
	}

	title := "Sea Battle"
	if g.difficulty != "" {
		title = fmt.Sprintf("Sea Battle [%s]", g.difficulty)
	}
	dst.DrawText(dst.Width()-utf8.RuneCountInString(title)-1, 0, title)

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}

	if g.match != nil {
		own := fmt.Sprintf(" You: %d ", g.match.OwnBoard(engine.Player).ShipCellsRemaining())
		enemy := fmt.Sprintf(" Enemy: %d ", g.match.TargetBoard(engine.Player).ShipCellsRemaining())
		dst.DrawTextColored(2, 1, own, core.ColorGray)
		dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(enemy)-2, 1, enemy, core.ColorGray)
	}
}

// renderBoard draws one grid with its title, column numbers and row numbers.
func (g *Game) renderBoard(dst *core.Screen, x, y int, title string, b *engine.Board, cursor bool) {
	size := b.Size()
	dst.DrawTextColored(x+labelWidth, y, title, core.ColorYellow)

	for c := range size {
		dst.DrawTextColored(x+labelWidth+c*cellWidth, y+1, fmt.Sprintf("%d", c+1), core.ColorGray)
	}

	for r, row := range b.Rows() {
		rowY := y + 2 + r
		dst.DrawTextColored(x, rowY, fmt.Sprintf("%2d", r+1), core.ColorGray)
		for c, state := range row {
			dst.SetColored(x+labelWidth+c*cellWidth, rowY, g.glyphs[state], cellColors[state])
		}
	}

	if cursor {
		cx := x + labelWidth + g.cursor.Col*cellWidth
		cy := y + 2 + g.cursor.Row
		dst.SetColored(cx-1, cy, '[', core.ColorBrightYellow)
		dst.SetColored(cx+1, cy, ']', core.ColorBrightYellow)
	}
}

func (g *Game) showCursor() bool {
	return !g.match.Over() && !g.paused && g.match.Current() == engine.Player
}

// renderLog draws the most recent status lines, newest last.
func (g *Game) renderLog(dst *core.Screen, y int) {
	for i, line := range g.log {
		color := core.ColorGray
		if i == len(g.log)-1 {
			color = core.ColorWhite
		}
		dst.DrawTextColored(2, y+i, line, color)
	}
	dst.DrawTextColored(2, dst.Height()-1, "arrows/hjkl move · space fire · p pause · r restart · b menu · q quit", core.ColorGray)
}

// renderOverlay draws pause and end-of-match boxes.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume", core.ColorYellow)
	case g.match.Over() && g.match.Winner() == engine.Player:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "YOU WIN!", subtitle, core.ColorBrightGreen)
	case g.match.Over():
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score)
		g.drawCenteredBox(dst, "COMPUTER WINS", subtitle, core.ColorBrightRed)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string, color core.Color) {
	boxW := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	r := core.CenteredRect(dst.Width(), dst.Height(), boxW, 5)

	dst.DrawRect(r, ' ')
	dst.DrawBox(r, color)

	dst.DrawTextColored(r.X+(boxW-utf8.RuneCountInString(title))/2, r.Y+1, title, color)
	dst.DrawText(r.X+(boxW-utf8.RuneCountInString(subtitle))/2, r.Y+3, subtitle)
}
