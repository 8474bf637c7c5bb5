// Package tui is the terminal front end: the board, a status panel with the
// mine counter and clock, a difficulty selector and a new game button.
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

// Board draws the player's view of the current game, 2 columns per cell, and
// turns keys and clicks into session commands.
type Board struct {
	Box *tview.Box

	session  *session.Session
	log      *logrus.Logger
	theme    config.Theme
	grid     mines.Grid
	params   mines.GameParams
	selRow   int
	selCol   int
	exploded *mines.Point

	// onNewGame and onQuit are set by the app.
	onNewGame func()
	onQuit    func()
}

func NewBoard(s *session.Session, theme config.Theme, log *logrus.Logger) *Board {
	b := &Board{
		Box:     tview.NewBox(),
		session: s,
		log:     log,
		theme:   theme,
	}
	b.reload()
	b.Box.SetDrawFunc(b.draw)
	b.Box.SetInputCapture(b.key)
	b.Box.SetMouseCapture(b.mouse)
	return b
}

// reload copies the whole grid of a fresh game and centres the cursor.
func (b *Board) reload() {
	b.params = b.session.Params()
	b.grid = b.session.Grid()
	b.selRow = b.params.Height / 2
	b.selCol = b.params.Width / 2
	b.exploded = nil
}

// Width is the number of terminal columns the board needs.
func (b *Board) Width() int {
	return b.params.Width * 2
}

func (b *Board) Height() int {
	return b.params.Height
}

func (b *Board) Selected() mines.Point {
	return mines.Point{Row: b.selRow, Col: b.selCol}
}

// apply keeps the local grid in step with the session. Only changed cells
// are touched.
func (b *Board) apply(e mines.Event) {
	switch e := e.(type) {
	case mines.CellChanged:
		b.grid[e.Point.Row*b.params.Width+e.Point.Col] = e.Visual
	case mines.GameEnded:
		b.exploded = e.Exploded
	case mines.GameReset:
		b.reload()
	}
}

func (b *Board) MoveSelection(dRow, dCol int) {
	row, col := b.selRow+dRow, b.selCol+dCol
	if !b.params.PointInBounds(mines.Point{Row: row, Col: col}) {
		return
	}
	b.selRow, b.selCol = row, col
}

func (b *Board) reveal(p mines.Point) {
	if err := b.session.Reveal(p); err != nil {
		b.log.WithError(err).Error("reveal")
	}
}

func (b *Board) flag(p mines.Point) {
	if err := b.session.ToggleFlag(p); err != nil {
		b.log.WithError(err).Error("flag")
	}
}

func (b *Board) key(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		b.MoveSelection(-1, 0)
	case tcell.KeyDown:
		b.MoveSelection(1, 0)
	case tcell.KeyLeft:
		b.MoveSelection(0, -1)
	case tcell.KeyRight:
		b.MoveSelection(0, 1)
	case tcell.KeyEnter:
		b.reveal(b.Selected())
	case tcell.KeyRune:
		switch event.Rune() {
		case 'h':
			b.MoveSelection(0, -1)
		case 'j':
			b.MoveSelection(1, 0)
		case 'k':
			b.MoveSelection(-1, 0)
		case 'l':
			b.MoveSelection(0, 1)
		case ' ':
			b.reveal(b.Selected())
		case 'f':
			b.flag(b.Selected())
		case 'n':
			if b.onNewGame != nil {
				b.onNewGame()
			}
		case 'q':
			if b.onQuit != nil {
				b.onQuit()
			}
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

// cellAt maps a screen position to a cell, given the top left corner of the
// board.
func cellAt(params mines.GameParams, left, top, x, y int) (mines.Point, bool) {
	if x < left || y < top {
		return mines.Point{}, false
	}
	p := mines.Point{Row: y - top, Col: (x - left) / 2}
	return p, params.PointInBounds(p)
}

func (b *Board) mouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if action != tview.MouseLeftClick && action != tview.MouseRightClick {
		return action, event
	}
	left, top, _, _ := b.Box.GetRect()
	x, y := event.Position()
	p, ok := cellAt(b.params, left, top, x, y)
	if !ok {
		return action, event
	}
	b.selRow, b.selCol = p.Row, p.Col
	if action == tview.MouseLeftClick {
		b.reveal(p)
	} else {
		b.flag(p)
	}
	return action, nil
}

// glyph picks the rune and style for a cell.
func glyph(theme config.Theme, v mines.Visual) (rune, tcell.Style) {
	style := tcell.StyleDefault
	colors, symbols := theme.Colors, theme.Symbols
	switch v {
	case mines.VisualCovered:
		return symbols.Covered, style.Foreground(tcell.PaletteColor(colors.Covered))
	case mines.VisualFlagged:
		return symbols.Flag, style.Foreground(tcell.PaletteColor(colors.Flag))
	case mines.VisualMine:
		return symbols.Mine, style.Foreground(tcell.PaletteColor(colors.Mine))
	case 0:
		return symbols.Empty, style.Foreground(tcell.PaletteColor(colors.Revealed))
	}
	n, _ := v.Count()
	return rune('0' + n), style.Foreground(tcell.PaletteColor(colors.Numbers[n-1])).Bold(true)
}

func (b *Board) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	for i, v := range b.grid {
		row, col := i/b.params.Width, i%b.params.Width
		r, style := glyph(b.theme, v)
		switch {
		case b.exploded != nil && *b.exploded == (mines.Point{Row: row, Col: col}):
			style = style.Background(tcell.PaletteColor(b.theme.Colors.Exploded))
		case row == b.selRow && col == b.selCol:
			style = style.Background(tcell.PaletteColor(b.theme.Colors.CursorBG))
		}
		screen.SetContent(x+col*2, y+row, r, nil, style)
		screen.SetContent(x+col*2+1, y+row, ' ', nil, style)
	}
	return x, y, b.Width(), b.Height()
}
