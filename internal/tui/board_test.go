package tui

import (
	"io"
	"math/rand/v2"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

var small = mines.Custom(mines.GameParams{Height: 5, Width: 5, MineCount: 2})

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestSession lays the mines of custom boards at 3:0 and 3:2.
func newTestSession(t *testing.T, d mines.Difficulty) *session.Session {
	t.Helper()
	r := rand.New(rand.NewPCG(1, 2))
	s, err := session.New(d, session.Options{
		Log: quietLogger(),
		Placer: func(d mines.Difficulty) mines.Placer {
			if d.Name == "Custom" {
				return mines.FixedPlacer{{Row: 3, Col: 0}, {Row: 3, Col: 2}}
			}
			return mines.RandomPlacer{Rand: r}
		},
	})
	require.NoError(t, err)
	return s
}

func newTestBoard(t *testing.T) (*session.Session, *Board) {
	t.Helper()
	s := newTestSession(t, small)
	b := NewBoard(s, config.DefaultTheme, quietLogger())
	s.Subscribe(b.apply)
	return s, b
}

func press(b *Board, keys ...any) {
	for _, k := range keys {
		switch k := k.(type) {
		case rune:
			b.key(tcell.NewEventKey(tcell.KeyRune, k, tcell.ModNone))
		case tcell.Key:
			b.key(tcell.NewEventKey(k, 0, tcell.ModNone))
		}
	}
}

func TestGlyph(t *testing.T) {
	theme := config.DefaultTheme
	tests := []struct {
		v     mines.Visual
		r     rune
		color int
	}{
		{mines.VisualCovered, theme.Symbols.Covered, theme.Colors.Covered},
		{mines.VisualFlagged, theme.Symbols.Flag, theme.Colors.Flag},
		{mines.VisualMine, theme.Symbols.Mine, theme.Colors.Mine},
		{mines.VisualCount(0), theme.Symbols.Empty, theme.Colors.Revealed},
		{mines.VisualCount(1), '1', theme.Colors.Numbers[0]},
		{mines.VisualCount(8), '8', theme.Colors.Numbers[7]},
	}
	for _, test := range tests {
		r, style := glyph(theme, test.v)
		fg, _, _ := style.Decompose()
		assert.Equal(t, test.r, r, "visual %s", test.v)
		assert.Equal(t, tcell.PaletteColor(test.color), fg, "visual %s", test.v)
	}
}

func TestCellAt(t *testing.T) {
	params := small.GameParams
	tests := []struct {
		x, y int
		want mines.Point
		ok   bool
	}{
		{10, 5, mines.Point{Row: 0, Col: 0}, true},
		{11, 5, mines.Point{Row: 0, Col: 0}, true},
		{12, 5, mines.Point{Row: 0, Col: 1}, true},
		{19, 9, mines.Point{Row: 4, Col: 4}, true},
		{20, 9, mines.Point{}, false},
		{10, 10, mines.Point{}, false},
		{9, 5, mines.Point{}, false},
		{10, 4, mines.Point{}, false},
	}
	for _, test := range tests {
		p, ok := cellAt(params, 10, 5, test.x, test.y)
		assert.Equal(t, test.ok, ok, "%d,%d", test.x, test.y)
		if test.ok {
			assert.Equal(t, test.want, p)
		}
	}
}

func TestBoardKeys(t *testing.T) {
	s, b := newTestBoard(t)
	assert.Equal(t, mines.Point{Row: 2, Col: 2}, b.Selected())
	assert.Equal(t, 10, b.Width())

	press(b, 'k', 'k', 'k')
	assert.Equal(t, mines.Point{Row: 0, Col: 2}, b.Selected(), "cursor stops at the edge")

	press(b, tcell.KeyEnter)
	assert.Equal(t, mines.InProgress, s.Status())
	assert.Equal(t, s.Grid(), b.grid)

	press(b, 'j', 'j', 'j', 'h', 'f')
	assert.Equal(t, mines.Point{Row: 3, Col: 1}, b.Selected())
	assert.Equal(t, mines.VisualFlagged, b.grid[3*5+1])

	press(b, tcell.KeyLeft, ' ')
	assert.Equal(t, mines.Lost, s.Status())
	require.NotNil(t, b.exploded)
	assert.Equal(t, mines.Point{Row: 3, Col: 0}, *b.exploded)
	assert.Equal(t, s.Grid(), b.grid)

	ev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	assert.Same(t, ev, b.key(ev), "unknown keys pass through")
}

func TestBoardCallbacks(t *testing.T) {
	_, b := newTestBoard(t)
	var newGames, quits int
	b.onNewGame = func() { newGames++ }
	b.onQuit = func() { quits++ }

	press(b, 'n', 'q', 'n')
	assert.Equal(t, 2, newGames)
	assert.Equal(t, 1, quits)
}

func TestBoardMouse(t *testing.T) {
	s, b := newTestBoard(t)
	b.Box.SetRect(10, 5, 20, 10)

	click := func(action tview.MouseAction, x, y int) *tcell.EventMouse {
		_, ev := b.mouse(action, tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
		return ev
	}

	assert.Nil(t, click(tview.MouseLeftClick, 11, 5))
	assert.Equal(t, mines.InProgress, s.Status())
	assert.Equal(t, mines.Point{Row: 0, Col: 0}, b.Selected())

	assert.Nil(t, click(tview.MouseRightClick, 12, 8))
	v, err := s.VisualAt(mines.Point{Row: 3, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, mines.VisualFlagged, v)

	assert.NotNil(t, click(tview.MouseLeftClick, 9, 5), "outside the board")
	assert.NotNil(t, click(tview.MouseMove, 11, 5))
}

func TestBoardDraw(t *testing.T) {
	_, b := newTestBoard(t)
	theme := config.DefaultTheme

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(30, 10)

	b.Box.SetRect(2, 1, 10, 5)
	press(b, 'k', 'k', tcell.KeyEnter, 'j', 'j', 'j', 'h', 'f')
	b.Box.Draw(screen)

	at := func(row, col int) (rune, tcell.Style) {
		r, _, style, _ := screen.GetContent(2+col*2, 1+row)
		return r, style
	}

	r, _ := at(0, 0)
	assert.Equal(t, theme.Symbols.Empty, r)
	r, _ = at(2, 1)
	assert.Equal(t, '2', r)
	r, _ = at(4, 4)
	assert.Equal(t, theme.Symbols.Empty, r)
	r, _ = at(4, 0)
	assert.Equal(t, theme.Symbols.Covered, r)

	r, style := at(3, 1)
	assert.Equal(t, theme.Symbols.Flag, r)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.PaletteColor(theme.Colors.CursorBG), bg, "cursor")

	pad, _, _, _ := screen.GetContent(2+1, 1)
	assert.Equal(t, ' ', pad)
}
