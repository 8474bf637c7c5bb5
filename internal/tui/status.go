package tui

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rivo/tview"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

const controls = `
 hjkl/↑↓←→ move
 ⏎/space   reveal
 f         flag
 n         new game
 q         quit
 tab       menu`

// Status shows the mine counter, the clock and how the game went.
type Status struct {
	View *tview.TextView

	session   *session.Session
	remaining int
	message   string
	running   atomic.Bool
}

func NewStatus(s *session.Session) *Status {
	st := &Status{
		View:    tview.NewTextView(),
		session: s,
	}
	st.View.SetBorder(true)
	st.View.SetTitle(" Minesweeper ")
	st.View.SetTitleAlign(tview.AlignLeft)
	st.reset()
	return st
}

func (st *Status) reset() {
	st.remaining = st.session.MinesRemaining()
	st.message = st.session.Difficulty().String()
	st.running.Store(false)
	st.refresh()
}

// Running reports whether the clock should tick.
func (st *Status) Running() bool {
	return st.running.Load()
}

func (st *Status) apply(e mines.Event) {
	switch e := e.(type) {
	case mines.MineCounterChanged:
		st.remaining = e.Remaining
	case mines.GameStarted:
		st.running.Store(true)
	case mines.GameEnded:
		st.running.Store(false)
		if e.Outcome == mines.Won {
			st.message = "You won!"
		} else {
			st.message = "Boom! Game over"
		}
	case mines.GameReset:
		st.reset()
		return
	default:
		return
	}
	st.refresh()
}

func (st *Status) refresh() {
	var b strings.Builder
	fmt.Fprintf(&b, " Mines %4d\n", st.remaining)
	fmt.Fprintf(&b, " Time  %4d\n", int(st.session.Elapsed()/time.Second))
	fmt.Fprintf(&b, "\n %s\n", st.message)
	b.WriteString(controls)
	st.View.SetText(b.String())
}
