package tui

import (
	"context"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

type App struct {
	app     *tview.Application
	session *session.Session
	log     *logrus.Logger
	tick    time.Duration

	root       *tview.Flex
	board      *Board
	status     *Status
	difficulty *tview.DropDown
	newGame    *tview.Button
	focusable  []tview.Primitive
}

// New lays out the widgets around s. Session events are applied on the
// goroutine that issued the command, which is always the tview event loop.
func New(s *session.Session, cfg *config.Config, log *logrus.Logger) *App {
	a := &App{
		app:     tview.NewApplication(),
		session: s,
		log:     log,
		tick:    cfg.ClockTick.Duration,
	}

	a.board = NewBoard(s, cfg.Theme, log)
	a.board.onNewGame = a.restart
	a.board.onQuit = a.app.Stop

	a.status = NewStatus(s)

	a.difficulty = tview.NewDropDown().SetLabel(" Difficulty ")
	a.difficulty.SetOptions(mines.DifficultyNames(), nil)
	a.difficulty.SetCurrentOption(slices.Index(mines.DifficultyNames(), s.Difficulty().Name))
	a.difficulty.SetSelectedFunc(func(text string, index int) {
		a.startGame(text)
		a.app.SetFocus(a.board.Box)
	})

	a.newGame = tview.NewButton("New Game").SetSelectedFunc(func() {
		a.restart()
		a.app.SetFocus(a.board.Box)
	})

	s.Subscribe(a.board.apply)
	s.Subscribe(a.status.apply)
	s.Subscribe(a.resize)

	side := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.status.View, 0, 1, false).
		AddItem(a.difficulty, 1, 0, false).
		AddItem(a.newGame, 1, 0, false)

	a.root = tview.NewFlex().
		AddItem(a.board.Box, a.board.Width()+1, 0, true).
		AddItem(side, 24, 0, false)

	a.focusable = []tview.Primitive{a.board.Box, a.difficulty, a.newGame}

	a.app.SetRoot(a.root, true).
		SetFocus(a.board.Box).
		EnableMouse(true).
		SetInputCapture(a.cycleFocus)
	return a
}

func (a *App) startGame(name string) {
	if err := a.session.NewGameByName(name); err != nil {
		a.log.WithError(err).Error("new game")
	}
}

// restart starts over at the difficulty picked in the menu, or at the
// current one when the menu has none (custom boards).
func (a *App) restart() {
	if _, name := a.difficulty.GetCurrentOption(); name != "" {
		a.startGame(name)
		return
	}
	if err := a.session.NewGame(a.session.Difficulty()); err != nil {
		a.log.WithError(err).Error("new game")
	}
}

func (a *App) resize(e mines.Event) {
	if _, ok := e.(mines.GameReset); ok {
		a.root.ResizeItem(a.board.Box, a.board.Width()+1, 0)
	}
}

func (a *App) cycleFocus(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() != tcell.KeyTab && event.Key() != tcell.KeyBacktab {
		return event
	}
	i := slices.Index(a.focusable, a.app.GetFocus())
	step := 1
	if event.Key() == tcell.KeyBacktab {
		step = len(a.focusable) - 1
	}
	a.app.SetFocus(a.focusable[(max(i, 0)+step)%len(a.focusable)])
	return nil
}

// Run blocks until the player quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.runClock(ctx)
	go func() {
		<-ctx.Done()
		a.app.Stop()
	}()

	a.log.Debug("tui started")
	return a.app.Run()
}

func (a *App) runClock(ctx context.Context) {
	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if a.status.Running() {
				a.app.QueueUpdateDraw(a.status.refresh)
			}
		}
	}
}
