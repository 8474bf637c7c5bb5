package mines

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Status int8

const (
	NotStarted Status = iota
	InProgress
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "invalid"
	}
}

// Game drives a single board from the first click to a win or a loss. A
// finished game is never reused; start a new one instead.
type Game struct {
	ID         uuid.UUID
	Difficulty Difficulty
	StartedAt  time.Time
	EndedAt    time.Time

	board    *Board
	placer   Placer
	status   Status
	flags    int
	revealed int
	now      func() time.Time
	pending  []Event
}

func NewGame(d Difficulty, placer Placer) (*Game, error) {
	if placer == nil {
		return nil, errors.New("no mine placer given")
	}
	board, err := NewBoard(d.GameParams)
	if err != nil {
		return nil, err
	}
	g := &Game{
		ID:         uuid.New(),
		Difficulty: d,
		board:      board,
		placer:     placer,
		now:        time.Now,
	}
	return g, nil
}

// SetClock replaces the time source used for start and end timestamps.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
}

func (g *Game) Params() GameParams { return g.board.GameParams }
func (g *Game) Status() Status     { return g.status }
func (g *Game) Started() bool      { return g.status != NotStarted }
func (g *Game) Over() bool         { return g.status == Won || g.status == Lost }
func (g *Game) FlagsPlaced() int   { return g.flags }
func (g *Game) RevealedCount() int { return g.revealed }

func (g *Game) MinesRemaining() int {
	return g.board.MineCount - g.flags
}

// Elapsed is the play time so far, or the final play time once over.
func (g *Game) Elapsed(now time.Time) time.Duration {
	switch {
	case !g.Started():
		return 0
	case g.Over():
		return g.EndedAt.Sub(g.StartedAt)
	default:
		return now.Sub(g.StartedAt)
	}
}

func (g *Game) VisualAt(p Point) (Visual, error) {
	if err := g.board.checkBounds(p); err != nil {
		return 0, err
	}
	return g.board.At(p).Visual(), nil
}

func (g *Game) Grid() Grid {
	return g.board.Grid()
}

func (g *Game) fields() logrus.Fields {
	return logrus.Fields{
		"game":   g.ID.String(),
		"params": g.board.Seed(),
		"status": g.status.String(),
	}
}

func (g *Game) emit(e Event) {
	g.pending = append(g.pending, e)
}

func (g *Game) flush() []Event {
	events := g.pending
	g.pending = nil
	return events
}

// Reveal opens the cell at p. On an already revealed cell it chords: if the
// number of flagged neighbours matches the cell's count, every covered
// neighbour is opened. Clicks on flagged cells and after the game is over
// do nothing.
func (g *Game) Reveal(p Point) ([]Event, error) {
	if err := g.board.checkBounds(p); err != nil {
		return nil, err
	}
	if g.Over() {
		return nil, nil
	}

	switch g.board.At(p).State {
	case Flagged:
		return nil, nil
	case Revealed:
		g.chord(p)
	default:
		if g.status == NotStarted {
			if err := g.start(p); err != nil {
				return nil, err
			}
		}
		g.open(p)
	}

	g.checkWon()
	return g.flush(), nil
}

// ToggleFlag flags a covered cell or unflags a flagged one. No more flags
// than mines can be placed, and none before the first reveal.
func (g *Game) ToggleFlag(p Point) ([]Event, error) {
	if err := g.board.checkBounds(p); err != nil {
		return nil, err
	}
	if g.status != InProgress {
		return nil, nil
	}

	c := g.board.cell(p)
	switch {
	case c.State == Flagged:
		c.State = Covered
		g.flags--
	case c.State == Revealed:
		return nil, nil
	case g.flags < g.board.MineCount:
		c.State = Flagged
		g.flags++
	default:
		return nil, nil
	}

	g.emit(CellChanged{p, c.Visual()})
	g.emit(MineCounterChanged{g.MinesRemaining()})
	return g.flush(), nil
}

func (g *Game) start(p Point) error {
	if err := g.placer.Place(g.board, p); err != nil {
		return fmt.Errorf("unable to place mines: %w", err)
	}
	g.board.ComputeCounts()
	g.status = InProgress
	g.StartedAt = g.now()
	g.emit(GameStarted{At: g.StartedAt})

	Log.WithFields(g.fields()).WithField("first", p.String()).Debug("game started")
	return nil
}

// open applies the single-cell rule to a covered, unflagged cell.
func (g *Game) open(p Point) {
	switch v := g.board.At(p).Value; {
	case v == Mine:
		g.explode(p)
	case v == 0:
		g.floodFill(p)
	default:
		g.show(p)
	}
}

// show reveals one cell. It reports false if the cell was already revealed.
func (g *Game) show(p Point) bool {
	c := g.board.cell(p)
	if c.State == Revealed {
		return false
	}
	c.State = Revealed
	if c.Value != Mine {
		g.revealed++
	}
	g.emit(CellChanged{p, c.Visual()})
	return true
}

// floodFill reveals the zero region around seed together with its fringe.
// It walks the region breadth first with an explicit queue and never steps
// onto a flagged cell.
func (g *Game) floodFill(seed Point) {
	b := g.board
	visited := make([]bool, len(b.cells))
	todo := newCelltodo(len(b.cells))

	start := b.index(seed)
	visited[start] = true
	todo.add(start)

	for {
		i, ok := todo.pop()
		if !ok {
			break
		}
		p := b.point(i)
		g.show(p)
		for _, q := range b.Neighbors(p) {
			j := b.index(q)
			if visited[j] || b.cells[j].State == Flagged {
				continue
			}
			visited[j] = true
			if b.cells[j].Value == 0 {
				todo.add(j)
			} else {
				// Fringe cell: shown, not expanded. Consistent counts never
				// put a mine here since a zero cell has no mined neighbours.
				g.show(q)
			}
		}
	}
}

func (g *Game) chord(p Point) {
	c := g.board.At(p)
	if c.Value == Mine {
		return
	}

	flagged := 0
	covered := make([]Point, 0, 8)
	for _, q := range g.board.Neighbors(p) {
		switch g.board.At(q).State {
		case Flagged:
			flagged++
		case Covered:
			covered = append(covered, q)
		}
	}
	if flagged != int(c.Value) {
		return
	}

	for _, q := range covered {
		// an earlier neighbour may have flood filled over this one
		if g.board.At(q).State != Covered {
			continue
		}
		g.open(q)
		if g.status == Lost {
			return
		}
	}
}

func (g *Game) explode(p Point) {
	g.show(p)
	g.status = Lost
	g.EndedAt = g.now()
	g.revealMines()
	g.emit(GameEnded{Outcome: Lost, At: g.EndedAt, Exploded: &p})

	Log.WithFields(g.fields()).WithField("exploded", p.String()).Info("game lost")
}

func (g *Game) checkWon() {
	if g.status != InProgress || g.revealed != g.board.Cells()-g.board.MineCount {
		return
	}
	g.status = Won
	g.EndedAt = g.now()
	g.revealMines()
	g.emit(GameEnded{Outcome: Won, At: g.EndedAt})

	Log.WithFields(g.fields()).WithField("elapsed", g.Elapsed(g.EndedAt).String()).Info("game won")
}

// revealMines shows every mine, flagged or not.
func (g *Game) revealMines() {
	for i := range g.board.cells {
		if g.board.cells[i].Value == Mine {
			g.show(g.board.point(i))
		}
	}
}
