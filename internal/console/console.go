// Package console is the line-oriented front end used in headless mode.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

const prompt = "> "

const help = `commands:
  o|open|reveal ROW COL   reveal a cell (also: reveal row=R col=C)
  f|flag ROW COL          toggle a flag
  c|chord ROW COL         reveal around a numbered cell
  n|new [DIFFICULTY]      start over (Beginner, Intermediate, Expert)
  p|print|g               show the board
  q|quit                  leave
`

type Console struct {
	session *session.Session
	in      io.Reader
	out     io.Writer
	log     *logrus.Logger

	events []mines.Event
}

func New(s *session.Session, in io.Reader, out io.Writer, log *logrus.Logger) *Console {
	return &Console{session: s, in: in, out: out, log: log}
}

// Run reads commands until quit, end of input or ctx is done. A reader
// blocked on input when ctx is done only exits on its next line or EOF.
func (c *Console) Run(ctx context.Context) error {
	unsubscribe := c.session.Subscribe(func(e mines.Event) {
		c.events = append(c.events, e)
	})
	defer unsubscribe()

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()

	fmt.Fprint(c.out, help)
	c.printBoard()
	fmt.Fprint(c.out, prompt)
	for {
		select {
		case <-ctx.Done():
			// end the pending prompt line
			fmt.Fprintln(c.out)
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(c.out)
				select {
				case err := <-errc:
					return err
				default:
					return ctx.Err()
				}
			}
			if c.execute(line) {
				c.log.Debug("console quit")
				return nil
			}
			fmt.Fprint(c.out, prompt)
		}
	}
}

// execute runs one command and reports whether the player asked to quit.
func (c *Console) execute(line string) bool {
	cmd, err := ParseCommand(line)
	if errors.Is(err, ErrEmpty) {
		return false
	}
	if err != nil {
		fmt.Fprintf(c.out, "error: %s\n", err)
		return false
	}

	switch cmd.Move {
	case Quit:
		return true
	case Open:
		err = c.session.Reveal(cmd.Point)
	case Chord:
		err = c.chord(cmd.Point)
	case Flag:
		err = c.session.ToggleFlag(cmd.Point)
	case NewGame:
		if cmd.Difficulty == "" {
			err = c.session.NewGame(c.session.Difficulty())
		} else {
			err = c.session.NewGameByName(cmd.Difficulty)
		}
	}
	if err != nil {
		fmt.Fprintf(c.out, "error: %s\n", err)
		return false
	}

	c.report()
	c.printBoard()
	return false
}

// chord only acts on numbered cells, unlike open which also uncovers.
func (c *Console) chord(p mines.Point) error {
	v, err := c.session.VisualAt(p)
	if err != nil {
		return err
	}
	if _, ok := v.Count(); !ok {
		fmt.Fprintf(c.out, "nothing to chord at %s\n", p)
		return nil
	}
	return c.session.Reveal(p)
}

func (c *Console) report() {
	cells := 0
	for _, e := range c.events {
		if _, ok := e.(mines.CellChanged); ok {
			cells++
			continue
		}
		fmt.Fprintln(c.out, e)
	}
	if cells > 0 {
		fmt.Fprintf(c.out, "%d cells changed\n", cells)
	}
	c.events = c.events[:0]
}

func (c *Console) printBoard() {
	params := c.session.Params()
	fmt.Fprintf(c.out, "%s %s, %d mines left, %s\n",
		c.session.Difficulty(),
		c.session.Status(),
		c.session.MinesRemaining(),
		c.session.Elapsed().Truncate(time.Second),
	)
	fmt.Fprint(c.out, c.session.Grid().ToString(params.Width))
}
