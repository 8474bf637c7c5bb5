package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"github.com/vancomm/minesweeper/internal/mines"
)

type Move uint8

const (
	Open Move = iota + 1
	Flag
	Chord
	NewGame
	Print
	Quit
)

func (m Move) String() string {
	switch m {
	case Open:
		return "open"
	case Flag:
		return "flag"
	case Chord:
		return "chord"
	case NewGame:
		return "new"
	case Print:
		return "print"
	case Quit:
		return "quit"
	default:
		return "Move(" + strconv.Itoa(int(m)) + ")"
	}
}

type Command struct {
	Move       Move
	Point      mines.Point
	Difficulty string
}

type commandSpec struct {
	move Move
	// nargs is the exact argument count, or the maximum for new.
	nargs int
}

// Maps known command names and their aliases to moves
var commands = map[string]commandSpec{
	"o":      {Open, 2},
	"open":   {Open, 2},
	"reveal": {Open, 2},
	"f":      {Flag, 2},
	"flag":   {Flag, 2},
	"c":      {Chord, 2},
	"chord":  {Chord, 2},
	"n":      {NewGame, 1},
	"new":    {NewGame, 1},
	"p":      {Print, 0},
	"print":  {Print, 0},
	"g":      {Print, 0},
	"q":      {Quit, 0},
	"quit":   {Quit, 0},
}

var (
	ErrEmpty          = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgs           = errors.New("invalid number of arguments")
)

type point struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

var pointDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

func decodePoint(src map[string][]string) (mines.Point, error) {
	var p point
	if err := pointDecoder.Decode(&p, src); err != nil {
		return mines.Point{}, err
	}
	return mines.Point{Row: p.Row, Col: p.Col}, nil
}

func parseRowCol(args []string) (p mines.Point, err error) {
	if p.Row, err = strconv.Atoi(args[0]); err != nil {
		return p, errors.New("row must be an int")
	}
	if p.Col, err = strconv.Atoi(args[1]); err != nil {
		return p, errors.New("column must be an int")
	}
	return p, nil
}

// keyValues collects "key=value" arguments. It reports false if any argument
// is positional.
func keyValues(args []string) (map[string][]string, bool) {
	src := make(map[string][]string, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			return nil, false
		}
		key = strings.ToLower(key)
		src[key] = append(src[key], value)
	}
	return src, true
}

// ParseCommand reads one line of input. Points are given either positionally
// ("o 3 4") or as key=value pairs ("reveal row=3 col=4").
func ParseCommand(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, ErrEmpty
	}
	known, ok := commands[strings.ToLower(parts[0])]
	if !ok {
		return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, parts[0])
	}
	args := parts[1:]
	cmd := Command{Move: known.move}

	switch known.move {
	case Open, Flag, Chord:
		if len(args) > 0 {
			if src, ok := keyValues(args); ok {
				p, err := decodePoint(src)
				if err != nil {
					return Command{}, fmt.Errorf("%s: %w", known.move, err)
				}
				cmd.Point = p
				return cmd, nil
			}
		}
		if len(args) != known.nargs {
			return Command{}, fmt.Errorf("%w: %s takes ROW COL", ErrArgs, known.move)
		}
		p, err := parseRowCol(args)
		if err != nil {
			return Command{}, err
		}
		cmd.Point = p
	case NewGame:
		if len(args) > known.nargs {
			return Command{}, fmt.Errorf("%w: %s takes at most one difficulty", ErrArgs, known.move)
		}
		if len(args) == 1 {
			cmd.Difficulty = args[0]
		}
	default:
		if len(args) != known.nargs {
			return Command{}, fmt.Errorf("%w: %s takes none", ErrArgs, known.move)
		}
	}
	return cmd, nil
}
