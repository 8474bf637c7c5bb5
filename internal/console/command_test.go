package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/mines"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"o 3 4", Command{Move: Open, Point: mines.Point{Row: 3, Col: 4}}},
		{"  OPEN   0 12 ", Command{Move: Open, Point: mines.Point{Row: 0, Col: 12}}},
		{"reveal row=3 col=4", Command{Move: Open, Point: mines.Point{Row: 3, Col: 4}}},
		{"reveal col=4 row=3 extra=1", Command{Move: Open, Point: mines.Point{Row: 3, Col: 4}}},
		{"f 1 1", Command{Move: Flag, Point: mines.Point{Row: 1, Col: 1}}},
		{"flag Row=2 Col=5", Command{Move: Flag, Point: mines.Point{Row: 2, Col: 5}}},
		{"c 0 0", Command{Move: Chord}},
		{"n", Command{Move: NewGame}},
		{"new intermediate", Command{Move: NewGame, Difficulty: "intermediate"}},
		{"p", Command{Move: Print}},
		{"g", Command{Move: Print}},
		{"quit", Command{Move: Quit}},
	}

	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			cmd, err := ParseCommand(test.line)
			require.NoError(t, err)
			assert.Equal(t, test.want, cmd)
		})
	}
}

func TestParseCommandErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"", ErrEmpty},
		{"   ", ErrEmpty},
		{"x 1 2", ErrUnknownCommand},
		{"o 1", ErrArgs},
		{"o 1 2 3", ErrArgs},
		{"n Beginner Expert", ErrArgs},
		{"q now", ErrArgs},
	}
	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			_, err := ParseCommand(test.line)
			assert.ErrorIs(t, err, test.want)
		})
	}

	for _, line := range []string{"o a 1", "o 1 b", "reveal row=3", "reveal row=x col=1"} {
		_, err := ParseCommand(line)
		assert.Error(t, err, line)
	}
}

func TestMoveString(t *testing.T) {
	assert.Equal(t, "open", Open.String())
	assert.Equal(t, "quit", Quit.String())
	assert.Equal(t, "Move(0)", Move(0).String())
}
