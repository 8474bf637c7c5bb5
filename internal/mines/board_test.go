package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighbors(t *testing.T) {
	b, err := NewBoard(Beginner.GameParams)
	require.NoError(t, err)

	tests := []struct {
		p    Point
		want int
	}{
		{Point{0, 0}, 3},
		{Point{0, 8}, 3},
		{Point{8, 0}, 3},
		{Point{8, 8}, 3},
		{Point{0, 4}, 5},
		{Point{4, 0}, 5},
		{Point{4, 4}, 8},
	}
	for _, test := range tests {
		ns := b.Neighbors(test.p)
		assert.Len(t, ns, test.want, "neighbours of %s", test.p)
		for _, q := range ns {
			assert.NotEqual(t, test.p, q)
			assert.True(t, b.InBounds(q))
			assert.LessOrEqual(t, absDiff(q.Row, test.p.Row), 1)
			assert.LessOrEqual(t, absDiff(q.Col, test.p.Col), 1)
		}
	}

	line, err := NewBoard(GameParams{Height: 1, Width: 12, MineCount: 1})
	require.NoError(t, err)
	assert.ElementsMatch(t, []Point{{0, 4}, {0, 6}}, line.Neighbors(Point{0, 5}))
	assert.ElementsMatch(t, []Point{{0, 1}}, line.Neighbors(Point{0, 0}))
}

func TestNewBoardIsCovered(t *testing.T) {
	b, err := NewBoard(Expert.GameParams)
	require.NoError(t, err)

	n := 0
	for p := range b.Points() {
		assert.Equal(t, Cell{Value: 0, State: Covered}, b.At(p))
		n++
	}
	assert.Equal(t, 16*30, n)
	assert.False(t, b.Mined())
}

func TestComputeCounts(t *testing.T) {
	b, err := NewBoard(GameParams{Height: 5, Width: 5, MineCount: 2})
	require.NoError(t, err)

	b.ComputeCounts() // before placement: ignored
	require.NoError(t, b.SetMines(Point{0, 0}, Point{3, 0}, Point{3, 2}))
	b.ComputeCounts()

	assert.Equal(t, ""+
		"0 0 0 0 0 \n"+
		"0 0 0 0 0 \n"+
		"1 2 1 1 0 \n"+
		"* 2 * 1 0 \n"+
		"1 2 1 1 0 \n", b.String())

	b.ComputeCounts() // counts are fixed once computed
	assert.Equal(t, CellValue(2), b.At(Point{3, 1}).Value)
}

func TestGridToString(t *testing.T) {
	grid := Grid{VisualCovered, VisualFlagged, 0, 3, VisualMine, 8}
	assert.Equal(t, "- F . \n3 * 8 \n", grid.ToString(3))
}

func TestVisualCount(t *testing.T) {
	for n := range 9 {
		got, ok := VisualCount(n).Count()
		assert.True(t, ok)
		assert.Equal(t, n, got)
	}
	for _, v := range []Visual{VisualCovered, VisualFlagged, VisualMine} {
		_, ok := v.Count()
		assert.False(t, ok, "%s is not a count", v)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		name string
		want Difficulty
		ok   bool
	}{
		{"Beginner", Beginner, true},
		{"intermediate", Intermediate, true},
		{" EXPERT ", Expert, true},
		{"", Difficulty{}, false},
		{"Master", Difficulty{}, false},
	}
	for _, test := range tests {
		d, err := ParseDifficulty(test.name)
		if !test.ok {
			assert.ErrorIs(t, err, ErrUnknownDifficulty)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, test.want, d)
	}

	assert.Equal(t, []string{"Beginner", "Intermediate", "Expert"}, DifficultyNames())
	assert.Equal(t, GameParams{Height: 16, Width: 30, MineCount: 99}, Expert.GameParams)
}
