package mines

import (
	"fmt"
	"iter"
	"strings"
)

type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// CellValue is either [Mine] or the number of mined neighbours (0 to 8).
type CellValue int8

const Mine CellValue = -1

type CellState uint8

const (
	Covered CellState = iota
	Flagged
	Revealed
)

func (s CellState) String() string {
	switch s {
	case Covered:
		return "covered"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	default:
		return "invalid"
	}
}

type Cell struct {
	Value CellValue
	State CellState
}

func (c Cell) Visual() Visual {
	switch {
	case c.State == Covered:
		return VisualCovered
	case c.State == Flagged:
		return VisualFlagged
	case c.Value == Mine:
		return VisualMine
	default:
		return Visual(c.Value)
	}
}

// Board is a row-major grid of cells. Mines are placed once, after which
// counts are derived once and never touched again.
type Board struct {
	GameParams
	cells   []Cell
	mined   bool
	counted bool
}

func NewBoard(params GameParams) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		GameParams: params,
		cells:      make([]Cell, params.Cells()),
	}
	return b, nil
}

func (b *Board) InBounds(p Point) bool {
	return b.PointInBounds(p)
}

func (b *Board) checkBounds(p Point) error {
	if !b.InBounds(p) {
		return &OutOfBoundsError{Point: p, Height: b.Height, Width: b.Width}
	}
	return nil
}

func (b *Board) index(p Point) int {
	return p.Row*b.Width + p.Col
}

func (b *Board) point(i int) Point {
	return Point{Row: i / b.Width, Col: i % b.Width}
}

func (b *Board) cell(p Point) *Cell {
	return &b.cells[b.index(p)]
}

// At returns a copy of the cell at p, which must be in bounds.
func (b *Board) At(p Point) Cell {
	return *b.cell(p)
}

func (b *Board) Mined() bool {
	return b.mined
}

// Neighbors lists the in-bounds cells sharing an edge or a corner with p.
func (b *Board) Neighbors(p Point) []Point {
	neighbors := make([]Point, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			q := Point{p.Row + dr, p.Col + dc}
			if b.InBounds(q) {
				neighbors = append(neighbors, q)
			}
		}
	}
	return neighbors
}

func (b *Board) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := range b.cells {
			if !yield(b.point(i)) {
				return
			}
		}
	}
}

func (b *Board) ComputeCounts() {
	if !b.mined {
		Log.Warn("refusing to count neighbours before mines are placed")
		return
	}
	if b.counted {
		return
	}
	for i := range b.cells {
		if b.cells[i].Value == Mine {
			continue
		}
		n := 0
		for _, q := range b.Neighbors(b.point(i)) {
			if b.cell(q).Value == Mine {
				n++
			}
		}
		b.cells[i].Value = CellValue(n)
	}
	b.counted = true
}

// Grid returns what the player currently sees.
func (b *Board) Grid() Grid {
	grid := make(Grid, len(b.cells))
	for i, c := range b.cells {
		grid[i] = c.Visual()
	}
	return grid
}

// String prints the hidden layout: mines as "*", counts as digits.
func (b *Board) String() string {
	var sb strings.Builder
	for i, c := range b.cells {
		if c.Value == Mine {
			sb.WriteString("* ")
		} else {
			fmt.Fprintf(&sb, "%d ", c.Value)
		}
		if (i+1)%b.Width == 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
