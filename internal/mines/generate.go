package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

func inStartingArea(start, p Point) bool {
	return absDiff(start.Row, p.Row) <= 1 && absDiff(start.Col, p.Col) <= 1
}

// PlaceMines puts count mines on the board, none of which is at exclude or
// within one square of it. Positions are drawn uniformly over the whole grid
// and rejected until enough land outside the starting area.
func (b *Board) PlaceMines(exclude Point, count int, r *rand.Rand) error {
	if err := b.checkBounds(exclude); err != nil {
		return err
	}
	if b.mined {
		return &ConfigurationError{b.GameParams, "mines are already placed"}
	}

	available := b.Cells() - len(b.Neighbors(exclude)) - 1
	if count < 0 || count > available {
		return &ConfigurationError{
			b.GameParams,
			fmt.Sprintf("cannot place %d mines around %s, only %d cells available",
				count, exclude, available),
		}
	}

	draws := 0
	for placed := 0; placed < count; {
		draws++
		i := r.IntN(len(b.cells))
		if inStartingArea(exclude, b.point(i)) || b.cells[i].Value == Mine {
			continue
		}
		b.cells[i].Value = Mine
		placed++
	}
	b.mined = true

	Log.WithFields(logrus.Fields{
		"params":  b.Seed(),
		"exclude": exclude.String(),
		"draws":   draws,
	}).Debug("placed mines")

	return nil
}

// SetMines places mines at exactly the given points. The same starting-area
// rule as [Board.PlaceMines] applies.
func (b *Board) SetMines(exclude Point, points ...Point) error {
	if err := b.checkBounds(exclude); err != nil {
		return err
	}
	if b.mined {
		return &ConfigurationError{b.GameParams, "mines are already placed"}
	}
	if len(points) != b.MineCount {
		return &ConfigurationError{
			b.GameParams, fmt.Sprintf("got %d mine positions", len(points)),
		}
	}

	seen := make(map[Point]bool, len(points))
	for _, p := range points {
		if err := b.checkBounds(p); err != nil {
			return err
		}
		if seen[p] {
			return &ConfigurationError{b.GameParams, "duplicate mine at " + p.String()}
		}
		if inStartingArea(exclude, p) {
			return &ConfigurationError{b.GameParams, "mine at " + p.String() + " is next to the first click"}
		}
		seen[p] = true
	}

	for _, p := range points {
		b.cell(p).Value = Mine
	}
	b.mined = true
	return nil
}
