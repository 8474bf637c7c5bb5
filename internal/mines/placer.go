package mines

import "math/rand/v2"

// Placer fills a fresh board on the first reveal. safe is the clicked cell.
type Placer interface {
	Place(b *Board, safe Point) error
}

type RandomPlacer struct {
	Rand *rand.Rand
}

func (p RandomPlacer) Place(b *Board, safe Point) error {
	return b.PlaceMines(safe, b.MineCount, p.Rand)
}

// FixedPlacer lays mines at known points, for tests and replays.
type FixedPlacer []Point

func (p FixedPlacer) Place(b *Board, safe Point) error {
	return b.SetMines(safe, p...)
}
