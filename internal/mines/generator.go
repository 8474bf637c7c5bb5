package mines

import (
	"errors"
	"fmt"
	"strings"
)

type GameParams struct {
	Height, Width, MineCount int
}

func (p GameParams) Unpack() (h int, w int, mc int) {
	return p.Height, p.Width, p.MineCount
}

func (p GameParams) Cells() int {
	return p.Height * p.Width
}

// MaxMines is the largest mine count that still leaves room for the
// exclusion zone of any first click.
func (p GameParams) MaxMines() int {
	return p.Cells() - min(3, p.Height)*min(3, p.Width)
}

func (p GameParams) Validate() error {
	switch {
	case p.Height < 1 || p.Width < 1:
		return &ConfigurationError{p, "board must be at least 1x1"}
	case p.MineCount < 1:
		return &ConfigurationError{p, "at least one mine is required"}
	case p.MineCount > p.MaxMines():
		return &ConfigurationError{
			p, fmt.Sprintf("at most %d mines fit next to the starting area", max(p.MaxMines(), 0)),
		}
	}
	return nil
}

func (p GameParams) Seed() string {
	h, w, mc := p.Unpack()
	return fmt.Sprintf("%d:%d:%d", h, w, mc)
}

func ParseSeed(seed string) (*GameParams, error) {
	p := &GameParams{}
	sseed := strings.ReplaceAll(seed, ":", " ")
	var (
		n   int
		err error
	)
	if fields := strings.Split(seed, ":"); len(fields) != 3 {
		err = fmt.Errorf("expected three fields, got %d", len(fields))
	} else {
		n, err = fmt.Sscanf(sseed, "%d %d %d", &p.Height, &p.Width, &p.MineCount)
		if err == nil && n != 3 {
			err = errors.New("expected three fields")
		}
	}
	if err != nil {
		return nil, fmt.Errorf(
			`invalid game params seed (sseed = "%s", n = %d): %w`, sseed, n, err,
		)
	}
	return p, nil
}

func (p GameParams) PointInBounds(pt Point) bool {
	return 0 <= pt.Row && pt.Row < p.Height && 0 <= pt.Col && pt.Col < p.Width
}
