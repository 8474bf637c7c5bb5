package main

import (
	"errors"
	"fmt"

	"github.com/vancomm/minesweeper/internal/mines"
)

// pickDifficulty resolves the starting board: a custom board, else the
// command line argument, else the configured preset.
func pickDifficulty(configured, arg, custom string) (mines.Difficulty, error) {
	if custom != "" {
		if arg != "" {
			return mines.Difficulty{}, errors.New("-custom cannot be combined with a difficulty")
		}
		params, err := mines.ParseSeed(custom)
		if err != nil {
			return mines.Difficulty{}, fmt.Errorf("bad -custom %q: %w", custom, err)
		}
		if err := params.Validate(); err != nil {
			return mines.Difficulty{}, err
		}
		return mines.Custom(*params), nil
	}
	if arg != "" {
		return mines.ParseDifficulty(arg)
	}
	return mines.ParseDifficulty(configured)
}
