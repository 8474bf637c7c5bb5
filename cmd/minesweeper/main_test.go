package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/mines"
)

func TestPickDifficulty(t *testing.T) {
	tests := []struct {
		configured, arg, custom string
		want                    mines.Difficulty
	}{
		{"Expert", "", "", mines.Expert},
		{"Expert", "beginner", "", mines.Beginner},
		{"Expert", "INTERMEDIATE", "", mines.Intermediate},
		{"Expert", "", "4:6:3", mines.Custom(mines.GameParams{Height: 4, Width: 6, MineCount: 3})},
	}
	for _, test := range tests {
		d, err := pickDifficulty(test.configured, test.arg, test.custom)
		require.NoError(t, err)
		assert.Equal(t, test.want, d)
	}
}

func TestPickDifficultyErrors(t *testing.T) {
	_, err := pickDifficulty("Expert", "Master", "")
	assert.ErrorIs(t, err, mines.ErrUnknownDifficulty)

	_, err = pickDifficulty("Expert", "Beginner", "4:6:3")
	assert.Error(t, err)

	_, err = pickDifficulty("Expert", "", "4x6")
	assert.Error(t, err)

	_, err = pickDifficulty("Expert", "", "3:3:1")
	var ce *mines.ConfigurationError
	assert.ErrorAs(t, err, &ce)
}

func TestCreateRand(t *testing.T) {
	a, b := createRand(42), createRand(42)
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
}
