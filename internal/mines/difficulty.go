package mines

import (
	"errors"
	"fmt"
	"strings"
)

// Difficulty is a named board preset.
type Difficulty struct {
	Name string
	GameParams
}

var (
	Beginner     = Difficulty{"Beginner", GameParams{Height: 9, Width: 9, MineCount: 10}}
	Intermediate = Difficulty{"Intermediate", GameParams{Height: 16, Width: 16, MineCount: 40}}
	Expert       = Difficulty{"Expert", GameParams{Height: 16, Width: 30, MineCount: 99}}

	Difficulties = []Difficulty{Beginner, Intermediate, Expert}
)

var ErrUnknownDifficulty = errors.New("unknown difficulty")

func ParseDifficulty(name string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(d.Name, strings.TrimSpace(name)) {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf(
		"%w %q (want one of %s)", ErrUnknownDifficulty, name, strings.Join(DifficultyNames(), ", "),
	)
}

func DifficultyNames() []string {
	names := make([]string, len(Difficulties))
	for i, d := range Difficulties {
		names[i] = d.Name
	}
	return names
}

// Custom wraps arbitrary params. Only used for development boards.
func Custom(params GameParams) Difficulty {
	return Difficulty{"Custom", params}
}

func (d Difficulty) String() string {
	return d.Name
}
