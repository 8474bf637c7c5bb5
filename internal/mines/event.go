package mines

import (
	"fmt"
	"time"
)

// Event is a state change the presentation layer may react to. The concrete
// types are [CellChanged], [GameStarted], [GameEnded], [MineCounterChanged]
// and [GameReset].
type Event interface {
	event()
	fmt.Stringer
}

type CellChanged struct {
	Point  Point
	Visual Visual
}

type GameStarted struct {
	At time.Time
}

type GameEnded struct {
	Outcome Status
	At      time.Time
	// Exploded is the mine that lost the game, nil on a win.
	Exploded *Point
}

type MineCounterChanged struct {
	Remaining int
}

// GameReset is published when a new game replaces the previous one.
type GameReset struct {
	Difficulty Difficulty
}

func (CellChanged) event()        {}
func (GameStarted) event()        {}
func (GameEnded) event()          {}
func (MineCounterChanged) event() {}
func (GameReset) event()          {}

func (e CellChanged) String() string {
	return fmt.Sprintf("cell %s %s", e.Point, e.Visual)
}

func (e GameStarted) String() string {
	return "started"
}

func (e GameEnded) String() string {
	if e.Exploded != nil {
		return fmt.Sprintf("%s at %s", e.Outcome, e.Exploded)
	}
	return e.Outcome.String()
}

func (e MineCounterChanged) String() string {
	return fmt.Sprintf("mines %d", e.Remaining)
}

func (e GameReset) String() string {
	return fmt.Sprintf("new %s game %s", e.Difficulty, e.Difficulty.Seed())
}
