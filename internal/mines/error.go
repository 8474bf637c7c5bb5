package mines

import "fmt"

// ConfigurationError reports a board that cannot be built or filled.
type ConfigurationError struct {
	Params GameParams
	Reason string
}

// [ConfigurationError] implements [error]
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid game configuration %s: %s", e.Params.Seed(), e.Reason)
}

// OutOfBoundsError reports a point outside the grid.
type OutOfBoundsError struct {
	Point         Point
	Height, Width int
}

// [OutOfBoundsError] implements [error]
func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf(
		"point %s is outside the %dx%d grid", e.Point, e.Height, e.Width,
	)
}
