package loop

import (
	"errors"
	"fmt"
	"time"

	"torus-snake/game/types"
)

var (
	ErrInvalidGridSize = errors.New("grid size must be at least 2")
	ErrInvalidInterval = errors.New("tick interval must be positive")
	ErrInvalidStart    = errors.New("start cell outside the grid")
	ErrNilSink         = errors.New("render sink is required")
	ErrNilInput        = errors.New("input source is required")
)

// Config holds the only tunables of a session.
type Config struct {
	GridSize     int
	TickInterval time.Duration
	Start        types.Point
}

func DefaultConfig() Config {
	return Config{
		GridSize:     21,
		TickInterval: 100 * time.Millisecond,
		Start:        types.Point{X: 0, Y: 0},
	}
}

func (c Config) Validate() error {
	if c.GridSize < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidGridSize, c.GridSize)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidInterval, c.TickInterval)
	}
	if !c.Start.In(c.GridSize) {
		return fmt.Errorf("%w: %v on %dx%d", ErrInvalidStart, c.Start, c.GridSize, c.GridSize)
	}
	return nil
}
