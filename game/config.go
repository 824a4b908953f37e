package game

import (
	"errors"
	"fmt"

	"grid-snake/game/types"

	"github.com/hashicorp/go-multierror"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the externally adjustable parameters of a round.
type Config struct {
	Width       int
	Height      int
	InitialBody []types.Point // head first
	Seed        uint64        // 0 seeds food placement from the clock
}

// DefaultConfig returns a 40x40 grid with the default two-cell snake. Every
// call builds a new body slice.
func DefaultConfig() Config {
	return Config{
		Width:       types.DefaultWidth,
		Height:      types.DefaultHeight,
		InitialBody: types.DefaultBody(),
	}
}

func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.Width, Height: c.Height}
}

// Validate reports every problem with c at once.
func (c Config) Validate() error {
	var merr *multierror.Error

	if c.Width <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("%w: width %d must be positive", ErrInvalidConfig, c.Width))
	}
	if c.Height <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("%w: height %d must be positive", ErrInvalidConfig, c.Height))
	}
	if len(c.InitialBody) == 0 {
		merr = multierror.Append(merr, fmt.Errorf("%w: initial body is empty", ErrInvalidConfig))
	}

	grid := c.Grid()
	seen := make(map[types.Point]struct{}, len(c.InitialBody))
	for i, p := range c.InitialBody {
		if !grid.Contains(p) {
			merr = multierror.Append(merr, fmt.Errorf("%w: body cell %d at %v is outside the %dx%d grid", ErrInvalidConfig, i, p, c.Width, c.Height))
		}
		if _, ok := seen[p]; ok {
			merr = multierror.Append(merr, fmt.Errorf("%w: body cell %d at %v is duplicated", ErrInvalidConfig, i, p))
		}
		seen[p] = struct{}{}
	}

	return merr.ErrorOrNil()
}
