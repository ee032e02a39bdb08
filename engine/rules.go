package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/vi-tetris/constants"
	"github.com/lixenwraith/vi-tetris/core"
)

// ErrInvalidRules is returned when rules cannot describe a playable game
var ErrInvalidRules = errors.New("invalid game rules")

// Rules are the startup-time parameters of a game, fixed for its lifetime
type Rules struct {
	Width          int
	Height         int
	SpeedThreshold int
	TickPeriod     int
	// RampEvery lowers the threshold by one per RampEvery points; 0 disables the ramp
	RampEvery  int
	FirstShape core.ShapeId
}

// DefaultRules returns the classic 12x18 setup with constant speed
func DefaultRules() Rules {
	return Rules{
		Width:          constants.DefaultFieldWidth,
		Height:         constants.DefaultFieldHeight,
		SpeedThreshold: constants.DefaultSpeedThreshold,
		TickPeriod:     constants.DefaultTickPeriod,
		RampEvery:      constants.DefaultRampEvery,
		FirstShape:     constants.DefaultFirstShape,
	}
}

// Validate checks every field and reports the first violation
func (r Rules) Validate() error {
	switch {
	case r.Width < core.MinFieldSize || r.Height < core.MinFieldSize:
		return fmt.Errorf("%w: field %dx%d, each side must exceed %d", ErrInvalidRules, r.Width, r.Height, core.MinFieldSize-1)
	case r.TickPeriod < 1:
		return fmt.Errorf("%w: tick period %d must be positive", ErrInvalidRules, r.TickPeriod)
	case r.SpeedThreshold < 1:
		return fmt.Errorf("%w: speed threshold %d must be positive", ErrInvalidRules, r.SpeedThreshold)
	case r.RampEvery < 0:
		return fmt.Errorf("%w: ramp interval %d must not be negative", ErrInvalidRules, r.RampEvery)
	case !r.FirstShape.Valid():
		return fmt.Errorf("%w: first shape %d outside 0..%d", ErrInvalidRules, r.FirstShape, core.ShapeCount-1)
	}
	return nil
}

// Threshold returns the effective speed threshold at the given score
func (r Rules) Threshold(score int) int {
	threshold := r.SpeedThreshold
	if r.RampEvery > 0 {
		threshold -= score / r.RampEvery
	}
	if threshold < 1 {
		threshold = 1
	}
	return threshold
}

// SpawnColumn is the column offset of a freshly spawned piece
func (r Rules) SpawnColumn() int {
	return r.Width / 2
}
