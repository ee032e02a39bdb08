package constants

import "time"

// Field Dimensions
const (
	// DefaultFieldWidth includes the left and right border columns
	DefaultFieldWidth = 12

	// DefaultFieldHeight includes the bottom border row
	DefaultFieldHeight = 18
)

// Tick Scheduler
const (
	// DefaultTickPeriod is the wrap period of the speed-tick counter
	DefaultTickPeriod = 21

	// DefaultSpeedThreshold is the counter value from which gravity pulls the piece down
	DefaultSpeedThreshold = 10

	// DefaultRampEvery disables the speed ramp (score points per threshold step when > 0)
	DefaultRampEvery = 0

	// DefaultFirstShape is the shape id of the first piece in a game
	DefaultFirstShape = 1

	// SpawnRow is the row offset every new piece starts at
	SpawnRow = 0
)

// Game Loop Timing
const (
	// FrameUpdateInterval paces one tick of the game loop
	FrameUpdateInterval = 50 * time.Millisecond

	// GameOverHold keeps the final frame on screen before the binary exits
	GameOverHold = 2 * time.Second
)

// Autoplay Limits
const (
	// AutoplayMaxTicks caps a headless game that never tops out
	AutoplayMaxTicks = 200000

	// AutoplayDefaultGames is the batch size when none is given
	AutoplayDefaultGames = 100
)
