package game

import "time"

const (
	PlayerHeight = float32(1.8)
	PlayerRadius = float32(0.3)

	// BlockHalfWidth is half the horizontal extent of a cell. Cells span [y, y+1] vertically.
	BlockHalfWidth = float32(0.5)
	BlockHeight    = float32(1)

	DefaultGravity      = float32(-0.01)
	DefaultJumpVelocity = float32(0.2)
	DefaultSpeed        = float32(0.1)
	DefaultFlySpeed     = float32(0.1)

	// HorizontalBandEpsilon keeps the floor the player stands on, and a block touching the top of the
	// player's column, out of horizontal collision checks.
	HorizontalBandEpsilon = float32(0.1)
	HeadClearance         = float32(0.01)

	DefaultTurnSpeed        = float32(0.03)
	DefaultMouseSensitivity = float32(0.002)

	DoubleTapWindow = 300 * time.Millisecond
)
