package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the host loop tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// DrainBudget is the wall time after which the action stack stops draining for the tick
	DrainBudget = 8 * time.Millisecond
)

// Turn Scheduling
const (
	// DecisionAttempts is the number of passes a non-exempt actor gets per engine run
	DecisionAttempts = 3
)

// Grid & Camera
const (
	// TilePixels is the world pixel size of one grid cell
	TilePixels = 32.0

	// HalfTilePixels is the half-extent of an entity's visibility rect
	HalfTilePixels = TilePixels / 2

	// CameraWidth and CameraHeight are the default projection size in world pixels
	CameraWidth  = 480.0
	CameraHeight = 480.0
)
