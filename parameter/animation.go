package parameter

import "time"

// Animations
const (
	// MoveAnimationDuration is the time one tile step takes on screen
	MoveAnimationDuration = 40 * time.Millisecond

	// DamageAnimationDuration is the hit flash length
	DamageAnimationDuration = 1 * time.Second
)
