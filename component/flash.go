package component

import "time"

// FlashComponent represents a brief visual flash effect on a damaged entity
type FlashComponent struct {
	Remaining time.Duration // Time remaining
	Duration  time.Duration // Flash duration
}

// Visible reports whether the flash is in its on phase
// The flash toggles every 125ms over its duration
func (f FlashComponent) Visible() bool {
	elapsed := f.Duration - f.Remaining
	return (elapsed/(125*time.Millisecond))%2 == 0
}
