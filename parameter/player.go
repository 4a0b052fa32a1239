package parameter

import "time"

// Player
const (
	PlayerMaxHealth = 30

	// MoveBufferDelay is the pause after the first step before held movement repeats
	MoveBufferDelay = 300 * time.Millisecond

	// HoldWindow is how long after the last key event a key still counts as held
	// Terminals report no key release, only repeats
	HoldWindow = 120 * time.Millisecond

	// AttackDamage is the damage dealt by a directional attack
	AttackDamage = 10
)

// Enemies
const (
	ScoutMaxHealth = 10

	// DefaultEnemyCount is the number of scouts spawned per floor
	DefaultEnemyCount = 4
)
