package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundHit    SoundType = iota // Damage landed
	SoundDeath                   // Target destroyed
	SoundStep                    // Tile move
	SoundStairs                  // Floor regenerated
	SoundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundHit:
		return "hit"
	case SoundDeath:
		return "death"
	case SoundStep:
		return "step"
	case SoundStairs:
		return "stairs"
	}
	return "unknown"
}
