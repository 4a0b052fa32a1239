package component

// SpriteComponent is the glyph drawn at the entity transform
type SpriteComponent struct {
	Rune  rune
	Name  string
	Layer int // higher draws on top
}

// KeepBetweenFloorsComponent tags entities that survive floor regeneration
type KeepBetweenFloorsComponent struct{}
