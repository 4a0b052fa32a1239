package component

// TileKind selects how a static map cell is drawn
type TileKind uint8

const (
	TileFloor TileKind = iota
	TileWall
	TileWallCap // wall with no wall directly below it
)

// TileComponent is a static map cell, drawn under actors
type TileComponent struct {
	Kind TileKind
}

// Rune returns the glyph for the tile kind
func (k TileKind) Rune() rune {
	switch k {
	case TileWall:
		return '#'
	case TileWallCap:
		return '▀'
	default:
		return '·'
	}
}
