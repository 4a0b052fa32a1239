package visual

import "github.com/gdamore/tcell/v2"

// Colors for grid drawing
var (
	ColorFloor   = tcell.NewRGBColor(60, 60, 70)
	ColorWall    = tcell.NewRGBColor(150, 140, 120)
	ColorWallCap = tcell.NewRGBColor(190, 180, 160)
	ColorPlayer  = tcell.NewRGBColor(120, 220, 255)
	ColorEnemy   = tcell.NewRGBColor(230, 230, 210)
	ColorFlash   = tcell.NewRGBColor(255, 60, 60)
	ColorStatus  = tcell.NewRGBColor(200, 200, 200)

	ColorBackground = tcell.ColorBlack
)

// Glyphs for actors
const (
	GlyphPlayer = '@'
	GlyphScout  = 's'
)
