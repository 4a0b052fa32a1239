package component

import "github.com/lixenwraith/gridcrawl/core"

// PositionComponent is the logical grid cell an entity occupies
// Any holder of a position blocks movement into that cell
type PositionComponent struct {
	core.Point
}

// At returns a position component for grid cell (x, y)
func At(x, y int) PositionComponent {
	return PositionComponent{Point: core.Point{X: x, Y: y}}
}

// TransformComponent is the world pixel-space location used for drawing and visibility
// Movement animations interpolate it toward the grid position
type TransformComponent struct {
	X float64
	Y float64
}

// TransformAt returns the pixel transform centered on grid cell (x, y)
func TransformAt(x, y int, tilePixels float64) TransformComponent {
	return TransformComponent{X: float64(x) * tilePixels, Y: float64(y) * tilePixels}
}

// Cell returns the nearest grid cell for the transform
func (t TransformComponent) Cell(tilePixels float64) core.Point {
	return core.Point{X: roundDiv(t.X, tilePixels), Y: roundDiv(t.Y, tilePixels)}
}

func roundDiv(v, d float64) int {
	q := v / d
	if q < 0 {
		return -int(-q + 0.5)
	}
	return int(q + 0.5)
}
