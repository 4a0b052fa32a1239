package core

// Direction is one of the four grid directions
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all directions in key-check order (up, left, down, right)
var Directions = [4]Direction{DirUp, DirLeft, DirDown, DirRight}

// Offset returns the unit grid step for the direction
func (d Direction) Offset() Point {
	switch d {
	case DirUp:
		return Point{0, 1}
	case DirDown:
		return Point{0, -1}
	case DirLeft:
		return Point{-1, 0}
	case DirRight:
		return Point{1, 0}
	}
	return Point{}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "unknown"
}

// ParseDirection resolves a direction name, false on unknown
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	}
	return 0, false
}
