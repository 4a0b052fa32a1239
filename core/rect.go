package core

// Rect is an axis-aligned rectangle in world pixel coordinates, Y grows upward
type Rect struct {
	Left, Right float64
	Top, Bottom float64
}

// RectAround returns the rect of half-extent h centered on (x, y)
func RectAround(x, y, h float64) Rect {
	return Rect{
		Left:   x - h,
		Right:  x + h,
		Top:    y + h,
		Bottom: y - h,
	}
}

// Overlaps reports whether r and o share any area, touching edges count
func (r Rect) Overlaps(o Rect) bool {
	return r.Bottom <= o.Top && r.Top >= o.Bottom && r.Right >= o.Left && r.Left <= o.Right
}
