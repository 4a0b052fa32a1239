package core

// Entity is a unique identifier for an entity, 0 is never issued
type Entity uint64

// Point is an integer grid coordinate, Y grows upward
type Point struct {
	X, Y int
}

// Add returns the component-wise sum
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns the component-wise difference
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Neighbors returns the 8 surrounding cells, clockwise from top-left
func (p Point) Neighbors() [8]Point {
	return [8]Point{
		p.Add(Point{-1, 1}),
		p.Add(Point{0, 1}),
		p.Add(Point{1, 1}),
		p.Add(Point{1, 0}),
		p.Add(Point{1, -1}),
		p.Add(Point{0, -1}),
		p.Add(Point{-1, -1}),
		p.Add(Point{-1, 0}),
	}
}
