package pencil

// Point is a position in the normalized drawing space: both coordinates
// lie in [-1, 1], the origin is at the center of the surface and the
// y-axis points up. Points are immutable once created.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// DistanceSquared returns the squared distance between two points.
// Capture uses it for near-duplicate suppression; keeping the square
// avoids a sqrt on every move event.
func (p Point) DistanceSquared(q Point) float64 {
	return p.Sub(q).LengthSquared()
}
