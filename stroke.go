package pencil

import "github.com/google/uuid"

// Stroke is an ordered sequence of points representing one continuous
// press-to-release pointer gesture. A stroke is append-only while it is
// the canvas's current stroke and must not be modified after it has
// been finalized into the canvas.
type Stroke struct {
	id     string
	points []Point
}

// NewStroke creates an empty stroke with a fresh identity.
func NewStroke() *Stroke {
	return &Stroke{id: uuid.NewString()}
}

// ID returns the stroke's unique identifier. The ID carries no ordering
// or rendering meaning; it identifies strokes in diagnostics.
func (s *Stroke) ID() string {
	return s.id
}

// Append adds a point to the end of the stroke.
func (s *Stroke) Append(p Point) {
	s.points = append(s.points, p)
}

// Len returns the number of points in the stroke.
func (s *Stroke) Len() int {
	return len(s.points)
}

// Last returns the most recently appended point.
// ok is false for an empty stroke.
func (s *Stroke) Last() (p Point, ok bool) {
	if len(s.points) == 0 {
		return Point{}, false
	}
	return s.points[len(s.points)-1], true
}

// Points returns the stroke's points in append order.
// The returned slice is the stroke's backing storage; callers must
// treat it as read-only.
func (s *Stroke) Points() []Point {
	return s.points
}
