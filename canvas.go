package pencil

// Canvas is the stroke store: an ordered collection of finalized
// strokes plus at most one in-progress stroke. Insertion order is draw
// order. Finalized strokes are immutable and
// never reordered or edited; Clear is the only operation that removes
// them. No capacity bound is imposed.
//
// Canvas is not safe for concurrent use; the event loop owns it and
// mutates strictly before rendering within a frame.
type Canvas struct {
	strokes []*Stroke
	current *Stroke
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Append finalizes a stroke by adding it to the end of the store.
func (c *Canvas) Append(s *Stroke) {
	c.strokes = append(c.strokes, s)
}

// Current returns the in-progress stroke, or nil if none exists.
func (c *Canvas) Current() *Stroke {
	return c.current
}

// SetCurrent replaces the in-progress stroke. Pass nil to drop it.
func (c *Canvas) SetCurrent(s *Stroke) {
	c.current = s
}

// Strokes returns the finalized strokes in insertion order.
// The returned slice is the canvas's backing storage; callers must
// treat it as read-only.
func (c *Canvas) Strokes() []*Stroke {
	return c.strokes
}

// Len returns the number of finalized strokes.
func (c *Canvas) Len() int {
	return len(c.strokes)
}

// Clear empties both the finalized strokes and the in-progress stroke,
// unconditionally and idempotently.
func (c *Canvas) Clear() {
	c.strokes = nil
	c.current = nil
}
