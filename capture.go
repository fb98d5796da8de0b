package pencil

// minPointDistSq is the squared distance, in normalized units, below
// which a move event is considered a near-duplicate of the previous
// point and dropped. High-frequency pointer hardware otherwise floods a
// stroke with coincident points without changing its shape.
const minPointDistSq = 1e-6

// Capture turns press/move/release pointer events into stroke points.
// It is a two-state machine (idle, capturing) whose side effects are
// confined to the canvas's current stroke and finalized store. Every
// transition is total: events that arrive out of order (a move or
// release while idle, a second press while capturing) are ignored.
type Capture struct {
	canvas    *Canvas
	capturing bool
}

// NewCapture creates a capture machine mutating the given canvas.
func NewCapture(c *Canvas) *Capture {
	return &Capture{canvas: c}
}

// Capturing reports whether the pointer is currently held down.
func (c *Capture) Capturing() bool {
	return c.capturing
}

// PointerDown starts a new stroke at p and records p as its first
// point. A press while already capturing is ignored.
func (c *Capture) PointerDown(p Point) {
	if c.capturing {
		return
	}
	c.capturing = true
	s := NewStroke()
	s.Append(p)
	c.canvas.SetCurrent(s)
	Logger().Debug("capture: stroke started", "stroke", s.ID())
}

// PointerMove appends p to the current stroke, unless it is within
// minPointDistSq of the previous point. A move while idle is ignored.
//
// If the current stroke was dropped mid-gesture (a clear while the
// pointer is held), a fresh stroke is started and p is appended
// unconditionally.
func (c *Capture) PointerMove(p Point) {
	if !c.capturing {
		return
	}
	cur := c.canvas.Current()
	if cur == nil {
		cur = NewStroke()
		c.canvas.SetCurrent(cur)
	}
	last, ok := cur.Last()
	if !ok {
		cur.Append(p)
		return
	}
	if p.DistanceSquared(last) > minPointDistSq {
		cur.Append(p)
	}
}

// PointerUp finalizes the current stroke into the canvas if it has at
// least one point, drops it otherwise, and returns to idle. A release
// while idle is ignored.
func (c *Capture) PointerUp() {
	if !c.capturing {
		return
	}
	c.capturing = false
	cur := c.canvas.Current()
	c.canvas.SetCurrent(nil)
	if cur == nil || cur.Len() == 0 {
		return
	}
	c.canvas.Append(cur)
	Logger().Debug("capture: stroke finalized",
		"stroke", cur.ID(), "points", cur.Len())
}
