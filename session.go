package pencil

// Session owns the drawing state for one surface: the canvas, the
// viewport and the capture machine. The event loop passes every input
// event through Apply and submits one frame per iteration through
// Render; Apply must not be called concurrently with Render.
type Session struct {
	canvas   *Canvas
	viewport *Viewport
	capture  *Capture

	quit bool
	// viewportDirty makes the next frame forward the dimensions to the
	// renderer; set at creation and on every accepted resize.
	viewportDirty bool
}

// NewSession creates a session for a surface of the given pixel size.
func NewSession(width, height int) *Session {
	canvas := NewCanvas()
	s := &Session{
		canvas:        canvas,
		viewport:      NewViewport(width, height),
		capture:       NewCapture(canvas),
		viewportDirty: true,
	}
	Logger().Info("session: started",
		"width", s.viewport.Width(), "height", s.viewport.Height())
	return s
}

// Canvas returns the session's stroke store.
func (s *Session) Canvas() *Canvas { return s.canvas }

// Viewport returns the session's viewport.
func (s *Session) Viewport() *Viewport { return s.viewport }

// Quitting reports whether a quit command has been applied. The event
// loop checks it at the top of each iteration; an in-progress stroke at
// that point is discarded, never finalized.
func (s *Session) Quitting() bool { return s.quit }

// Apply dispatches one input event. Every event is a total function of
// the current state: out-of-order pointer events and non-positive
// resizes are no-ops.
func (s *Session) Apply(ev Event) {
	switch ev.Kind {
	case EventPointerDown:
		s.capture.PointerDown(s.viewport.Normalize(ev.X, ev.Y))
	case EventPointerMove:
		s.capture.PointerMove(s.viewport.Normalize(ev.X, ev.Y))
	case EventPointerUp:
		s.capture.PointerUp()
	case EventResize:
		if s.viewport.Resize(ev.Width, ev.Height) {
			s.viewportDirty = true
		}
	case EventCommand:
		s.applyCommand(ev.Command)
	}
}

func (s *Session) applyCommand(c Command) {
	switch c {
	case CommandClear:
		s.canvas.Clear()
		Logger().Debug("session: canvas cleared")
	case CommandQuit:
		s.quit = true
		Logger().Info("session: quit requested")
	}
}

// Render submits one frame: clear to Paper, every finalized stroke in
// insertion order, then the in-progress stroke on top, all with the
// same Ink and LineWidth. Strokes with fewer than 2 points are skipped;
// they stay in the store but a polyline needs two vertices.
func (s *Session) Render(r Renderer) error {
	if s.viewportDirty {
		r.SetViewport(s.viewport.Width(), s.viewport.Height())
		s.viewportDirty = false
	}
	r.Begin(Paper)
	for _, st := range s.canvas.Strokes() {
		if st.Len() < 2 {
			continue
		}
		r.Polyline(st.Points(), Ink, LineWidth)
	}
	if cur := s.canvas.Current(); cur != nil && cur.Len() >= 2 {
		r.Polyline(cur.Points(), Ink, LineWidth)
	}
	return r.End()
}
