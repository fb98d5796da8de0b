// Package pencil implements an interactive freehand-drawing surface.
//
// # Overview
//
// A pointer-driven input stream is converted into persistent line
// geometry and redrawn every frame. The package contains the whole
// drawing pipeline:
//
//	device events -> Capture -> Canvas -> Session.Render -> Renderer
//
// Positions are captured in device pixels and stored in a normalized,
// device-independent coordinate space spanning [-1, 1] on both axes
// with the origin at the center and the y-axis pointing up (see
// Viewport). Each press-to-release gesture becomes one Stroke; a frame
// submits every finalized stroke, then the in-progress one, as open
// polylines through the Renderer contract.
//
// # Quick Start
//
//	s := pencil.NewSession(800, 600)
//	s.Apply(pencil.PointerDown(10, 10))
//	s.Apply(pencil.PointerMove(400, 300))
//	s.Apply(pencil.PointerUp())
//	err := s.Render(r) // r is a Renderer, e.g. backend.NewSoftwareRenderer
//
// # Architecture
//
// The package is organized into:
//   - Core state: Canvas, Stroke, Point, Viewport
//   - Event protocol: Event, Capture, Session
//   - Render contract: Renderer (implemented by backend/ and app/)
//
// # Concurrency
//
// The core is single-threaded by design: within one loop iteration all
// mutation (Session.Apply) happens strictly before reading
// (Session.Render), so no synchronization is required around the shared
// canvas. The interactive shell in app/ preserves this ordering through
// its update-then-draw frame loop.
package pencil
