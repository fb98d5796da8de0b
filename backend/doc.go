// Package backend provides rendering backends for the drawing surface.
//
// A backend produces pencil.Renderer values for a given target size.
// Backends register themselves from init functions and are selected by
// name via Get or by priority via Default; the windowed shell in app/
// registers the GPU-backed "ebiten" backend, this package provides the
// CPU-based "software" backend built on the gg 2D graphics library.
package backend
