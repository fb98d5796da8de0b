// Package app is the windowed shell for the drawing surface.
//
// It hosts a pencil.Session inside an ebiten game loop: Update polls
// the mouse and keyboard into core events and applies them, Draw runs
// the frame submission against a GPU-backed renderer, and Layout
// reports window resizes. Update and Draw run on one goroutine with
// mutation strictly before rendering, which is the ordering the core
// relies on.
//
// Importing the package registers the "ebiten" backend in the backend
// registry.
package app
