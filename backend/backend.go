package backend

import (
	"errors"

	"pencil"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU-based software backend.
	BackendSoftware = "software"
	// BackendEbiten is the name of the GPU backend registered by the
	// windowed shell (app/).
	BackendEbiten = "ebiten"
)

// Backend creates renderers for the drawing surface. It abstracts the
// rendering implementation, allowing the application to run windowed on
// the GPU or headless on the CPU.
//
// Backends must be registered via Register and are selected via Get or
// Default.
type Backend interface {
	// Name returns the backend identifier (e.g., "software", "ebiten").
	Name() string

	// Init initializes the backend.
	// This should be called before creating renderers.
	Init() error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()

	// NewRenderer creates a renderer sized for the given dimensions.
	NewRenderer(width, height int) pencil.Renderer
}
