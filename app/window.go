package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"pencil"
	"pencil/backend"
)

// Config holds window configuration.
type Config struct {
	Title  string
	Width  int
	Height int
}

// DefaultConfig returns the standard window configuration.
func DefaultConfig() Config {
	return Config{
		Title:  "pencil",
		Width:  pencil.DefaultWidth,
		Height: pencil.DefaultHeight,
	}
}

// Run opens a resizable desktop window hosting the drawing surface and
// blocks until the window closes or a quit command is applied.
func Run(cfg Config) error {
	b := backend.Get(backend.BackendEbiten)
	if b == nil {
		return backend.ErrBackendNotAvailable
	}
	if err := b.Init(); err != nil {
		return fmt.Errorf("app: backend init: %w", err)
	}
	defer b.Close()

	renderer, ok := b.NewRenderer(cfg.Width, cfg.Height).(*Renderer)
	if !ok {
		return backend.ErrBackendNotAvailable
	}

	session := pencil.NewSession(cfg.Width, cfg.Height)
	g := NewGame(session, renderer, session.Viewport().Width(), session.Viewport().Height())

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(session.Viewport().Width(), session.Viewport().Height())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}
