// Command pencil opens an interactive freehand-drawing window.
//
// Draw with the left mouse button. Press C to clear the canvas and
// Esc to quit.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"pencil"
	"pencil/app"
	"pencil/backend"
)

func main() {
	var (
		width    = flag.Int("width", pencil.DefaultWidth, "window width in pixels")
		height   = flag.Int("height", pencil.DefaultHeight, "window height in pixels")
		headless = flag.Bool("headless", false, "render offscreen without a window and exit")
		frames   = flag.Int("frames", 60, "frames to render in headless mode")
		list     = flag.Bool("backends", false, "list registered render backends")
		verbose  = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	pencil.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	if *list {
		fmt.Println(strings.Join(backend.Available(), "\n"))
		return
	}

	if *headless {
		if err := runHeadless(*width, *height, *frames); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	cfg := app.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	if err := app.Run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runHeadless drives the session with a scripted corner-to-corner
// stroke against the software backend and renders the requested number
// of frames. It gives CI a display-free smoke run over the full
// capture-to-submission pipeline.
func runHeadless(width, height, frames int) error {
	b := backend.Get(backend.BackendSoftware)
	if b == nil {
		return backend.ErrBackendNotAvailable
	}
	if err := b.Init(); err != nil {
		return err
	}
	defer b.Close()

	session := pencil.NewSession(width, height)
	w := float64(session.Viewport().Width())
	h := float64(session.Viewport().Height())
	r := b.NewRenderer(session.Viewport().Width(), session.Viewport().Height())

	session.Apply(pencil.PointerDown(0, 0))
	session.Apply(pencil.PointerMove(w/2, h/2))
	session.Apply(pencil.PointerMove(w, h))
	session.Apply(pencil.PointerUp())

	for i := 0; i < frames; i++ {
		if err := session.Render(r); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	fmt.Printf("rendered %d frames, %d strokes stored\n", frames, session.Canvas().Len())
	return nil
}
