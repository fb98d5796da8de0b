package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pencil"
)

// pollInput converts this tick's polled input state into core events,
// appended to events in the order the session should see them: resize
// first, then press/move, then release, then keyboard commands.
func (g *Game) pollInput(events []pencil.Event) []pencil.Event {
	if g.resized {
		g.resized = false
		events = append(events, pencil.Resize(g.width, g.height))
	}

	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		events = append(events, pencil.PointerDown(float64(x), float64(y)))
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) &&
		(x != g.lastX || y != g.lastY):
		events = append(events, pencil.PointerMove(float64(x), float64(y)))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		events = append(events, pencil.PointerUp())
	}
	g.lastX, g.lastY = x, y

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		events = append(events, pencil.Clear())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		events = append(events, pencil.Quit())
	}
	return events
}
