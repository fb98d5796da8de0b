package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"pencil"
)

// Game adapts a pencil.Session to the ebiten game loop.
type Game struct {
	session  *pencil.Session
	renderer *Renderer

	// Logical window size last reported through Layout.
	width, height int
	resized       bool

	// Cursor position last seen by pollInput.
	lastX, lastY int

	// Event buffer reused across ticks.
	pending []pencil.Event
}

// NewGame creates a game hosting the given session and renderer for a
// window of the given initial size.
func NewGame(session *pencil.Session, renderer *Renderer, width, height int) *Game {
	return &Game{
		session:  session,
		renderer: renderer,
		width:    width,
		height:   height,
	}
}

// Update polls input into core events and applies them. It runs once
// per tick, strictly before Draw. Once the session is quitting the loop
// terminates at the top of the next tick, discarding any stroke still
// in progress.
func (g *Game) Update() error {
	if g.session.Quitting() {
		return ebiten.Termination
	}
	g.pending = g.pollInput(g.pending[:0])
	for _, ev := range g.pending {
		g.session.Apply(ev)
	}
	return nil
}

// Draw submits the frame through the session's render pass.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.SetTarget(screen)
	if err := g.session.Render(g.renderer); err != nil {
		pencil.Logger().Warn("app: render failed", "error", err)
	}
}

// Layout reports the window size as the logical size, one drawing pixel
// per screen pixel. Size changes surface as resize events on the next
// Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != g.width || outsideHeight != g.height) {
		g.width = outsideWidth
		g.height = outsideHeight
		g.resized = true
	}
	return g.width, g.height
}
