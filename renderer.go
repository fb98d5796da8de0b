package pencil

import "image/color"

// Drawing style shared by every renderer: white paper, a soft
// near-black pencil, and a fixed line width in pixels.
var (
	// Paper is the background color cleared at the start of each frame.
	Paper = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	// Ink is the stroke color.
	Ink = color.NRGBA{R: 0x0d, G: 0x0d, B: 0x0d, A: 0xff}
)

// LineWidth is the stroke width in pixels.
const LineWidth = 2.5

// Renderer is the contract the drawing surface produces against each
// frame. It abstracts the rendering implementation, allowing multiple
// backends (software rasterization, GPU via the windowed shell).
//
// Within a frame calls arrive in a fixed order: SetViewport (only when
// the surface size changed), Begin exactly once, zero or more Polyline
// calls, End exactly once. Each Polyline is an independent submission
// with its own geometry; nothing is batched across strokes. That cost
// grows linearly with stroke count per frame, which is acceptable at
// interactive-sketch scale and deliberately not optimized away.
type Renderer interface {
	// Begin starts a frame by clearing it to the given color.
	Begin(clear color.Color)

	// SetViewport updates the renderer's drawing rectangle to
	// (0, 0, width, height) pixels.
	SetViewport(width, height int)

	// Polyline submits an open polyline through the given points, in
	// normalized drawing space, with the given color and width in
	// pixels. Implementations may assume len(points) >= 2.
	Polyline(points []Point, c color.Color, width float64)

	// End finishes and presents the frame.
	End() error
}
