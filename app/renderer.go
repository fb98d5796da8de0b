package app

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pencil"
	"pencil/backend"
)

// Triangle source for solid-color draws. A 1x1 region inside a 3x3
// image keeps texture filtering away from the edges.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)

	backend.Register(backend.BackendEbiten, func() backend.Backend {
		return &Backend{}
	})
}

// Backend is the GPU rendering backend provided by the windowed shell.
type Backend struct {
	initialized bool
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.BackendEbiten
}

// Init initializes the backend.
func (b *Backend) Init() error {
	b.initialized = true
	pencil.Logger().Info("backend: ebiten initialized")
	return nil
}

// Close releases all backend resources.
func (b *Backend) Close() {
	b.initialized = false
}

// NewRenderer creates a renderer sized for the given dimensions.
func (b *Backend) NewRenderer(width, height int) pencil.Renderer {
	return NewRenderer(width, height)
}

// Renderer submits polylines to an ebiten image. It implements
// pencil.Renderer; the game loop points it at the current frame's
// screen before rendering.
//
// Every polyline is stroked into its own vertex buffer and drawn with
// an independent DrawTriangles call, one geometry upload per stroke per
// frame.
type Renderer struct {
	viewport *pencil.Viewport
	target   *ebiten.Image

	// Scratch buffers reused across Polyline calls within a frame.
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderer creates a renderer for a surface of the given pixel size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{viewport: pencil.NewViewport(width, height)}
}

// SetTarget points the renderer at the image the next frame draws into.
func (r *Renderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

// Begin starts a frame by clearing the target to the given color.
func (r *Renderer) Begin(clear color.Color) {
	if r.target == nil {
		return
	}
	r.target.Fill(clear)
}

// SetViewport updates the drawing rectangle to (0, 0, width, height).
func (r *Renderer) SetViewport(width, height int) {
	r.viewport.Resize(width, height)
}

// Polyline strokes an open polyline with round caps and joins. The
// points arrive in normalized drawing space and are mapped to pixels
// under the current viewport.
func (r *Renderer) Polyline(points []pencil.Point, c color.Color, width float64) {
	if r.target == nil || len(points) < 2 {
		return
	}

	var path vector.Path
	x, y := r.viewport.Denormalize(points[0])
	path.MoveTo(float32(x), float32(y))
	for _, p := range points[1:] {
		x, y = r.viewport.Denormalize(p)
		path.LineTo(float32(x), float32(y))
	}

	op := &vector.StrokeOptions{
		Width:    float32(width),
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	}
	vs, is := path.AppendVerticesAndIndicesForStroke(r.vertices[:0], r.indices[:0], op)

	cr, cg, cb, ca := c.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(cr) / 0xffff
		vs[i].ColorG = float32(cg) / 0xffff
		vs[i].ColorB = float32(cb) / 0xffff
		vs[i].ColorA = float32(ca) / 0xffff
	}

	r.target.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
	r.vertices, r.indices = vs, is
}

// End finishes the frame; ebiten presents it after Draw returns.
func (r *Renderer) End() error {
	r.target = nil
	return nil
}
