package backend

import (
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"pencil"
)

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() Backend {
		return &SoftwareBackend{}
	})
}

// SoftwareBackend is a CPU-based rendering backend built on the gg 2D
// graphics library. It needs no window or GPU and is used by headless
// runs and tests.
type SoftwareBackend struct {
	initialized bool
}

// NewSoftwareBackend creates a new software rendering backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// Init initializes the backend.
func (b *SoftwareBackend) Init() error {
	b.initialized = true
	pencil.Logger().Info("backend: software initialized")
	return nil
}

// Close releases all backend resources.
func (b *SoftwareBackend) Close() {
	b.initialized = false
}

// NewRenderer creates a software renderer sized for the given dimensions.
func (b *SoftwareBackend) NewRenderer(width, height int) pencil.Renderer {
	return NewSoftwareRenderer(width, height)
}

// SoftwareRenderer rasterizes frames into an in-memory image through a
// gg drawing context. It implements pencil.Renderer.
type SoftwareRenderer struct {
	dc       *gg.Context
	viewport *pencil.Viewport
}

// NewSoftwareRenderer creates a software renderer with a target of the
// given pixel size.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	vp := pencil.NewViewport(width, height)
	return &SoftwareRenderer{
		dc:       gg.NewContext(vp.Width(), vp.Height()),
		viewport: vp,
	}
}

// Begin starts a frame by clearing the target to the given color.
func (r *SoftwareRenderer) Begin(clear color.Color) {
	r.dc.ClearWithColor(gg.FromColor(clear))
}

// SetViewport resizes the render target to (0, 0, width, height).
func (r *SoftwareRenderer) SetViewport(width, height int) {
	if !r.viewport.Resize(width, height) {
		return
	}
	if err := r.dc.Resize(r.viewport.Width(), r.viewport.Height()); err != nil {
		pencil.Logger().Warn("backend: software resize failed",
			"width", width, "height", height, "error", err)
	}
}

// Polyline rasterizes an open polyline with round caps and joins. The
// points arrive in normalized drawing space and are mapped to pixels
// under the current viewport.
func (r *SoftwareRenderer) Polyline(points []pencil.Point, c color.Color, width float64) {
	if len(points) < 2 {
		return
	}
	r.dc.ClearPath()
	x, y := r.viewport.Denormalize(points[0])
	r.dc.MoveTo(x, y)
	for _, p := range points[1:] {
		x, y = r.viewport.Denormalize(p)
		r.dc.LineTo(x, y)
	}
	r.dc.SetColor(c)
	r.dc.SetStroke(gg.RoundStroke().WithWidth(width))
	if err := r.dc.Stroke(); err != nil {
		pencil.Logger().Warn("backend: software stroke failed", "error", err)
	}
}

// End finishes the frame. The result stays available through Image.
func (r *SoftwareRenderer) End() error {
	return nil
}

// Image returns the rendered frame.
func (r *SoftwareRenderer) Image() image.Image {
	return r.dc.Image()
}
