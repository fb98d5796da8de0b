package pencil

// Default surface dimensions in pixels, used when a caller supplies a
// non-positive size.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Viewport tracks the current surface dimensions in pixels and maps
// between device coordinates (origin top-left, y down) and the
// normalized drawing space (origin center, y up, both axes in [-1, 1]).
//
// The mapping is affine, invertible and stateless: Normalize reads the
// dimensions current at the moment of the call, so geometry recorded
// under earlier dimensions keeps its normalized coordinates. A resize
// therefore does not rescale previously captured points to preserve
// their pixel position; this mirrors the historical behavior of the
// surface and is deliberately left as is.
type Viewport struct {
	width  int
	height int
}

// NewViewport creates a viewport with the given pixel dimensions.
// Non-positive dimensions fall back to DefaultWidth x DefaultHeight so
// the viewport never reports a zero size.
func NewViewport(width, height int) *Viewport {
	v := &Viewport{width: DefaultWidth, height: DefaultHeight}
	v.Resize(width, height)
	return v
}

// Resize replaces the stored dimensions. A non-positive width or height
// is ignored, keeping the previous dimensions, so that Normalize never
// divides by zero. It reports whether the dimensions changed.
func (v *Viewport) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		Logger().Warn("viewport: ignoring non-positive resize",
			"width", width, "height", height)
		return false
	}
	if width == v.width && height == v.height {
		return false
	}
	v.width = width
	v.height = height
	return true
}

// Width returns the surface width in pixels.
func (v *Viewport) Width() int { return v.width }

// Height returns the surface height in pixels.
func (v *Viewport) Height() int { return v.height }

// Normalize maps a device position in pixels to normalized drawing
// space: x in [0, W] maps to [-1, 1] and y in [0, H] maps to [1, -1]
// (the y-axis flips so that up is positive).
func (v *Viewport) Normalize(x, y float64) Point {
	return Point{
		X: x/float64(v.width)*2 - 1,
		Y: 1 - y/float64(v.height)*2,
	}
}

// Denormalize is the exact inverse of Normalize: it maps a normalized
// point back to device pixels under the current dimensions. Render
// backends use it to place geometry on a pixel target.
func (v *Viewport) Denormalize(p Point) (x, y float64) {
	x = (p.X + 1) / 2 * float64(v.width)
	y = (1 - p.Y) / 2 * float64(v.height)
	return x, y
}
