package pencil

import (
	"math"
	"testing"
)

func TestViewportNormalize(t *testing.T) {
	v := NewViewport(800, 600)
	tests := []struct {
		name string
		x, y float64
		want Point
	}{
		{"center", 400, 300, Pt(0, 0)},
		{"top-left", 0, 0, Pt(-1, 1)},
		{"bottom-right", 800, 600, Pt(1, -1)},
		{"top-right", 800, 0, Pt(1, 1)},
		{"bottom-left", 0, 600, Pt(-1, -1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.Normalize(tt.x, tt.y)
			if got != tt.want {
				t.Errorf("Normalize(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestViewportDenormalizeRoundTrip(t *testing.T) {
	v := NewViewport(1024, 768)
	coords := [][2]float64{{0, 0}, {512, 384}, {1024, 768}, {17, 693}}
	for _, c := range coords {
		x, y := v.Denormalize(v.Normalize(c[0], c[1]))
		if math.Abs(x-c[0]) > 1e-9 || math.Abs(y-c[1]) > 1e-9 {
			t.Errorf("round trip of (%v, %v) = (%v, %v)", c[0], c[1], x, y)
		}
	}
}

func TestViewportResize(t *testing.T) {
	v := NewViewport(800, 600)
	if !v.Resize(400, 300) {
		t.Error("Resize(400, 300) = false, want true")
	}
	if v.Width() != 400 || v.Height() != 300 {
		t.Errorf("dimensions = %dx%d, want 400x300", v.Width(), v.Height())
	}

	// Same size is not a change.
	if v.Resize(400, 300) {
		t.Error("Resize to same size = true, want false")
	}
}

func TestViewportResizeRejectsNonPositive(t *testing.T) {
	v := NewViewport(800, 600)
	for _, dims := range [][2]int{{0, 600}, {800, 0}, {-1, 600}, {0, 0}} {
		if v.Resize(dims[0], dims[1]) {
			t.Errorf("Resize(%d, %d) = true, want false", dims[0], dims[1])
		}
	}
	if v.Width() != 800 || v.Height() != 600 {
		t.Errorf("dimensions changed to %dx%d after rejected resizes", v.Width(), v.Height())
	}
}

func TestNewViewportDefaults(t *testing.T) {
	v := NewViewport(0, -5)
	if v.Width() != DefaultWidth || v.Height() != DefaultHeight {
		t.Errorf("dimensions = %dx%d, want %dx%d",
			v.Width(), v.Height(), DefaultWidth, DefaultHeight)
	}
}
