package backend

import (
	"image"
	"testing"

	"pencil"
)

func TestSoftwareBackendName(t *testing.T) {
	b := NewSoftwareBackend()
	if b.Name() != BackendSoftware {
		t.Errorf("Name() = %q, want %q", b.Name(), BackendSoftware)
	}
}

func TestSoftwareBackendInit(t *testing.T) {
	b := NewSoftwareBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	b.Close()
}

func TestSoftwareBackendNewRenderer(t *testing.T) {
	b := NewSoftwareBackend()
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer b.Close()

	r := b.NewRenderer(100, 100)
	if r == nil {
		t.Error("NewRenderer() returned nil")
	}
}

func TestSoftwareRendererFrame(t *testing.T) {
	r := NewSoftwareRenderer(800, 600)
	s := pencil.NewSession(800, 600)

	// One corner-to-corner stroke: its polyline passes through the
	// surface center.
	s.Apply(pencil.PointerDown(0, 0))
	s.Apply(pencil.PointerMove(800, 600))
	s.Apply(pencil.PointerUp())

	if err := s.Render(r); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	img := r.Image()
	if img == nil {
		t.Fatal("Image() returned nil")
	}

	// Ink along the stroke, paper away from it.
	cr, cg, cb, _ := img.At(400, 300).RGBA()
	if cr > 0x4000 || cg > 0x4000 || cb > 0x4000 {
		t.Errorf("pixel at stroke center = (%#x, %#x, %#x), want ink-dark", cr, cg, cb)
	}
	pr, pg, pb, _ := img.At(700, 50).RGBA()
	if pr < 0xf000 || pg < 0xf000 || pb < 0xf000 {
		t.Errorf("pixel off the stroke = (%#x, %#x, %#x), want paper-white", pr, pg, pb)
	}
}

func TestSoftwareRendererSkipsShortPolylines(t *testing.T) {
	r := NewSoftwareRenderer(100, 100)
	r.Begin(pencil.Paper)
	r.Polyline(nil, pencil.Ink, pencil.LineWidth)
	r.Polyline([]pencil.Point{pencil.Pt(0, 0)}, pencil.Ink, pencil.LineWidth)
	if err := r.End(); err != nil {
		t.Fatalf("End() error = %v", err)
	}

	cr, cg, cb, _ := r.Image().At(50, 50).RGBA()
	if cr < 0xf000 || cg < 0xf000 || cb < 0xf000 {
		t.Errorf("center pixel = (%#x, %#x, %#x), want untouched paper", cr, cg, cb)
	}
}

func TestSoftwareRendererSetViewport(t *testing.T) {
	r := NewSoftwareRenderer(800, 600)
	r.SetViewport(400, 300)

	want := image.Rect(0, 0, 400, 300)
	if got := r.Image().Bounds(); got != want {
		t.Errorf("Image().Bounds() = %v, want %v", got, want)
	}

	// Non-positive sizes are ignored.
	r.SetViewport(0, 0)
	if got := r.Image().Bounds(); got != want {
		t.Errorf("Image().Bounds() after rejected resize = %v, want %v", got, want)
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	// Software backend is auto-registered via init()
	if !IsRegistered(BackendSoftware) {
		t.Error("software backend should be auto-registered")
	}

	b := Get(BackendSoftware)
	if b == nil {
		t.Fatal("Get(software) returned nil")
	}
	if b.Name() != BackendSoftware {
		t.Errorf("Get(software).Name() = %q, want %q", b.Name(), BackendSoftware)
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	if b := Get("nonexistent"); b != nil {
		t.Error("Get(nonexistent) should return nil")
	}
}

func TestRegistryAvailable(t *testing.T) {
	found := false
	for _, name := range Available() {
		if name == BackendSoftware {
			found = true
			break
		}
	}
	if !found {
		t.Error("Available() should include 'software'")
	}
}

func TestRegistryDefault(t *testing.T) {
	b := Default()
	if b == nil {
		t.Fatal("Default() returned nil")
	}
	// Software is the default unless the windowed shell registered its
	// GPU backend.
	if b.Name() != BackendSoftware && b.Name() != BackendEbiten {
		t.Errorf("Default().Name() = %q", b.Name())
	}
}

func TestRegistryInitDefault(t *testing.T) {
	b, err := InitDefault()
	if err != nil {
		t.Fatalf("InitDefault() error = %v", err)
	}
	defer b.Close()

	if r := b.NewRenderer(100, 100); r == nil {
		t.Error("Backend from InitDefault() should be usable")
	}
}

func TestRegistryUnregister(t *testing.T) {
	Register("test-backend", func() Backend {
		return &SoftwareBackend{}
	})

	if !IsRegistered("test-backend") {
		t.Error("test-backend should be registered")
	}

	Unregister("test-backend")
	if IsRegistered("test-backend") {
		t.Error("test-backend should be unregistered")
	}
	if b := Get("test-backend"); b != nil {
		t.Error("Get(test-backend) should return nil after Unregister")
	}
}
