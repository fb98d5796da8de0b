package pencil

import "testing"

func TestNewStrokeIdentity(t *testing.T) {
	a := NewStroke()
	b := NewStroke()
	if a.ID() == "" {
		t.Error("NewStroke() produced an empty ID")
	}
	if a.ID() == b.ID() {
		t.Errorf("two strokes share ID %q", a.ID())
	}
	if a.Len() != 0 {
		t.Errorf("NewStroke().Len() = %d, want 0", a.Len())
	}
}

func TestStrokeAppendOrder(t *testing.T) {
	s := NewStroke()
	pts := []Point{Pt(0, 0), Pt(0.5, 0.5), Pt(1, -1)}
	for _, p := range pts {
		s.Append(p)
	}

	if s.Len() != len(pts) {
		t.Fatalf("Len() = %d, want %d", s.Len(), len(pts))
	}
	for i, p := range s.Points() {
		if p != pts[i] {
			t.Errorf("Points()[%d] = %v, want %v", i, p, pts[i])
		}
	}
}

func TestStrokeLast(t *testing.T) {
	s := NewStroke()
	if _, ok := s.Last(); ok {
		t.Error("Last() ok = true for an empty stroke")
	}

	s.Append(Pt(0.1, 0.2))
	s.Append(Pt(0.3, 0.4))
	last, ok := s.Last()
	if !ok {
		t.Fatal("Last() ok = false after appends")
	}
	if last != Pt(0.3, 0.4) {
		t.Errorf("Last() = %v, want %v", last, Pt(0.3, 0.4))
	}
}
