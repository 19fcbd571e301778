package vmath

import (
	"math"
	"testing"
)

func TestShapeNextAndAdvance(t *testing.T) {
	s := Shape{X: 10, Y: 20, DX: 3, DY: -2}

	if s.NextX() != 13 || s.NextY() != 18 {
		t.Fatalf("Next = (%v,%v), want (13,18)", s.NextX(), s.NextY())
	}
	if s.X != 10 || s.Y != 20 {
		t.Errorf("Next mutated position: (%v,%v)", s.X, s.Y)
	}

	s.Advance()
	if s.X != 13 || s.Y != 18 {
		t.Errorf("Advance = (%v,%v), want (13,18)", s.X, s.Y)
	}

	s.InvertDX()
	s.InvertDY()
	if s.DX != -3 || s.DY != 2 {
		t.Errorf("Invert = (%v,%v), want (-3,2)", s.DX, s.DY)
	}
}

func TestRectContainsOpen(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 50, Height: 10}

	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"center", 35, 15, true},
		{"left edge", 10, 15, false},
		{"right edge", 60, 15, false},
		{"top edge", 35, 10, false},
		{"bottom edge", 35, 20, false},
		{"just inside corner", 10.001, 10.001, true},
		{"outside", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.ContainsOpen(tt.px, tt.py); got != tt.want {
				t.Errorf("ContainsOpen(%v,%v) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 50, Height: 10}
	touching := Rect{X: 50, Y: 0, Width: 50, Height: 10}
	crossing := Rect{X: 49, Y: 9, Width: 5, Height: 5}

	if a.Overlaps(touching) {
		t.Error("edge-adjacent rects must not overlap")
	}
	if !a.Overlaps(crossing) {
		t.Error("crossing rects must overlap")
	}
}

func TestFlattenArcFullCircle(t *testing.T) {
	points := FlattenArc(100, 50, 10, 0, 2*math.Pi, true)

	if len(points) != ArcSegmentsPerCircle+1 {
		t.Fatalf("got %d points, want %d", len(points), ArcSegmentsPerCircle+1)
	}
	for i, p := range points {
		d := math.Hypot(p.X-100, p.Y-50)
		if math.Abs(d-10) > 1e-9 {
			t.Errorf("point %d at distance %v, want 10", i, d)
		}
	}
	first, last := points[0], points[len(points)-1]
	if math.Abs(first.X-last.X) > 1e-9 || math.Abs(first.Y-last.Y) > 1e-9 {
		t.Errorf("full circle not closed: %v .. %v", first, last)
	}
}

func TestFlattenArcDirection(t *testing.T) {
	// Quarter arc clockwise in screen space goes from +X towards +Y
	cw := FlattenArc(0, 0, 1, 0, math.Pi/2, false)
	if cw[1].Y <= 0 {
		t.Errorf("clockwise arc should move into +Y, second point %v", cw[1])
	}

	ccw := FlattenArc(0, 0, 1, 0, math.Pi/2, true)
	if ccw[1].Y >= 0 {
		t.Errorf("counter-clockwise arc should move into -Y, second point %v", ccw[1])
	}
	if len(ccw) <= len(cw) {
		t.Errorf("ccw sweep of 3π/2 should need more vertices than cw π/2: %d vs %d", len(ccw), len(cw))
	}
}
