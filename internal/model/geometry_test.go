package model

import "testing"

func TestRect_Intersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 50}

	overlap, ok := a.Intersect(Rect{X: 50, Y: 25, Width: 100, Height: 100})
	if !ok {
		t.Fatal("expected overlap")
	}
	expected := Rect{X: 50, Y: 25, Width: 50, Height: 25}
	if overlap != expected {
		t.Errorf("Intersect = %+v, expected %+v", overlap, expected)
	}

	if _, ok := a.Intersect(Rect{X: 200, Y: 0, Width: 10, Height: 10}); ok {
		t.Error("disjoint rects should not intersect")
	}
}

func TestRect_VerticalInsets(t *testing.T) {
	row := Rect{X: 0, Y: 100, Width: 320, Height: 60}

	tests := []struct {
		name     string
		visible  Rect
		expected Insets
	}{
		{"fully visible", Rect{X: 0, Y: 0, Width: 320, Height: 480}, Insets{}},
		{"clipped at top", Rect{X: 0, Y: 120, Width: 320, Height: 480}, Insets{Top: 20}},
		{"clipped at bottom", Rect{X: 0, Y: 0, Width: 320, Height: 150}, Insets{Bottom: 10}},
		{"offscreen", Rect{X: 0, Y: 500, Width: 320, Height: 100}, Insets{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := row.VerticalInsets(test.visible); got != test.expected {
				t.Errorf("VerticalInsets = %+v, expected %+v", got, test.expected)
			}
		})
	}
}

func TestRect_Accessors(t *testing.T) {
	r := NewRect(Point{X: 10, Y: 20}, Size{Width: 100, Height: 40})
	if r.MidX() != 60 || r.MaxX() != 110 || r.MidY() != 40 || r.MaxY() != 60 {
		t.Errorf("unexpected accessors for %+v", r)
	}
	if !r.Contains(Point{X: 10, Y: 20}) || r.Contains(Point{X: 110, Y: 30}) {
		t.Error("Contains should include min edges and exclude max edges")
	}
	if (Rect{Width: 0, Height: 5}).IsEmpty() != true {
		t.Error("zero width rect should be empty")
	}
}
