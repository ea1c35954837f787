package model

import "testing"

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"touching edge", Rect{X: 10, Y: 0, Width: 10, Height: 10}, false},
		{"touching corner", Rect{X: 10, Y: 10, Width: 5, Height: 5}, false},
		{"apart", Rect{X: 20, Y: 20, Width: 5, Height: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("Intersects is not symmetric for %+v", tt.other)
			}
		})
	}
}

func TestRectExpand(t *testing.T) {
	got := Rect{X: 10, Y: 20, Width: 30, Height: 40}.Expand(8)
	want := Rect{X: 2, Y: 12, Width: 46, Height: 56}
	if got != want {
		t.Errorf("Expand = %+v, want %+v", got, want)
	}
	if got.MaxX() != 48 || got.MaxY() != 68 {
		t.Errorf("unexpected edges: %v, %v", got.MaxX(), got.MaxY())
	}
}

func TestRectNormalize(t *testing.T) {
	r := Rect{X: 1, Y: 1, Width: -5, Height: 3}.Normalize()
	if r.Width != 0 || r.Height != 3 {
		t.Errorf("Normalize = %+v", r)
	}
	if !r.IsEmpty() {
		t.Error("zero-width rect should be empty")
	}
}

func TestTolerance(t *testing.T) {
	if !ApproxEqual(10, 10.05) || ApproxEqual(10, 10.2) {
		t.Error("ApproxEqual does not honour Tolerance")
	}
	if !AtLeast(44, 44) || !AtLeast(43.95, 44) || AtLeast(43.8, 44) {
		t.Error("AtLeast does not honour Tolerance")
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[float64]string{44: "44", 12.5: "12.5", 0: "0", -3.25: "-3.25"}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
