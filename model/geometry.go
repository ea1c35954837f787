package model

import (
	"math"
	"strconv"
)

// Tolerance absorbs sub-pixel rounding in every geometric comparison.
const Tolerance = 0.1

// Rect is an axis-aligned frame in screen coordinates.
type Rect struct {
	X      float64 `yaml:"x"      json:"x"`
	Y      float64 `yaml:"y"      json:"y"`
	Width  float64 `yaml:"width"  json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.Height }

// IsEmpty reports whether the rect has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersects reports whether two rects share a region of positive area.
// Rects that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.MaxX() && r.MaxX() > o.X && r.Y < o.MaxY() && r.MaxY() > o.Y
}

// Expand grows the rect by pad on every side.
func (r Rect) Expand(pad float64) Rect {
	return Rect{
		X:      r.X - pad,
		Y:      r.Y - pad,
		Width:  r.Width + pad*2,
		Height: r.Height + pad*2,
	}
}

// Normalize clamps negative sizes to zero.
func (r Rect) Normalize() Rect {
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}

// ApproxEqual compares two values within Tolerance.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance
}

// AtLeast reports whether v reaches minimum, allowing for Tolerance.
func AtLeast(v, minimum float64) bool {
	return v-minimum >= -Tolerance
}

// FormatNumber prints a coordinate without trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
