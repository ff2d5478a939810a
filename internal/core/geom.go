// Package core provides fundamental types and utilities for the brawler.
// It contains no external dependencies (especially no Bubble Tea or Ebitengine)
// to keep simulation logic pure and testable.
package core

// Rect is an axis-aligned box in world pixels. A rect with zero or
// negative width or height is empty and never intersects anything;
// inactive attack hitboxes rely on this.
type Rect struct {
	X, Y int
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports overlap by a non-zero area. Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	if r.IsEmpty() || other.IsEmpty() {
		return false
	}
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Center returns the center point, rounded toward the top-left.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Beside returns a w×h box flush against the left or right edge of r,
// centered vertically on it. Weapon hitboxes are built this way.
func (r Rect) Beside(left bool, w, h int) Rect {
	y := r.Y + (r.H-h)/2
	if left {
		return NewRect(r.X-w, y, w, h)
	}
	return NewRect(r.Right(), y, w, h)
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
