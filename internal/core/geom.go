// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

// Bounds is the playable canvas area. The origin is the top-left corner.
type Bounds struct {
	W, H float64
}

// Valid reports whether both dimensions are positive.
func (b Bounds) Valid() bool {
	return b.W > 0 && b.H > 0
}

// Rect represents an axis-aligned bounding box in canvas units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.X
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps or touches another.
// Shared edges count as a collision, so a rect resting exactly on another's
// top edge is reported.
func (r Rect) Intersects(other Rect) bool {
	return r.Right() >= other.Left() &&
		r.Left() <= other.Right() &&
		r.Bottom() >= other.Top() &&
		r.Top() <= other.Bottom()
}

// ClampToBounds returns a copy of r moved so that it lies inside b.
// Edges are corrected independently in the order bottom, top, right, left,
// so a rect larger than the bounds ends up pinned to the top-left.
func (r Rect) ClampToBounds(b Bounds) Rect {
	if r.Bottom() > b.H {
		r.Y = b.H - r.H
	}
	if r.Y < 0 {
		r.Y = 0
	}
	if r.Right() > b.W {
		r.X = b.W - r.W
	}
	if r.X < 0 {
		r.X = 0
	}
	return r
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
