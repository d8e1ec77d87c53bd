// Package core provides host-side primitives shared by the terminal and SSH
// front ends: runtime configuration, semantic input, and a rune screen
// buffer. It has no external dependencies (especially no Bubble Tea) so the
// pieces stay testable without a terminal.
package core

// Rect represents an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
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

// Wrap reduces val into [0, n), wrapping negative values around.
// Used for cursor movement on the toroidal board.
func Wrap(val, n int) int {
	if n <= 0 {
		return 0
	}
	return (val%n + n) % n
}
