package pxl

import "fmt"

// Point is an integer pixel position.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Rect is an integer rectangle with inclusive edges: the pixels on
// Right and Bottom belong to the rectangle, so Width is Right-Left+1.
type Rect struct {
	Left, Top, Right, Bottom int
}

// EmptyRect is the distinguished empty rectangle. Clamping helpers return
// it whenever a result has no pixels.
var EmptyRect = Rect{Left: 0, Top: 0, Right: -1, Bottom: -1}

// R creates a Rect from its four inclusive edges.
func R(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// RectWH creates a Rect from its top-left corner and size.
// A non-positive size yields EmptyRect.
func RectWH(x, y, width, height int) Rect {
	if width <= 0 || height <= 0 {
		return EmptyRect
	}
	return Rect{Left: x, Top: y, Right: x + width - 1, Bottom: y + height - 1}
}

// Width returns Right-Left+1.
func (r Rect) Width() int {
	return r.Right - r.Left + 1
}

// Height returns Bottom-Top+1.
func (r Rect) Height() int {
	return r.Bottom - r.Top + 1
}

// Empty reports whether r has no pixels.
func (r Rect) Empty() bool {
	return r.Right < r.Left || r.Bottom < r.Top
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// In reports whether every pixel of r lies inside s. An empty r is in any s.
func (r Rect) In(s Rect) bool {
	if r.Empty() {
		return true
	}
	return r.Left >= s.Left && r.Right <= s.Right && r.Top >= s.Top && r.Bottom <= s.Bottom
}

// Overlaps reports whether r and s share at least one pixel.
func (r Rect) Overlaps(s Rect) bool {
	if r.Empty() || s.Empty() {
		return false
	}
	return r.Left <= s.Right && s.Left <= r.Right && r.Top <= s.Bottom && s.Top <= r.Bottom
}

// Inset moves every edge of r inwards by d (outwards for negative d).
// The result is EmptyRect if nothing remains.
func (r Rect) Inset(d int) Rect {
	out := Rect{Left: r.Left + d, Top: r.Top + d, Right: r.Right - d, Bottom: r.Bottom - d}
	if out.Empty() {
		return EmptyRect
	}
	return out
}

// Center returns (Left+Width/2, Top+Height/2).
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width()/2, Y: r.Top + r.Height()/2}
}

// String returns "(left,top)-(right,bottom)".
func (r Rect) String() string {
	if r.Empty() {
		return "(empty)"
	}
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// clampTo clamps r coordinate-wise into limit.
func clampTo(r, limit Rect) Rect {
	if limit.Empty() {
		return EmptyRect
	}
	out := Rect{
		Left:   max(r.Left, limit.Left),
		Top:    max(r.Top, limit.Top),
		Right:  min(r.Right, limit.Right),
		Bottom: min(r.Bottom, limit.Bottom),
	}
	if out.Empty() {
		return EmptyRect
	}
	return out
}
