package geometry

import "strings"

// Point is a pointer position. Pointer positions and rectangles handed to
// the controller must share one coordinate frame; which frame that is does
// not matter.
type Point struct {
	X, Y int
}

// Rect is a window rectangle. Right and Bottom are exclusive.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the exclusive right boundary coordinate.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the exclusive bottom boundary coordinate.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// EdgeSet is a bitmask of window edges under the pointer. A single edge
// means an edge drag, two adjacent edges mean a corner drag.
type EdgeSet uint8

const (
	EdgeTop EdgeSet = 1 << iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Has reports whether every edge in e2 is present in e.
func (e EdgeSet) Has(e2 EdgeSet) bool {
	return e&e2 == e2
}

// Empty reports whether no edge is set (interior position).
func (e EdgeSet) Empty() bool {
	return e == 0
}

// String returns the edge names joined by "+", or "none".
func (e EdgeSet) String() string {
	if e.Empty() {
		return "none"
	}
	var names []string
	if e.Has(EdgeTop) {
		names = append(names, "top")
	}
	if e.Has(EdgeBottom) {
		names = append(names, "bottom")
	}
	if e.Has(EdgeLeft) {
		names = append(names, "left")
	}
	if e.Has(EdgeRight) {
		names = append(names, "right")
	}
	return strings.Join(names, "+")
}

// CursorHint tells the UI layer which resize cursor to show for an edge set.
// It is toolkit-neutral; the UI maps hints to whatever cursors the driver
// actually has.
type CursorHint int

const (
	CursorDefault CursorHint = iota
	CursorResizeVertical
	CursorResizeHorizontal
	// CursorResizeDiagonalNWSE points from top-left to bottom-right.
	CursorResizeDiagonalNWSE
	// CursorResizeDiagonalNESW points from top-right to bottom-left.
	CursorResizeDiagonalNESW
)

// CursorForEdge returns the cursor hint for an edge set. Unknown
// combinations (e.g. opposing edges) fall back to the default cursor.
func CursorForEdge(e EdgeSet) CursorHint {
	switch e {
	case EdgeTop, EdgeBottom:
		return CursorResizeVertical
	case EdgeLeft, EdgeRight:
		return CursorResizeHorizontal
	case EdgeTop | EdgeLeft, EdgeBottom | EdgeRight:
		return CursorResizeDiagonalNWSE
	case EdgeTop | EdgeRight, EdgeBottom | EdgeLeft:
		return CursorResizeDiagonalNESW
	default:
		return CursorDefault
	}
}
