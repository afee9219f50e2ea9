package geometry

import "math"

type sessionMode int

const (
	modeIdle sessionMode = iota
	modeMoving
	modeResizing
)

// Controller translates pointer events plus the window rectangle captured at
// pointer-down into new window rectangles. It holds no state beyond the
// current drag session, which lives from BeginSession to EndSession.
//
// All updates are computed against the anchor rectangle stored at
// pointer-down, so event handlers never feed a rectangle back into the
// session they are driving.
type Controller struct {
	// MinWidth and MinHeight are the hard floor on window dimensions.
	MinWidth  int
	MinHeight int
	// Margin is the pixel distance from an edge within which the pointer
	// counts as being on that edge.
	Margin int

	aspect float64 // width/height; 0 when unlocked

	mode          sessionMode
	edges         EdgeSet
	anchorPointer Point
	anchorRect    Rect
}

// NewController creates a controller with the given minimum size and edge
// detection margin.
func NewController(minWidth, minHeight, margin int) *Controller {
	return &Controller{
		MinWidth:  minWidth,
		MinHeight: minHeight,
		Margin:    margin,
	}
}

// LockAspectRatio constrains subsequent resizes to the given width/height
// ratio. A ratio <= 0 unlocks.
func (c *Controller) LockAspectRatio(ratio float64) {
	if ratio <= 0 {
		c.aspect = 0
		return
	}
	c.aspect = ratio
}

// UnlockAspectRatio removes the aspect ratio constraint.
func (c *Controller) UnlockAspectRatio() {
	c.aspect = 0
}

// AspectLocked reports whether resizes are currently ratio-constrained.
func (c *Controller) AspectLocked() bool {
	return c.aspect > 0
}

// Active reports whether a drag session is in progress.
func (c *Controller) Active() bool {
	return c.mode != modeIdle
}

// Resizing reports whether the current session is a resize drag.
func (c *Controller) Resizing() bool {
	return c.mode == modeResizing
}

// Moving reports whether the current session is a move drag.
func (c *Controller) Moving() bool {
	return c.mode == modeMoving
}

// Edges returns the edge set of the current resize session, empty otherwise.
func (c *Controller) Edges() EdgeSet {
	return c.edges
}

// ClassifyEdge returns the edges of rect whose boundary lies within Margin
// of p. Two adjacent edges together identify a corner; an empty set means
// the pointer is over the interior (a move, not a resize). Callers must not
// ask about positions over interactive controls; with Fyne that exclusion
// falls out of widget hit-testing, since controls consume their own events.
func (c *Controller) ClassifyEdge(p Point, rect Rect) EdgeSet {
	var edges EdgeSet
	if abs(p.Y-rect.Y) < c.Margin {
		edges |= EdgeTop
	}
	if abs(p.Y-rect.Bottom()) < c.Margin {
		edges |= EdgeBottom
	}
	if abs(p.X-rect.X) < c.Margin {
		edges |= EdgeLeft
	}
	if abs(p.X-rect.Right()) < c.Margin {
		edges |= EdgeRight
	}
	return edges
}

// BeginSession starts a drag session at pointer-down. The pointer near an
// edge starts a resize, anywhere else a move. Starting a session while one
// is active is a programmer error and panics rather than silently losing
// the first session's anchors.
func (c *Controller) BeginSession(p Point, rect Rect) {
	if c.mode != modeIdle {
		panic("geometry: BeginSession called while a drag session is active")
	}
	c.anchorPointer = p
	c.anchorRect = rect
	c.edges = c.ClassifyEdge(p, rect)
	if c.edges.Empty() {
		c.mode = modeMoving
	} else {
		c.mode = modeResizing
	}
}

// UpdateMove returns the window rectangle for the current pointer position
// of a move session: the anchor origin shifted by the pointer delta, size
// unchanged. Off-screen positions are allowed.
func (c *Controller) UpdateMove(p Point) Rect {
	if c.mode != modeMoving {
		panic("geometry: UpdateMove called outside a move session")
	}
	r := c.anchorRect
	r.X += p.X - c.anchorPointer.X
	r.Y += p.Y - c.anchorPointer.Y
	return r
}

// UpdateResize returns the window rectangle for the current pointer position
// of a resize session. Dragged edges follow the pointer; the opposite edges
// stay anchored. Width and height never go below the minimums: the moving
// boundary is clamped, the fixed one never shifts. With an aspect lock the
// dragged dimension is computed first and the other derived from the ratio.
func (c *Controller) UpdateResize(p Point) Rect {
	if c.mode != modeResizing {
		panic("geometry: UpdateResize called outside a resize session")
	}
	if c.aspect > 0 {
		return c.resizeLocked(p)
	}
	return c.resizeFree(p)
}

func (c *Controller) resizeFree(p Point) Rect {
	r := c.anchorRect
	if c.edges.Has(EdgeTop) {
		h := c.anchorRect.Bottom() - p.Y
		if h < c.MinHeight {
			h = c.MinHeight
		}
		r.Y = c.anchorRect.Bottom() - h
		r.Height = h
	}
	if c.edges.Has(EdgeBottom) {
		h := p.Y - c.anchorRect.Y
		if h < c.MinHeight {
			h = c.MinHeight
		}
		r.Height = h
	}
	if c.edges.Has(EdgeLeft) {
		w := c.anchorRect.Right() - p.X
		if w < c.MinWidth {
			w = c.MinWidth
		}
		r.X = c.anchorRect.Right() - w
		r.Width = w
	}
	if c.edges.Has(EdgeRight) {
		w := p.X - c.anchorRect.X
		if w < c.MinWidth {
			w = c.MinWidth
		}
		r.Width = w
	}
	return r
}

// resizeLocked resizes while preserving the locked width/height ratio.
// Vertical edges and corners drive height first; pure horizontal drags
// drive width first. The derived dimension rounds up so it cannot truncate
// below its minimum, then the driving dimension is recomputed from the
// clamped result. The relationship is linear, so the second pass is exact.
func (c *Controller) resizeLocked(p Point) Rect {
	var w, h int
	if c.edges.Has(EdgeTop) || c.edges.Has(EdgeBottom) {
		if c.edges.Has(EdgeTop) {
			h = c.anchorRect.Bottom() - p.Y
		} else {
			h = p.Y - c.anchorRect.Y
		}
		h = maxInt(h, c.MinHeight)
		w = maxInt(ceilMul(h, c.aspect), c.MinWidth)
		h = maxInt(ceilDiv(w, c.aspect), c.MinHeight)
	} else {
		if c.edges.Has(EdgeLeft) {
			w = c.anchorRect.Right() - p.X
		} else {
			w = p.X - c.anchorRect.X
		}
		w = maxInt(w, c.MinWidth)
		h = maxInt(ceilDiv(w, c.aspect), c.MinHeight)
		w = maxInt(ceilMul(h, c.aspect), c.MinWidth)
	}

	r := Rect{X: c.anchorRect.X, Y: c.anchorRect.Y, Width: w, Height: h}
	// The corner diagonally opposite the drag stays fixed. A lone top or
	// left edge drag anchors the bottom-right corner, so the derived
	// dimension grows toward the top-left like the matching corner drag.
	if c.edges.Has(EdgeLeft) || c.edges == EdgeTop {
		r.X = c.anchorRect.Right() - w
	}
	if c.edges.Has(EdgeTop) || c.edges == EdgeLeft {
		r.Y = c.anchorRect.Bottom() - h
	}
	return r
}

// EndSession discards the current drag session. Calling it with no active
// session is a no-op, so pointer-up handlers need not track state.
func (c *Controller) EndSession() {
	c.mode = modeIdle
	c.edges = 0
	c.anchorPointer = Point{}
	c.anchorRect = Rect{}
}

func ceilMul(h int, aspect float64) int {
	return int(math.Ceil(float64(h) * aspect))
}

func ceilDiv(w int, aspect float64) int {
	return int(math.Ceil(float64(w) / aspect))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
