package ui

import (
	"fyne.io/fyne/v2"

	"github.com/nekotoki/nekotoki/internal/geometry"
)

// WindowHost applies the geometry controller's rectangles to the real
// window and reports the rectangle pointer events should be classified
// against. It keeps the Backdrop testable without a live window.
type WindowHost interface {
	Geometry() geometry.Rect
	Apply(geometry.Rect)
}

type fyneWindowHost struct {
	win fyne.Window
}

// NewWindowHost wraps a Fyne window as a WindowHost.
func NewWindowHost(win fyne.Window) WindowHost {
	return &fyneWindowHost{win: win}
}

// Geometry returns the window rectangle in canvas coordinates, origin at
// (0,0), the same frame pointer events arrive in.
func (h *fyneWindowHost) Geometry() geometry.Rect {
	size := h.win.Canvas().Size()
	return geometry.Rect{Width: int(size.Width), Height: int(size.Height)}
}

// Apply resizes the window to the rectangle. Fyne has no API to reposition
// a window, so the origin is dropped: move drags and the anchored-corner
// placement of top/left resizes apply size only. The controller math stays
// consistent because Geometry always reports the origin at (0,0).
func (h *fyneWindowHost) Apply(r geometry.Rect) {
	h.win.Resize(fyne.NewSize(float32(r.Width), float32(r.Height)))
}
