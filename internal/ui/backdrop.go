package ui

import (
	"image"
	"math/rand"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/nekotoki/nekotoki/internal/geometry"
	"github.com/nekotoki/nekotoki/internal/platform"
)

// Backdrop is the bottom layer of the overlay: a rounded translucent panel
// (or a cover-scaled background image) over a scattering of star dots. It is
// also the drag surface: it receives the pointer events the controls above
// it do not consume and forwards them to the geometry controller, so pressing
// a button can never start a drag or a resize.
type Backdrop struct {
	widget.BaseWidget

	controller *geometry.Controller
	host       WindowHost

	alpha      int // 0-255, opacity of the panel color or image
	source     image.Image
	hoverEdges geometry.EdgeSet
}

// NewBackdrop creates the backdrop bound to a geometry controller and the
// window host its rectangles are applied through.
func NewBackdrop(controller *geometry.Controller, host WindowHost) *Backdrop {
	b := &Backdrop{
		controller: controller,
		host:       host,
		alpha:      128,
	}
	b.ExtendBaseWidget(b)
	return b
}

// SetAlpha sets the panel/image opacity (0-255) and repaints.
func (b *Backdrop) SetAlpha(alpha int) {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 255 {
		alpha = 255
	}
	b.alpha = alpha
	b.Refresh()
}

// Alpha returns the current opacity (0-255).
func (b *Backdrop) Alpha() int {
	return b.alpha
}

// SetImage sets the background image, or restores the default panel when
// img is nil.
func (b *Backdrop) SetImage(img image.Image) {
	b.source = img
	b.Refresh()
}

// HasImage reports whether a background image is set.
func (b *Backdrop) HasImage() bool {
	return b.source != nil
}

// CreateRenderer builds the star field, panel, border and image layers.
func (b *Backdrop) CreateRenderer() fyne.WidgetRenderer {
	b.ExtendBaseWidget(b)

	bg := canvas.NewRectangle(ColorBackground)
	bg.CornerRadius = BorderRadius

	border := canvas.NewRectangle(nil)
	border.CornerRadius = BorderRadius
	border.StrokeColor = ColorBorder
	border.StrokeWidth = 2

	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillStretch
	img.Hidden = true

	stars := make([]*canvas.Circle, StarCount)
	objects := make([]fyne.CanvasObject, 0, StarCount+3)
	for i := range stars {
		stars[i] = canvas.NewCircle(ColorStar)
		objects = append(objects, stars[i])
	}
	// Stars first so they shine through the translucent panel.
	objects = append(objects, bg, img, border)

	r := &backdropRenderer{
		backdrop: b,
		bg:       bg,
		border:   border,
		img:      img,
		stars:    stars,
		objects:  objects,
	}
	r.applyAppearance()
	return r
}

// MouseDown starts a drag session: near a border it is a resize, anywhere
// else a move.
func (b *Backdrop) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	if b.controller.Active() {
		return
	}
	b.controller.BeginSession(eventPoint(ev.Position), b.host.Geometry())
}

// MouseUp ends the drag session. EndSession is idempotent, so a release
// after DragEnd already ran is harmless.
func (b *Backdrop) MouseUp(_ *desktop.MouseEvent) {
	b.controller.EndSession()
}

// Dragged applies the session's geometry for the new pointer position.
func (b *Backdrop) Dragged(ev *fyne.DragEvent) {
	if !b.controller.Active() {
		// The press landed on a sibling that ignored it; open the session
		// from the first drag event instead.
		b.controller.BeginSession(eventPoint(ev.Position), b.host.Geometry())
	}
	p := eventPoint(ev.Position)
	if b.controller.Resizing() {
		b.host.Apply(b.controller.UpdateResize(p))
	} else {
		b.host.Apply(b.controller.UpdateMove(p))
	}
}

// DragEnd ends the drag session.
func (b *Backdrop) DragEnd() {
	b.controller.EndSession()
}

// MouseIn tracks the hovered edge for the cursor shape.
func (b *Backdrop) MouseIn(ev *desktop.MouseEvent) {
	b.updateHover(ev.Position)
}

// MouseMoved tracks the hovered edge for the cursor shape.
func (b *Backdrop) MouseMoved(ev *desktop.MouseEvent) {
	if b.controller.Active() {
		return
	}
	b.updateHover(ev.Position)
}

// MouseOut clears the hover state.
func (b *Backdrop) MouseOut() {
	b.hoverEdges = 0
}

// Cursor implements desktop.Cursorable with the resize cursor matching the
// hovered edge.
func (b *Backdrop) Cursor() desktop.Cursor {
	return cursorForHint(geometry.CursorForEdge(b.hoverEdges))
}

func (b *Backdrop) updateHover(pos fyne.Position) {
	b.hoverEdges = b.controller.ClassifyEdge(eventPoint(pos), b.host.Geometry())
}

// cursorForHint maps the controller's toolkit-neutral hints onto the cursors
// Fyne actually ships. Fyne has no diagonal resize cursors, so corners show
// the crosshair.
func cursorForHint(hint geometry.CursorHint) desktop.Cursor {
	switch hint {
	case geometry.CursorResizeVertical:
		return desktop.VResizeCursor
	case geometry.CursorResizeHorizontal:
		return desktop.HResizeCursor
	case geometry.CursorResizeDiagonalNWSE, geometry.CursorResizeDiagonalNESW:
		return desktop.CrosshairCursor
	default:
		return desktop.DefaultCursor
	}
}

func eventPoint(pos fyne.Position) geometry.Point {
	return geometry.Point{X: int(pos.X), Y: int(pos.Y)}
}

type backdropRenderer struct {
	backdrop *Backdrop
	bg       *canvas.Rectangle
	border   *canvas.Rectangle
	img      *canvas.Image
	stars    []*canvas.Circle
	objects  []fyne.CanvasObject
	lastSize fyne.Size
}

func (r *backdropRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.border.Resize(size)
	r.img.Resize(size)

	if size != r.lastSize {
		r.lastSize = size
		r.scatterStars(size)
		r.rescaleImage(size)
	}
}

func (r *backdropRenderer) MinSize() fyne.Size {
	// The window's minimum is enforced by the geometry controller; the
	// backdrop itself never constrains layout.
	return fyne.NewSize(0, 0)
}

func (r *backdropRenderer) Refresh() {
	r.applyAppearance()
	r.rescaleImage(r.lastSize)
	r.bg.Refresh()
	r.border.Refresh()
	r.img.Refresh()
}

func (r *backdropRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *backdropRenderer) Destroy()                     {}

// applyAppearance switches between the image and the plain panel and applies
// the current opacity to whichever is showing.
func (r *backdropRenderer) applyAppearance() {
	alpha := r.backdrop.alpha
	if r.backdrop.source != nil {
		r.img.Hidden = false
		r.img.Translucency = 1 - float64(alpha)/255
		r.bg.Hidden = true
		r.border.Hidden = true
		return
	}

	r.img.Hidden = true
	fill := ColorBackground
	if alpha < 1 {
		alpha = 1 // keep the panel hit-testable even at "fully transparent"
	}
	fill.A = uint8(alpha)
	r.bg.FillColor = fill
	r.bg.Hidden = false
	r.border.Hidden = false
}

func (r *backdropRenderer) rescaleImage(size fyne.Size) {
	if r.backdrop.source == nil {
		r.img.Image = nil
		return
	}
	w, h := int(size.Width), int(size.Height)
	if w <= 0 || h <= 0 {
		return
	}
	r.img.Image = platform.CoverScale(r.backdrop.source, w, h)
	r.img.Refresh()
}

// scatterStars places the decorative dots at fresh random positions. The
// field regenerates on every resize so the dots never bunch up after the
// window shrinks.
func (r *backdropRenderer) scatterStars(size fyne.Size) {
	w, h := int(size.Width), int(size.Height)
	if w <= 1 || h <= 1 {
		return
	}
	for _, star := range r.stars {
		star.Resize(fyne.NewSize(StarRadius*2, StarRadius*2))
		star.Move(fyne.NewPos(
			float32(rand.Intn(w-1)),
			float32(rand.Intn(h-1)),
		))
	}
}
