package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// StyledButton is a button with custom background and text colors. The play
// button restyles itself through SetColors when the run state flips.
type StyledButton struct {
	widget.Button
	bgColor  color.Color
	txtColor color.Color
}

// NewStyledButton creates a button with custom colors.
func NewStyledButton(label string, tapped func(), bgColor, txtColor color.Color) *StyledButton {
	btn := &StyledButton{
		bgColor:  bgColor,
		txtColor: txtColor,
	}
	btn.Text = label
	btn.OnTapped = tapped
	btn.ExtendBaseWidget(btn)
	return btn
}

// SetColors swaps the button colors and repaints.
func (b *StyledButton) SetColors(bgColor, txtColor color.Color) {
	b.bgColor = bgColor
	b.txtColor = txtColor
	b.Refresh()
}

// CreateRenderer returns a custom renderer.
func (b *StyledButton) CreateRenderer() fyne.WidgetRenderer {
	b.ExtendBaseWidget(b)

	bg := canvas.NewRectangle(b.bgColor)
	bg.CornerRadius = theme.InputRadiusSize()

	label := canvas.NewText(b.Text, b.txtColor)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}

	return &styledBtnRenderer{
		btn:     b,
		bg:      bg,
		label:   label,
		objects: []fyne.CanvasObject{bg, label},
	}
}

type styledBtnRenderer struct {
	btn     *StyledButton
	bg      *canvas.Rectangle
	label   *canvas.Text
	objects []fyne.CanvasObject
}

func (r *styledBtnRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	labelMin := r.label.MinSize()
	r.label.Move(fyne.NewPos(
		(size.Width-labelMin.Width)/2,
		(size.Height-labelMin.Height)/2,
	))
	r.label.Resize(labelMin)
}

func (r *styledBtnRenderer) MinSize() fyne.Size {
	labelMin := r.label.MinSize()
	pad := theme.InnerPadding()
	return fyne.NewSize(labelMin.Width+pad*4, labelMin.Height+pad*2)
}

func (r *styledBtnRenderer) Refresh() {
	r.label.Text = r.btn.Text

	if r.btn.Disabled() {
		r.bg.FillColor = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
		r.label.Color = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	} else {
		r.bg.FillColor = r.btn.bgColor
		r.label.Color = r.btn.txtColor
	}

	r.bg.Refresh()
	r.label.Refresh()
}

func (r *styledBtnRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *styledBtnRenderer) Destroy()                     {}

// MultiTapButton is a StyledButton that additionally reacts to double taps.
// The background controls button uses it: single tap toggles the panel,
// double tap opens the image picker directly.
type MultiTapButton struct {
	StyledButton
	OnDoubleTapped func()
}

// NewMultiTapButton creates a double-tappable styled button.
func NewMultiTapButton(label string, tapped, doubleTapped func(), bgColor, txtColor color.Color) *MultiTapButton {
	btn := &MultiTapButton{OnDoubleTapped: doubleTapped}
	btn.bgColor = bgColor
	btn.txtColor = txtColor
	btn.Text = label
	btn.OnTapped = tapped
	btn.ExtendBaseWidget(btn)
	return btn
}

// DoubleTapped implements fyne.DoubleTappable.
func (b *MultiTapButton) DoubleTapped(_ *fyne.PointEvent) {
	if b.OnDoubleTapped != nil {
		b.OnDoubleTapped()
	}
}
