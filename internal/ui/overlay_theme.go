package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// OverlayTheme defines the translucent overlay look: a fully transparent
// window background (the Backdrop paints its own), compact sizes, and the
// cream-on-lavender palette.
type OverlayTheme struct{}

// NewOverlayTheme creates the overlay theme.
func NewOverlayTheme() fyne.Theme {
	return &OverlayTheme{}
}

// Color returns theme colors
func (t *OverlayTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		// The window itself stays transparent; the Backdrop widget draws
		// the translucent rounded panel.
		return color.NRGBA{}
	case theme.ColorNameForeground:
		return ColorText
	case theme.ColorNameButton:
		return color.NRGBA{R: 235, G: 226, B: 155, A: 140}
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 176, G: 179, B: 226, A: 255}
	case theme.ColorNameInputBackground:
		return color.NRGBA{R: 255, G: 255, B: 255, A: 40}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *OverlayTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *OverlayTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes, compacted so the widget stays small.
func (t *OverlayTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 5
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return SmallTextSize
	case theme.SizeNameInputRadius:
		return 4
	case theme.SizeNameScrollBar:
		return 10
	}

	return theme.DefaultTheme().Size(name)
}
