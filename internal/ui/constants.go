package ui

import "image/color"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconPlay          = "▶"
	IconPause         = "⏸"
	IconReset         = "⟲"
	IconAddBackground = "+"
	IconClose         = "✕"
)

// Geometry
const (
	// BorderMargin is the pixel distance from the window border within
	// which a press starts a resize instead of a move.
	BorderMargin = 5

	// BorderRadius rounds the backdrop corners.
	BorderRadius float32 = 15

	// StarCount is how many decorative dots the backdrop scatters.
	StarCount = 50

	StarRadius float32 = 1
)

// Text sizing
const (
	TimeTextSize   float32 = 24
	CentisTextSize float32 = 14
	SmallTextSize  float32 = 10
)

// Palette. Alphas on the backdrop colors are applied at paint time from the
// opacity slider; these are the base hues.
var (
	ColorBackground = color.NRGBA{R: 146, G: 149, B: 196, A: 255}
	ColorBorder     = color.NRGBA{R: 235, G: 226, B: 155, A: 100}
	ColorText       = color.NRGBA{R: 235, G: 226, B: 155, A: 220}
	ColorStar       = color.NRGBA{R: 255, G: 255, B: 255, A: 200}

	// Play button colors per run state
	ColorButtonIdle    = color.NRGBA{R: 235, G: 226, B: 155, A: 140}
	ColorButtonRunning = color.NRGBA{R: 220, G: 150, B: 150, A: 140}
	ColorButtonReset   = color.NRGBA{R: 176, G: 179, B: 226, A: 140}
	ColorButtonText    = color.NRGBA{R: 146, G: 149, B: 196, A: 220}
	ColorResetText     = color.NRGBA{R: 235, G: 226, B: 155, A: 220}
)
