package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyWindowWidth     = "window_width"
	KeyWindowHeight    = "window_height"
	KeyBackgroundImage = "background_image"
	KeyBackgroundAlpha = "background_alpha"
	KeyLanguage        = "app_language"
)

// Default values
const (
	DefaultWindowWidth  = 200
	DefaultWindowHeight = 100

	// MinWindowWidth and MinWindowHeight are the hard floor on the window
	// size, enforced both here and by the resize controller.
	MinWindowWidth  = 150
	MinWindowHeight = 80

	// DefaultBackgroundAlpha applies to the plain color background;
	// DefaultImageAlpha applies whenever an image is set.
	DefaultBackgroundAlpha = 120
	DefaultImageAlpha      = 150

	DefaultLanguage = "system"
)

// Settings manages application configuration persisted via Fyne preferences.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager.
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetWindowSize returns the persisted window size, clamped to the minimum.
func (s *Settings) GetWindowSize() (width, height int) {
	width = s.app.Preferences().IntWithFallback(KeyWindowWidth, DefaultWindowWidth)
	height = s.app.Preferences().IntWithFallback(KeyWindowHeight, DefaultWindowHeight)
	if width < MinWindowWidth {
		width = MinWindowWidth
	}
	if height < MinWindowHeight {
		height = MinWindowHeight
	}
	return width, height
}

// SetWindowSize persists the window size, clamped to the minimum.
func (s *Settings) SetWindowSize(width, height int) {
	if width < MinWindowWidth {
		width = MinWindowWidth
	}
	if height < MinWindowHeight {
		height = MinWindowHeight
	}
	s.app.Preferences().SetInt(KeyWindowWidth, width)
	s.app.Preferences().SetInt(KeyWindowHeight, height)
}

// GetBackgroundImage returns the persisted background image path, empty when
// the default background is in use.
func (s *Settings) GetBackgroundImage() string {
	return s.app.Preferences().String(KeyBackgroundImage)
}

// SetBackgroundImage persists the background image path. An empty path means
// the default background.
func (s *Settings) SetBackgroundImage(path string) {
	s.app.Preferences().SetString(KeyBackgroundImage, path)
}

// GetBackgroundAlpha returns the persisted background opacity (0-255).
func (s *Settings) GetBackgroundAlpha() int {
	alpha := s.app.Preferences().IntWithFallback(KeyBackgroundAlpha, DefaultBackgroundAlpha)
	return clampAlpha(alpha)
}

// SetBackgroundAlpha persists the background opacity, clamped to 0-255.
func (s *Settings) SetBackgroundAlpha(alpha int) {
	s.app.Preferences().SetInt(KeyBackgroundAlpha, clampAlpha(alpha))
}

// GetLanguage returns the configured language.
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language.
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options.
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ja":     "日本語",
	}
}

func clampAlpha(alpha int) int {
	if alpha < 0 {
		return 0
	}
	if alpha > 255 {
		return 255
	}
	return alpha
}
