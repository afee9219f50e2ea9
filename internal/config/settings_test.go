package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestWindowSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	w, h := settings.GetWindowSize()
	if w != DefaultWindowWidth || h != DefaultWindowHeight {
		t.Errorf("Expected default size %dx%d, got %dx%d", DefaultWindowWidth, DefaultWindowHeight, w, h)
	}

	// Test setting custom value
	settings.SetWindowSize(320, 160)
	w, h = settings.GetWindowSize()
	if w != 320 || h != 160 {
		t.Errorf("Expected size 320x160, got %dx%d", w, h)
	}

	// Test boundary values: sizes below the floor are clamped
	settings.SetWindowSize(10, 10)
	w, h = settings.GetWindowSize()
	if w != MinWindowWidth || h != MinWindowHeight {
		t.Errorf("Expected clamped size %dx%d, got %dx%d", MinWindowWidth, MinWindowHeight, w, h)
	}
}

func TestBackgroundImage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Default is no image
	if path := settings.GetBackgroundImage(); path != "" {
		t.Errorf("Expected no default background image, got %q", path)
	}

	settings.SetBackgroundImage("/pictures/cat.png")
	if path := settings.GetBackgroundImage(); path != "/pictures/cat.png" {
		t.Errorf("Expected background image '/pictures/cat.png', got %q", path)
	}

	// Clearing back to the default background
	settings.SetBackgroundImage("")
	if path := settings.GetBackgroundImage(); path != "" {
		t.Errorf("Expected cleared background image, got %q", path)
	}
}

func TestBackgroundAlpha(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if alpha := settings.GetBackgroundAlpha(); alpha != DefaultBackgroundAlpha {
		t.Errorf("Expected default alpha %d, got %d", DefaultBackgroundAlpha, alpha)
	}

	settings.SetBackgroundAlpha(200)
	if alpha := settings.GetBackgroundAlpha(); alpha != 200 {
		t.Errorf("Expected alpha 200, got %d", alpha)
	}

	// Test boundary values
	settings.SetBackgroundAlpha(-5) // Should be clamped to 0
	if settings.GetBackgroundAlpha() != 0 {
		t.Error("Alpha should be clamped to minimum 0")
	}

	settings.SetBackgroundAlpha(999) // Should be clamped to 255
	if settings.GetBackgroundAlpha() != 255 {
		t.Error("Alpha should be clamped to maximum 255")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ja")
	if lang := settings.GetLanguage(); lang != "ja" {
		t.Errorf("Expected language 'ja', got %s", lang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ja"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
