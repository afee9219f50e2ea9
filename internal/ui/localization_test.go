package ui

import "testing"

func TestLocalizationDefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("default language = %q, want en", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyChangeImage); got != "Change Image" {
		t.Errorf("GetText(KeyChangeImage) = %q", got)
	}
}

func TestLocalizationSetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ja")
	if got := l.GetText(KeyAlpha); got != "透明度:" {
		t.Errorf("ja GetText(KeyAlpha) = %q", got)
	}

	// Unknown languages keep the current one.
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ja" {
		t.Errorf("language after unknown code = %q, want ja", l.GetCurrentLanguage())
	}

	// "system" resolves to a supported language.
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("language after system = %q, want en", l.GetCurrentLanguage())
	}
}

func TestLocalizationFallbacks(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ja")
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("missing key fell back to %q, want the key itself", got)
	}
}
