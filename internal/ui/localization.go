package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyAlpha           = "alpha"
	KeyChangeImage     = "change_image"
	KeyResetBackground = "reset_background"
	KeySelectImage     = "select_image"
	KeyImageLoadFailed = "image_load_failed"
	KeyToggleStopwatch = "toggle_stopwatch"
	KeyResetStopwatch  = "reset_stopwatch"
	KeyCloseApp        = "close_app"
	KeyBackgroundPanel = "background_panel"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the active language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "NekoToki",
		KeyAlpha:           "Alpha:",
		KeyChangeImage:     "Change Image",
		KeyResetBackground: "Reset BG",
		KeySelectImage:     "Select Background Image",
		KeyImageLoadFailed: "Could not load the selected image",
		KeyToggleStopwatch: "Start or pause the stopwatch",
		KeyResetStopwatch:  "Reset the stopwatch",
		KeyCloseApp:        "Close NekoToki",
		KeyBackgroundPanel: "Background controls",
	}

	l.texts["ja"] = map[string]string{
		KeyAppTitle:        "ネコトキ",
		KeyAlpha:           "透明度:",
		KeyChangeImage:     "画像を変更",
		KeyResetBackground: "背景をリセット",
		KeySelectImage:     "背景画像を選択",
		KeyImageLoadFailed: "選択した画像を読み込めませんでした",
		KeyToggleStopwatch: "ストップウォッチを開始・一時停止",
		KeyResetStopwatch:  "ストップウォッチをリセット",
		KeyCloseApp:        "ネコトキを閉じる",
		KeyBackgroundPanel: "背景設定",
	}
}
