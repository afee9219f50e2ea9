package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// setupShortcuts registers the stopwatch keyboard shortcuts on the window
// canvas: Alt+Plus toggles, Alt+Minus pauses, Alt+0 resets. Alt keeps them
// off the characters a user might type into a future entry field.
func (ui *RootUI) setupShortcuts() {
	shortcuts := map[fyne.KeyName]func(){
		fyne.KeyPlus:  ui.core.Toggle,
		fyne.KeyMinus: ui.core.Pause,
		fyne.Key0:     ui.core.Reset,
	}

	for key, action := range shortcuts {
		action := action
		ui.window.Canvas().AddShortcut(&desktop.CustomShortcut{
			KeyName:  key,
			Modifier: fyne.KeyModifierAlt,
		}, func(_ fyne.Shortcut) {
			action()
		})
	}
}
