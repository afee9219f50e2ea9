package ui

import (
	"fmt"
	"image"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/nekotoki/nekotoki/internal/config"
	"github.com/nekotoki/nekotoki/internal/geometry"
	"github.com/nekotoki/nekotoki/internal/platform"
	"github.com/nekotoki/nekotoki/internal/stopwatch"
)

// RootUI represents the main UI structure: the backdrop, the time display,
// the stopwatch controls and the hidden background controls row.
type RootUI struct {
	window fyne.Window
	app    fyne.App

	core       *stopwatch.Core
	controller *geometry.Controller
	host       WindowHost

	settings     *config.Settings
	localization *Localization

	backdrop   *Backdrop
	timeText   *canvas.Text
	centisText *canvas.Text

	playBtn  *StyledButton
	resetBtn *StyledButton

	controlsRow *fyne.Container
	alphaSlider *widget.Slider
}

// NewRootUI creates and initializes the main UI.
func NewRootUI(window fyne.Window, app fyne.App, core *stopwatch.Core) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	host := NewWindowHost(window)
	controller := geometry.NewController(config.MinWindowWidth, config.MinWindowHeight, BorderMargin)

	ui := &RootUI{
		window:       window,
		app:          app,
		core:         core,
		controller:   controller,
		host:         host,
		settings:     settings,
		localization: localization,
	}

	ui.backdrop = NewBackdrop(controller, host)
	ui.buildTimeDisplay()
	ui.buildControls()
	ui.assemble()
	ui.bindCore()
	ui.setupShortcuts()
	ui.restorePersistedBackground()

	window.SetCloseIntercept(ui.saveAndClose)

	return ui
}

func (ui *RootUI) buildTimeDisplay() {
	ui.timeText = canvas.NewText("00:00:00", ColorText)
	ui.timeText.TextSize = TimeTextSize
	ui.timeText.TextStyle = fyne.TextStyle{Bold: true}

	ui.centisText = canvas.NewText(".00", ColorText)
	ui.centisText.TextSize = CentisTextSize
	ui.centisText.TextStyle = fyne.TextStyle{Bold: true}
}

func (ui *RootUI) buildControls() {
	ui.playBtn = NewStyledButton(IconPlay, ui.core.Toggle, ColorButtonIdle, ColorButtonText)
	ui.resetBtn = NewStyledButton(IconReset, ui.core.Reset, ColorButtonReset, ColorResetText)

	ui.alphaSlider = widget.NewSlider(0, 255)
	ui.alphaSlider.Step = 1
	ui.alphaSlider.OnChanged = func(value float64) {
		ui.backdrop.SetAlpha(int(value))
		ui.settings.SetBackgroundAlpha(int(value))
	}

	alphaLabel := canvas.NewText(ui.localization.GetText(KeyAlpha), ColorText)
	alphaLabel.TextSize = SmallTextSize

	changeBtn := widget.NewButton(ui.localization.GetText(KeyChangeImage), ui.selectBackgroundImage)
	resetBGBtn := widget.NewButton(ui.localization.GetText(KeyResetBackground), ui.resetBackground)

	ui.controlsRow = container.NewBorder(
		nil, nil,
		alphaLabel,
		container.NewHBox(changeBtn, resetBGBtn),
		ui.alphaSlider,
	)
	ui.controlsRow.Hide()
}

func (ui *RootUI) assemble() {
	addBGBtn := NewMultiTapButton(
		IconAddBackground,
		ui.toggleBackgroundControls,
		ui.selectBackgroundImage,
		ColorButtonIdle, ColorButtonText,
	)
	closeBtn := NewStyledButton(IconClose, ui.saveAndClose, ColorButtonReset, ColorResetText)

	topBar := container.NewBorder(nil, nil, addBGBtn, closeBtn)

	timeRow := container.NewHBox(
		layout.NewSpacer(),
		ui.timeText,
		ui.centisText,
		layout.NewSpacer(),
	)

	buttonsRow := container.NewGridWithColumns(2, ui.playBtn, ui.resetBtn)

	content := container.NewVBox(
		topBar,
		ui.controlsRow,
		timeRow,
		buttonsRow,
	)

	ui.window.SetPadded(false)
	ui.window.SetContent(container.NewStack(
		ui.backdrop,
		container.NewPadded(content),
	))
}

// bindCore subscribes the display to the stopwatch. The callbacks arrive
// from the ticker goroutine, so the UI work is marshalled via fyne.Do.
func (ui *RootUI) bindCore() {
	ui.core.SetOnTime(func(clock, centis string) {
		fyne.Do(func() {
			ui.timeText.Text = clock
			ui.centisText.Text = centis
			ui.timeText.Refresh()
			ui.centisText.Refresh()
		})
	})

	ui.core.SetOnRunning(func(running bool) {
		fyne.Do(func() {
			ui.updatePlayButton(running)
		})
	})
}

func (ui *RootUI) updatePlayButton(running bool) {
	if running {
		ui.playBtn.Text = IconPause
		ui.playBtn.SetColors(ColorButtonRunning, ColorButtonText)
	} else {
		ui.playBtn.Text = IconPlay
		ui.playBtn.SetColors(ColorButtonIdle, ColorButtonText)
	}
}

func (ui *RootUI) toggleBackgroundControls() {
	if ui.controlsRow.Visible() {
		ui.controlsRow.Hide()
		// Hiding the panel drops a lock left behind by an image selection.
		if ui.controller.AspectLocked() {
			ui.controller.UnlockAspectRatio()
		}
		return
	}
	ui.alphaSlider.SetValue(float64(ui.backdrop.Alpha()))
	ui.controlsRow.Show()
}

func (ui *RootUI) selectBackgroundImage() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		img, loadErr := platform.LoadImage(path)
		if loadErr != nil {
			dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyImageLoadFailed), loadErr), ui.window)
			return
		}
		ui.applyBackgroundImage(img, path)
	}, ui.window)
	fd.SetFilter(storage.NewExtensionFileFilter(platform.SupportedImageExtensions))
	fd.Show()
}

func (ui *RootUI) applyBackgroundImage(img image.Image, path string) {
	ui.backdrop.SetImage(img)
	ui.backdrop.SetAlpha(config.DefaultImageAlpha)
	ui.alphaSlider.SetValue(config.DefaultImageAlpha)

	// The image's natural shape drives the resize lock from here on.
	if ratio := platform.AspectRatio(img); ratio > 0 {
		ui.controller.LockAspectRatio(ratio)
	} else {
		ui.controller.UnlockAspectRatio()
	}

	ui.settings.SetBackgroundImage(path)
}

func (ui *RootUI) resetBackground() {
	ui.backdrop.SetImage(nil)
	ui.backdrop.SetAlpha(config.DefaultBackgroundAlpha)
	ui.alphaSlider.SetValue(config.DefaultBackgroundAlpha)
	ui.controlsRow.Hide()
	ui.controller.UnlockAspectRatio()
	ui.settings.SetBackgroundImage("")
}

// restorePersistedBackground reapplies the image and opacity from the last
// session. A vanished or unreadable image falls back to the default panel.
func (ui *RootUI) restorePersistedBackground() {
	alpha := ui.settings.GetBackgroundAlpha()
	ui.backdrop.SetAlpha(alpha)
	ui.alphaSlider.SetValue(float64(alpha))

	path := ui.settings.GetBackgroundImage()
	if path == "" {
		return
	}
	img, err := platform.LoadImage(path)
	if err != nil {
		log.Printf("background image %s not restored: %v", path, err)
		ui.settings.SetBackgroundImage("")
		return
	}
	ui.backdrop.SetImage(img)
	if ratio := platform.AspectRatio(img); ratio > 0 {
		ui.controller.LockAspectRatio(ratio)
	}
}

func (ui *RootUI) saveAndClose() {
	g := ui.host.Geometry()
	ui.settings.SetWindowSize(g.Width, g.Height)
	ui.window.Close()
}
