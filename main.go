package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/nekotoki/nekotoki/internal/config"
	"github.com/nekotoki/nekotoki/internal/stopwatch"
	"github.com/nekotoki/nekotoki/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.nekotoki.nekotoki"
	AppName = "NekoToki"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply overlay theme
	myApp.Settings().SetTheme(ui.NewOverlayTheme())

	// A splash window is the borderless, undecorated window type; fall
	// back to a regular window on drivers without one (e.g. mobile).
	var myWindow fyne.Window
	if drv, ok := myApp.Driver().(desktop.Driver); ok {
		myWindow = drv.CreateSplashWindow()
	} else {
		myWindow = myApp.NewWindow(AppName)
	}
	myWindow.SetTitle(AppName)

	// Restore last window size
	settings := config.NewSettings(myApp)
	width, height := settings.GetWindowSize()
	myWindow.Resize(fyne.NewSize(float32(width), float32(height)))

	// Create the timing core and setup UI
	core := stopwatch.NewCore()
	ui.NewRootUI(myWindow, myApp, core)

	// Show and run
	myWindow.ShowAndRun()
}
