// Command tagcloud-view is the desktop front end for the circular tag cloud layouter.
//
// Build:
//   go build -o tagcloud-view ./cmd/tagcloud-view
//
// Using fyne-cross for packaged builds:
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/tagcloud/internal/ui"
)

func main() {
	application := app.NewWithID("com.piwi3910.tagcloud")
	window := application.NewWindow("TagCloud — Circular Cloud Layouter")

	appUI := ui.NewApp(application, window)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1100, 750))
	window.CenterOnScreen()
	window.ShowAndRun()
}
