package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/ytget/pdf-maker/internal/config"
	"github.com/ytget/pdf-maker/internal/convert"
	"github.com/ytget/pdf-maker/internal/platform"
	"github.com/ytget/pdf-maker/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.pdf-maker"
	AppName = "PDF Maker"
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	// pdfcpu would otherwise create its own config directory on first use
	api.DisableConfigDir()

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	if outputDir := settings.GetOutputDirectory(); outputDir != "" {
		if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
			log.Printf("failed to ensure output dir: %v", err)
		}
	}

	converter := convert.NewService(settings.GetMaxDimension(), settings.GetJPEGQuality())

	ui.NewRootUI(myWindow, myApp, converter)

	myWindow.ShowAndRun()
}
