package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "pdf-maker.png"
)

// LoadLogoResource loads the logo from file path.
// The logo is optional; callers fall back to a text-only header.
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
