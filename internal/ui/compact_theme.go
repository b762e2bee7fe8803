package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Accent colors of the window
var (
	colorAccent      = color.NRGBA{R: 0, G: 123, B: 255, A: 255}
	colorAccentHover = color.NRGBA{R: 0, G: 105, B: 217, A: 40}
	colorHighlight   = color.NRGBA{R: 0, G: 123, B: 255, A: 70}
	colorSuccess     = color.NRGBA{R: 40, G: 167, B: 69, A: 255}
	colorDanger      = color.NRGBA{R: 220, G: 53, B: 69, A: 255}
)

// compactSizes shrinks the defaults so long file lists fit without scrolling
var compactSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNamePadding:         3,
	theme.SizeNameInnerPadding:    5,
	theme.SizeNameLineSpacing:     2,
	theme.SizeNameScrollBar:       10,
	theme.SizeNameText:            13,
	theme.SizeNameHeadingText:     16,
	theme.SizeNameSubHeadingText:  14,
	theme.SizeNameCaptionText:     10,
	theme.SizeNameInputRadius:     4,
	theme.SizeNameSelectionRadius: 2,
}

// CompactTheme is the default theme with denser rows and blue accents
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return colorAccent
	case theme.ColorNameHover:
		return colorAccentHover
	case theme.ColorNameSelection:
		return colorHighlight
	case theme.ColorNameSuccess:
		return colorSuccess
	case theme.ColorNameError:
		return colorDanger
	}
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes, compact where listed
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := compactSizes[name]; ok {
		return size
	}
	return theme.DefaultTheme().Size(name)
}
