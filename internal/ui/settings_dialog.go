package ui

import (
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pdf-maker/internal/config"
	"github.com/ytget/pdf-maker/internal/platform"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	outputDirEntry    *widget.Entry
	maxDimensionEntry *widget.Entry
	qualityEntry      *widget.Entry
	languageSelect    *widget.Select
	revealCheck       *widget.Check

	// language display name -> code
	languageCodes map[string]string
}

// ShowSettingsDialog creates and shows the settings dialog.
// onSaved runs after the values were written to the preferences.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.outputDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	outputDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.outputDirEntry)

	sd.maxDimensionEntry = widget.NewEntry()
	sd.maxDimensionEntry.SetPlaceHolder(strconv.Itoa(config.MinMaxDimension) + "-" + strconv.Itoa(config.MaxMaxDimension))

	sd.qualityEntry = widget.NewEntry()
	sd.qualityEntry.SetPlaceHolder(strconv.Itoa(config.MinJPEGQuality) + "-" + strconv.Itoa(config.MaxJPEGQuality))

	// Language selection shows display names, stores codes
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.revealCheck = widget.NewCheck(l.GetText(KeyRevealOnComplete), nil)

	form := widget.NewForm(
		widget.NewFormItem(l.GetText(KeyOutputDirectory), outputDirRow),
		widget.NewFormItem(l.GetText(KeyMaxDimension), sd.maxDimensionEntry),
		widget.NewFormItem(l.GetText(KeyJPEGQuality), sd.qualityEntry),
		widget.NewFormItem(l.GetText(KeyLanguage), sd.languageSelect),
		widget.NewFormItem("", sd.revealCheck),
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.outputDirEntry.SetText(sd.settings.GetOutputDirectory())
	sd.maxDimensionEntry.SetText(strconv.Itoa(sd.settings.GetMaxDimension()))
	sd.qualityEntry.SetText(strconv.Itoa(sd.settings.GetJPEGQuality()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.revealCheck.SetChecked(sd.settings.GetRevealOnComplete())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.outputDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Output directory is created on save so the first conversion can use it
	if outputDir := strings.TrimSpace(sd.outputDirEntry.Text); outputDir != "" {
		if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
			dialog.ShowError(err, sd.window)
			return
		}
		sd.settings.SetOutputDirectory(outputDir)
	}

	if maxDim, err := strconv.Atoi(strings.TrimSpace(sd.maxDimensionEntry.Text)); err == nil {
		sd.settings.SetMaxDimension(maxDim)
	}

	if quality, err := strconv.Atoi(strings.TrimSpace(sd.qualityEntry.Text)); err == nil {
		sd.settings.SetJPEGQuality(quality)
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	sd.settings.SetRevealOnComplete(sd.revealCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
