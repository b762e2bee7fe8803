package ui

import (
	"context"
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pdf-maker/internal/config"
	"github.com/ytget/pdf-maker/internal/convert"
	"github.com/ytget/pdf-maker/internal/model"
	"github.com/ytget/pdf-maker/internal/platform"
	"github.com/ytget/pdf-maker/internal/selection"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	converter    convert.Converter
	settings     *config.Settings
	localization *Localization
	store        *selection.Store
	state        model.SessionState

	// File list
	fileList     *widget.List
	summaryLabel *widget.Label
	chooseBtn    *widget.Button

	// Output controls
	optimizeCheck *widget.Check
	outputLabel   *widget.Label
	outputEntry   *widget.Entry
	browseBtn     *widget.Button
	customCheck   *widget.Check
	customEntry   *widget.Entry
	convertBtn    *widget.Button
	progressBar   *widget.ProgressBar

	openFile func(path string) error // opens the output with the default application
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, converter convert.Converter) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		converter:    converter,
		settings:     settings,
		localization: localization,
		store:        selection.NewStore(),
		state:        model.StateIdle,
		openFile:     platform.OpenFileWithDefaultApp,
	}

	converter.SetMaxDimension(settings.GetMaxDimension())
	converter.SetJPEGQuality(settings.GetJPEGQuality())
	converter.SetUpdateCallback(ui.onJobUpdate)

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	log.Printf("RootUI initialized, output directory: %q", settings.GetOutputDirectory())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Top row: choose button, settings, logo
	ui.chooseBtn = widget.NewButton(ui.localization.GetText(KeyChooseFiles), ui.onChooseFiles)
	ui.chooseBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	left := container.NewHBox(settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn)
	}
	topPanel := container.NewBorder(nil, nil, left, nil, ui.chooseBtn)

	// File list with its toolbar and summary
	ui.fileList = widget.NewList(
		func() int { return ui.store.DisplayLen() },
		func() fyne.CanvasObject { return NewFileRow(ui.onRowToggled) },
		ui.updateFileRow,
	)
	ui.summaryLabel = widget.NewLabel("")
	ui.summaryLabel.Truncation = fyne.TextTruncateEllipsis

	listPanel := container.NewBorder(ui.createToolbar(), ui.summaryLabel, nil, nil, ui.fileList)

	// Output controls
	ui.optimizeCheck = widget.NewCheck(ui.localization.GetText(KeyOptimizeSize), func(checked bool) {
		ui.settings.SetOptimizeSize(checked)
	})
	ui.optimizeCheck.SetChecked(ui.settings.GetOptimizeSize())

	ui.outputLabel = widget.NewLabel(ui.localization.GetText(KeyOutputDirectory))
	ui.outputEntry = widget.NewEntry()
	ui.outputEntry.SetText(ui.settings.GetOutputDirectory())
	ui.outputEntry.OnChanged = func(dir string) {
		ui.settings.SetOutputDirectory(strings.TrimSpace(dir))
	}
	ui.browseBtn = widget.NewButton(ui.localization.GetText(KeyBrowse), ui.onBrowseOutput)
	outputRow := container.NewBorder(nil, nil, nil, ui.browseBtn, ui.outputEntry)

	ui.customEntry = widget.NewEntry()
	ui.customEntry.SetPlaceHolder(ui.localization.GetText(KeyCustomNameHint))
	ui.customEntry.Disable()
	ui.customEntry.OnSubmitted = func(string) { ui.onConvertClick() }
	ui.customCheck = widget.NewCheck(ui.localization.GetText(KeyCustomName), func(checked bool) {
		if checked {
			ui.customEntry.Enable()
		} else {
			ui.customEntry.Disable()
		}
	})
	customRow := container.NewBorder(nil, nil, ui.customCheck, nil, ui.customEntry)

	ui.convertBtn = widget.NewButton(ui.localization.GetText(KeyConvertToPDF), ui.onConvertClick)
	ui.convertBtn.Importance = widget.HighImportance

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Hide()

	bottomPanel := container.NewVBox(
		widget.NewSeparator(),
		ui.optimizeCheck,
		ui.outputLabel,
		outputRow,
		customRow,
		ui.convertBtn,
		ui.progressBar,
	)

	content := container.NewBorder(
		topPanel,    // top
		bottomPanel, // bottom
		nil,         // left
		nil,         // right
		listPanel,   // center
	)

	ui.window.SetContent(content)
	ui.window.SetOnDropped(ui.onDropped)
	ui.registerShortcuts()
	ui.refreshSelection()

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	chooseItem := fyne.NewMenuItem(ui.localization.GetText(KeyChooseFiles), ui.onChooseFiles)
	folderItem := fyne.NewMenuItem(ui.localization.GetText(KeyChooseFolder), ui.onChooseFolder)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), chooseItem, folderItem, fyne.NewMenuItemSeparator(), settingsItem),
		ui.createEditMenu(),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.chooseBtn.SetText(ui.localization.GetText(KeyChooseFiles))
	ui.optimizeCheck.Text = ui.localization.GetText(KeyOptimizeSize)
	ui.optimizeCheck.Refresh()
	ui.outputLabel.SetText(ui.localization.GetText(KeyOutputDirectory))
	ui.browseBtn.SetText(ui.localization.GetText(KeyBrowse))
	ui.customCheck.Text = ui.localization.GetText(KeyCustomName)
	ui.customCheck.Refresh()
	ui.customEntry.SetPlaceHolder(ui.localization.GetText(KeyCustomNameHint))
	ui.refreshSelection()
}

// updateFileRow fills a recycled list row with the entry at id
func (ui *RootUI) updateFileRow(id widget.ListItemID, item fyne.CanvasObject) {
	row, ok := item.(*FileRow)
	if !ok {
		return
	}
	entry, ok := ui.store.Entry(id)
	if !ok {
		return
	}

	kind := model.KindOf(entry.Label)
	if file, found := ui.store.FileByID(entry.ID); found {
		kind = file.Kind
	}
	row.Update(id, entry, kind, ui.store.IsSelected(id))
}

// onRowToggled records a highlight change made on a row
func (ui *RootUI) onRowToggled(row int, selected bool) {
	ui.store.SetSelected(row, selected)
	ui.fileList.RefreshItem(row)
}

// refreshSelection redraws everything that depends on the chosen files
func (ui *RootUI) refreshSelection() {
	kind := ui.store.AcceptedKind()

	ui.fileList.Refresh()
	ui.summaryLabel.SetText(selectionSummary(ui.localization, ui.store))
	ui.convertBtn.SetText(ui.localization.GetText(convertButtonKey(kind)))

	// Optimizing only applies to images
	if kind == model.KindPDF {
		ui.optimizeCheck.Hide()
	} else {
		ui.optimizeCheck.Show()
	}

	if ui.state.IsActive() {
		return
	}
	if ui.store.Len() == 0 {
		ui.setState(model.StateIdle)
	} else {
		ui.setState(model.StateFilesChosen)
	}
}

// setState moves the session to next, logging transitions the model does not expect
func (ui *RootUI) setState(next model.SessionState) {
	if ui.state == next {
		return
	}
	if !ui.state.CanTransition(next) {
		log.Printf("Unexpected session transition %s -> %s", ui.state, next)
	}
	ui.state = next
}

// isBusy reports whether a conversion is running; edits are ignored meanwhile
func (ui *RootUI) isBusy() bool {
	return ui.state.IsActive()
}

// fileFilter limits the open dialog to the given kind, or to both classes
func fileFilter(kind model.FileKind) storage.FileFilter {
	return storage.NewExtensionFileFilter(kind.Extensions())
}

// onChooseFiles replaces the selection with a picked file
func (ui *RootUI) onChooseFiles() {
	if ui.isBusy() {
		return
	}
	ui.showFileOpen(model.KindUnknown, ui.choosePaths)
}

// onAddFiles appends a picked file of the accepted class.
// With nothing chosen it is the same as choosing.
func (ui *RootUI) onAddFiles() {
	if ui.isBusy() {
		return
	}
	if ui.store.Len() == 0 {
		ui.onChooseFiles()
		return
	}
	ui.showFileOpen(ui.store.AcceptedKind(), ui.addPaths)
}

// showFileOpen opens the file dialog and hands the picked path to onPicked
func (ui *RootUI) showFileOpen(kind model.FileKind, onPicked func([]string)) {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("File dialog error: %v", err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		onPicked([]string{path})
	}, ui.window)
	fileDialog.SetFilter(fileFilter(kind))
	if dir := ui.settings.GetOutputDirectory(); dir != "" && platform.DirectoryExists(dir) {
		if uri, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			fileDialog.SetLocation(uri)
		}
	}
	fileDialog.Show()
}

// onChooseFolder replaces the selection with the supported files of a folder
func (ui *RootUI) onChooseFolder() {
	if ui.isBusy() {
		return
	}
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		paths, err := platform.ListDirectory(uri.Path(), model.IsSupported)
		if err != nil {
			log.Printf("Failed to list folder %s: %v", uri.Path(), err)
			dialog.ShowError(err, ui.window)
			return
		}
		ui.choosePaths(paths)
	}, ui.window)
}

// onDropped takes files dragged in from the OS: choose when empty, add otherwise
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	if ui.isBusy() {
		return
	}
	paths := make([]string, 0, len(uris))
	for _, uri := range uris {
		if uri.Scheme() == "file" {
			paths = append(paths, uri.Path())
		}
	}
	log.Printf("Dropped %d files", len(paths))
	if ui.store.Len() == 0 {
		ui.choosePaths(paths)
	} else {
		ui.addPaths(paths)
	}
}

func (ui *RootUI) choosePaths(paths []string) {
	skipped := ui.store.Choose(paths)
	ui.afterSelectionChange(skipped)
}

func (ui *RootUI) addPaths(paths []string) {
	rejected := ui.store.Add(paths)
	ui.afterSelectionChange(rejected)
}

func (ui *RootUI) afterSelectionChange(skipped int) {
	ui.refreshSelection()
	if skipped > 0 {
		dialog.ShowInformation(ui.localization.GetText(KeyAppTitle),
			fmt.Sprintf(ui.localization.GetText(KeyFilesSkipped), skipped), ui.window)
	}
}

// onDeleteFiles removes the highlighted rows
func (ui *RootUI) onDeleteFiles() {
	if ui.isBusy() || ui.store.SelectedCount() == 0 {
		return
	}
	ui.store.DeleteSelected()
	ui.fileList.UnselectAll()
	ui.refreshSelection()
}

// onSelectAll highlights every row
func (ui *RootUI) onSelectAll() {
	if ui.isBusy() {
		return
	}
	ui.store.SelectAll()
	ui.fileList.Refresh()
}

// onClearSelection removes every highlight
func (ui *RootUI) onClearSelection() {
	if ui.isBusy() {
		return
	}
	ui.store.ClearSelection()
	ui.fileList.Refresh()
}

// onMove moves the highlighted rows and keeps the leading one in view
func (ui *RootUI) onMove(dir selection.Direction, toEdge bool) {
	if ui.isBusy() {
		return
	}
	result := ui.store.MoveSelected(dir, toEdge)
	if !result.Moved {
		return
	}
	ui.fileList.Refresh()
	ui.fileList.ScrollTo(result.ScrollTo)
}

// onBrowseOutput picks the output directory
func (ui *RootUI) onBrowseOutput() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.outputEntry.SetText(uri.Path())
	}, ui.window)
}

// buildRequest collects the current controls into a conversion request
func (ui *RootUI) buildRequest() convert.Request {
	return convert.Request{
		Inputs:        ui.store.OrderedPaths(),
		OutputDir:     strings.TrimSpace(ui.outputEntry.Text),
		UseCustomName: ui.customCheck.Checked,
		CustomName:    ui.customEntry.Text,
		Optimize:      ui.optimizeCheck.Visible() && ui.optimizeCheck.Checked,
	}
}

// onConvertClick validates on the UI goroutine, then converts on a worker
func (ui *RootUI) onConvertClick() {
	if ui.isBusy() {
		return
	}

	req := ui.buildRequest()
	if _, err := ui.converter.Validate(req); err != nil {
		ui.showResult(nil, err)
		return
	}

	ui.setBusy(true)
	log.Printf("Starting conversion of %d files into %s", len(req.Inputs), req.OutputDir)

	go func() {
		job, err := ui.converter.Convert(context.Background(), req)
		fyne.Do(func() {
			ui.setBusy(false)
			ui.showResult(job, err)
		})
	}()
}

// setBusy toggles the converting state of the window
func (ui *RootUI) setBusy(busy bool) {
	if busy {
		ui.setState(model.StateConverting)
		ui.progressBar.SetValue(0)
		ui.progressBar.Show()
		ui.chooseBtn.Disable()
		ui.convertBtn.Disable()
		ui.browseBtn.Disable()
		ui.optimizeCheck.Disable()
		ui.customCheck.Disable()
		ui.customEntry.Disable()
		ui.outputEntry.Disable()
		return
	}

	ui.progressBar.Hide()
	ui.progressBar.SetValue(0)
	ui.chooseBtn.Enable()
	ui.convertBtn.Enable()
	ui.browseBtn.Enable()
	ui.optimizeCheck.Enable()
	ui.customCheck.Enable()
	if ui.customCheck.Checked {
		ui.customEntry.Enable()
	}
	ui.outputEntry.Enable()
}

// onJobUpdate receives progress from the conversion worker
func (ui *RootUI) onJobUpdate(job *model.ConversionJob) {
	fyne.Do(func() {
		if job.Status.IsFinished() {
			ui.progressBar.Hide()
			return
		}
		ui.progressBar.SetValue(job.Progress)
	})
}

// showResult shows the outcome dialog and settles the session state
func (ui *RootUI) showResult(job *model.ConversionJob, err error) {
	if err != nil {
		if convert.IsPrecondition(err) {
			log.Printf("Conversion rejected: %v", err)
		} else {
			log.Printf("Conversion failed: %v", err)
		}
		if job != nil {
			ui.setState(model.StateFailed)
		}
		ui.refreshSelection()
		dialog.NewCustom(ui.localization.GetText(KeyError), ui.localization.GetText(KeyClose),
			errorContent(ui.localization.GetText(errorMessageKey(err))), ui.window).Show()
		return
	}

	log.Printf("Conversion finished: %s in %s", job.OutputPath, job.Duration())
	ui.setState(model.StateSucceeded)
	ui.refreshSelection()

	outputPath := job.OutputPath
	dialog.NewCustomConfirm(ui.localization.GetText(KeySuccess),
		ui.localization.GetText(KeyOpenPDF), ui.localization.GetText(KeyClose),
		widget.NewLabel(successMessage(ui.localization, job)),
		func(open bool) { ui.onSuccessClosed(outputPath, open) },
		ui.window).Show()

	if ui.settings.GetRevealOnComplete() {
		ui.onRevealFile(job.OutputPath)
	}
}

// errorContent is the body of the failure dialog: error icon and message
func errorContent(message string) *fyne.Container {
	return container.NewHBox(widget.NewIcon(theme.ErrorIcon()), widget.NewLabel(message))
}

// onSuccessClosed opens the produced PDF when the user asked for it
func (ui *RootUI) onSuccessClosed(outputPath string, open bool) {
	if !open {
		return
	}
	if err := ui.openFile(outputPath); err != nil {
		log.Printf("Error opening file %s: %v", outputPath, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
	}
}

// onRevealFile handles revealing a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.converter.SetMaxDimension(ui.settings.GetMaxDimension())
		ui.converter.SetJPEGQuality(ui.settings.GetJPEGQuality())
		ui.outputEntry.SetText(ui.settings.GetOutputDirectory())
		if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
			ui.onLanguageChange(lang)
		}
	})
}
