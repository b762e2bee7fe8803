package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pdf-maker/internal/model"
	"github.com/ytget/pdf-maker/internal/selection"
)

// FileRow is one line of the file list: highlight check, position, name and kind.
// Lists in Fyne are single-select, so the check box carries the multi-selection
// and tapping anywhere on the row toggles it.
type FileRow struct {
	widget.BaseWidget

	row      int
	entry    selection.Entry
	kind     model.FileKind
	selected bool

	// UI components
	check      *widget.Check
	indexLabel *widget.Label
	nameLabel  *widget.Label
	kindLabel  *widget.Label

	// Callbacks
	onToggle func(row int, selected bool)
}

// NewFileRow creates an empty row; the list fills it through Update
func NewFileRow(onToggle func(row int, selected bool)) *FileRow {
	fr := &FileRow{
		row:      -1,
		onToggle: onToggle,
	}
	fr.ExtendBaseWidget(fr)
	fr.createUI()
	return fr
}

// createUI creates the UI components
func (fr *FileRow) createUI() {
	fr.check = widget.NewCheck("", func(checked bool) {
		// Update sets the check programmatically; only report user changes
		if checked == fr.selected {
			return
		}
		fr.selected = checked
		if fr.onToggle != nil && fr.row >= 0 {
			fr.onToggle(fr.row, checked)
		}
	})

	fr.indexLabel = widget.NewLabel("")
	fr.indexLabel.Alignment = fyne.TextAlignTrailing
	fr.indexLabel.Importance = widget.LowImportance

	fr.nameLabel = widget.NewLabel("")
	fr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	fr.kindLabel = widget.NewLabel("")
}

// Update shows the entry at row
func (fr *FileRow) Update(row int, entry selection.Entry, kind model.FileKind, selected bool) {
	fr.row = row
	fr.entry = entry
	fr.kind = kind
	fr.selected = selected

	fr.indexLabel.SetText(fmt.Sprintf(RowIndexFormat, row+1))
	fr.nameLabel.SetText(entry.Label)
	fr.kindLabel.SetText(kindIcon(kind))
	if selected {
		fr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	} else {
		fr.nameLabel.TextStyle = fyne.TextStyle{}
	}
	fr.check.SetChecked(selected)
	fr.nameLabel.Refresh()
}

// Tapped toggles the row highlight
func (fr *FileRow) Tapped(_ *fyne.PointEvent) {
	fr.check.SetChecked(!fr.selected)
}

// CreateRenderer creates the widget renderer
func (fr *FileRow) CreateRenderer() fyne.WidgetRenderer {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(RowIndexWidth, RowMinHeight))
	index := container.NewStack(spacer, fr.indexLabel)

	left := container.NewHBox(fr.check, index)
	content := container.NewBorder(nil, nil, left, fr.kindLabel, fr.nameLabel)
	return widget.NewSimpleRenderer(content)
}
