package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/pdf-maker/internal/selection"
)

func shortcut(key fyne.KeyName, modifier fyne.KeyModifier) *desktop.CustomShortcut {
	return &desktop.CustomShortcut{KeyName: key, Modifier: modifier}
}

// listAction is one edit action shared by the toolbar, the Edit menu and the shortcuts
type listAction struct {
	key      string
	icon     fyne.Resource
	shortcut fyne.Shortcut
	run      func()
}

// listActions returns the move, add and delete actions in toolbar order.
// A nil entry marks a separator.
func (ui *RootUI) listActions() []*listAction {
	return []*listAction{
		{KeyMoveTop, theme.MenuDropUpIcon(), ShortcutMoveTop, func() { ui.onMove(selection.Up, true) }},
		{KeyMoveUp, theme.MoveUpIcon(), ShortcutMoveUp, func() { ui.onMove(selection.Up, false) }},
		{KeyMoveDown, theme.MoveDownIcon(), ShortcutMoveDown, func() { ui.onMove(selection.Down, false) }},
		{KeyMoveBottom, theme.MenuDropDownIcon(), ShortcutMoveBottom, func() { ui.onMove(selection.Down, true) }},
		nil,
		{KeyAddFiles, theme.ContentAddIcon(), nil, ui.onAddFiles},
		{KeyDeleteFiles, theme.DeleteIcon(), nil, ui.onDeleteFiles},
	}
}

// createToolbar builds the list toolbar
func (ui *RootUI) createToolbar() *widget.Toolbar {
	toolbar := widget.NewToolbar()
	for _, action := range ui.listActions() {
		if action == nil {
			toolbar.Append(widget.NewToolbarSeparator())
			continue
		}
		toolbar.Append(widget.NewToolbarAction(action.icon, action.run))
	}
	return toolbar
}

// createEditMenu builds the Edit menu with the same actions
func (ui *RootUI) createEditMenu() *fyne.Menu {
	menu := fyne.NewMenu(ui.localization.GetText(KeyEdit))
	for _, action := range ui.listActions() {
		if action == nil {
			menu.Items = append(menu.Items, fyne.NewMenuItemSeparator())
			continue
		}
		item := fyne.NewMenuItem(ui.localization.GetText(action.key), action.run)
		item.Shortcut = action.shortcut
		item.Icon = action.icon
		menu.Items = append(menu.Items, item)
	}

	selectAllItem := fyne.NewMenuItem(ui.localization.GetText(KeySelectAll), ui.onSelectAll)
	selectAllItem.Shortcut = ShortcutSelectAll
	clearItem := fyne.NewMenuItem(ui.localization.GetText(KeyClearSelection), ui.onClearSelection)
	menu.Items = append(menu.Items, fyne.NewMenuItemSeparator(), selectAllItem, clearItem)
	return menu
}

// registerShortcuts binds Alt+arrows for moves, Insert/Delete for add/delete
// and Ctrl+A/Escape for the highlight
func (ui *RootUI) registerShortcuts() {
	canvas := ui.window.Canvas()
	for _, action := range ui.listActions() {
		if action == nil || action.shortcut == nil {
			continue
		}
		run := action.run
		canvas.AddShortcut(action.shortcut, func(fyne.Shortcut) { run() })
	}

	canvas.AddShortcut(ShortcutSelectAll, func(fyne.Shortcut) { ui.onSelectAll() })

	// Insert, Delete and Escape have no modifier, so they arrive as typed keys
	canvas.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyInsert:
			ui.onAddFiles()
		case fyne.KeyDelete:
			ui.onDeleteFiles()
		case fyne.KeyEscape:
			ui.onClearSelection()
		}
	})
}
