package ui

import "fyne.io/fyne/v2"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconImage    = "🖼"
	IconPDF      = "📄"
	IconUnknown  = "?"
)

// Text fragments
const (
	RowIndexFormat      = "%d."
	ProgressLabelFormat = "%d%%"
)

// Layout sizing
const (
	WindowWidth  float32 = 520
	WindowHeight float32 = 560

	RowIndexWidth float32 = 36
	RowMinHeight  float32 = 32

	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 380
)

// Keyboard shortcuts; plain Insert and Delete are handled on the canvas
var (
	ShortcutMoveUp     = shortcut(fyne.KeyUp, fyne.KeyModifierAlt)
	ShortcutMoveDown   = shortcut(fyne.KeyDown, fyne.KeyModifierAlt)
	ShortcutMoveTop    = shortcut(fyne.KeyUp, fyne.KeyModifierAlt|fyne.KeyModifierShift)
	ShortcutMoveBottom = shortcut(fyne.KeyDown, fyne.KeyModifierAlt|fyne.KeyModifierShift)
	ShortcutSelectAll  = shortcut(fyne.KeyA, fyne.KeyModifierShortcutDefault)
)
