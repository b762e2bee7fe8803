package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the file list, toolbar and output controls to the selection store
// and the conversion service. All UI strings are localized via Localization.
