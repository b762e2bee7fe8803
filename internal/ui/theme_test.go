package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
)

func TestCompactTheme(t *testing.T) {
	th := NewCompactTheme()

	if got := th.Size(theme.SizeNamePadding); got != 3 {
		t.Errorf("Expected compact padding 3, got %v", got)
	}
	if got, want := th.Size(theme.SizeNameSeparatorThickness), theme.DefaultTheme().Size(theme.SizeNameSeparatorThickness); got != want {
		t.Errorf("Expected default separator thickness %v, got %v", want, got)
	}
	if got := th.Color(theme.ColorNamePrimary, theme.VariantLight); got != colorAccent {
		t.Errorf("Expected accent primary color, got %v", got)
	}
}
