package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
)

func TestVariantForName(t *testing.T) {
	if v, forced := variantForName("light"); !forced || v != theme.VariantLight {
		t.Errorf("light = %v %v", v, forced)
	}
	if v, forced := variantForName("dark"); !forced || v != theme.VariantDark {
		t.Errorf("dark = %v %v", v, forced)
	}
	if _, forced := variantForName("system"); forced {
		t.Error("system should follow the platform variant")
	}
}

func TestThemeSizes(t *testing.T) {
	th := NewTagCloudTheme("dark")
	if got := th.Size(theme.SizeNameText); got != 12 {
		t.Errorf("text size = %v, want 12", got)
	}
	if got := th.Size(theme.SizeNameScrollBar); got != theme.DefaultTheme().Size(theme.SizeNameScrollBar) {
		t.Errorf("scroll bar size should come from the default theme, got %v", got)
	}
}
