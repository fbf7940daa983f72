package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// variantTheme 固定使用浅色或深色的默认主题
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func newVariantTheme(dark bool) fyne.Theme {
	variant := theme.VariantLight
	if dark {
		variant = theme.VariantDark
	}
	return &variantTheme{Theme: theme.DefaultTheme(), variant: variant}
}

func (t *variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}
