package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ChooserTheme tightens list padding so more samples fit on a phone screen
// and tints section headers.
type ChooserTheme struct{}

// NewChooserTheme creates the chooser theme
func NewChooserTheme() fyne.Theme {
	return &ChooserTheme{}
}

// Color returns theme colors
func (t *ChooserTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameHeaderBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 38, G: 50, B: 56, A: 255}
		}
		return color.RGBA{R: 227, G: 236, B: 245, A: 255}
	case theme.ColorNameSelection:
		return color.RGBA{R: 25, G: 118, B: 210, A: 64}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *ChooserTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ChooserTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact list spacing
func (t *ChooserTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameSeparatorThickness:
		return 1
	case theme.SizeNameText:
		return 14
	case theme.SizeNameSubHeadingText:
		return 15
	}

	return theme.DefaultTheme().Size(name)
}
