package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// DemoTheme is a compact theme whose input colors double as track colors
type DemoTheme struct{}

// NewDemoTheme creates a new demo theme
func NewDemoTheme() fyne.Theme {
	return &DemoTheme{}
}

// Color returns theme colors
func (t *DemoTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameInputBackground:
		// track background
		if variant == theme.VariantDark {
			return color.RGBA{R: 48, G: 48, B: 52, A: 255}
		}
		return color.RGBA{R: 229, G: 229, B: 234, A: 255}
	case theme.ColorNameInputBorder:
		if variant == theme.VariantDark {
			return color.RGBA{R: 72, G: 72, B: 74, A: 255}
		}
		return color.RGBA{R: 199, G: 199, B: 204, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *DemoTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DemoTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *DemoTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	}

	return theme.DefaultTheme().Size(name)
}

// SectionPalette is the fill color cycle used for demo sections
var SectionPalette = []color.Color{
	color.RGBA{R: 255, G: 59, B: 48, A: 255},
	color.RGBA{R: 255, G: 149, B: 0, A: 255},
	color.RGBA{R: 255, G: 204, B: 0, A: 255},
	color.RGBA{R: 52, G: 199, B: 89, A: 255},
	color.RGBA{R: 0, G: 122, B: 255, A: 255},
	color.RGBA{R: 175, G: 82, B: 222, A: 255},
}

// SectionColor returns the palette color for a section index
func SectionColor(index int) color.Color {
	n := len(SectionPalette)
	return SectionPalette[((index%n)+n)%n]
}
