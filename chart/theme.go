package chart

import "image/color"

// Theme selects one of the two chart palettes.
type Theme int

const (
	Light Theme = iota
	Dark
)

// Palette is the set of theme-derived colors. The series body colors are
// deliberately absent: they belong to Style and survive theme toggles.
type Palette struct {
	Background color.Color
	Title      color.Color
	AxisLabel  color.Color
	Wick       color.Color
}

var (
	lightPalette = Palette{
		Background: color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Title:      color.NRGBA{A: 0xFF},
		AxisLabel:  color.NRGBA{A: 0xFF},
		Wick:       color.NRGBA{A: 0xFF},
	}
	darkPalette = Palette{
		Background: color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xFF}, // #121212
		Title:      color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		AxisLabel:  color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Wick:       color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	}
)

// Palette returns the four derived colors for the theme.
func (t Theme) Palette() Palette {
	if t == Dark {
		return darkPalette
	}
	return lightPalette
}

// Toggle flips between Light and Dark.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}
