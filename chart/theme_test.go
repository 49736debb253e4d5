package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleTwiceRestoresPalette(t *testing.T) {
	theme := Light
	original := theme.Palette()

	theme = theme.Toggle()
	assert.NotEqual(t, original, theme.Palette())

	theme = theme.Toggle()
	assert.Equal(t, Light, theme)
	assert.Equal(t, original, theme.Palette())
}

func TestPalettesDiffer(t *testing.T) {
	light := Light.Palette()
	dark := Dark.Palette()

	assert.NotEqual(t, light.Background, dark.Background)
	assert.NotEqual(t, light.Title, dark.Title)
	assert.NotEqual(t, light.AxisLabel, dark.AxisLabel)
	assert.NotEqual(t, light.Wick, dark.Wick)
}

func TestThemeString(t *testing.T) {
	assert.Equal(t, "light", Light.String())
	assert.Equal(t, "dark", Dark.String())
}
