package chart

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#4CAF50")
	assert.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}, c)

	c, err = ParseHex("F44336")
	assert.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xF4, G: 0x43, B: 0x36, A: 0xFF}, c)
}

func TestParseHexShort(t *testing.T) {
	c, err := ParseHex("#fff")
	assert.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}, c)
}

func TestParseHexInvalid(t *testing.T) {
	for _, s := range []string{"", "#12", "#12345", "#gggggg", "red"} {
		_, err := ParseHex(s)
		assert.Error(t, err, "input %q", s)
	}
}
