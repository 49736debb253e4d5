package chart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHex parses a "#RRGGBB" or "#RGB" color string.
func ParseHex(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")

	switch len(hex) {
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		return color.NRGBA{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
			A: 0xFF,
		}, nil
	case 3:
		v, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		r := uint8(v >> 8 & 0xF)
		g := uint8(v >> 4 & 0xF)
		b := uint8(v & 0xF)
		return color.NRGBA{R: r * 0x11, G: g * 0x11, B: b * 0x11, A: 0xFF}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("parse color %q: want #RRGGBB or #RGB", s)
	}
}
