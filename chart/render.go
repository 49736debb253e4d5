package chart

import (
	"image/color"
	"time"

	"github.com/rustyeddy/candlechart/pricing"
)

// Body width clamp for the squeeze controls.
const (
	MinBodyWidth = 0.1
	MaxBodyWidth = 1.0

	DefaultBodyWidth = 0.6
	defaultWickWidth = 1.0
)

// Style holds the renderer's paint parameters. The body colors are series
// properties, not theme properties: toggling the theme never touches them.
type Style struct {
	Increasing color.Color // body fill when close >= open
	Decreasing color.Color // body fill when close < open
	Wick       color.Color
	WickWidth  float32

	// BodyWidth is the body width as a fraction of one time-unit's pixel
	// span, in [MinBodyWidth, MaxBodyWidth].
	BodyWidth float64
}

// DefaultStyle returns the stock green/red series over a black wick.
func DefaultStyle() Style {
	return Style{
		Increasing: color.NRGBA{R: 0x4C, G: 0xAF, B: 0x50, A: 0xFF}, // #4CAF50
		Decreasing: color.NRGBA{R: 0xF4, G: 0x43, B: 0x36, A: 0xFF}, // #F44336
		Wick:       color.NRGBA{A: 0xFF},
		WickWidth:  defaultWickWidth,
		BodyWidth:  DefaultBodyWidth,
	}
}

// Squeeze returns the style with the body width nudged by delta and clamped
// to [MinBodyWidth, MaxBodyWidth].
func (st Style) Squeeze(delta float64) Style {
	st.BodyWidth += delta
	if st.BodyWidth < MinBodyWidth {
		st.BodyWidth = MinBodyWidth
	}
	if st.BodyWidth > MaxBodyWidth {
		st.BodyWidth = MaxBodyWidth
	}
	return st
}

// Draw paints one wick line and one filled body rectangle per candle onto s.
// timeToX and priceToY are the live axis mappings; plotWidth is the plot
// area width in pixels. The candle body width is tied to the visible time
// span: plotWidth / (span / bodyWidth), so candles keep their proportions as
// the window zooms. Drawing is pure; the pen change for the wicks is scoped
// by Save/Restore. An empty slice draws nothing.
func Draw(s Surface, candles []pricing.Candle, timeToX func(time.Time) float32, priceToY func(float64) float32, plotWidth float32, st Style) {
	if len(candles) == 0 {
		return
	}

	s.Save()
	defer s.Restore()
	s.SetStroke(st.Wick, st.WickWidth)

	w := BodyPixelWidth(candles, plotWidth, st.BodyWidth)

	for _, c := range candles {
		x := timeToX(c.Time)

		// Full-range wick first so the body paints over it.
		s.DrawLine(Point{X: x, Y: priceToY(c.High)}, Point{X: x, Y: priceToY(c.Low)})

		top := priceToY(c.BodyTop())
		bottom := priceToY(c.BodyBottom())
		fill := st.Decreasing
		if c.Bullish() {
			fill = st.Increasing
		}
		s.FillRect(Rect{X: x - w/2, Y: top, W: w, H: bottom - top}, fill)
	}
}

// BodyPixelWidth returns the candle body width in pixels for the visible
// candles. The span is measured in seconds, the chart's time unit; a span
// under one unit (single candle) counts as one so the width stays finite.
func BodyPixelWidth(candles []pricing.Candle, plotWidth float32, bodyWidth float64) float32 {
	if len(candles) == 0 {
		return 0
	}
	span := candles[len(candles)-1].Time.Sub(candles[0].Time).Seconds()
	if span < 1 {
		span = 1
	}
	return float32(float64(plotWidth) / (span / bodyWidth))
}
