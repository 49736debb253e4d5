package chart

import (
	"image/color"
	"math"
	"time"

	"github.com/rustyeddy/candlechart/pricing"
)

// Overlay is one indicator line drawn over the candles. Values align with
// the visible candle slice; NaN marks warmup slots with nothing to draw.
type Overlay struct {
	Name   string
	Values []float64
	Color  color.Color
	Width  float32
}

// DrawOverlay strokes the overlay as a polyline across the visible candles,
// skipping NaN gaps. The pen change is scoped with Save/Restore like the
// candle pass.
func DrawOverlay(s Surface, candles []pricing.Candle, ov Overlay, timeToX func(time.Time) float32, priceToY func(float64) float32) {
	n := len(candles)
	if len(ov.Values) < n {
		n = len(ov.Values)
	}
	if n < 2 {
		return
	}

	s.Save()
	defer s.Restore()
	width := ov.Width
	if width <= 0 {
		width = 1
	}
	s.SetStroke(ov.Color, width)

	havePrev := false
	var prev Point
	for i := 0; i < n; i++ {
		v := ov.Values[i]
		if math.IsNaN(v) {
			havePrev = false
			continue
		}
		p := Point{X: timeToX(candles[i].Time), Y: priceToY(v)}
		if havePrev {
			s.DrawLine(prev, p)
		}
		prev = p
		havePrev = true
	}
}
