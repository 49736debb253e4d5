package chart

import (
	"time"

	"github.com/rustyeddy/candlechart/pricing"
)

// Axis scaling constants. The pad fraction gives the auto-scaled viewport 5%
// headroom above and below the visible candles. The minimum spans keep the
// pixel mappings defined when the window is degenerate (a single candle, or
// a perfectly flat price range).
const (
	PricePadFraction = 0.05

	minPriceSpan = 1.0
	minTimeSpan  = time.Second
)

// TimeRange returns the time axis range for the visible candles: first
// visible timestamp through last. With fewer than two candles the span
// collapses, so the range is widened backwards to minTimeSpan.
func TimeRange(candles []pricing.Candle) (min, max time.Time) {
	if len(candles) == 0 {
		now := time.Now()
		return now.Add(-minTimeSpan), now
	}
	min = candles[0].Time
	max = candles[len(candles)-1].Time
	if !max.After(min) {
		min = max.Add(-minTimeSpan)
	}
	return min, max
}

// PriceRange returns the price axis range padded by PricePadFraction of the
// visible low/high span. A flat window (maxHigh == minLow) would produce a
// zero pad and a zero-height viewport, so it falls back to minPriceSpan
// centered on the price.
func PriceRange(minLow, maxHigh float64) (min, max float64) {
	span := maxHigh - minLow
	if span <= 0 {
		mid := minLow
		return mid - minPriceSpan/2, mid + minPriceSpan/2
	}
	pad := PricePadFraction * span
	return minLow - pad, maxHigh + pad
}

// TimeScale maps timestamps onto [0, width] pixels across the given range.
func TimeScale(min, max time.Time, width float32) func(time.Time) float32 {
	span := max.Sub(min)
	if span <= 0 {
		span = minTimeSpan
	}
	return func(t time.Time) float32 {
		return width * float32(t.Sub(min)) / float32(span)
	}
}

// PriceScale maps prices onto [0, height] pixels, inverted so higher prices
// sit nearer the top of the plot.
func PriceScale(min, max float64, height float32) func(float64) float32 {
	span := max - min
	if span <= 0 {
		span = minPriceSpan
	}
	return func(p float64) float32 {
		return height - height*float32((p-min)/span)
	}
}
