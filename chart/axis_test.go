package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/candlechart/pricing"
)

func TestPriceRangePadding(t *testing.T) {
	// 5% of the 20-wide span is exactly 1 on each side.
	min, max := PriceRange(90, 110)
	assert.InDelta(t, 89.0, min, 1e-9)
	assert.InDelta(t, 111.0, max, 1e-9)
}

func TestPriceRangeFlatWindow(t *testing.T) {
	min, max := PriceRange(100, 100)
	assert.Greater(t, max, min)
	assert.InDelta(t, 100.0, (min+max)/2, 1e-9)
}

func TestPriceRangeInverted(t *testing.T) {
	// maxHigh below minLow is degenerate input; still a non-zero span.
	min, max := PriceRange(100, 99)
	assert.Greater(t, max, min)
}

func TestTimeRange(t *testing.T) {
	t0 := time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC)
	candles := []pricing.Candle{
		{Time: t0},
		{Time: t0.Add(time.Second)},
		{Time: t0.Add(2 * time.Second)},
	}

	min, max := TimeRange(candles)
	assert.Equal(t, t0, min)
	assert.Equal(t, t0.Add(2*time.Second), max)
}

func TestTimeRangeSingleCandle(t *testing.T) {
	t0 := time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC)
	min, max := TimeRange([]pricing.Candle{{Time: t0}})
	assert.Equal(t, time.Second, max.Sub(min))
}

func TestTimeRangeEmpty(t *testing.T) {
	min, max := TimeRange(nil)
	assert.Equal(t, time.Second, max.Sub(min))
}

func TestTimeScaleEndpoints(t *testing.T) {
	t0 := time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC)
	t1 := t0.Add(10 * time.Second)
	scale := TimeScale(t0, t1, 500)

	assert.InDelta(t, 0, scale(t0), 1e-4)
	assert.InDelta(t, 500, scale(t1), 1e-4)
	assert.InDelta(t, 250, scale(t0.Add(5*time.Second)), 1e-4)
}

func TestPriceScaleInverted(t *testing.T) {
	scale := PriceScale(90, 110, 400)

	// Higher prices map nearer the top of the plot.
	assert.InDelta(t, 400, scale(90), 1e-4)
	assert.InDelta(t, 0, scale(110), 1e-4)
	assert.InDelta(t, 200, scale(100), 1e-4)
}
