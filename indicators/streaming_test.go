package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/candlechart/pricing"
)

func candlesFromCloses(closes ...float64) []pricing.Candle {
	candles := make([]pricing.Candle, len(closes))
	for i, c := range closes {
		candles[i] = pricing.Candle{Close: c}
	}
	return candles
}

func TestSimpleMA(t *testing.T) {
	candles := candlesFromCloses(102, 105, 106, 108, 110, 111, 113, 114, 116, 118)

	ma := NewMA(5)
	for _, c := range candles {
		ma.Update(c)
	}

	assert.True(t, ma.Ready())
	// Last 5 closes: 111+113+114+116+118 = 572, /5 = 114.4
	assert.InDelta(t, 114.4, ma.Value(), 0.001)
}

func TestSimpleMAWarmup(t *testing.T) {
	ma := NewMA(5)
	ma.Update(pricing.Candle{Close: 100})
	ma.Update(pricing.Candle{Close: 102})

	assert.False(t, ma.Ready())
	assert.Zero(t, ma.Value())
	assert.Equal(t, 5, ma.Warmup())
}

func TestSimpleMAReset(t *testing.T) {
	ma := NewMA(2)
	ma.Update(pricing.Candle{Close: 10})
	ma.Update(pricing.Candle{Close: 20})
	assert.True(t, ma.Ready())

	ma.Reset()
	assert.False(t, ma.Ready())

	ma.Update(pricing.Candle{Close: 4})
	ma.Update(pricing.Candle{Close: 6})
	assert.InDelta(t, 5.0, ma.Value(), 0.001)
}

func TestExponentialMA(t *testing.T) {
	ema := NewEMA(3)
	for _, c := range candlesFromCloses(1, 2, 3) {
		ema.Update(c)
	}
	// Warmup SMA: (1+2+3)/3 = 2, multiplier 0.5.
	assert.True(t, ema.Ready())
	assert.InDelta(t, 2.0, ema.Value(), 0.001)

	ema.Update(pricing.Candle{Close: 4})
	assert.InDelta(t, 3.0, ema.Value(), 0.001)

	ema.Update(pricing.Candle{Close: 5})
	assert.InDelta(t, 4.0, ema.Value(), 0.001)
}

func TestNames(t *testing.T) {
	assert.Equal(t, "MA(7)", NewMA(7).Name())
	assert.Equal(t, "EMA(7)", NewEMA(7).Name())
}

func TestSeries(t *testing.T) {
	candles := candlesFromCloses(102, 105, 106, 108, 110)

	values := Series(NewMA(3), candles)
	assert.Len(t, values, 5)
	assert.True(t, math.IsNaN(values[0]))
	assert.True(t, math.IsNaN(values[1]))
	assert.InDelta(t, (102+105+106)/3.0, values[2], 0.001)
	assert.InDelta(t, (106+108+110)/3.0, values[4], 0.001)
}

func TestSeriesMatchesStreaming(t *testing.T) {
	candles := candlesFromCloses(102, 105, 106, 108, 110, 111, 113, 114, 116, 118)

	ema := NewEMA(4)
	values := Series(ema, candles)

	streamed := NewEMA(4)
	for _, c := range candles {
		streamed.Update(c)
	}
	assert.InDelta(t, streamed.Value(), values[len(values)-1], 1e-9)
}

func TestSeriesResetsIndicator(t *testing.T) {
	candles := candlesFromCloses(10, 20, 30)
	ma := NewMA(2)

	first := Series(ma, candles)
	second := Series(ma, candles)
	assert.InDelta(t, first[2], second[2], 1e-9)
}
