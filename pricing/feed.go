package pricing

import (
	"math"
	"math/rand"
	"time"
)

// Default parameters for the synthetic walk. The step scale and shadow range
// match the decorative demo this feed drives: moves are small relative to the
// ~100 base so the chart stays readable.
const (
	DefaultBasePrice = 100.0
	DefaultStepScale = 0.5
	shadowRange      = 0.5
	cadence          = time.Second
)

// RandomWalk produces synthetic candles at a one-second cadence. Every candle
// opens at the previous close and moves by a zero-mean gaussian step; the
// high and low extend past the body by the step magnitude plus a uniform
// shadow. Prices are never clamped, so a long losing streak can drift the
// walk below zero.
type RandomWalk struct {
	rng   *rand.Rand
	scale float64

	last    Candle
	started bool
}

// NewRandomWalk returns a walk seeded from seed with the given step scale.
// A scale of zero falls back to DefaultStepScale.
func NewRandomWalk(seed int64, scale float64) *RandomWalk {
	if scale <= 0 {
		scale = DefaultStepScale
	}
	return &RandomWalk{
		rng:   rand.New(rand.NewSource(seed)),
		scale: scale,
	}
}

// Seed generates n candles with strictly increasing one-second timestamps
// ending at start+(n-1)s, walking forward from base. It resets the feed so
// the next call to Next continues from the last seeded candle.
func (w *RandomWalk) Seed(start time.Time, base float64, n int) []Candle {
	if n <= 0 {
		return nil
	}
	candles := make([]Candle, 0, n)
	prevClose := base
	for i := 0; i < n; i++ {
		c := w.step(start.Add(time.Duration(i)*cadence), prevClose)
		candles = append(candles, c)
		prevClose = c.Close
	}
	w.last = candles[n-1]
	w.started = true
	return candles
}

// Next returns the candle following the last one produced. If the feed has
// not been seeded it starts a fresh walk at DefaultBasePrice.
func (w *RandomWalk) Next() Candle {
	if !w.started {
		w.last = w.step(time.Now().Truncate(cadence), DefaultBasePrice)
		w.started = true
		return w.last
	}
	w.last = w.step(w.last.Time.Add(cadence), w.last.Close)
	return w.last
}

// step builds one candle opening at prevClose. The close moves by a gaussian
// delta; high and low bracket the close by |delta| plus a uniform shadow, so
// low <= min(open, close) and high >= max(open, close) always hold.
func (w *RandomWalk) step(t time.Time, prevClose float64) Candle {
	delta := w.rng.NormFloat64() * w.scale
	open := prevClose
	close := open + delta
	return Candle{
		Time:  t,
		Open:  open,
		High:  close + math.Abs(delta) + w.rng.Float64()*shadowRange,
		Low:   close - math.Abs(delta) - w.rng.Float64()*shadowRange,
		Close: close,
	}
}
