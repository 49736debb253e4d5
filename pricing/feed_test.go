package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCountAndCadence(t *testing.T) {
	w := NewRandomWalk(1, 0.5)
	start := time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC)

	candles := w.Seed(start, 100, 30)
	require.Len(t, candles, 30)

	for i, c := range candles {
		assert.Equal(t, start.Add(time.Duration(i)*time.Second), c.Time)
	}
	for i := 1; i < len(candles); i++ {
		assert.True(t, candles[i].Time.After(candles[i-1].Time))
	}
}

func TestSeedEmpty(t *testing.T) {
	w := NewRandomWalk(1, 0.5)
	assert.Nil(t, w.Seed(time.Now(), 100, 0))
	assert.Nil(t, w.Seed(time.Now(), 100, -3))
}

func TestOpenContinuity(t *testing.T) {
	w := NewRandomWalk(42, 0.5)
	start := time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC)

	candles := w.Seed(start, 100, 10)
	assert.Equal(t, 100.0, candles[0].Open)
	for i := 1; i < len(candles); i++ {
		assert.Equal(t, candles[i-1].Close, candles[i].Open)
	}

	// Next continues the walk from the last seeded candle.
	next := w.Next()
	assert.Equal(t, candles[len(candles)-1].Close, next.Open)
	assert.Equal(t, candles[len(candles)-1].Time.Add(time.Second), next.Time)
}

func TestShadowInvariants(t *testing.T) {
	w := NewRandomWalk(7, 0.5)
	candles := w.Seed(time.Now(), 100, 200)
	for i := 0; i < 200; i++ {
		candles = append(candles, w.Next())
	}

	for _, c := range candles {
		assert.LessOrEqual(t, c.Low, c.BodyBottom(), "low above body at %v", c.Time)
		assert.GreaterOrEqual(t, c.High, c.BodyTop(), "high below body at %v", c.Time)
	}
}

func TestDeterministicForSeed(t *testing.T) {
	start := time.Date(2026, 8, 26, 9, 30, 0, 0, time.UTC)
	a := NewRandomWalk(99, 0.5).Seed(start, 100, 50)
	b := NewRandomWalk(99, 0.5).Seed(start, 100, 50)
	assert.Equal(t, a, b)
}

func TestUnseededNextStartsAtBase(t *testing.T) {
	w := NewRandomWalk(3, 0.5)
	c := w.Next()
	assert.Equal(t, DefaultBasePrice, c.Open)
}
