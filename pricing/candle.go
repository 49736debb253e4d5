package pricing

import "time"

// Candle is one OHLC record on the chart timeline.
type Candle struct {
	Time time.Time

	Open  float64
	High  float64
	Low   float64
	Close float64
}

// Bullish reports whether the candle closed at or above its open.
// A flat candle (Close == Open) counts as bullish.
func (c Candle) Bullish() bool {
	return c.Close >= c.Open
}

// BodyTop returns the higher of open and close.
func (c Candle) BodyTop() float64 {
	if c.Open > c.Close {
		return c.Open
	}
	return c.Close
}

// BodyBottom returns the lower of open and close.
func (c Candle) BodyBottom() float64 {
	if c.Open < c.Close {
		return c.Open
	}
	return c.Close
}
