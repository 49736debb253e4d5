package indicators

import (
	"math"

	"github.com/rustyeddy/candlechart/pricing"
)

// Series runs the indicator over the candles and returns one value per
// candle, NaN while the indicator is still warming up. The indicator is
// reset first, so a freshly constructed or reused indicator behaves the
// same. This is what the chart overlay draws.
func Series(ind Indicator, candles []pricing.Candle) []float64 {
	ind.Reset()
	values := make([]float64, len(candles))
	for i, c := range candles {
		ind.Update(c)
		if ind.Ready() {
			values[i] = ind.Value()
		} else {
			values[i] = math.NaN()
		}
	}
	return values
}
