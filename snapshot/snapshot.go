package snapshot

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/rustyeddy/candlechart/chart"
	"github.com/rustyeddy/candlechart/pkg/id"
	"github.com/rustyeddy/candlechart/pricing"
)

// Plot margin in pixels, keeps the outermost candles off the image edge.
const margin = 20

// Writer exports the current chart view as PNG files.
type Writer struct {
	Dir    string
	Width  int
	Height int
}

// Save renders the candles and overlays with the given theme and style and
// writes chart-<ULID>.png into the writer's directory. Returns the file
// path. An empty candle slice still produces an image: just the background,
// the same way the live chart renders an empty buffer.
func (w Writer) Save(candles []pricing.Candle, overlays []chart.Overlay, theme chart.Theme, style chart.Style) (string, error) {
	if w.Width < 1 || w.Height < 1 {
		return "", fmt.Errorf("snapshot size %dx%d is not drawable", w.Width, w.Height)
	}

	img := Render(candles, overlays, theme, style, w.Width, w.Height)

	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}
	path := filepath.Join(w.Dir, fmt.Sprintf("chart-%s.png", id.New()))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create snapshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img.Image()); err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	return path, nil
}

// Render draws the chart into a fresh image surface: themed background,
// candles, then overlays, using the same axis math as the live widget.
func Render(candles []pricing.Candle, overlays []chart.Overlay, theme chart.Theme, style chart.Style, width, height int) *chart.ImageSurface {
	palette := theme.Palette()
	surface := chart.NewImageSurface(width, height, palette.Background)
	if len(candles) == 0 {
		return surface
	}

	plotW := float32(width - 2*margin)
	plotH := float32(height - 2*margin)

	minLow, maxHigh := candles[0].Low, candles[0].High
	for _, c := range candles[1:] {
		if c.Low < minLow {
			minLow = c.Low
		}
		if c.High > maxHigh {
			maxHigh = c.High
		}
	}

	tMin, tMax := chart.TimeRange(candles)
	pMin, pMax := chart.PriceRange(minLow, maxHigh)
	tScale := chart.TimeScale(tMin, tMax, plotW)
	pScale := chart.PriceScale(pMin, pMax, plotH)
	timeToX := func(t time.Time) float32 { return tScale(t) + margin }
	priceToY := func(p float64) float32 { return pScale(p) + margin }

	st := style
	st.Wick = palette.Wick
	chart.Draw(surface, candles, timeToX, priceToY, plotW, st)
	for _, ov := range overlays {
		chart.DrawOverlay(surface, candles, ov, timeToX, priceToY)
	}
	return surface
}
