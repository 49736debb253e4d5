package ui

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/rustyeddy/candlechart/chart"
	"github.com/rustyeddy/candlechart/pricing"
)

// Plot margins. The left gutter holds price labels, the bottom gutter time
// labels; top and right just keep candles off the widget edge.
const (
	marginLeft   float32 = 56
	marginRight  float32 = 12
	marginTop    float32 = 12
	marginBottom float32 = 24

	axisTextSize float32 = 12
	timeFormat           = "15:04:05"
)

// Chart is the candlestick plot widget. It owns no data: the controller
// pushes the visible slice, overlays, style, and palette through SetState
// and the widget repaints from that alone. All axis math goes through the
// chart package, so the widget stays a thin Fyne adapter.
type Chart struct {
	widget.BaseWidget

	candles  []pricing.Candle
	overlays []chart.Overlay
	style    chart.Style
	palette  chart.Palette
}

// NewChart returns an empty chart with the default style and light palette.
func NewChart() *Chart {
	c := &Chart{
		style:   chart.DefaultStyle(),
		palette: chart.Light.Palette(),
	}
	c.ExtendBaseWidget(c)
	return c
}

// SetState replaces everything the widget draws and repaints.
func (c *Chart) SetState(candles []pricing.Candle, overlays []chart.Overlay, style chart.Style, palette chart.Palette) {
	c.candles = candles
	c.overlays = overlays
	c.style = style
	c.palette = palette
	c.Refresh()
}

// CreateRenderer implements fyne.Widget.
func (c *Chart) CreateRenderer() fyne.WidgetRenderer {
	return &chartRenderer{
		chart:      c,
		background: canvas.NewRectangle(c.palette.Background),
	}
}

type chartRenderer struct {
	chart      *Chart
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *chartRenderer) MinSize() fyne.Size {
	return fyne.NewSize(480, 320)
}

func (r *chartRenderer) Layout(size fyne.Size) {
	r.rebuild(size)
}

func (r *chartRenderer) Refresh() {
	r.rebuild(r.chart.Size())
}

func (r *chartRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *chartRenderer) Destroy() {}

// rebuild regenerates the full canvas object list: background, candles,
// overlays, axis labels. An empty buffer leaves just the background.
func (r *chartRenderer) rebuild(size fyne.Size) {
	w := r.chart
	r.background.FillColor = w.palette.Background
	r.background.Resize(size)
	r.background.Refresh()
	r.objects = []fyne.CanvasObject{r.background}

	plotW := size.Width - marginLeft - marginRight
	plotH := size.Height - marginTop - marginBottom
	if plotW <= 0 || plotH <= 0 || len(w.candles) == 0 {
		return
	}

	minLow, maxHigh := w.candles[0].Low, w.candles[0].High
	for _, c := range w.candles[1:] {
		if c.Low < minLow {
			minLow = c.Low
		}
		if c.High > maxHigh {
			maxHigh = c.High
		}
	}

	tMin, tMax := chart.TimeRange(w.candles)
	pMin, pMax := chart.PriceRange(minLow, maxHigh)
	tScale := chart.TimeScale(tMin, tMax, plotW)
	pScale := chart.PriceScale(pMin, pMax, plotH)
	timeToX := func(t time.Time) float32 { return tScale(t) + marginLeft }
	priceToY := func(p float64) float32 { return pScale(p) + marginTop }

	surface := &canvasSurface{}
	st := w.style
	st.Wick = w.palette.Wick
	chart.Draw(surface, w.candles, timeToX, priceToY, plotW, st)
	for _, ov := range w.overlays {
		chart.DrawOverlay(surface, w.candles, ov, timeToX, priceToY)
	}
	r.objects = append(r.objects, surface.objects...)

	r.objects = append(r.objects,
		r.axisLabel(fmt.Sprintf("%.2f", pMax), fyne.NewPos(4, priceToY(pMax)-axisTextSize/2)),
		r.axisLabel(fmt.Sprintf("%.2f", pMin), fyne.NewPos(4, priceToY(pMin)-axisTextSize/2)),
		r.axisLabel(tMin.Format(timeFormat), fyne.NewPos(marginLeft, size.Height-marginBottom+4)),
		r.axisLabel(tMax.Format(timeFormat), fyne.NewPos(size.Width-marginRight-64, size.Height-marginBottom+4)),
	)
}

func (r *chartRenderer) axisLabel(text string, pos fyne.Position) *canvas.Text {
	t := canvas.NewText(text, r.chart.palette.AxisLabel)
	t.TextSize = axisTextSize
	t.Move(pos)
	return t
}

// canvasSurface implements chart.Surface by collecting Fyne canvas objects.
// Positions are already in widget coordinates when the renderer calls it.
type canvasSurface struct {
	objects []fyne.CanvasObject
	stroke  penState
	stack   []penState
}

type penState struct {
	color color.Color
	width float32
}

func (s *canvasSurface) SetStroke(c color.Color, width float32) {
	s.stroke = penState{color: c, width: width}
}

func (s *canvasSurface) Save() {
	s.stack = append(s.stack, s.stroke)
}

func (s *canvasSurface) Restore() {
	if n := len(s.stack); n > 0 {
		s.stroke = s.stack[n-1]
		s.stack = s.stack[:n-1]
	}
}

func (s *canvasSurface) DrawLine(p1, p2 chart.Point) {
	l := canvas.NewLine(s.stroke.color)
	l.StrokeWidth = s.stroke.width
	l.Position1 = fyne.NewPos(p1.X, p1.Y)
	l.Position2 = fyne.NewPos(p2.X, p2.Y)
	s.objects = append(s.objects, l)
}

func (s *canvasSurface) FillRect(r chart.Rect, fill color.Color) {
	rect := canvas.NewRectangle(fill)
	rect.Move(fyne.NewPos(r.X, r.Y))
	rect.Resize(fyne.NewSize(r.W, r.H))
	s.objects = append(s.objects, rect)
}
