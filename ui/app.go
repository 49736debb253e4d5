package ui

import (
	"context"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/rustyeddy/candlechart/chart"
	"github.com/rustyeddy/candlechart/config"
	"github.com/rustyeddy/candlechart/indicators"
	"github.com/rustyeddy/candlechart/pricing"
	"github.com/rustyeddy/candlechart/series"
	"github.com/rustyeddy/candlechart/snapshot"
)

// UI control steps: squeeze nudges the body width by a tenth, zoom changes
// the visible window five candles at a time with a floor of five.
const (
	squeezeStep = 0.1
	zoomStep    = 5
	minVisible  = 5

	titleText = "Real-Time Stock Prices"
)

// Overlay line colors. Series properties like the body colors, not theme
// properties.
var (
	smaColor = color.NRGBA{R: 0x21, G: 0x96, B: 0xF3, A: 0xFF} // #2196F3
	emaColor = color.NRGBA{R: 0xFF, G: 0x98, B: 0x00, A: 0xFF} // #FF9800
)

// App owns the whole chart session: the synthetic feed, the sliding window,
// the theme flag, and the Fyne shell around them. Every mutation happens on
// the UI thread (the ticker and config watcher hop over via fyne.Do).
type App struct {
	cfg     *config.Config
	cfgPath string
	log     *zap.Logger

	fapp fyne.App
	win  fyne.Window

	feed    *pricing.RandomWalk
	window  *series.Window
	style   chart.Style
	theme   chart.Theme
	paused  bool
	showSMA bool
	showEMA bool

	ticker *time.Ticker
	shots  snapshot.Writer

	chart     *Chart
	title     *canvas.Text
	pauseBtn  *widget.Button
	slider    *widget.Slider
	bullEntry *widget.Entry
	bearEntry *widget.Entry
}

// New builds the controller from a validated config. The chart is seeded
// with a full window of synthetic candles ending at now.
func New(cfg *config.Config, cfgPath string, log *zap.Logger) *App {
	a := &App{
		cfg:     cfg,
		cfgPath: cfgPath,
		log:     log,
		theme:   chart.Light,
		window:  series.New(cfg.Chart.Window),
	}
	if cfg.Chart.Dark {
		a.theme = chart.Dark
	}

	a.style = chart.DefaultStyle()
	a.style.BodyWidth = cfg.Chart.BodyWidth
	a.style.Increasing, _ = chart.ParseHex(cfg.Chart.BullColor)
	a.style.Decreasing, _ = chart.ParseHex(cfg.Chart.BearColor)
	a.showSMA = cfg.Indicators.SMA > 0
	a.showEMA = cfg.Indicators.EMA > 0

	a.shots = snapshot.Writer{
		Dir:    cfg.Snapshot.Dir,
		Width:  cfg.Snapshot.Width,
		Height: cfg.Snapshot.Height,
	}

	seed := cfg.Feed.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.feed = pricing.NewRandomWalk(seed, cfg.Feed.StepScale)

	n := cfg.Chart.Window
	start := time.Now().Truncate(time.Second).Add(-time.Duration(n-1) * time.Second)
	for _, c := range a.feed.Seed(start, cfg.Feed.BasePrice, n) {
		a.window.Append(c)
	}
	return a
}

// Run builds the window and blocks until it closes.
func (a *App) Run() error {
	a.fapp = fyneapp.New()
	a.win = a.fapp.NewWindow(titleText)

	a.win.SetContent(a.buildUI())
	a.win.Resize(fyne.NewSize(1200, 800))

	ctx, cancel := context.WithCancel(context.Background())
	a.win.SetOnClosed(cancel)

	a.ticker = time.NewTicker(a.cfg.TickPeriod())
	go a.tickLoop(ctx)

	if a.cfgPath != "" {
		go func() {
			err := config.Watch(ctx, a.cfgPath, a.log, func(cfg *config.Config) {
				fyne.Do(func() { a.applyConfig(cfg) })
			})
			if err != nil && ctx.Err() == nil {
				a.log.Warn("config watcher stopped", zap.Error(err))
			}
		}()
	}

	a.applyTheme()
	a.log.Info("chart started",
		zap.Int("window", a.window.Capacity()),
		zap.Duration("period", a.cfg.TickPeriod()),
		zap.String("theme", a.theme.String()))

	a.win.ShowAndRun()
	return nil
}

// buildUI constructs the widget tree and wires every handler. Separate from
// Run so the handlers can be driven without opening a window.
func (a *App) buildUI() fyne.CanvasObject {
	a.chart = NewChart()
	a.title = canvas.NewText(titleText, a.theme.Palette().Title)
	a.title.TextSize = 18

	themeBtn := widget.NewButton("Toggle Theme", a.toggleTheme)
	a.pauseBtn = widget.NewButton("Pause", a.togglePause)
	squeezeIn := widget.NewButton("Squeeze In", func() { a.squeeze(-squeezeStep) })
	squeezeOut := widget.NewButton("Squeeze Out", func() { a.squeeze(squeezeStep) })
	zoomIn := widget.NewButton("Zoom In", func() { a.zoom(-zoomStep) })
	zoomOut := widget.NewButton("Zoom Out", func() { a.zoom(zoomStep) })
	shotBtn := widget.NewButton("Snapshot", a.saveSnapshot)
	csvBtn := widget.NewButton("Export CSV", a.exportCSV)

	a.bullEntry = widget.NewEntry()
	a.bullEntry.SetText(a.cfg.Chart.BullColor)
	a.bullEntry.OnSubmitted = func(string) { a.applyBodyColors() }
	a.bearEntry = widget.NewEntry()
	a.bearEntry.SetText(a.cfg.Chart.BearColor)
	a.bearEntry.OnSubmitted = func(string) { a.applyBodyColors() }

	smaCheck := widget.NewCheck("SMA", func(on bool) { a.toggleIndicator(&a.showSMA, on) })
	smaCheck.Checked = a.showSMA
	emaCheck := widget.NewCheck("EMA", func(on bool) { a.toggleIndicator(&a.showEMA, on) })
	emaCheck.Checked = a.showEMA

	a.slider = widget.NewSlider(0, float64(a.window.MaxScroll()))
	a.slider.Step = 1
	a.slider.OnChanged = a.onScroll

	buttons := container.NewHBox(themeBtn, a.pauseBtn, squeezeIn, squeezeOut, zoomIn, zoomOut, shotBtn, csvBtn)
	controls := container.NewHBox(
		widget.NewLabel("Bull"), a.bullEntry,
		widget.NewLabel("Bear"), a.bearEntry,
		smaCheck, emaCheck,
	)
	top := container.NewVBox(buttons, controls, container.NewCenter(a.title))
	return container.NewBorder(top, a.slider, nil, nil, a.chart)
}

func (a *App) tickLoop(ctx context.Context) {
	defer a.ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-a.ticker.C:
			fyne.Do(a.advance)
		}
	}
}

// advance appends one synthetic candle and repaints. Runs on the UI thread.
func (a *App) advance() {
	if a.paused {
		return
	}
	c := a.feed.Next()
	a.window.Append(c)
	a.updateSlider()
	a.refresh()
	a.log.Debug("tick",
		zap.Time("time", c.Time),
		zap.Float64("close", c.Close),
		zap.Int("history", a.window.Len()))
}

// refresh pushes the current visible state into the widget.
func (a *App) refresh() {
	candles := a.window.Visible()
	a.chart.SetState(candles, a.overlays(candles), a.style, a.theme.Palette())
}

// overlays recomputes the enabled indicator lines for the visible slice.
// Thirty candles a frame makes recomputation cheaper than bookkeeping an
// incremental state per scroll position.
func (a *App) overlays(candles []pricing.Candle) []chart.Overlay {
	var ovs []chart.Overlay
	if p := a.cfg.Indicators.SMA; a.showSMA && p > 0 {
		ind := indicators.NewMA(p)
		ovs = append(ovs, chart.Overlay{
			Name:   ind.Name(),
			Values: indicators.Series(ind, candles),
			Color:  smaColor,
			Width:  2,
		})
	}
	if p := a.cfg.Indicators.EMA; a.showEMA && p > 0 {
		ind := indicators.NewEMA(p)
		ovs = append(ovs, chart.Overlay{
			Name:   ind.Name(),
			Values: indicators.Series(ind, candles),
			Color:  emaColor,
			Width:  2,
		})
	}
	return ovs
}

// applyBodyColors reads both hex entries into the style. A bad hex leaves
// both colors as they were, so the chart never ends up half-recolored.
func (a *App) applyBodyColors() {
	bull, err := chart.ParseHex(a.bullEntry.Text)
	if err != nil {
		a.log.Warn("bad bullish color", zap.String("hex", a.bullEntry.Text), zap.Error(err))
		return
	}
	bear, err := chart.ParseHex(a.bearEntry.Text)
	if err != nil {
		a.log.Warn("bad bearish color", zap.String("hex", a.bearEntry.Text), zap.Error(err))
		return
	}
	a.style.Increasing = bull
	a.style.Decreasing = bear
	a.refresh()
	a.log.Info("body colors changed",
		zap.String("bull", a.bullEntry.Text),
		zap.String("bear", a.bearEntry.Text))
}

func (a *App) toggleIndicator(flag *bool, on bool) {
	*flag = on
	a.refresh()
}

func (a *App) toggleTheme() {
	a.theme = a.theme.Toggle()
	a.applyTheme()
	a.log.Info("theme toggled", zap.String("theme", a.theme.String()))
}

// applyTheme pushes the palette into everything theme-derived. The series
// body colors are untouched on purpose.
func (a *App) applyTheme() {
	pal := a.theme.Palette()
	a.title.Color = pal.Title
	a.title.Refresh()
	a.refresh()
}

func (a *App) togglePause() {
	a.paused = !a.paused
	if a.paused {
		a.pauseBtn.SetText("Play")
	} else {
		a.pauseBtn.SetText("Pause")
		a.window.Follow()
		a.updateSlider()
		a.refresh()
	}
	a.log.Info("pause toggled", zap.Bool("paused", a.paused))
}

func (a *App) squeeze(delta float64) {
	a.style = a.style.Squeeze(delta)
	a.refresh()
}

func (a *App) zoom(delta int) {
	n := a.window.Capacity() + delta
	if n < minVisible {
		n = minVisible
	}
	if n == a.window.Capacity() {
		return
	}
	a.window.Resize(n)
	a.updateSlider()
	a.refresh()
	a.log.Debug("zoom", zap.Int("visible", n))
}

// onScroll moves the visible window across the retained history. Scrolling
// only works while paused; while running the window always follows the feed.
func (a *App) onScroll(v float64) {
	if !a.paused {
		return
	}
	a.window.Scroll(int(v))
	a.refresh()
}

// updateSlider re-ranges the scroll bar after the history grows or the
// window resizes, and parks the knob at the newest window while following.
func (a *App) updateSlider() {
	a.slider.Max = float64(a.window.MaxScroll())
	if a.window.Following() {
		a.slider.SetValue(a.slider.Max)
	}
	a.slider.Refresh()
}

func (a *App) saveSnapshot() {
	candles := a.window.Visible()
	st := a.style
	st.Wick = a.theme.Palette().Wick
	path, err := a.shots.Save(candles, a.overlays(candles), a.theme, st)
	if err != nil {
		a.log.Error("snapshot failed", zap.Error(err))
		return
	}
	a.log.Info("snapshot saved", zap.String("path", path), zap.Int("candles", len(candles)))
}

// exportCSV writes the visible window, and only the visible window, to a
// CSV file next to the snapshots.
func (a *App) exportCSV() {
	candles := a.window.Visible()
	path, err := a.shots.SaveCSV(candles)
	if err != nil {
		a.log.Error("csv export failed", zap.Error(err))
		return
	}
	a.log.Info("csv exported", zap.String("path", path), zap.Int("candles", len(candles)))
}

// applyConfig applies a hot-reloaded config to the running session. Colors,
// body width, indicator periods, window size, tick period, and snapshot
// settings take effect immediately; the feed keeps its seed and base price
// for the life of the session.
func (a *App) applyConfig(cfg *config.Config) {
	a.style.BodyWidth = cfg.Chart.BodyWidth
	a.style.Increasing, _ = chart.ParseHex(cfg.Chart.BullColor)
	a.style.Decreasing, _ = chart.ParseHex(cfg.Chart.BearColor)
	a.bullEntry.SetText(cfg.Chart.BullColor)
	a.bearEntry.SetText(cfg.Chart.BearColor)

	if cfg.Chart.Window != a.window.Capacity() {
		a.window.Resize(cfg.Chart.Window)
		a.updateSlider()
	}
	if cfg.Chart.TickMillis != a.cfg.Chart.TickMillis {
		a.ticker.Reset(cfg.TickPeriod())
	}

	a.shots = snapshot.Writer{
		Dir:    cfg.Snapshot.Dir,
		Width:  cfg.Snapshot.Width,
		Height: cfg.Snapshot.Height,
	}

	a.cfg = cfg
	a.refresh()
	a.log.Info("config applied",
		zap.Int("window", cfg.Chart.Window),
		zap.Int("tick_millis", cfg.Chart.TickMillis))
}
