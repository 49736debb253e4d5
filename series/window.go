package series

import (
	"github.com/rustyeddy/candlechart/pricing"
)

// DefaultCapacity is the number of candles visible on screen by default.
const DefaultCapacity = 30

// Window is a sliding view over an append-only candle history. The history
// keeps everything produced this session (memory only, two candles a second
// is nothing); the visible window is the most recent capacity candles, or an
// older slice of the same length when scrolled back.
//
// Window is not synchronized. It is owned by the chart controller and only
// ever touched from the UI thread.
type Window struct {
	history  []pricing.Candle
	capacity int

	// offset is the history index of the first visible candle when not
	// following the feed. Ignored while follow is true.
	offset int
	follow bool
}

// New returns an empty window. Capacities below 1 are raised to 1.
func New(capacity int) *Window {
	if capacity < 1 {
		capacity = 1
	}
	return &Window{capacity: capacity, follow: true}
}

// Append adds one candle to the history. While following, the visible window
// slides forward so the oldest visible candle drops off once the window is
// full. Insertion order is the only eviction order.
func (w *Window) Append(c pricing.Candle) {
	w.history = append(w.history, c)
}

// Visible returns the candles currently on screen: the most recent capacity
// candles while following, or the scrolled slice otherwise. The returned
// slice aliases the history; callers must not mutate it.
func (w *Window) Visible() []pricing.Candle {
	if len(w.history) == 0 {
		return nil
	}
	start := w.offset
	if w.follow {
		start = len(w.history) - w.capacity
	}
	if start < 0 {
		start = 0
	}
	end := start + w.capacity
	if end > len(w.history) {
		end = len(w.history)
	}
	return w.history[start:end]
}

// VisibleRange returns the visible candles plus the lowest low and highest
// high across them, for axis scaling. With an empty history it returns
// (nil, 0, 0).
func (w *Window) VisibleRange() (candles []pricing.Candle, minLow, maxHigh float64) {
	candles = w.Visible()
	if len(candles) == 0 {
		return nil, 0, 0
	}
	minLow, maxHigh = candles[0].Low, candles[0].High
	for _, c := range candles[1:] {
		if c.Low < minLow {
			minLow = c.Low
		}
		if c.High > maxHigh {
			maxHigh = c.High
		}
	}
	return candles, minLow, maxHigh
}

// Len returns the total number of candles in the history.
func (w *Window) Len() int {
	return len(w.history)
}

// Capacity returns the visible window size.
func (w *Window) Capacity() int {
	return w.capacity
}

// Resize changes the visible window size. Values below 1 are raised to 1.
// Resizing snaps the view back to following the feed.
func (w *Window) Resize(capacity int) {
	if capacity < 1 {
		capacity = 1
	}
	w.capacity = capacity
	w.follow = true
}

// MaxScroll returns the largest valid Scroll offset: the start index of the
// newest full window. Zero when the history fits on screen.
func (w *Window) MaxScroll() int {
	if n := len(w.history) - w.capacity; n > 0 {
		return n
	}
	return 0
}

// Scroll pins the visible window to start at the given history index,
// clamped to [0, MaxScroll]. The window stops following the feed until
// Follow is called.
func (w *Window) Scroll(start int) {
	if start < 0 {
		start = 0
	}
	if max := w.MaxScroll(); start > max {
		start = max
	}
	w.offset = start
	w.follow = false
}

// Follow resumes tracking the newest candles.
func (w *Window) Follow() {
	w.follow = true
}

// Following reports whether the window tracks the newest candles.
func (w *Window) Following() bool {
	return w.follow
}
