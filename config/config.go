package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/candlechart/chart"
)

// Config is the complete chart application configuration.
type Config struct {
	Chart      ChartConfig      `json:"chart" yaml:"chart"`
	Feed       FeedConfig       `json:"feed" yaml:"feed"`
	Indicators IndicatorsConfig `json:"indicators" yaml:"indicators"`
	Snapshot   SnapshotConfig   `json:"snapshot" yaml:"snapshot"`
}

// ChartConfig contains the window and rendering parameters.
type ChartConfig struct {
	Window     int     `json:"window" yaml:"window"`           // visible candles
	TickMillis int     `json:"tick_millis" yaml:"tick_millis"` // animation period
	BodyWidth  float64 `json:"body_width" yaml:"body_width"`   // fraction of one slot
	Dark       bool    `json:"dark" yaml:"dark"`               // start in dark theme
	BullColor  string  `json:"bull_color" yaml:"bull_color"`   // body fill, close >= open
	BearColor  string  `json:"bear_color" yaml:"bear_color"`   // body fill, close < open
}

// FeedConfig contains the synthetic price walk parameters.
type FeedConfig struct {
	BasePrice float64 `json:"base_price" yaml:"base_price"`
	StepScale float64 `json:"step_scale" yaml:"step_scale"`
	Seed      int64   `json:"seed,omitempty" yaml:"seed,omitempty"` // 0 = time-seeded
}

// IndicatorsConfig contains the overlay settings. A period of 0 disables
// that overlay.
type IndicatorsConfig struct {
	SMA int `json:"sma" yaml:"sma"`
	EMA int `json:"ema" yaml:"ema"`
}

// SnapshotConfig contains the chart export settings.
type SnapshotConfig struct {
	Dir    string `json:"dir" yaml:"dir"`
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
}

// TickPeriod returns the animation period as a duration.
func (c *Config) TickPeriod() time.Duration {
	return time.Duration(c.Chart.TickMillis) * time.Millisecond
}

// LoadFromFile loads configuration from a file (JSON or YAML based on
// content, YAML tried first).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Chart.Window < 1 {
		return fmt.Errorf("chart.window must be at least 1")
	}
	if c.Chart.TickMillis < 1 {
		return fmt.Errorf("chart.tick_millis must be positive")
	}
	if c.Chart.BodyWidth < chart.MinBodyWidth || c.Chart.BodyWidth > chart.MaxBodyWidth {
		return fmt.Errorf("chart.body_width must be in [%g, %g]",
			chart.MinBodyWidth, chart.MaxBodyWidth)
	}
	if _, err := chart.ParseHex(c.Chart.BullColor); err != nil {
		return fmt.Errorf("chart.bull_color: %w", err)
	}
	if _, err := chart.ParseHex(c.Chart.BearColor); err != nil {
		return fmt.Errorf("chart.bear_color: %w", err)
	}
	if c.Feed.BasePrice <= 0 {
		return fmt.Errorf("feed.base_price must be positive")
	}
	if c.Feed.StepScale <= 0 {
		return fmt.Errorf("feed.step_scale must be positive")
	}
	if c.Indicators.SMA < 0 || c.Indicators.EMA < 0 {
		return fmt.Errorf("indicator periods must not be negative")
	}
	if c.Snapshot.Width < 1 || c.Snapshot.Height < 1 {
		return fmt.Errorf("snapshot dimensions must be positive")
	}
	if c.Snapshot.Dir == "" {
		return fmt.Errorf("snapshot.dir is required")
	}
	return nil
}

// Default returns a configuration with the demo's stock settings.
func Default() *Config {
	return &Config{
		Chart: ChartConfig{
			Window:     30,
			TickMillis: 500,
			BodyWidth:  chart.DefaultBodyWidth,
			BullColor:  "#4CAF50",
			BearColor:  "#F44336",
		},
		Feed: FeedConfig{
			BasePrice: 100,
			StepScale: 0.5,
		},
		Indicators: IndicatorsConfig{
			SMA: 7,
			EMA: 7,
		},
		Snapshot: SnapshotConfig{
			Dir:    ".",
			Width:  1200,
			Height: 800,
		},
	}
}
