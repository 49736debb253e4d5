package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/candlechart/config"
	"github.com/rustyeddy/candlechart/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		window  int
		period  int
		dark    bool
		debug   bool
	)

	cmd := &cobra.Command{
		Use:   "candlechart",
		Short: "Real-time candlestick chart demo with a synthetic price feed",
		Long: `candlechart renders a live candlestick chart driven by a synthetic
random-walk price feed. The chart keeps a sliding window of recent candles,
supports light/dark themes, squeeze and zoom controls, indicator overlays,
and PNG snapshots. With --config the file is also watched for live changes.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if cfgPath != "" {
				loaded, err := config.LoadFromFile(cfgPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			// Flags beat the file, but only when actually set.
			if cmd.Flags().Changed("window") {
				cfg.Chart.Window = window
			}
			if cmd.Flags().Changed("period") {
				cfg.Chart.TickMillis = period
			}
			if cmd.Flags().Changed("dark") {
				cfg.Chart.Dark = dark
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := newLogger(debug)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer log.Sync()

			return ui.New(cfg, cfgPath, log).Run()
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "path to YAML/JSON config file (watched for changes)")
	cmd.Flags().IntVarP(&window, "window", "w", 30, "visible candles")
	cmd.Flags().IntVarP(&period, "period", "p", 500, "animation period in milliseconds")
	cmd.Flags().BoolVar(&dark, "dark", false, "start in dark theme")
	cmd.Flags().BoolVar(&debug, "debug", false, "debug logging")

	return cmd
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}
