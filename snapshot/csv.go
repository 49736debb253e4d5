package snapshot

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rustyeddy/candlechart/pkg/id"
	"github.com/rustyeddy/candlechart/pricing"
)

// SaveCSV writes the visible candles to candles-<ULID>.csv in the writer's
// directory and returns the file path. Only the on-screen window is ever
// exported; the demo does not persist price history beyond it.
func (w Writer) SaveCSV(candles []pricing.Candle) (string, error) {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}
	path := filepath.Join(w.Dir, fmt.Sprintf("candles-%s.csv", id.New()))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"time", "open", "high", "low", "close"}); err != nil {
		return "", err
	}
	for _, c := range candles {
		cw.Write([]string{
			c.Time.Format(time.RFC3339),
			fv(c.Open),
			fv(c.High),
			fv(c.Low),
			fv(c.Close),
		})
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}
	return path, nil
}

func fv(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
