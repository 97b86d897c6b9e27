// Package strategy contains the rolling-mean trend computation applied to a loaded price series.
package strategy

import (
	"fmt"

	"signalrun/internal/signal"
)

// RollingMean evaluates a trailing arithmetic mean of fixed window size and
// flags positions whose close sits strictly above it.
type RollingMean struct {
	window int
}

// NewRollingMean builds the computation for the given window size.
func NewRollingMean(window int) (*RollingMean, error) {
	if window < 1 {
		return nil, fmt.Errorf("window must be >= 1, got %d", window)
	}
	return &RollingMean{window: window}, nil
}

// Name returns the configured identifier for logging.
func (r *RollingMean) Name() string { return "RollingMean" }

// Window returns the configured window size.
func (r *RollingMean) Window() int { return r.window }

// Compute runs a single pass over the closes and returns one record per
// position where the trailing window is fully defined, preserving input order.
// The mean is maintained as a running sum (add the incoming close, subtract the
// one leaving the window) so the pass stays O(N) regardless of window size.
// A window larger than the series yields zero records; that is a boundary, not
// an error.
func (r *RollingMean) Compute(closes []float64) ([]signal.Record, int) {
	if r.window > len(closes) {
		return nil, 0
	}

	records := make([]signal.Record, 0, len(closes)-r.window+1)
	var sum float64
	for i, close := range closes {
		sum += close
		if i >= r.window {
			sum -= closes[i-r.window]
		}
		if i < r.window-1 {
			continue
		}
		mean := sum / float64(r.window)
		up := 0
		if close > mean { // strict: a tie is not a signal
			up = 1
		}
		records = append(records, signal.Record{Index: i, Close: close, RollingMean: mean, Signal: up})
	}
	return records, len(records)
}
