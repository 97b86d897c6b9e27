// Package report assembles and persists the metrics summary, the single durable output of a run.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"signalrun/internal/signal"
)

// MetricSignalRate names the one metric this job reports.
const MetricSignalRate = "signal_rate"

// Run statuses surfaced in the output document.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Summary is the fixed-key metrics record written on success.
type Summary struct {
	Version       string  `json:"version"`
	RowsProcessed int     `json:"rows_processed"`
	Metric        string  `json:"metric"`
	Value         float64 `json:"value"`
	LatencyMs     int64   `json:"latency_ms"`
	Seed          int     `json:"seed"`
	Status        string  `json:"status"`
}

// ErrorReport is written instead of a Summary when the run aborts.
type ErrorReport struct {
	Version      string `json:"version"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	LatencyMs    int64  `json:"latency_ms"`
}

// Summarize folds the computed records into the metrics summary. With zero
// rows the signal rate is reported as 0 rather than dividing by zero.
func Summarize(records []signal.Record, version string, seed int, latencyMs int64) Summary {
	rows := len(records)
	var rate float64
	if rows > 0 {
		rate = round4(float64(CountUp(records)) / float64(rows))
	}
	return Summary{
		Version:       version,
		RowsProcessed: rows,
		Metric:        MetricSignalRate,
		Value:         rate,
		LatencyMs:     latencyMs,
		Seed:          seed,
		Status:        StatusSuccess,
	}
}

// NewErrorReport builds the document emitted for a failed run.
func NewErrorReport(version string, runErr error, latencyMs int64) ErrorReport {
	return ErrorReport{
		Version:      version,
		Status:       StatusError,
		ErrorMessage: runErr.Error(),
		LatencyMs:    latencyMs,
	}
}

// CountUp returns how many records carry an up signal.
func CountUp(records []signal.Record) int {
	ups := 0
	for _, rec := range records {
		if rec.Signal == 1 {
			ups++
		}
	}
	return ups
}

// Write persists the document as indented JSON and echoes it to echo (stdout
// in the binary) so the result is visible immediately.
func Write(path string, doc any, echo io.Writer) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	data = append(data, '\n')
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	if echo != nil {
		_, _ = echo.Write(data)
	}
	return nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
