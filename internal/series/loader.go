// Package series loads an ordered price series from tabular input files.
//
// Row order in the file is chronological order: no sorting, no deduplication.
package series

import (
	"fmt"
	"path/filepath"
	"strings"

	"signalrun/internal/signal"
)

// Loader reads an ordered series of bars from one file format.
type Loader interface {
	Extension() string
	Load(path string) ([]signal.Bar, error)
}

// ForPath returns the loader matching the file extension. Nil when the format
// is not supported.
func ForPath(path string) Loader {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "csv":
		return CSVLoader{}
	case "json":
		return JSONLoader{}
	case "parquet":
		return ParquetLoader{}
	default:
		return nil
	}
}

// Load reads the series at path using the extension-matched loader. An empty
// series is an input error: the run cannot proceed without rows.
func Load(path string) ([]signal.Bar, error) {
	loader := ForPath(path)
	if loader == nil {
		return nil, fmt.Errorf("unsupported input format %q (use: csv, json, parquet)", filepath.Ext(path))
	}
	bars, err := loader.Load(path)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("input file %s has no rows", path)
	}
	return bars, nil
}

// Closes extracts the close column, preserving input order.
func Closes(bars []signal.Bar) []float64 {
	closes := make([]float64, len(bars))
	for i, bar := range bars {
		closes[i] = bar.Close
	}
	return closes
}
