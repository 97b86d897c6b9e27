package series

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"signalrun/internal/signal"
)

// CSVLoader reads bars from a comma-separated file with a header row. A
// "close" column is required (case-insensitive); a "t", "timestamp", or "date"
// column is carried through when it parses as an integer.
type CSVLoader struct{}

// Extension returns the file extension handled by this loader.
func (CSVLoader) Extension() string { return "csv" }

// Load parses the file into bars, preserving row order.
func (CSVLoader) Load(path string) ([]signal.Bar, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = ','
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input file %s appears to be empty", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	closeCol, tsCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "close":
			closeCol = i
		case "t", "timestamp", "date":
			if tsCol < 0 {
				tsCol = i
			}
		}
	}
	if closeCol < 0 {
		return nil, fmt.Errorf("input file is missing the close column, found: %v", header)
	}

	var bars []signal.Bar
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", line, err)
		}
		if closeCol >= len(row) {
			return nil, fmt.Errorf("csv row %d has no close value", line)
		}
		close, err := strconv.ParseFloat(strings.TrimSpace(row[closeCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("csv row %d: close value %q is not a number", line, row[closeCol])
		}
		bar := signal.Bar{Close: close}
		if tsCol >= 0 && tsCol < len(row) {
			// Dates that are not plain integers still order the series by row position.
			if ts, err := strconv.ParseInt(strings.TrimSpace(row[tsCol]), 10, 64); err == nil {
				bar.Timestamp = ts
			}
		}
		bars = append(bars, bar)
	}
	return bars, nil
}
