package series

import (
	"encoding/json"
	"fmt"
	"os"

	"signalrun/internal/signal"
)

// JSONLoader reads bars from a JSON array of OHLCV objects.
type JSONLoader struct{}

// Extension returns the file extension handled by this loader.
func (JSONLoader) Extension() string { return "json" }

// Load decodes the file into bars, preserving array order.
func (JSONLoader) Load(path string) ([]signal.Bar, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	var bars []signal.Bar
	if err := json.NewDecoder(file).Decode(&bars); err != nil {
		return nil, fmt.Errorf("decode json input: %w", err)
	}
	return bars, nil
}
