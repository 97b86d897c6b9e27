package series

import (
	"fmt"

	"github.com/parquet-go/parquet-go"

	"signalrun/internal/signal"
)

// ParquetLoader reads bars from a Parquet file using the t/o/h/l/c/v schema.
type ParquetLoader struct{}

// Extension returns the file extension handled by this loader.
func (ParquetLoader) Extension() string { return "parquet" }

// Load reads the whole file into bars, preserving row-group order.
func (ParquetLoader) Load(path string) ([]signal.Bar, error) {
	bars, err := parquet.ReadFile[signal.Bar](path)
	if err != nil {
		return nil, fmt.Errorf("read parquet input: %w", err)
	}
	return bars, nil
}
