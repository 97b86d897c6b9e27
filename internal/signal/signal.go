// Package signal standardizes payloads shared between data loading, the rolling computation, and reporting.
package signal

// Bar models one row of the input price series. Only Close participates in the
// computation; the remaining fields ride along so the JSON and Parquet loaders
// share one schema with the CSV loader.
type Bar struct {
	Timestamp int64   `json:"t" parquet:"t"`
	Open      float64 `json:"o,omitempty" parquet:"o,optional"`
	High      float64 `json:"h,omitempty" parquet:"h,optional"`
	Low       float64 `json:"l,omitempty" parquet:"l,optional"`
	Close     float64 `json:"c" parquet:"c"`
	Volume    int64   `json:"v,omitempty" parquet:"v,optional"`
}

// Record captures one valid window position produced by the computation.
type Record struct {
	Index       int
	Close       float64
	RollingMean float64
	Signal      int // 1 when close sits strictly above the rolling mean, else 0
}
