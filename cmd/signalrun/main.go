// Binary signalrun computes a rolling-mean trend signal over a price series and emits a metrics summary.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"signalrun/internal/job"
	"signalrun/internal/util"
)

func main() {
	_ = godotenv.Load() // best-effort

	input := flag.String("input", "", "path to the price data file (csv, json, or parquet)")
	configPath := flag.String("config", "", "path to the YAML settings file")
	output := flag.String("output", "", "where to write the metrics summary (json)")
	logFile := flag.String("log-file", "", "where to write the run log")
	flag.Parse()

	if *input == "" || *configPath == "" || *output == "" || *logFile == "" {
		fmt.Fprintln(os.Stderr, "usage: signalrun --input data.csv --config config.yaml --output metrics.json --log-file run.log")
		os.Exit(2)
	}

	logger, closeLog, err := util.NewRunLogger(os.Getenv("SIGNALRUN_LOG_LEVEL"), *logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		os.Exit(1)
	}
	logger = logger.With().Str("run_id", uuid.NewString()).Logger()

	runner := job.NewRunner(logger, os.Stdout)
	_, runErr := runner.Run(job.Paths{Input: *input, Config: *configPath, Output: *output})
	if err := closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "close log file: %v\n", err)
	}
	if runErr != nil {
		os.Exit(1)
	}
}
