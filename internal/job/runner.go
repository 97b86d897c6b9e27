// Package job wires the load, compute, summarize, and emit phases of a single batch run.
package job

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"signalrun/internal/config"
	"signalrun/internal/metrics"
	"signalrun/internal/report"
	"signalrun/internal/series"
	"signalrun/internal/strategy"
)

// Paths collects the file locations a run operates on. The log file is opened
// by the caller (the logger needs it before config parsing can fail).
type Paths struct {
	Input  string
	Config string
	Output string
}

// Runner executes one batch run end to end. Any failure is terminal: the error
// report is written to the output path and the error returned to the caller.
type Runner struct {
	log  zerolog.Logger
	echo io.Writer
}

// NewRunner wraps the logger and the stream summaries are echoed to.
func NewRunner(log zerolog.Logger, echo io.Writer) *Runner {
	return &Runner{log: log, echo: echo}
}

// Run performs the whole pipeline and returns the summary it wrote.
func (r *Runner) Run(paths Paths) (report.Summary, error) {
	start := time.Now()

	fail := func(version string, err error) (report.Summary, error) {
		latency := time.Since(start).Milliseconds()
		r.log.Error().Err(err).Msg("job failed")
		doc := report.NewErrorReport(version, err, latency)
		if werr := report.Write(paths.Output, doc, r.echo); werr != nil {
			r.log.Error().Err(werr).Msg("write error report")
		}
		return report.Summary{}, err
	}

	r.log.Info().Msg("starting job")

	cfg, err := config.Load(paths.Config)
	if err != nil {
		return fail("unknown", fmt.Errorf("load config: %w", err))
	}
	r.log.Info().Int("seed", cfg.Seed).Int("window", cfg.Window).Str("version", cfg.Version).Msg("config loaded")

	if cfg.MetricsAddr != "" {
		srv := metrics.Serve(cfg.MetricsAddr)
		defer srv.Close()
		r.log.Info().Str("addr", cfg.MetricsAddr).Msg("metrics up")
	}

	// The core pass is deterministic; the seed only drives non-core concerns
	// such as which records get sampled into the debug log.
	rng := rand.New(rand.NewSource(int64(cfg.Seed)))

	bars, err := series.Load(paths.Input)
	if err != nil {
		return fail(cfg.Version, fmt.Errorf("load input: %w", err))
	}
	r.log.Info().Int("rows", len(bars)).Str("input", paths.Input).Msg("data loaded")

	comp, err := strategy.NewRollingMean(cfg.Window)
	if err != nil {
		return fail(cfg.Version, err)
	}

	records, rows := comp.Compute(series.Closes(bars))
	ups := report.CountUp(records)
	r.log.Info().
		Int("rows_processed", rows).
		Int("skipped", len(bars)-rows).
		Int("up", ups).
		Int("down", rows-ups).
		Msg("rolling mean computed")

	if n := len(records); n > 0 {
		for _, idx := range rng.Perm(n)[:min(3, n)] {
			rec := records[idx]
			r.log.Debug().
				Int("index", rec.Index).
				Float64("close", rec.Close).
				Float64("rolling_mean", rec.RollingMean).
				Int("signal", rec.Signal).
				Msg("sampled record")
		}
	}

	latency := time.Since(start).Milliseconds()
	summary := report.Summarize(records, cfg.Version, cfg.Seed, latency)
	metrics.ObserveRun(rows, ups, latency)

	if err := report.Write(paths.Output, summary, r.echo); err != nil {
		r.log.Error().Err(err).Msg("job failed")
		return report.Summary{}, err
	}

	r.log.Info().
		Int("rows_processed", summary.RowsProcessed).
		Float64("value", summary.Value).
		Int64("latency_ms", summary.LatencyMs).
		Msg("job finished")
	return summary, nil
}
