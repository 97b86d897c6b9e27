package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RowsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "rows_processed_total", Help: "Rows with a fully defined rolling window"},
	)
	SignalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "signals_total", Help: "Signals produced by direction"},
		[]string{"direction"},
	)
	RunDuration = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "run_duration_ms", Help: "Wall-clock duration of the last run in milliseconds"},
	)
)

func init() {
	prometheus.MustRegister(RowsProcessed, SignalsTotal, RunDuration)
}

// ObserveRun records the aggregate counters for one completed computation.
func ObserveRun(rows, ups int, latencyMs int64) {
	RowsProcessed.Add(float64(rows))
	SignalsTotal.WithLabelValues("up").Add(float64(ups))
	SignalsTotal.WithLabelValues("down").Add(float64(rows - ups))
	RunDuration.Set(float64(latencyMs))
}

func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
