package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	solverRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "allocation_solver_runs_total",
		Help: "Solver invocations by strategy and resulting status.",
	}, []string{"strategy", "status"})

	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "allocation_solve_duration_seconds",
		Help:    "Wall time of one solve.",
		Buckets: prometheus.DefBuckets,
	}, []string{"strategy"})

	solveNodes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "allocation_solve_nodes",
		Help:    "Search steps explored in one solve.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10),
	}, []string{"strategy"})
)

// ObserveSolve records one finished solve. Failed solves are recorded
// with status "error".
func ObserveSolve(strategy, status string, elapsed time.Duration, nodes int) {
	solverRuns.WithLabelValues(strategy, status).Inc()
	solveDuration.WithLabelValues(strategy).Observe(elapsed.Seconds())
	solveNodes.WithLabelValues(strategy).Observe(float64(nodes))
}
