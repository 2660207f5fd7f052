package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"gigmatch/internal/common/errors"
)

var (
	OperationsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gigmatch_operations_completed_total",
			Help: "Total number of engine and identity operations completed",
		},
		[]string{"operation"},
	)

	OperationsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gigmatch_operations_failed_total",
			Help: "Total number of engine and identity operations failed",
		},
		[]string{"operation", "error_code"},
	)

	OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "gigmatch_operation_duration_seconds",
			Help: "Duration of operations in seconds, including simulated latency",
		},
		[]string{"operation"},
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gigmatch_events_published_total",
			Help: "Total number of domain events published",
		},
		[]string{"type"},
	)
)

// Observe records the outcome of one operation. Failures are labelled
// with the taxonomy error code, or "internal" for anything else.
func Observe(operation string, start time.Time, err error) {
	OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		code := string(errors.CodeOf(err))
		if code == "" {
			code = "internal"
		}
		OperationsFailed.WithLabelValues(operation, code).Inc()
		return
	}
	OperationsCompleted.WithLabelValues(operation).Inc()
}
