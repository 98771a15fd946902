// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_submissions_total",
			Help: "Total number of form submissions received",
		},
		[]string{"tenant", "kind"},
	)

	SubmissionsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_submissions_rejected_total",
			Help: "Total number of submissions rejected before dispatch",
		},
		[]string{"kind", "error_code"},
	)

	DispatchAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_dispatch_attempts_total",
			Help: "Total number of delivery attempts by leg and outcome",
		},
		[]string{"tenant", "leg", "outcome"},
	)

	DispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "relay_dispatch_duration_seconds",
			Help: "Duration of the full fan-out for one submission",
		},
		[]string{"tenant", "kind"},
	)
)
