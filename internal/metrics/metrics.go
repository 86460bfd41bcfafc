// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	mutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "directory_mutations_total",
			Help: "Directory mutations by entity, operation and outcome",
		},
		[]string{"entity", "op", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "directory_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// RecordMutation counts one create, update or delete attempt.
func RecordMutation(entity, op string, success bool) {
	outcome := OutcomeFailure
	if success {
		outcome = OutcomeSuccess
	}
	mutations.WithLabelValues(entity, op, outcome).Inc()
}

// ObserveRequest records the latency of one served request.  route is the
// registered path pattern, not the raw URL, to keep cardinality bounded.
func ObserveRequest(method, route string, status int, d time.Duration) {
	requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}
