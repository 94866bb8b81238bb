package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// outcomes of a call to the activities API
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

var (
	backendRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_board",
		Subsystem: "backend",
		Name:      "requests_total",
		Help:      "Requests sent to the activities API by operation and outcome.",
	}, []string{"operation", "outcome"})
	backendRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "activity_board",
		Subsystem: "backend",
		Name:      "request_duration_seconds",
		Help:      "Latency of requests sent to the activities API.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})
	dispatchedEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_board",
		Subsystem: "board",
		Name:      "events_dispatched_total",
		Help:      "Page events dispatched to board handlers.",
	}, []string{"source", "kind"})
	liveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "activity_board",
		Subsystem: "sessions",
		Name:      "live",
		Help:      "Board sessions currently held in memory.",
	})
)

func init() {
	prometheus.MustRegister(backendRequests, backendRequestDuration, dispatchedEvents, liveSessions)
}

// RecordBackendRequest counts one call to the activities API and its latency.
func RecordBackendRequest(operation, outcome string, duration time.Duration) {
	backendRequests.WithLabelValues(operation, outcome).Inc()
	backendRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordDispatchedEvent counts one page event handed to the board.
func RecordDispatchedEvent(source, kind string) {
	dispatchedEvents.WithLabelValues(source, kind).Inc()
}

// SetLiveSessions updates the live session gauge.
func SetLiveSessions(count int) {
	liveSessions.Set(float64(count))
}
