// Package metrics provides Prometheus observability metrics for the
// scheduling backend, with a focus on the overtime callout engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for the application.
var Registry = prometheus.NewRegistry()

// factory registers metrics to the custom Registry directly.
var factory = promauto.With(Registry)

// CalloutEventsOpened counts callout events created.
var CalloutEventsOpened = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "rosterd",
	Subsystem: "callout",
	Name:      "events_opened_total",
	Help:      "Count of overtime callout events opened",
})

// CalloutEventsClosed counts terminal transitions by outcome (filled, cancelled).
var CalloutEventsClosed = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "rosterd",
	Subsystem: "callout",
	Name:      "events_closed_total",
	Help:      "Count of callout events reaching a terminal state, by outcome",
}, []string{"outcome"})

// CalloutAttemptsRecorded counts contact attempts by response.
var CalloutAttemptsRecorded = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "rosterd",
	Subsystem: "callout",
	Name:      "attempts_recorded_total",
	Help:      "Count of recorded contact attempts, by response",
}, []string{"response"})

// CalloutAttemptsToFill observes how many attempts an event took before
// it was filled. High values indicate widespread declines.
var CalloutAttemptsToFill = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "rosterd",
	Subsystem: "callout",
	Name:      "attempts_to_fill",
	Help:      "Number of contact attempts made before a callout event was filled",
	Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
})

// RankingComputations counts on-demand callout list computations.
var RankingComputations = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "rosterd",
	Subsystem: "callout",
	Name:      "ranking_computations_total",
	Help:      "Count of callout list ranking computations",
})

// OvertimeHoursAccumulated tracks ledger accumulation by kind (worked, declined).
var OvertimeHoursAccumulated = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "rosterd",
	Subsystem: "overtime",
	Name:      "hours_accumulated_total",
	Help:      "Overtime hours accumulated into the ledger, by kind",
}, []string{"kind"})

// HTTPRequestDuration observes request latency by method, route and status.
var HTTPRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "rosterd",
	Subsystem: "http",
	Name:      "request_duration_seconds",
	Help:      "HTTP request latency by method, route and status code",
	Buckets:   prometheus.DefBuckets,
}, []string{"method", "route", "status"})
