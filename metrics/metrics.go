// Package metrics defines the Prometheus metric types netawait uses to
// describe event-loop health to an operator running it under supervision.
//
// When defining new operations or metrics, these are helpful values to track:
//  - things coming into or going out of the system: messages, requests.
//  - the success or error status of any of the above.
//  - the distribution of processing latency.
package metrics

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// EventsClassified counts messages the decoder turned into a typed
	// Event, by kind (route, link, address).
	//
	// Provides metric:
	//   netawait_events_classified_total
	EventsClassified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "netawait_events_classified_total",
			Help: "Number of route-socket messages classified into a typed event, by kind.",
		}, []string{"kind"})

	// MessagesSkipped counts messages the decoder recognized as framing
	// or deliberately unclassified types (None from the message decoder).
	MessagesSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "netawait_messages_skipped_total",
			Help: "Number of route-socket messages that decoded to no event.",
		},
	)

	// ParseErrorCount measures the number of fatal decode errors
	// encountered while reading the route socket.
	//
	// Provides metric:
	//   netawait_parse_errors_total
	// Example usage:
	//   metrics.ParseErrorCount.With(prometheus.Labels{"type": "length_mismatch"}).Inc()
	ParseErrorCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "netawait_parse_errors_total",
			Help: "The total number of fatal message-decode errors encountered.",
		}, []string{"type"})

	// WaitLatencyHistogram tracks the time from the start of the wait loop
	// (waiter.Run) to the moment the wait condition is satisfied (or the run
	// otherwise ends).
	WaitLatencyHistogram = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "netawait_wait_latency_seconds",
			Help: "Time from the start of the wait to its end, whatever the outcome.",
			Buckets: []float64{
				0.01, 0.025, 0.05, 0.1, 0.25, 0.5,
				1, 2.5, 5, 10, 25, 50,
				100, 250, 500,
			},
		},
	)

	// OutcomeCount counts how each run ended, by outcome (success,
	// timed_out, failed).
	OutcomeCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "netawait_outcome_total",
			Help: "The outcome of each wait, by kind.",
		}, []string{"outcome"})
)

// init logs that the package has been loaded and the metrics registered.
// The metrics are auto-registered, which means they are registered as soon
// as this package is loaded, and the exact time this occurs (and whether it
// occurs at all in a given run) can be opaque.
func init() {
	log.Println("Prometheus metrics in netawait.metrics are registered.")
}
