// Package metrics holds the Prometheus collectors exported by the service.
// Collectors are registered with the default registry so promhttp.Handler
// picks them up without extra wiring.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that
// can be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// HTTPRequestsTotal counts handled HTTP requests by method, path and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "textkit_http_requests_total",
		Help: "Number of handled HTTP requests.",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration observes request handling latency by method and path.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "textkit_http_request_duration_seconds",
		Help:    "HTTP request handling latency.",
		Buckets: DefaultBuckets,
	}, []string{"method", "path"})

	// ToolInvocationsTotal counts tool invocations by tool name and outcome
	// (success or error). A validator returning false is still a success;
	// error means the request could not be processed at all.
	ToolInvocationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "textkit_tool_invocations_total",
		Help: "Number of tool invocations.",
	}, []string{"tool", "outcome"})
)
