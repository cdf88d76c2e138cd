// Package metrics holds the OpenTelemetry instruments shared by the service.
package metrics

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// HTTP groups the instruments recorded for every served request.
type HTTP struct {
	// Requests counts finished requests.
	Requests metric.Int64Counter
	// Duration records request latency in seconds.
	Duration metric.Float64Histogram
}

// NewHTTP creates the HTTP instruments on meter.
func NewHTTP(meter metric.Meter) (*HTTP, error) {
	requests, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("Number of HTTP requests served."),
		metric.WithUnit("{request}"))
	if err != nil {
		return nil, fmt.Errorf("could not create requests counter: %w", err)
	}

	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of HTTP requests."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &HTTP{Requests: requests, Duration: duration}, nil
}
