package controller

import (
	"net/http"
	"time"

	"cosmic/pkg/metrics"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// WithMetrics returns a middleware that records the request count and latency
// of every request, labelled by method and status code.
func WithMetrics(instruments *metrics.HTTP) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			attrs := metric.WithAttributes(
				attribute.String("http.request.method", r.Method),
				attribute.Int("http.response.status_code", rec.status),
			)
			instruments.Requests.Add(r.Context(), 1, attrs)
			instruments.Duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
		})
	}
}
