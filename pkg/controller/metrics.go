package controller

import (
	"net/http"
	"strconv"
	"time"

	"textkit/pkg/metrics"
)

// WithMetrics returns a middleware recording a request counter and latency
// histogram per method/path. The API's route set is fixed, so raw paths are
// safe as label values.
func WithMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		metrics.HTTPRequestsTotal.
			WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(rec.status)).
			Inc()
		metrics.HTTPRequestDuration.
			WithLabelValues(r.Method, r.URL.Path).
			Observe(time.Since(start).Seconds())
	})
}
