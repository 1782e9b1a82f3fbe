package middleware

import (
	"net/http"
	"strconv"
	"time"

	"onebeat/scout/pkg/telemetry/metrics"
)

// Metrics records per-request Prometheus metrics. The route label uses
// the matched mux pattern rather than the raw path to keep cardinality
// bounded. A nil collector disables recording.
func Metrics(collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if collector == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			done := collector.RequestStarted()
			defer done()

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			collector.RecordRequest(r.Method, route, strconv.Itoa(rw.statusCode), time.Since(start))
		})
	}
}
