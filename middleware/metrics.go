package middleware

import (
	"net/http"
	"strconv"
	"time"

	"merchant-payment-api/metrics"
)

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware records per-request duration labeled by path, method
// and final status.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		metrics.HTTPRequestDuration.
			WithLabelValues(r.URL.Path, r.Method, strconv.Itoa(wrapper.status)).
			Observe(time.Since(start).Seconds())
	})
}
