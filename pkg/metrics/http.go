package metrics

import (
	"io"
	"net/http"
	"strconv"
	"time"
)

// HTTPMetricsMiddleware wraps an HTTP handler to collect metrics
func HTTPMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		endpoint := r.URL.Path
		if endpoint == "" {
			endpoint = "/"
		}

		// Wrap response writer to capture status code and size
		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m := Get()
		if m != nil {
			m.HTTPRequestsInFlight.WithLabelValues(endpoint).Inc()
			defer m.HTTPRequestsInFlight.WithLabelValues(endpoint).Dec()
		}

		next.ServeHTTP(rw, r)

		if m != nil {
			duration := time.Since(start).Seconds()
			statusCode := strconv.Itoa(rw.statusCode)

			m.HTTPRequestsTotal.WithLabelValues(r.Method, endpoint, statusCode).Inc()
			m.HTTPRequestDuration.WithLabelValues(r.Method, endpoint, statusCode).Observe(duration)
			m.HTTPResponseSize.WithLabelValues(r.Method, endpoint).Observe(float64(rw.size))
		}
	})
}

// responseWriter wraps http.ResponseWriter to capture status code and size
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

func (rw *responseWriter) ReadFrom(r io.Reader) (int64, error) {
	n, err := io.Copy(rw.ResponseWriter, r)
	rw.size += int(n)
	return n, err
}
