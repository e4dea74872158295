package metrics

import (
	"time"
)

// RecordUpstreamRequest records a FRED API request
func RecordUpstreamRequest(endpoint string, duration time.Duration, success bool) {
	m := Get()
	if m == nil {
		return
	}

	status := "failure"
	if success {
		status = "success"
	}

	m.UpstreamRequestsTotal.WithLabelValues(endpoint, status).Inc()
	m.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordUpstreamError records a FRED API error
func RecordUpstreamError(endpoint, errorType string) {
	m := Get()
	if m != nil {
		m.UpstreamErrorsTotal.WithLabelValues(endpoint, errorType).Inc()
	}
}
