package platform

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records Prometheus metrics for client calls.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

// NewMetrics registers the client metrics on the provided registerer. A nil
// registerer yields a Metrics that records nothing.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "platform_client_requests_total",
		Help: "Platform API requests by method and HTTP status.",
	}, []string{"method", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "platform_client_request_duration_seconds",
		Help:    "Duration of Platform API requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "platform_client_errors_total",
		Help: "Failed Platform API calls by error kind.",
	}, []string{"kind"})
	reg.MustRegister(requests, duration, failures)

	return &Metrics{
		requests: requests,
		duration: duration,
		failures: failures,
	}
}

// ObserveResponse records a finished attempt.
func (m *Metrics) ObserveResponse(method string, resp *Response) {
	if m == nil || m.requests == nil || resp == nil {
		return
	}

	status := "none"
	if resp.StatusCode != 0 {
		status = strconv.Itoa(resp.StatusCode)
	}

	m.requests.WithLabelValues(method, status).Inc()
	m.duration.WithLabelValues(method).Observe(resp.Duration.Seconds())
}

// ObserveError counts a failed call by its error kind.
func (m *Metrics) ObserveError(err error) {
	if m == nil || m.failures == nil || err == nil {
		return
	}

	kind := KindOf(err)
	if kind == "" {
		kind = "unknown"
	}

	m.failures.WithLabelValues(string(kind)).Inc()
}

// ResponseInterceptor returns an interceptor that feeds ObserveResponse.
func (m *Metrics) ResponseInterceptor() ResponseInterceptor {
	return func(_ context.Context, req *Request, resp *Response) {
		m.ObserveResponse(req.Method, resp)
	}
}
