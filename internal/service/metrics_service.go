package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API and the
// lifecycle engine.
type MetricsService struct {
	registry         *prometheus.Registry
	handler          http.Handler
	requestDuration  *prometheus.HistogramVec
	requestTotal     *prometheus.CounterVec
	patentsFiled     prometheus.Counter
	reviewsSubmitted *prometheus.CounterVec
	oppositionsFiled prometheus.Counter
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	patentsFiled := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "patents_filed_total",
		Help: "Total number of patents filed",
	})

	reviewsSubmitted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "reviews_submitted_total",
		Help: "Total number of review decisions submitted",
	}, []string{"decision"})

	oppositionsFiled := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "oppositions_filed_total",
		Help: "Total number of oppositions filed",
	})

	registry.MustRegister(requestDuration, requestTotal, patentsFiled, reviewsSubmitted, oppositionsFiled)

	return &MetricsService{
		registry:         registry,
		handler:          promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration:  requestDuration,
		requestTotal:     requestTotal,
		patentsFiled:     patentsFiled,
		reviewsSubmitted: reviewsSubmitted,
		oppositionsFiled: oppositionsFiled,
	}
}

// Handler exposes the Prometheus scrape endpoint.
func (s *MetricsService) Handler() http.Handler {
	return s.handler
}

// ObserveHTTPRequest records duration and count for a completed request.
func (s *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	labels := []string{method, path, fmt.Sprintf("%d", status)}
	s.requestDuration.WithLabelValues(labels...).Observe(duration.Seconds())
	s.requestTotal.WithLabelValues(labels...).Inc()
}

// PatentFiled increments the filing counter.
func (s *MetricsService) PatentFiled() {
	s.patentsFiled.Inc()
}

// ReviewSubmitted increments the decision counter.
func (s *MetricsService) ReviewSubmitted(decision string) {
	s.reviewsSubmitted.WithLabelValues(decision).Inc()
}

// OppositionFiled increments the opposition counter.
func (s *MetricsService) OppositionFiled() {
	s.oppositionsFiled.Inc()
}
