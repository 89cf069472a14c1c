package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Tower
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Inbound SMS pipeline metrics
	InboundMessagesTotal    prometheus.Counter
	ExtractionFailuresTotal prometheus.CounterVec
	SMSReservationsTotal    prometheus.Counter
	ModelCallDuration       prometheus.Histogram
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tower_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tower_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tower_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Inbound SMS pipeline metrics
		InboundMessagesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tower_inbound_messages_total",
				Help: "Total inbound SMS webhook payloads carrying message text",
			},
		),
		ExtractionFailuresTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tower_extraction_failures_total",
				Help: "Extraction pipeline failures by stage error code",
			},
			[]string{"code"},
		),
		SMSReservationsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "tower_sms_reservations_total",
				Help: "Reservations successfully created or updated from SMS messages",
			},
		),
		ModelCallDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tower_model_call_duration_seconds",
				Help:    "Completion model call latency in seconds",
				Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
		),
	}
}
