package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Event metrics
	EventsTotal    *prometheus.CounterVec
	EventsInFlight prometheus.Gauge

	// Dispatch metrics
	DeliveriesTotal  *prometheus.CounterVec
	DispatchDuration prometheus.Histogram
	FanoutSize       prometheus.Histogram
	DispatchErrors   *prometheus.CounterVec

	// Command metrics
	CommandsTotal *prometheus.CounterVec

	// Platform API metrics
	PlatformRequests *prometheus.CounterVec

	// HTTP API metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates Prometheus metrics and registers them with reg.
// A nil reg registers with the default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		EventsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relay_events_total",
				Help: "Total number of inbound platform events by kind",
			},
			[]string{"kind"},
		),

		EventsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "relay_events_in_flight",
				Help: "Number of events currently being processed",
			},
		),

		DeliveriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relay_deliveries_total",
				Help: "Total number of copy attempts to destination chats",
			},
			[]string{"result"},
		),

		DispatchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "relay_dispatch_duration_seconds",
				Help:    "Duration of dispatching one source message to all destinations",
				Buckets: prometheus.DefBuckets,
			},
		),

		FanoutSize: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "relay_fanout_size",
				Help:    "Number of deliveries produced by one source message",
				Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
			},
		),

		DispatchErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relay_dispatch_errors_total",
				Help: "Total number of routing table lookups that failed during dispatch",
			},
			[]string{"stage"},
		),

		CommandsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relay_commands_total",
				Help: "Total number of bot commands handled",
			},
			[]string{"command", "result"},
		),

		PlatformRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relay_platform_requests_total",
				Help: "Total number of messaging platform API calls",
			},
			[]string{"method", "status"},
		),

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relay_http_requests_total",
				Help: "Total number of admin API requests",
			},
			[]string{"method", "path", "status"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "relay_http_request_duration_seconds",
				Help:    "Duration of admin API requests",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// RecordEvent records an inbound event
func (m *Metrics) RecordEvent(kind string) {
	m.EventsTotal.WithLabelValues(kind).Inc()
}

// RecordDelivery records one copy attempt
func (m *Metrics) RecordDelivery(result string) {
	m.DeliveriesTotal.WithLabelValues(result).Inc()
}

// RecordDispatch records a completed dispatch pass
func (m *Metrics) RecordDispatch(fanout int, duration float64) {
	m.FanoutSize.Observe(float64(fanout))
	m.DispatchDuration.Observe(duration)
}

// RecordDispatchError records a failed routing lookup
func (m *Metrics) RecordDispatchError(stage string) {
	m.DispatchErrors.WithLabelValues(stage).Inc()
}

// RecordCommand records a handled bot command
func (m *Metrics) RecordCommand(command, result string) {
	m.CommandsTotal.WithLabelValues(command, result).Inc()
}

// RecordPlatformRequest records a platform API call
func (m *Metrics) RecordPlatformRequest(method, status string) {
	m.PlatformRequests.WithLabelValues(method, status).Inc()
}

// RecordHTTPRequest records an admin API request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}
