// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Outcome label values for the CoWIN API request counter.
const (
	OutcomeOK             = "ok"
	OutcomeHTTPError      = "http_error"
	OutcomeTransportError = "transport_error"
	OutcomeDecodeError    = "decode_error"
)

// Channel label values for the notification counter.
const (
	ChannelMain  = "main"
	ChannelDebug = "debug"
)

// Metrics holds the collectors for a single run. They live on a private
// registry so a batch run can push its final state to a Pushgateway
// without dragging the default Go collectors along.
type Metrics struct {
	registry *prometheus.Registry

	APIRequests       *prometheus.CounterVec
	SessionsScanned   prometheus.Counter
	SlotsViable       prometheus.Gauge
	NotificationsSent *prometheus.CounterVec
	RunDuration       prometheus.Gauge
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		APIRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "slotalert_api_requests_total",
				Help: "Total number of CoWIN API requests by outcome",
			},
			[]string{"outcome"},
		),

		SessionsScanned: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "slotalert_sessions_scanned_total",
				Help: "Total number of sessions inspected by the filter",
			},
		),

		SlotsViable: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "slotalert_slots_viable",
				Help: "Number of viable slots found by the run",
			},
		),

		NotificationsSent: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "slotalert_notifications_sent_total",
				Help: "Total number of webhook messages delivered by channel",
			},
			[]string{"channel"},
		),

		RunDuration: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "slotalert_run_duration_seconds",
				Help: "Wall clock duration of the run in seconds",
			},
		),
	}
}

// Registry exposes the private registry for gathering in tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// PushToGateway pushes the run's final collector state to a Prometheus
// Pushgateway, grouped by district.
func (m *Metrics) PushToGateway(url, district string, doer push.HTTPDoer) error {
	pusher := push.New(url, "slot-alert").
		Gatherer(m.registry).
		Grouping("district", district)
	if doer != nil {
		pusher = pusher.Client(doer)
	}
	return pusher.Push()
}
