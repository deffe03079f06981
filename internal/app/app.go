// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"time"

	"cowin-slot-alert/internal/common/config"
	"cowin-slot-alert/internal/common/errors"
	"cowin-slot-alert/internal/common/logger"
	"cowin-slot-alert/internal/common/metrics"
	"cowin-slot-alert/internal/models"
	"cowin-slot-alert/internal/slots"
)

// Fetcher retrieves the day's center calendar for a district.
type Fetcher interface {
	FetchCalendarByDistrict(ctx context.Context, districtID string) (*models.CalendarResponse, error)
}

// Notifier delivers run results to Slack channels.
type Notifier interface {
	PostSlot(ctx context.Context, channel string, slot models.Slot) error
	PostSummary(ctx context.Context, channel, text string) error
}

// App runs one fetch, filter, notify cycle.
type App struct {
	config   *config.Config
	logger   logger.Logger
	metrics  *metrics.Metrics
	fetcher  Fetcher
	notifier Notifier
}

func New(cfg *config.Config, log logger.Logger, m *metrics.Metrics, fetcher Fetcher, notifier Notifier) *App {
	return &App{
		config:   cfg,
		logger:   log.WithFields(map[string]interface{}{"component": "app"}),
		metrics:  m,
		fetcher:  fetcher,
		notifier: notifier,
	}
}

// Run executes one complete cycle and returns the number of viable slots.
// The first error aborts the run; messages already posted stay posted.
func (a *App) Run(ctx context.Context) (int, error) {
	start := time.Now()

	a.logger.Info("Starting run", map[string]interface{}{
		"district":      a.config.District,
		"only18Plus":    a.config.Filters.Only18Plus,
		"onlyFirstDose": a.config.Filters.OnlyFirstDose,
	})

	calendar, err := a.fetcher.FetchCalendarByDistrict(ctx, a.config.District)
	if err != nil {
		a.metrics.APIRequests.WithLabelValues(outcomeFor(err)).Inc()
		return 0, err
	}
	a.metrics.APIRequests.WithLabelValues(metrics.OutcomeOK).Inc()
	a.metrics.SessionsScanned.Add(float64(slots.SessionCount(calendar)))

	viable := slots.Viable(calendar, slots.Options{
		Only18Plus:    a.config.Filters.Only18Plus,
		OnlyFirstDose: a.config.Filters.OnlyFirstDose,
	})
	a.metrics.SlotsViable.Set(float64(len(viable)))

	for _, slot := range viable {
		if err := a.notifier.PostSlot(ctx, a.config.Slack.MainChannel, slot); err != nil {
			return 0, err
		}
		a.metrics.NotificationsSent.WithLabelValues(metrics.ChannelMain).Inc()
	}

	summary := fmt.Sprintf("Found %d viable slots for District ID: %s", len(viable), a.config.District)
	if err := a.notifier.PostSummary(ctx, a.config.Slack.DebugChannel, summary); err != nil {
		return 0, err
	}
	a.metrics.NotificationsSent.WithLabelValues(metrics.ChannelDebug).Inc()

	a.metrics.RunDuration.Set(time.Since(start).Seconds())

	a.logger.Info("Run complete", map[string]interface{}{
		"district":    a.config.District,
		"viableSlots": len(viable),
		"duration":    time.Since(start).String(),
	})

	a.pushMetrics()

	return len(viable), nil
}

// outcomeFor maps a fetch error to its request counter label.
func outcomeFor(err error) string {
	switch errors.CodeOf(err) {
	case errors.ErrCodeRequestFailed:
		return metrics.OutcomeHTTPError
	case errors.ErrCodeDecodeFailed:
		return metrics.OutcomeDecodeError
	default:
		return metrics.OutcomeTransportError
	}
}

// pushMetrics exports the run's collectors when a Pushgateway is configured.
// Push failures are logged and do not fail the run.
func (a *App) pushMetrics() {
	url := a.config.Metrics.PushGatewayURL
	if url == "" {
		return
	}
	if err := a.metrics.PushToGateway(url, a.config.District, nil); err != nil {
		a.logger.Warn("Failed to push metrics", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
