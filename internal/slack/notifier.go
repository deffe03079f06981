// internal/slack/notifier.go
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"cowin-slot-alert/internal/common/errors"
	"cowin-slot-alert/internal/common/httpclient"
	"cowin-slot-alert/internal/common/logger"
	"cowin-slot-alert/internal/models"
)

// message is the incoming-webhook payload.
type message struct {
	Channel  string `json:"channel"`
	Text     string `json:"text"`
	Username string `json:"username"`
}

const slotTemplate = `:large_green_circle: [Vaccine Slot]
Date: %s,
Center: %s,
Address: %s,
Vaccine: %s,
Available Capacity: %d,
1st Dose Capacity: %d,
2nd Dose Capacity: %d,
Min Age Limit: %d,
`

// Notifier posts run results to Slack through an incoming webhook.
type Notifier struct {
	config *Config
	client httpclient.Doer
	logger logger.Logger
}

func NewNotifier(config *Config, client httpclient.Doer, log logger.Logger) *Notifier {
	return &Notifier{
		config: config,
		client: client,
		logger: log.WithFields(map[string]interface{}{
			"component": "slack-notifier",
		}),
	}
}

// PostSlot renders slot with the alert template and posts it to channel.
func (n *Notifier) PostSlot(ctx context.Context, channel string, slot models.Slot) error {
	text := fmt.Sprintf(slotTemplate,
		slot.Date,
		slot.CenterName,
		slot.Address,
		slot.Vaccine,
		slot.Capacity,
		slot.Dose1Capacity,
		slot.Dose2Capacity,
		slot.MinAgeLimit,
	)
	return n.post(ctx, channel, text)
}

// PostSummary posts text to channel unchanged.
func (n *Notifier) PostSummary(ctx context.Context, channel, text string) error {
	return n.post(ctx, channel, text)
}

func (n *Notifier) post(ctx context.Context, channel, text string) error {
	body, err := json.Marshal(message{
		Channel:  channel,
		Text:     text,
		Username: n.config.Username,
	})
	if err != nil {
		return errors.NewNotifyError(channel, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.config.WebhookURL, bytes.NewBuffer(body))
	if err != nil {
		return errors.NewNotifyError(channel, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return errors.NewNotifyError(channel, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.NewNotifyRejectedError(channel, resp.StatusCode)
	}

	n.logger.Debug("Posted message to Slack", map[string]interface{}{
		"channel": channel,
	})
	return nil
}
