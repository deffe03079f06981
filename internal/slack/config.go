// internal/slack/config.go
package slack

// Config holds the incoming-webhook settings for a run.
type Config struct {
	WebhookURL string
	Username   string
}
