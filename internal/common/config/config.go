// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct. The option fields
// marked mapstructure:"-" come exclusively from command-line flags and are
// overlaid after Load; everything else is ambient and may come from the
// config file or environment.
type Config struct {
	App      AppConfig     `mapstructure:"app"`
	District string        `mapstructure:"-"`
	Filters  FiltersConfig `mapstructure:"-"`
	Slack    SlackConfig   `mapstructure:"slack"`
	API      APIConfig     `mapstructure:"api"`
	Logging  LoggingConfig `mapstructure:"logging"`
	Metrics  MetricsConfig `mapstructure:"metrics"`
}

// --- Core App Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// FiltersConfig holds the slot eligibility switches.
type FiltersConfig struct {
	Only18Plus    bool `mapstructure:"-"`
	OnlyFirstDose bool `mapstructure:"-"`
}

// SlackConfig holds webhook delivery settings. The webhook URL and both
// channels are required command-line options; only the bot username is
// ambient.
type SlackConfig struct {
	WebhookURL   string `mapstructure:"-"`
	MainChannel  string `mapstructure:"-"`
	DebugChannel string `mapstructure:"-"`
	Username     string `mapstructure:"username"`
}

// APIConfig holds settings for the CoWIN API.
type APIConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	UserAgent string `mapstructure:"user_agent"`
	Timeout   int    `mapstructure:"timeout"` // milliseconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// MetricsConfig holds the optional Pushgateway export settings. An empty
// URL disables the push; collectors still record in-process.
type MetricsConfig struct {
	PushGatewayURL string `mapstructure:"push_gateway_url"`
}

// Validate checks the full configuration after the command-line options
// have been overlaid. Option fields report their flag names so a missing
// required flag reads as a usage error.
func (c *Config) Validate() error {
	if c.Slack.WebhookURL == "" {
		return fmt.Errorf("--slack-hook is required")
	}
	if c.Slack.MainChannel == "" {
		return fmt.Errorf("--slack-main-channel is required")
	}
	if c.Slack.DebugChannel == "" {
		return fmt.Errorf("--slack-debug-channel is required")
	}
	if c.District == "" {
		return fmt.Errorf("--district-id must not be empty")
	}
	return validateAmbient(c)
}
