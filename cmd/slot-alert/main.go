// cmd/slot-alert/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"cowin-slot-alert/internal/app"
	"cowin-slot-alert/internal/common/config"
	"cowin-slot-alert/internal/common/errors"
	"cowin-slot-alert/internal/common/httpclient"
	"cowin-slot-alert/internal/common/logger"
	"cowin-slot-alert/internal/common/metrics"
	"cowin-slot-alert/internal/cowin"
	"cowin-slot-alert/internal/slack"
)

const version = "1.0"

func main() {
	age18Plus := pflag.BoolP("age-18-plus", "a", false, "only report sessions open to the 18+ age group")
	firstDoseOnly := pflag.BoolP("first-dose-only", "f", false, "only report sessions with at least 5 first doses")
	districtID := pflag.StringP("district-id", "d", "188", "CoWIN district ID to check")
	slackHook := pflag.String("slack-hook", "", "Slack incoming webhook URL")
	slackMainChannel := pflag.String("slack-main-channel", "", "channel for per-slot alerts")
	slackDebugChannel := pflag.String("slack-debug-channel", "", "channel for the run summary")
	showVersion := pflag.Bool("version", false, "print version and exit")
	pflag.Parse()

	if *showVersion {
		fmt.Printf("slot-alert %s\n", version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "slot-alert: %v\n", err)
		os.Exit(1)
	}

	cfg.District = *districtID
	cfg.Filters.Only18Plus = *age18Plus
	cfg.Filters.OnlyFirstDose = *firstDoseOnly
	cfg.Slack.WebhookURL = *slackHook
	cfg.Slack.MainChannel = *slackMainChannel
	cfg.Slack.DebugChannel = *slackDebugChannel

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "slot-alert: %v\n", err)
		pflag.Usage()
		os.Exit(2)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog).WithFields(map[string]interface{}{
		"app":   cfg.App.Name,
		"runId": uuid.New().String(),
	})

	httpClient := httpclient.New(config.GetDuration(cfg.API.Timeout))

	fetcher := cowin.NewClient(
		&cowin.Config{
			BaseURL:   cfg.API.BaseURL,
			UserAgent: cfg.API.UserAgent,
			Timeout:   config.GetDuration(cfg.API.Timeout),
		},
		httpClient, log,
	)

	notifier := slack.NewNotifier(
		&slack.Config{
			WebhookURL: cfg.Slack.WebhookURL,
			Username:   cfg.Slack.Username,
		},
		httpClient, log,
	)

	runner := app.New(cfg, log, metrics.New(), fetcher, notifier)

	if _, err := runner.Run(context.Background()); err != nil {
		errors.NewHandler(log).Report(err)
		os.Exit(1)
	}
}
