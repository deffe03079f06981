// test/e2e/e2e_test.go
package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cowin-slot-alert/internal/app"
	"cowin-slot-alert/internal/common/config"
	"cowin-slot-alert/internal/common/errors"
	"cowin-slot-alert/internal/common/httpclient"
	"cowin-slot-alert/internal/common/logger"
	"cowin-slot-alert/internal/common/metrics"
	"cowin-slot-alert/internal/cowin"
	"cowin-slot-alert/internal/models"
	"cowin-slot-alert/internal/slack"
	"cowin-slot-alert/internal/slots"
)

// calendarBody is a district calendar with three sessions: two bookable
// and one sold out. The second center is 45+ only with thin first doses.
const calendarBody = `{
	"centers": [
		{
			"center_id": 100101,
			"name": "District Hospital",
			"address": "12 MG Road",
			"pincode": 590001,
			"fee_type": "Free",
			"sessions": [
				{
					"date": "10-05-2021",
					"available_capacity": 12,
					"min_age_limit": 18,
					"vaccine": "COVISHIELD",
					"available_capacity_dose1": 7,
					"available_capacity_dose2": 5
				},
				{
					"date": "11-05-2021",
					"available_capacity": 0,
					"min_age_limit": 18,
					"vaccine": "COVISHIELD",
					"available_capacity_dose1": 0,
					"available_capacity_dose2": 0
				}
			]
		},
		{
			"center_id": 100102,
			"name": "Rural PHC",
			"address": "Station Road",
			"pincode": 590010,
			"fee_type": "Paid",
			"sessions": [
				{
					"date": "10-05-2021",
					"available_capacity": 6,
					"min_age_limit": 45,
					"vaccine": "COVAXIN",
					"available_capacity_dose1": 2,
					"available_capacity_dose2": 4
				}
			]
		}
	]
}`

type slackMessage struct {
	Channel  string `json:"channel"`
	Text     string `json:"text"`
	Username string `json:"username"`
}

func newCowinServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/calendarByDistrict", r.URL.Path)
		assert.Equal(t, "188", r.URL.Query().Get("district_id"))
		assert.Regexp(t, `^\d{2}-\d{2}-\d{4}$`, r.URL.Query().Get("date"))
		assert.Contains(t, r.Header.Get("User-Agent"), "Firefox")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
}

func newSlackServer(messages *[]slackMessage) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg slackMessage
		_ = json.NewDecoder(r.Body).Decode(&msg)
		*messages = append(*messages, msg)
		w.WriteHeader(http.StatusOK)
	}))
}

func pipelineConfig(cowinURL, slackURL string) *config.Config {
	return &config.Config{
		District: "188",
		Slack: config.SlackConfig{
			WebhookURL:   slackURL,
			MainChannel:  "#vaccine-alerts",
			DebugChannel: "#vaccine-debug",
			Username:     "CoWin Slot Bot",
		},
		API: config.APIConfig{
			BaseURL:   cowinURL,
			UserAgent: config.DefaultUserAgent,
			Timeout:   5000,
		},
	}
}

// runPipeline wires the real fetcher and notifier the way the command does.
func runPipeline(t *testing.T, cfg *config.Config) (int, error) {
	t.Helper()
	log := logger.NewTestLogger(t)
	client := httpclient.New(config.GetDuration(cfg.API.Timeout))

	fetcher := cowin.NewClient(&cowin.Config{
		BaseURL:   cfg.API.BaseURL,
		UserAgent: cfg.API.UserAgent,
		Timeout:   config.GetDuration(cfg.API.Timeout),
	}, client, log)

	notifier := slack.NewNotifier(&slack.Config{
		WebhookURL: cfg.Slack.WebhookURL,
		Username:   cfg.Slack.Username,
	}, client, log)

	runner := app.New(cfg, log, metrics.New(), fetcher, notifier)
	return runner.Run(context.Background())
}

func TestFullRun(t *testing.T) {
	cowinServer := newCowinServer(t, calendarBody)
	defer cowinServer.Close()

	var messages []slackMessage
	slackServer := newSlackServer(&messages)
	defer slackServer.Close()

	count, err := runPipeline(t, pipelineConfig(cowinServer.URL, slackServer.URL))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.Len(t, messages, 3)

	assert.Equal(t, "#vaccine-alerts", messages[0].Channel)
	assert.Contains(t, messages[0].Text, ":large_green_circle: [Vaccine Slot]")
	assert.Contains(t, messages[0].Text, "Center: District Hospital,")
	assert.Contains(t, messages[0].Text, "Available Capacity: 12,")
	assert.Equal(t, "CoWin Slot Bot", messages[0].Username)

	assert.Equal(t, "#vaccine-alerts", messages[1].Channel)
	assert.Contains(t, messages[1].Text, "Center: Rural PHC,")

	assert.Equal(t, "#vaccine-debug", messages[2].Channel)
	assert.Equal(t, "Found 2 viable slots for District ID: 188", messages[2].Text)
}

func TestFullRun_AgeFilter(t *testing.T) {
	cowinServer := newCowinServer(t, calendarBody)
	defer cowinServer.Close()

	var messages []slackMessage
	slackServer := newSlackServer(&messages)
	defer slackServer.Close()

	cfg := pipelineConfig(cowinServer.URL, slackServer.URL)
	cfg.Filters.Only18Plus = true

	count, err := runPipeline(t, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.Len(t, messages, 2)
	assert.Contains(t, messages[0].Text, "Center: District Hospital,")
	assert.Equal(t, "Found 1 viable slots for District ID: 188", messages[1].Text)
}

func TestFullRun_FirstDoseFilter(t *testing.T) {
	cowinServer := newCowinServer(t, calendarBody)
	defer cowinServer.Close()

	var messages []slackMessage
	slackServer := newSlackServer(&messages)
	defer slackServer.Close()

	cfg := pipelineConfig(cowinServer.URL, slackServer.URL)
	cfg.Filters.OnlyFirstDose = true

	count, err := runPipeline(t, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.Len(t, messages, 2)
	assert.Contains(t, messages[0].Text, "Center: District Hospital,")
}

func TestFullRun_EmptyDistrict(t *testing.T) {
	cowinServer := newCowinServer(t, `{"centers": []}`)
	defer cowinServer.Close()

	var messages []slackMessage
	slackServer := newSlackServer(&messages)
	defer slackServer.Close()

	count, err := runPipeline(t, pipelineConfig(cowinServer.URL, slackServer.URL))
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.Len(t, messages, 1)
	assert.Equal(t, "#vaccine-debug", messages[0].Channel)
	assert.Equal(t, "Found 0 viable slots for District ID: 188", messages[0].Text)
}

func TestFullRun_APIDown(t *testing.T) {
	cowinServer := newCowinServer(t, calendarBody)
	cowinServer.Close()

	var messages []slackMessage
	slackServer := newSlackServer(&messages)
	defer slackServer.Close()

	_, err := runPipeline(t, pipelineConfig(cowinServer.URL, slackServer.URL))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeFetchFailed))
	assert.Empty(t, messages)
}

func TestFullRun_WebhookRejects(t *testing.T) {
	cowinServer := newCowinServer(t, calendarBody)
	defer cowinServer.Close()

	slackServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "channel_not_found", http.StatusNotFound)
	}))
	defer slackServer.Close()

	_, err := runPipeline(t, pipelineConfig(cowinServer.URL, slackServer.URL))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNotifyFailed))
}

func TestFullRun_PushesMetrics(t *testing.T) {
	cowinServer := newCowinServer(t, calendarBody)
	defer cowinServer.Close()

	var messages []slackMessage
	slackServer := newSlackServer(&messages)
	defer slackServer.Close()

	var pushPath string
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pushPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer gateway.Close()

	cfg := pipelineConfig(cowinServer.URL, slackServer.URL)
	cfg.Metrics.PushGatewayURL = gateway.URL

	_, err := runPipeline(t, cfg)
	require.NoError(t, err)
	assert.Equal(t, "/metrics/job/slot-alert/district/188", pushPath)
}

func BenchmarkViableFilter(b *testing.B) {
	centers := make([]models.Center, 100)
	for i := range centers {
		centers[i] = models.Center{
			Name:    fmt.Sprintf("Center %d", i),
			Address: "Addr",
			Sessions: []models.Session{
				{Date: "10-05-2021", AvailableCapacity: float64(i % 3), MinAgeLimit: 18, Vaccine: "COVISHIELD", AvailableCapacityDose1: 5, AvailableCapacityDose2: 5},
				{Date: "11-05-2021", AvailableCapacity: 10, MinAgeLimit: 45, Vaccine: "COVAXIN", AvailableCapacityDose1: 3, AvailableCapacityDose2: 7},
			},
		}
	}
	calendar := &models.CalendarResponse{Centers: centers}
	opts := slots.Options{Only18Plus: true, OnlyFirstDose: true}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		slots.Viable(calendar, opts)
	}
}

func BenchmarkSlotMessagePost(b *testing.B) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := slack.NewNotifier(&slack.Config{
		WebhookURL: server.URL,
		Username:   "CoWin Slot Bot",
	}, httpclient.New(5*time.Second), logger.NewNoOpLogger())

	slot := models.Slot{
		CenterName:    "District Hospital",
		Address:       "12 MG Road",
		Date:          "10-05-2021",
		Vaccine:       "COVISHIELD",
		Capacity:      12,
		Dose1Capacity: 7,
		Dose2Capacity: 5,
		MinAgeLimit:   18,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = notifier.PostSlot(context.Background(), "#vaccine-alerts", slot)
	}
}
