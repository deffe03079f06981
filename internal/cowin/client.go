// internal/cowin/client.go
package cowin

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"cowin-slot-alert/internal/common/errors"
	"cowin-slot-alert/internal/common/httpclient"
	"cowin-slot-alert/internal/common/logger"
	"cowin-slot-alert/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

// Client fetches the appointment calendar from the public CoWIN API. One
// request per run, no retries; every failure aborts the run.
type Client struct {
	config *Config
	client httpclient.Doer
	logger logger.Logger
}

func NewClient(config *Config, client httpclient.Doer, log logger.Logger) *Client {
	return &Client{
		config: config,
		client: client,
		logger: log.WithFields(map[string]interface{}{
			"component": "cowin-client",
		}),
	}
}

// FetchCalendarByDistrict requests the week of sessions for a district,
// dated today in Indian Standard Time.
func (c *Client) FetchCalendarByDistrict(ctx context.Context, districtID string) (*models.CalendarResponse, error) {
	date := TodayIST()
	requestURL := c.buildCalendarURL(districtID, date)

	c.logger.Debug("fetching district calendar", map[string]interface{}{
		"districtId": districtID,
		"date":       date,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.NewFetchError(err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.NewFetchError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewRequestFailedError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewFetchError(err)
	}

	if err := validateCalendarShape(body); err != nil {
		return nil, err
	}

	var calendar models.CalendarResponse
	if err := json.Unmarshal(body, &calendar); err != nil {
		return nil, errors.NewDecodeError(err)
	}

	c.logger.Info("district calendar fetched", map[string]interface{}{
		"districtId": districtID,
		"date":       date,
		"centers":    len(calendar.Centers),
	})

	return &calendar, nil
}

func (c *Client) buildCalendarURL(districtID, date string) string {
	baseURL, _ := url.Parse(c.config.BaseURL)
	baseURL.Path += "/calendarByDistrict"

	params := url.Values{}
	params.Add("district_id", districtID)
	params.Add("date", date)
	baseURL.RawQuery = params.Encode()

	return baseURL.String()
}

// validateCalendarShape checks the raw body against the calendar schema
// before unmarshalling so shape problems surface with field-level detail.
func validateCalendarShape(body []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(calendarSchema)
	documentLoader := gojsonschema.NewStringLoader(string(body))

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return errors.NewDecodeError(err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return errors.NewResponseShapeError(strings.Join(errs, "; "))
	}

	return nil
}
