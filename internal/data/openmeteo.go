package data

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"vpp-dispatch/internal/model"
)

// OpenMeteoClient fetches hourly radiation and temperature series. It is a
// collaborator at the core's boundary: the series is fully materialized
// before a simulation runs, and retry/backoff is the caller's concern.
type OpenMeteoClient struct {
	BaseURL string
	Client  *http.Client
}

// NewOpenMeteoClient creates a client. If baseURL is empty, it defaults to
// the public forecast API.
func NewOpenMeteoClient(baseURL string) *OpenMeteoClient {
	if baseURL == "" {
		baseURL = "https://api.open-meteo.com"
	}
	return &OpenMeteoClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// FetchParams defines the weather query.
type FetchParams struct {
	Latitude     float64
	Longitude    float64
	Timezone     string // e.g. "Asia/Shanghai"; empty means UTC
	PastDays     int
	ForecastDays int
}

// APIError is a non-2xx response from the weather API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("open-meteo: status %d: %s", e.StatusCode, e.Body)
}

// FetchHourly retrieves the hourly series for the given coordinates.
func (c *OpenMeteoClient) FetchHourly(p FetchParams) ([]model.TimeSample, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", p.Latitude))
	q.Set("longitude", fmt.Sprintf("%.4f", p.Longitude))
	q.Set("hourly", "shortwave_radiation,temperature_2m")
	if p.Timezone != "" {
		q.Set("timezone", p.Timezone)
	}
	if p.PastDays > 0 {
		q.Set("past_days", fmt.Sprintf("%d", p.PastDays))
	}
	if p.ForecastDays > 0 {
		q.Set("forecast_days", fmt.Sprintf("%d", p.ForecastDays))
	}

	endpoint := fmt.Sprintf("%s/v1/forecast?%s", c.BaseURL, q.Encode())
	resp, err := c.Client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("open-meteo: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("open-meteo: read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: truncate(string(body), 200)}
	}

	var wr WeatherResponse
	if err := json.Unmarshal(body, &wr); err != nil {
		return nil, fmt.Errorf("open-meteo: decode: %w", err)
	}
	return wr.Samples()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
