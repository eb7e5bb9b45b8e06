package data

import (
	"os"
	"path/filepath"
	"testing"

	"vpp-dispatch/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weatherJSON = `{
  "hourly": {
    "time": ["2026-03-01T00:00", "2026-03-01T01:00", "2026-03-01T02:00"],
    "shortwave_radiation": [0, 12.5, 80],
    "temperature_2m": [11.2, 10.8, 10.5]
  }
}`

func TestLoadWeatherJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.json")
	require.NoError(t, os.WriteFile(path, []byte(weatherJSON), 0o644))

	series, err := LoadWeatherJSON(path)
	require.NoError(t, err)
	require.Len(t, series, 3)

	assert.Equal(t, 2026, series[0].Time.Year())
	assert.Equal(t, 1, series[1].Time.Hour())
	assert.Equal(t, 12.5, series[1].Radiation)
	assert.Equal(t, 10.5, series[2].Temperature)
}

func TestWeatherResponseRejectsMismatchedArrays(t *testing.T) {
	resp := WeatherResponse{Hourly: WeatherHourly{
		Time:               []string{"2026-03-01T00:00", "2026-03-01T01:00"},
		ShortwaveRadiation: []float64{0},
		Temperature2M:      []float64{10, 11},
	}}
	_, err := resp.Samples()
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestWeatherResponseRejectsBadTimestamp(t *testing.T) {
	resp := WeatherResponse{Hourly: WeatherHourly{
		Time:               []string{"yesterday"},
		ShortwaveRadiation: []float64{0},
		Temperature2M:      []float64{10},
	}}
	_, err := resp.Samples()
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestWeatherResponseAcceptsRFC3339(t *testing.T) {
	resp := WeatherResponse{Hourly: WeatherHourly{
		Time:               []string{"2026-03-01T00:00:00Z", "2026-03-01T01:00:00Z"},
		ShortwaveRadiation: []float64{0, 5},
		Temperature2M:      []float64{10, 11},
	}}
	series, err := resp.Samples()
	require.NoError(t, err)
	assert.Len(t, series, 2)
}

func TestWeatherResponseRejectsUnorderedSeries(t *testing.T) {
	resp := WeatherResponse{Hourly: WeatherHourly{
		Time:               []string{"2026-03-01T02:00", "2026-03-01T01:00"},
		ShortwaveRadiation: []float64{0, 5},
		Temperature2M:      []float64{10, 11},
	}}
	_, err := resp.Samples()
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
