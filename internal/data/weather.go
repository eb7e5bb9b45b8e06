package data

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"vpp-dispatch/internal/model"
)

// WeatherResponse matches the Open-Meteo hourly JSON shape:
//
//	{"hourly": {"time": [...], "shortwave_radiation": [...], "temperature_2m": [...]}}
type WeatherResponse struct {
	Hourly WeatherHourly `json:"hourly"`
}

type WeatherHourly struct {
	Time               []string  `json:"time"`
	ShortwaveRadiation []float64 `json:"shortwave_radiation"`
	Temperature2M      []float64 `json:"temperature_2m"`
}

// openMeteoTimeLayout is the timestamp format Open-Meteo uses for hourly
// series (local time, no zone designator).
const openMeteoTimeLayout = "2006-01-02T15:04"

// Samples converts the response into TimeSamples, validating the contract.
func (r *WeatherResponse) Samples() ([]model.TimeSample, error) {
	h := r.Hourly
	if len(h.Time) != len(h.ShortwaveRadiation) || len(h.Time) != len(h.Temperature2M) {
		return nil, fmt.Errorf("%w: hourly arrays have mismatched lengths (%d/%d/%d)",
			model.ErrInvalidInput, len(h.Time), len(h.ShortwaveRadiation), len(h.Temperature2M))
	}
	series := make([]model.TimeSample, 0, len(h.Time))
	for i, raw := range h.Time {
		t, err := time.Parse(openMeteoTimeLayout, raw)
		if err != nil {
			// Some exports carry full RFC3339 timestamps.
			t, err = time.Parse(time.RFC3339, raw)
			if err != nil {
				return nil, fmt.Errorf("%w: bad timestamp %q", model.ErrInvalidInput, raw)
			}
		}
		series = append(series, model.TimeSample{
			Time:        t,
			Temperature: h.Temperature2M[i],
			Radiation:   h.ShortwaveRadiation[i],
		})
	}
	if err := model.ValidateSeries(series); err != nil {
		return nil, err
	}
	return series, nil
}

// LoadWeatherJSON reads an Open-Meteo style hourly file into TimeSamples.
func LoadWeatherJSON(path string) ([]model.TimeSample, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var resp WeatherResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("parse weather file %s: %w", path, err)
	}
	return resp.Samples()
}
