package model

import (
	"fmt"
	"time"
)

// TimeSample is one hourly weather observation. Immutable input row.
type TimeSample struct {
	Time        time.Time `json:"time"`
	Temperature float64   `json:"temperature"` // °C
	Radiation   float64   `json:"radiation"`   // W/m², shortwave
}

// SimulatedSample extends a TimeSample with the derived PV output and
// regional grid load for the same hour. Derived once per run, immutable
// thereafter.
type SimulatedSample struct {
	TimeSample
	PVOutputKW float64 `json:"pv_output_kw"`
	GridLoadKW float64 `json:"grid_load_kw"`
}

// ValidateSeries checks the weather-series contract: non-empty, strictly
// increasing timestamps, non-negative radiation.
func ValidateSeries(series []TimeSample) error {
	if len(series) == 0 {
		return fmt.Errorf("%w: empty weather series", ErrInvalidInput)
	}
	for i, s := range series {
		if s.Radiation < 0 {
			return fmt.Errorf("%w: negative radiation %.2f at index %d", ErrInvalidInput, s.Radiation, i)
		}
		if i == 0 {
			continue
		}
		if !series[i-1].Time.Before(s.Time) {
			return fmt.Errorf("%w: timestamps not strictly increasing at index %d (%s then %s)",
				ErrInvalidInput, i, series[i-1].Time.Format(time.RFC3339), s.Time.Format(time.RFC3339))
		}
	}
	return nil
}
