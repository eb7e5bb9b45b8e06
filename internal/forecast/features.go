package forecast

import (
	"fmt"
	"math"

	"vpp-dispatch/internal/model"
)

// Frame is the supervised feature matrix for the load forecast.
//
// Column layout, in order: temperature, radiation, hour_sin, hour_cos,
// is_peak, is_valley, one count column per known industry, lag1.
type Frame struct {
	Names []string
	X     [][]float64
	Y     []float64
}

// BuildFrame constructs the feature frame from a simulated trace and the
// registry's per-category counts. The counts are cross-sectional covariates,
// constant over the whole series. The lag1 feature is the previous hour's
// load; the first row has no look-back and uses its own load.
func BuildFrame(samples []model.SimulatedSample, counts map[model.Industry]int, tou model.TOUSchedule) (*Frame, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: no samples to build features from", model.ErrInvalidInput)
	}

	industries := model.Industries()
	names := []string{"temperature", "radiation", "hour_sin", "hour_cos", "is_peak", "is_valley"}
	for _, ind := range industries {
		names = append(names, "cnt_"+string(ind))
	}
	names = append(names, "lag1")

	rows := make([][]float64, 0, len(samples))
	y := make([]float64, 0, len(samples))
	for i, s := range samples {
		hour := s.Time.Hour()
		_, period, err := tou.PriceFor(hour)
		if err != nil {
			return nil, err
		}

		// Peak and valley flags only; flat is the implicit all-zero case,
		// which avoids dummy-variable collinearity.
		isPeak, isValley := 0.0, 0.0
		switch period {
		case model.PeriodPeak:
			isPeak = 1
		case model.PeriodValley:
			isValley = 1
		}

		lag1 := s.GridLoadKW
		if i > 0 {
			lag1 = samples[i-1].GridLoadKW
		}

		row := []float64{
			s.Temperature,
			s.Radiation,
			math.Sin(2 * math.Pi * float64(hour) / 24),
			math.Cos(2 * math.Pi * float64(hour) / 24),
			isPeak,
			isValley,
		}
		for _, ind := range industries {
			row = append(row, float64(counts[ind]))
		}
		row = append(row, lag1)

		rows = append(rows, row)
		y = append(y, s.GridLoadKW)
	}

	return &Frame{Names: names, X: rows, Y: y}, nil
}
