package data

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"vpp-dispatch/internal/model"
)

// SyntheticWeather generates an hourly weather series with a diurnal
// temperature cycle (trough in the early morning) and a daylight radiation
// curve with random cloud attenuation. Deterministic for a given rng.
func SyntheticWeather(start time.Time, hours int, rng *rand.Rand) []model.TimeSample {
	start = start.Truncate(time.Hour)
	series := make([]model.TimeSample, 0, hours)
	for i := 0; i < hours; i++ {
		ts := start.Add(time.Duration(i) * time.Hour)
		h := float64(ts.Hour())

		temp := 15 + 5*math.Sin(2*math.Pi*(h-9)/24) + rng.NormFloat64()*0.5

		radiation := 0.0
		if h >= 6 && h <= 18 {
			// Sine approximation of solar elevation, 800 W/m² noon peak,
			// scaled by a 0.6..1.0 cloud factor.
			radiation = 800 * math.Sin(math.Pi*(h-6)/12) * (0.6 + 0.4*rng.Float64())
			if radiation < 0 {
				radiation = 0
			}
		}

		series = append(series, model.TimeSample{
			Time:        ts,
			Temperature: temp,
			Radiation:   radiation,
		})
	}
	return series
}

var syntheticCapitals = []float64{80, 100, 150, 200, 300, 500, 1000}

// SyntheticRegistry generates n plausible business registry rows.
func SyntheticRegistry(n int, rng *rand.Rand) []model.Business {
	industries := model.Industries()
	scales := []model.Scale{model.ScaleSmall, model.ScaleMedium, model.ScaleLarge}

	registry := make([]model.Business, 0, n)
	for i := 0; i < n; i++ {
		registry = append(registry, model.Business{
			Name:              fmt.Sprintf("synthetic-business-%04d", rng.Intn(9000)+1000),
			Industry:          industries[rng.Intn(len(industries))],
			RegisteredCapital: syntheticCapitals[rng.Intn(len(syntheticCapitals))],
			Scale:             scales[rng.Intn(len(scales))],
		})
	}
	return registry
}
