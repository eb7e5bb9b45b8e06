package forecast

import (
	"math"
	"testing"
	"time"

	"vpp-dispatch/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simulatedSamples(hours int) []model.SimulatedSample {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	out := make([]model.SimulatedSample, hours)
	for i := range out {
		out[i] = model.SimulatedSample{
			TimeSample: model.TimeSample{
				Time:        start.Add(time.Duration(i) * time.Hour),
				Temperature: 15 + float64(i%24)*0.5,
				Radiation:   float64((i % 24) * 40),
			},
			PVOutputKW: float64((i % 24) * 8),
			GridLoadKW: 12000 + float64(i%24)*100,
		}
	}
	return out
}

func TestBuildFrameLayout(t *testing.T) {
	samples := simulatedSamples(48)
	counts := map[model.Industry]int{
		model.IndustryManufacturing:  3,
		model.IndustryFoodRetail:     1,
		model.IndustryLogistics:      0,
		model.IndustryOfficeServices: 2,
	}
	frame, err := BuildFrame(samples, counts, model.DefaultTOU())
	require.NoError(t, err)

	want := []string{
		"temperature", "radiation", "hour_sin", "hour_cos", "is_peak", "is_valley",
		"cnt_manufacturing", "cnt_food_retail", "cnt_logistics", "cnt_office_services",
		"lag1",
	}
	assert.Equal(t, want, frame.Names)
	require.Len(t, frame.X, 48)
	require.Len(t, frame.Y, 48)
	for i, row := range frame.X {
		require.Len(t, row, len(want), "row %d", i)
		assert.Equal(t, 3.0, row[6], "row %d", i)
		assert.Equal(t, 1.0, row[7], "row %d", i)
		assert.Equal(t, 0.0, row[8], "row %d", i)
		assert.Equal(t, 2.0, row[9], "row %d", i)
	}
}

func TestBuildFrameCyclicalAndFlags(t *testing.T) {
	samples := simulatedSamples(24)
	frame, err := BuildFrame(samples, map[model.Industry]int{}, model.DefaultTOU())
	require.NoError(t, err)

	// Hour 0: sin=0, cos=1, valley.
	assert.InDelta(t, 0.0, frame.X[0][2], 1e-12)
	assert.InDelta(t, 1.0, frame.X[0][3], 1e-12)
	assert.Equal(t, 0.0, frame.X[0][4])
	assert.Equal(t, 1.0, frame.X[0][5])

	// Hour 6: sin(π/2)=1, valley.
	assert.InDelta(t, 1.0, frame.X[6][2], 1e-12)
	assert.InDelta(t, 0.0, frame.X[6][3], 1e-12)

	// Hour 9: peak flag set, valley clear.
	assert.Equal(t, 1.0, frame.X[9][4])
	assert.Equal(t, 0.0, frame.X[9][5])

	// Hour 13: flat is the all-zero dummy case.
	assert.Equal(t, 0.0, frame.X[13][4])
	assert.Equal(t, 0.0, frame.X[13][5])

	for i, row := range frame.X {
		hour := float64(samples[i].Time.Hour())
		assert.InDelta(t, math.Sin(2*math.Pi*hour/24), row[2], 1e-12, "row %d", i)
		assert.InDelta(t, math.Cos(2*math.Pi*hour/24), row[3], 1e-12, "row %d", i)
	}
}

func TestBuildFrameLag(t *testing.T) {
	samples := simulatedSamples(24)
	frame, err := BuildFrame(samples, map[model.Industry]int{}, model.DefaultTOU())
	require.NoError(t, err)

	lagCol := len(frame.Names) - 1
	// First row has no look-back: lag1 falls back to its own load.
	assert.Equal(t, samples[0].GridLoadKW, frame.X[0][lagCol])
	for i := 1; i < len(samples); i++ {
		assert.Equal(t, samples[i-1].GridLoadKW, frame.X[i][lagCol], "row %d", i)
	}
	for i := range samples {
		assert.Equal(t, samples[i].GridLoadKW, frame.Y[i], "row %d", i)
	}
}

func TestBuildFrameEmpty(t *testing.T) {
	_, err := BuildFrame(nil, map[model.Industry]int{}, model.DefaultTOU())
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}
