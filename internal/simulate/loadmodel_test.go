package simulate

import (
	"math/rand"
	"testing"
	"time"

	"vpp-dispatch/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPVOutputKW(t *testing.T) {
	// 800 W/m² on a 1000 kWp plant: 800 * 0.20 * 1000 / 1000 = 160 kW.
	assert.InDelta(t, 160.0, PVOutputKW(800, 1000), 1e-9)
	assert.Zero(t, PVOutputKW(0, 1000))
	// Hard-capped at nameplate.
	assert.InDelta(t, 1000.0, PVOutputKW(10000, 1000), 1e-9)
	// Negative radiation clamps to zero rather than producing negative power.
	assert.Zero(t, PVOutputKW(-50, 1000))
}

func weatherSeries(hours int) []model.TimeSample {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	series := make([]model.TimeSample, hours)
	for i := range series {
		series[i] = model.TimeSample{
			Time:        start.Add(time.Duration(i) * time.Hour),
			Temperature: 15 + float64(i%24)*0.5,
			Radiation:   float64((i % 24) * 40),
		}
	}
	return series
}

func TestBuildSamplesDeterministic(t *testing.T) {
	series := weatherSeries(48)
	a := BuildSamples(series, 1000, 12000, rand.New(rand.NewSource(42)))
	b := BuildSamples(series, 1000, 12000, rand.New(rand.NewSource(42)))
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].GridLoadKW, b[i].GridLoadKW, "hour %d", i)
		assert.Equal(t, a[i].PVOutputKW, b[i].PVOutputKW, "hour %d", i)
	}
}

func TestBuildSamplesSeedChangesLoad(t *testing.T) {
	series := weatherSeries(24)
	a := BuildSamples(series, 1000, 12000, rand.New(rand.NewSource(1)))
	b := BuildSamples(series, 1000, 12000, rand.New(rand.NewSource(2)))
	diff := false
	for i := range a {
		if a[i].GridLoadKW != b[i].GridLoadKW {
			diff = true
			break
		}
	}
	assert.True(t, diff, "different seeds must produce different load noise")
}

func TestBuildSamplesFloor(t *testing.T) {
	// A tiny baseline makes the noise term dominant; the floor must still hold.
	series := weatherSeries(200)
	samples := BuildSamples(series, 1000, 1, rand.New(rand.NewSource(7)))
	for i, s := range samples {
		assert.GreaterOrEqual(t, s.GridLoadKW, 0.10*1.0, "hour %d", i)
	}
}

func TestBuildSamplesShape(t *testing.T) {
	series := weatherSeries(24)
	samples := BuildSamples(series, 500, 12000, rand.New(rand.NewSource(42)))
	require.Len(t, samples, 24)
	for i, s := range samples {
		assert.Equal(t, series[i].Time, s.Time)
		assert.Equal(t, PVOutputKW(series[i].Radiation, 500), s.PVOutputKW)
	}
}
