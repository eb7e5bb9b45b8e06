package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictPeakLoadKW(t *testing.T) {
	// manufacturing base 500, capital 800 (10k units), scale L (1.2):
	// 500 * 800/100 * 1.2 = 4800
	peak, err := PredictPeakLoadKW(Business{
		Name:              "acme-metalworks",
		Industry:          IndustryManufacturing,
		RegisteredCapital: 800,
		Scale:             ScaleLarge,
	})
	require.NoError(t, err)
	assert.InDelta(t, 4800.0, peak, 1e-9)

	// food_retail base 150, capital 100, scale S (0.8): 150 * 1 * 0.8 = 120
	peak, err = PredictPeakLoadKW(Business{
		Name:              "corner-grocer",
		Industry:          IndustryFoodRetail,
		RegisteredCapital: 100,
		Scale:             ScaleSmall,
	})
	require.NoError(t, err)
	assert.InDelta(t, 120.0, peak, 1e-9)
}

func TestPredictPeakLoadKWRejectsBadInput(t *testing.T) {
	_, err := PredictPeakLoadKW(Business{
		Name:              "mystery",
		Industry:          "crypto_mining",
		RegisteredCapital: 100,
		Scale:             ScaleMedium,
	})
	assert.ErrorIs(t, err, ErrUnknownIndustry)

	_, err = PredictPeakLoadKW(Business{
		Name:              "freebie",
		Industry:          IndustryLogistics,
		RegisteredCapital: 0,
		Scale:             ScaleMedium,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPredictRegistry(t *testing.T) {
	registry := []Business{
		{Name: "a", Industry: IndustryManufacturing, RegisteredCapital: 100, Scale: ScaleMedium}, // 500
		{Name: "b", Industry: IndustryOfficeServices, RegisteredCapital: 100, Scale: ScaleMedium}, // 200
	}
	forecasts, total, err := PredictRegistry(registry)
	require.NoError(t, err)
	require.Len(t, forecasts, 2)
	assert.InDelta(t, 700.0, total, 1e-9)
	assert.Equal(t, ShapeStableHigh, forecasts[0].Shape)
	assert.Equal(t, ShapeDayHigh, forecasts[1].Shape)
}

func TestPredictRegistryFailsAtomically(t *testing.T) {
	registry := []Business{
		{Name: "ok", Industry: IndustryLogistics, RegisteredCapital: 100, Scale: ScaleMedium},
		{Name: "bad", Industry: "unknown", RegisteredCapital: 100, Scale: ScaleMedium},
	}
	forecasts, total, err := PredictRegistry(registry)
	assert.ErrorIs(t, err, ErrUnknownIndustry)
	assert.Nil(t, forecasts)
	assert.Zero(t, total)
}

func TestCountByIndustryZeroFills(t *testing.T) {
	counts := CountByIndustry([]Business{
		{Name: "a", Industry: IndustryFoodRetail, RegisteredCapital: 50, Scale: ScaleSmall},
		{Name: "b", Industry: IndustryFoodRetail, RegisteredCapital: 60, Scale: ScaleSmall},
	})
	assert.Equal(t, 2, counts[IndustryFoodRetail])
	for _, ind := range Industries() {
		_, present := counts[ind]
		assert.True(t, present, "industry %s missing from counts", ind)
	}
	assert.Equal(t, 0, counts[IndustryManufacturing])
}

func TestParseScale(t *testing.T) {
	for s, factor := range map[string]Scale{"S": ScaleSmall, "M": ScaleMedium, "L": ScaleLarge} {
		got, err := ParseScale(s)
		require.NoError(t, err)
		assert.Equal(t, factor, got)
	}
	_, err := ParseScale("XL")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
