package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTOUClassifiesEveryHour(t *testing.T) {
	tou := DefaultTOU()
	require.NoError(t, tou.Validate())

	want := map[int]Period{
		0: PeriodValley, 1: PeriodValley, 2: PeriodValley, 3: PeriodValley,
		4: PeriodValley, 5: PeriodValley, 6: PeriodValley,
		7:  PeriodFlat,
		8:  PeriodPeak, 9: PeriodPeak, 10: PeriodPeak, 11: PeriodPeak,
		12: PeriodFlat, 13: PeriodFlat, 14: PeriodFlat, 15: PeriodFlat, 16: PeriodFlat,
		17: PeriodPeak, 18: PeriodPeak, 19: PeriodPeak, 20: PeriodPeak, 21: PeriodPeak,
		22: PeriodFlat,
		23: PeriodValley,
	}
	for hour := 0; hour < 24; hour++ {
		price, period, err := tou.PriceFor(hour)
		require.NoError(t, err, "hour %d", hour)
		assert.Equal(t, want[hour], period, "hour %d", hour)
		assert.Greater(t, price, 0.0, "hour %d", hour)
	}
}

func TestPriceForPrecedence(t *testing.T) {
	// Hour 8 is listed in all three bands; peak must win. Hour 9 is in both
	// valley and flat; valley must win.
	tou := TOUSchedule{
		Peak:   TOUBand{Hours: []int{8}, Price: 1.20},
		Flat:   TOUBand{Hours: []int{8, 9}, Price: 0.80},
		Valley: TOUBand{Hours: []int{8, 9}, Price: 0.40},
	}
	require.NoError(t, tou.Validate())

	price, period, err := tou.PriceFor(8)
	require.NoError(t, err)
	assert.Equal(t, PeriodPeak, period)
	assert.Equal(t, 1.20, price)

	price, period, err = tou.PriceFor(9)
	require.NoError(t, err)
	assert.Equal(t, PeriodValley, period)
	assert.Equal(t, 0.40, price)
}

func TestPriceForFlatIsDefault(t *testing.T) {
	// An hour listed in no band resolves to flat.
	tou := TOUSchedule{
		Peak:   TOUBand{Hours: []int{18}, Price: 1.20},
		Flat:   TOUBand{Hours: nil, Price: 0.80},
		Valley: TOUBand{Hours: []int{2}, Price: 0.40},
	}
	price, period, err := tou.PriceFor(14)
	require.NoError(t, err)
	assert.Equal(t, PeriodFlat, period)
	assert.Equal(t, 0.80, price)
}

func TestPriceForOutOfRange(t *testing.T) {
	tou := DefaultTOU()
	for _, hour := range []int{-1, 24, 100} {
		_, _, err := tou.PriceFor(hour)
		require.Error(t, err, "hour %d", hour)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestTOUValidate(t *testing.T) {
	bad := DefaultTOU()
	bad.Peak.Price = 0
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)

	bad = DefaultTOU()
	bad.Valley.Hours = append(bad.Valley.Hours, 24)
	assert.ErrorIs(t, bad.Validate(), ErrInvalidInput)
}
