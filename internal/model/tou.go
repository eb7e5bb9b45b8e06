package model

import "fmt"

// Period is the time-of-use bucket for an hour of day.
// Keep these values stable; they are intended for CSV and JSON output.
type Period string

const (
	PeriodPeak   Period = "peak"
	PeriodFlat   Period = "flat"
	PeriodValley Period = "valley"
)

// TOUBand is one price band: the hours of day it covers and its price.
type TOUBand struct {
	Hours []int
	Price float64
}

// TOUSchedule is a three-band time-of-use price table.
//
// Classification precedence is fixed: peak wins over valley, valley over
// flat. Flat is the implicit default, so its hour list does not need to
// enumerate every remaining hour.
type TOUSchedule struct {
	Peak   TOUBand
	Flat   TOUBand
	Valley TOUBand
}

// DefaultTOU returns a typical three-band schedule (prices in currency/kWh).
func DefaultTOU() TOUSchedule {
	return TOUSchedule{
		Peak:   TOUBand{Hours: []int{8, 9, 10, 11, 17, 18, 19, 20, 21}, Price: 1.20},
		Flat:   TOUBand{Hours: []int{7, 12, 13, 14, 15, 16, 22}, Price: 0.80},
		Valley: TOUBand{Hours: []int{0, 1, 2, 3, 4, 5, 6, 23}, Price: 0.40},
	}
}

func (s TOUSchedule) Validate() error {
	for _, band := range []struct {
		name string
		b    TOUBand
	}{
		{"peak", s.Peak},
		{"flat", s.Flat},
		{"valley", s.Valley},
	} {
		if band.b.Price <= 0 {
			return fmt.Errorf("%w: %s price must be > 0", ErrInvalidInput, band.name)
		}
		for _, h := range band.b.Hours {
			if h < 0 || h > 23 {
				return fmt.Errorf("%w: %s hour %d out of range [0,23]", ErrInvalidInput, band.name, h)
			}
		}
	}
	return nil
}

// PriceFor classifies an hour of day and returns its price and period.
// Every hour in [0,23] resolves; hours outside that range are a contract
// violation by the caller.
func (s TOUSchedule) PriceFor(hour int) (float64, Period, error) {
	if hour < 0 || hour > 23 {
		return 0, "", fmt.Errorf("%w: hour %d out of range [0,23]", ErrInvalidInput, hour)
	}
	if containsHour(s.Peak.Hours, hour) {
		return s.Peak.Price, PeriodPeak, nil
	}
	if containsHour(s.Valley.Hours, hour) {
		return s.Valley.Price, PeriodValley, nil
	}
	return s.Flat.Price, PeriodFlat, nil
}

func containsHour(hours []int, h int) bool {
	for _, v := range hours {
		if v == h {
			return true
		}
	}
	return false
}
