package model

import "fmt"

// Industry is the closed set of business categories the cell serves.
// Unknown categories fail explicitly instead of silently defaulting.
type Industry string

const (
	IndustryManufacturing  Industry = "manufacturing"
	IndustryFoodRetail     Industry = "food_retail"
	IndustryLogistics      Industry = "logistics"
	IndustryOfficeServices Industry = "office_services"
)

// Industries returns all known categories in a stable order. The order also
// fixes the industry-count feature layout in the forecast frame.
func Industries() []Industry {
	return []Industry{
		IndustryManufacturing,
		IndustryFoodRetail,
		IndustryLogistics,
		IndustryOfficeServices,
	}
}

// LoadShape labels the typical daily demand curve of an industry.
type LoadShape string

const (
	ShapeStableHigh LoadShape = "stable_high"
	ShapeDualPeak   LoadShape = "dual_peak"
	ShapeFlat       LoadShape = "flat"
	ShapeDayHigh    LoadShape = "day_high"
)

// IndustryProfile is static reference data weighting the baseline load
// magnitude; never mutated at run time.
type IndustryProfile struct {
	BaseLoadKW float64
	PeakRatio  float64
	Shape      LoadShape
}

var industryProfiles = map[Industry]IndustryProfile{
	IndustryManufacturing:  {BaseLoadKW: 500, PeakRatio: 0.6, Shape: ShapeStableHigh},
	IndustryFoodRetail:     {BaseLoadKW: 150, PeakRatio: 0.8, Shape: ShapeDualPeak},
	IndustryLogistics:      {BaseLoadKW: 80, PeakRatio: 0.3, Shape: ShapeFlat},
	IndustryOfficeServices: {BaseLoadKW: 200, PeakRatio: 0.7, Shape: ShapeDayHigh},
}

func ProfileFor(ind Industry) (IndustryProfile, error) {
	p, ok := industryProfiles[ind]
	if !ok {
		return IndustryProfile{}, fmt.Errorf("%w: %q", ErrUnknownIndustry, ind)
	}
	return p, nil
}

func ParseIndustry(s string) (Industry, error) {
	ind := Industry(s)
	if _, ok := industryProfiles[ind]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownIndustry, s)
	}
	return ind, nil
}

// Scale is the registered operating scale of a business.
type Scale string

const (
	ScaleSmall  Scale = "S"
	ScaleMedium Scale = "M"
	ScaleLarge  Scale = "L"
)

var scaleFactors = map[Scale]float64{
	ScaleSmall:  0.8,
	ScaleMedium: 1.0,
	ScaleLarge:  1.2,
}

func ParseScale(s string) (Scale, error) {
	sc := Scale(s)
	if _, ok := scaleFactors[sc]; !ok {
		return "", fmt.Errorf("%w: scale %q (want S, M or L)", ErrInvalidInput, s)
	}
	return sc, nil
}

// Business is one registry row from the collaborator.
type Business struct {
	Name              string   `json:"name"`
	Industry          Industry `json:"industry"`
	RegisteredCapital float64  `json:"registered_capital"` // 10k currency units
	Scale             Scale    `json:"scale"`
}

func (b Business) Validate() error {
	if _, err := ProfileFor(b.Industry); err != nil {
		return err
	}
	if _, ok := scaleFactors[b.Scale]; !ok {
		return fmt.Errorf("%w: scale %q for %q", ErrInvalidInput, b.Scale, b.Name)
	}
	if b.RegisteredCapital <= 0 {
		return fmt.Errorf("%w: registered capital must be > 0 for %q", ErrInvalidInput, b.Name)
	}
	return nil
}

// BusinessForecast is the per-business predicted peak load.
type BusinessForecast struct {
	Name            string    `json:"name"`
	Industry        Industry  `json:"industry"`
	PredictedPeakKW float64   `json:"predicted_peak_kw"`
	Shape           LoadShape `json:"shape"`
}

// PredictPeakLoadKW estimates a single business's peak demand:
// industry base load × capital/100 × scale factor.
func PredictPeakLoadKW(b Business) (float64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	profile, err := ProfileFor(b.Industry)
	if err != nil {
		return 0, err
	}
	return profile.BaseLoadKW * (b.RegisteredCapital / 100) * scaleFactors[b.Scale], nil
}

// PredictRegistry predicts every business in the registry and returns the
// per-business forecasts plus the aggregated peak.
func PredictRegistry(registry []Business) ([]BusinessForecast, float64, error) {
	forecasts := make([]BusinessForecast, 0, len(registry))
	total := 0.0
	for _, b := range registry {
		peak, err := PredictPeakLoadKW(b)
		if err != nil {
			return nil, 0, err
		}
		profile, _ := ProfileFor(b.Industry)
		forecasts = append(forecasts, BusinessForecast{
			Name:            b.Name,
			Industry:        b.Industry,
			PredictedPeakKW: peak,
			Shape:           profile.Shape,
		})
		total += peak
	}
	return forecasts, total, nil
}

// CountByIndustry counts registry rows per known category. Categories with
// no businesses are present with a zero count so the forecast feature layout
// is stable.
func CountByIndustry(registry []Business) map[Industry]int {
	counts := make(map[Industry]int, len(industryProfiles))
	for _, ind := range Industries() {
		counts[ind] = 0
	}
	for _, b := range registry {
		counts[b.Industry]++
	}
	return counts
}
