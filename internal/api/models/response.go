package models

import "time"

// SimulateResponse is the response from a simulation run
type SimulateResponse struct {
	Status     string           `json:"status"`
	Summary    SimulateSummary  `json:"summary"`
	Businesses []BusinessRow    `json:"businesses"`
	Forecast   *ForecastSummary `json:"forecast,omitempty"`
	Dispatch   []TraceRow       `json:"dispatch,omitempty"`
	Baseline   []TraceRow       `json:"baseline,omitempty"`
}

// SimulateSummary contains the aggregated run results
type SimulateSummary struct {
	Hours            int        `json:"hours"`
	Window           TimeWindow `json:"window"`
	PredictedPeakKW  float64    `json:"predicted_peak_kw"`
	BaselineLoadKW   float64    `json:"baseline_load_kw"`
	Dispatch         Totals     `json:"dispatch"`
	Baseline         Totals     `json:"baseline"`
	CostSaving       float64    `json:"cost_saving"`
	MarginGain       float64    `json:"margin_gain"`
	PeakReductionKWh float64    `json:"peak_reduction_kwh"`
	FinalSOC         float64    `json:"final_soc"`
}

// Totals aggregates the money columns of one trace
type Totals struct {
	Cost    float64 `json:"cost"`
	Revenue float64 `json:"revenue"`
	Margin  float64 `json:"margin"`
}

// TimeWindow represents a time range
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// BusinessRow is the per-business predicted peak
type BusinessRow struct {
	Name            string  `json:"name"`
	Industry        string  `json:"industry"`
	PredictedPeakKW float64 `json:"predicted_peak_kw"`
	Shape           string  `json:"shape"`
}

// TraceRow represents one hour of a dispatch or baseline trace
type TraceRow struct {
	Index          int       `json:"index"`
	Time           time.Time `json:"time"`
	Hour           int       `json:"hour"`
	Period         string    `json:"period"`
	Price          float64   `json:"price"`
	GridLoadKW     float64   `json:"grid_load_kw"`
	PVOutputKW     float64   `json:"pv_output_kw"`
	Action         string    `json:"action"` // "CHARGE", "DISCHARGE", "HOLD"
	StoragePowerKW float64   `json:"storage_power_kw"`
	GridPurchaseKW float64   `json:"grid_purchase_kw"`
	SOCAfter       float64   `json:"soc_after"`
	Cost           float64   `json:"cost"`
	Revenue        float64   `json:"revenue"`
	Margin         float64   `json:"margin"`
	Reason         string    `json:"reason"`
}

// ForecastResponse is the response from a standalone forecast fit
type ForecastResponse struct {
	Status   string          `json:"status"`
	Forecast ForecastSummary `json:"forecast"`
}

// ForecastSummary contains the fitted model and its held-out metrics
type ForecastSummary struct {
	FeatureNames []string  `json:"feature_names"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	R2           float64   `json:"r2"`
	MAPE         float64   `json:"mape"`
	RMSE         float64   `json:"rmse"`
	Actual       []float64 `json:"actual,omitempty"`
	Predicted    []float64 `json:"predicted,omitempty"`
}

// IndustriesResponse lists the known industry profiles
type IndustriesResponse struct {
	Industries []IndustryInfo `json:"industries"`
}

// IndustryInfo describes one industry profile
type IndustryInfo struct {
	ID         string  `json:"id"`
	BaseLoadKW float64 `json:"base_load_kw"`
	PeakRatio  float64 `json:"peak_ratio"`
	Shape      string  `json:"shape"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
