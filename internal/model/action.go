package model

import "time"

// Action is the operating mode chosen for one hour.
// Keep these values stable; they are intended for CSV output.
type Action string

const (
	ActionHold      Action = "HOLD"
	ActionCharge    Action = "CHARGE"
	ActionDischarge Action = "DISCHARGE"
)

// EconomicResult is the per-hour money outcome, rounded to 2 decimals.
type EconomicResult struct {
	Cost    float64 `json:"cost"`
	Revenue float64 `json:"revenue"`
	Margin  float64 `json:"margin"`
}

// DispatchAction is one hour of the dispatch trace. Produced once, never
// mutated; the ordered sequence is the primary "what happened" artifact.
type DispatchAction struct {
	Time   time.Time `json:"time"`
	Hour   int       `json:"hour"`
	Period Period    `json:"period"`
	Price  float64   `json:"price"`

	GridLoadKW float64 `json:"grid_load_kw"`
	PVOutputKW float64 `json:"pv_output_kw"`

	Action Action `json:"action"`
	// StoragePowerKW is signed: positive = charging (drawing from the grid
	// side), negative = discharging (supplying load).
	StoragePowerKW float64 `json:"storage_power_kw"`
	// GridPurchaseKW is the resulting grid draw, floored at zero; the policy
	// never sells excess back to the grid.
	GridPurchaseKW float64 `json:"grid_purchase_kw"`
	SOCAfter       float64 `json:"soc_after"`
	Reason         string  `json:"reason"`

	Economics EconomicResult `json:"economics"`
}
