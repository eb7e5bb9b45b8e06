package simulate

import (
	"math"

	"vpp-dispatch/internal/model"
)

// Round2 rounds to 2 decimal places, the resolution of all money amounts.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Evaluate computes the per-hour economics of a dispatch outcome.
//
// cost = purchase × price; revenue = (purchase − storage_power) × price ×
// markup. The (purchase − storage_power) term is the energy actually
// delivered to end customers: purchase net of what went into or came out of
// storage.
func Evaluate(gridPurchaseKW, storagePowerKW, price, markup float64) model.EconomicResult {
	cost := Round2(gridPurchaseKW * price)
	revenue := Round2((gridPurchaseKW - storagePowerKW) * price * markup)
	return model.EconomicResult{
		Cost:    cost,
		Revenue: revenue,
		Margin:  Round2(revenue - cost),
	}
}

// Totals are trace-level sums, rounded once at aggregation so per-hour
// rounding error does not compound.
type Totals struct {
	Cost    float64 `json:"cost"`
	Revenue float64 `json:"revenue"`
	Margin  float64 `json:"margin"`
}

// Aggregate sums a trace's economics. Margin is re-derived from the rounded
// totals rather than summed independently so margin == revenue − cost holds
// exactly in aggregate.
func Aggregate(trace []model.DispatchAction) Totals {
	var cost, revenue float64
	for _, a := range trace {
		cost += a.Economics.Cost
		revenue += a.Economics.Revenue
	}
	t := Totals{
		Cost:    Round2(cost),
		Revenue: Round2(revenue),
	}
	t.Margin = Round2(t.Revenue - t.Cost)
	return t
}
