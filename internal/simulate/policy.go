package simulate

import (
	"math"

	"vpp-dispatch/internal/model"
)

// Decision is the policy output for one hour, before the engine applies it.
type Decision struct {
	Action         model.Action
	StoragePowerKW float64
	Reason         string
}

// Decide is the greedy peak-shaving / valley-filling rule, evaluated once per
// hour. It is a pure function of the period and the current SOC:
//
//   - peak and SOC above the floor: discharge at up to max power, limited by
//     the energy available above MinSOC
//   - valley and SOC below the ceiling: charge at up to max power, limited by
//     the headroom below MaxSOC
//   - everything else holds; there is no discharge during flat hours and no
//     anticipatory holding back of charge for an upcoming peak
func Decide(period model.Period, soc float64, params model.BatteryParams) Decision {
	switch period {
	case model.PeriodPeak:
		if soc > params.MinSOC {
			available := (soc - params.MinSOC) / 100 * params.CapacityKWh
			return Decision{
				Action:         model.ActionDischarge,
				StoragePowerKW: -math.Min(params.MaxPowerKW, available),
				Reason:         "peak price, discharging to shave the peak",
			}
		}
		return Decision{Action: model.ActionHold, Reason: "peak price but storage at floor, holding"}
	case model.PeriodValley:
		if soc < params.MaxSOC {
			headroom := (params.MaxSOC - soc) / 100 * params.CapacityKWh
			return Decision{
				Action:         model.ActionCharge,
				StoragePowerKW: math.Min(params.MaxPowerKW, headroom),
				Reason:         "valley price, charging to fill the valley",
			}
		}
		return Decision{Action: model.ActionHold, Reason: "valley price but storage full, holding"}
	default:
		return Decision{Action: model.ActionHold, Reason: "flat period, holding"}
	}
}

// GridPurchaseKW computes the resulting grid draw for an hour. Charging adds
// to the draw, discharging subtracts; the result is floored at zero because
// the cell never sells excess back to the grid.
func GridPurchaseKW(netLoadKW, storagePowerKW float64) float64 {
	return math.Max(0, netLoadKW+storagePowerKW)
}
