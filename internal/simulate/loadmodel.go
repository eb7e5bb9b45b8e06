package simulate

import (
	"math/rand"

	"vpp-dispatch/internal/model"
)

// pvEfficiency is the fixed irradiance-to-power conversion factor of the
// PV model. The model is linear in irradiance and hard-capped at nameplate.
const pvEfficiency = 0.20

// loadFloorRatio keeps the simulated load above an irreducible base demand.
const loadFloorRatio = 0.10

// PVOutputKW converts shortwave radiation (W/m²) into PV output for a given
// nameplate capacity (kWp).
func PVOutputKW(radiationWm2, capacityKWp float64) float64 {
	kw := radiationWm2 * pvEfficiency * capacityKWp / 1000.0
	if kw < 0 {
		return 0
	}
	if kw > capacityKWp {
		return capacityKWp
	}
	return kw
}

// BuildSamples derives the hourly PV output and regional demand curve from a
// weather series and a baseline load magnitude.
//
// Load = base + (T − mean(T))·0.005·base + radiation·0.8 + N(0, 0.01·base),
// floored at 10% of base. Temperature sensitivity and noise scale with the
// baseline so the model is consistent across differently sized deployments.
// The rng must be seeded by the caller; given the same seed the output is
// bit-identical.
func BuildSamples(series []model.TimeSample, pvCapacityKWp, baseLoadKW float64, rng *rand.Rand) []model.SimulatedSample {
	meanTemp := 0.0
	for _, s := range series {
		meanTemp += s.Temperature
	}
	if len(series) > 0 {
		meanTemp /= float64(len(series))
	}

	tempCoef := 0.005 * baseLoadKW
	noiseStd := 0.01 * baseLoadKW
	floor := loadFloorRatio * baseLoadKW

	out := make([]model.SimulatedSample, 0, len(series))
	for _, s := range series {
		load := baseLoadKW +
			(s.Temperature-meanTemp)*tempCoef +
			s.Radiation*0.8 +
			rng.NormFloat64()*noiseStd
		if load < floor {
			load = floor
		}
		out = append(out, model.SimulatedSample{
			TimeSample: s,
			PVOutputKW: PVOutputKW(s.Radiation, pvCapacityKWp),
			GridLoadKW: load,
		})
	}
	return out
}
