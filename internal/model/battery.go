package model

import "fmt"

// BatteryParams defines the fixed parameters of the storage asset.
// Units:
// - CapacityKWh: kWh
// - MaxPowerKW: kW
// - SOC bounds: percent 0..100
type BatteryParams struct {
	CapacityKWh float64
	MaxPowerKW  float64
	MinSOC      float64
	MaxSOC      float64
}

// BatteryState captures mutable state.
type BatteryState struct {
	// SOC is the state of charge as a percent [0,100].
	SOC float64
}

// Battery bundles params + state. The state is owned by the dispatch walk:
// only the simulation engine advances SOC, once per hour, in timestamp order.
type Battery struct {
	Params BatteryParams
	State  BatteryState
}

func NewBattery(params BatteryParams, initialSOC float64) (*Battery, error) {
	b := &Battery{
		Params: params,
		State:  BatteryState{SOC: initialSOC},
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Battery) Validate() error {
	p := b.Params
	if p.CapacityKWh <= 0 {
		return fmt.Errorf("%w: CapacityKWh must be > 0", ErrInvalidInput)
	}
	if p.MaxPowerKW <= 0 {
		return fmt.Errorf("%w: MaxPowerKW must be > 0", ErrInvalidInput)
	}
	if p.MinSOC < 0 || p.MinSOC > 100 || p.MaxSOC < 0 || p.MaxSOC > 100 || p.MinSOC > p.MaxSOC {
		return fmt.Errorf("%w: SOC bounds must satisfy 0<=MinSOC<=MaxSOC<=100", ErrInvalidInput)
	}
	if b.State.SOC < 0 || b.State.SOC > 100 {
		return fmt.Errorf("%w: initial SOC must be within [0,100]", ErrInvalidInput)
	}
	return nil
}

// ApplyPower advances SOC for one hour at the given storage power
// (positive = charging, negative = discharging) and returns the new SOC.
// SOC is clamped to [0,100]; the policy's bound checks keep it inside
// [MinSOC, MaxSOC], the clamp only absorbs numeric drift.
func (b *Battery) ApplyPower(storagePowerKW float64) float64 {
	soc := b.State.SOC + (storagePowerKW/b.Params.CapacityKWh)*100
	if soc < 0 {
		soc = 0
	}
	if soc > 100 {
		soc = 100
	}
	b.State.SOC = soc
	return soc
}
