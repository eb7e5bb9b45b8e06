package models

// SimulateRequest is the request body for running a simulation
type SimulateRequest struct {
	Weather  WeatherInput    `json:"weather" binding:"required"`
	Registry []BusinessInput `json:"registry" binding:"required"`
	Config   SimulateConfig  `json:"config,omitempty"`
	Options  SimulateOptions `json:"options,omitempty"`
}

// WeatherInput carries an inline hourly weather series in the Open-Meteo
// hourly shape: parallel arrays of timestamps, radiation and temperature
type WeatherInput struct {
	Time               []string  `json:"time" binding:"required"`
	ShortwaveRadiation []float64 `json:"shortwave_radiation" binding:"required"`
	Temperature2M      []float64 `json:"temperature_2m" binding:"required"`
}

// BusinessInput is one business registry entry
type BusinessInput struct {
	Name              string  `json:"name"`
	Industry          string  `json:"industry" binding:"required"`
	RegisteredCapital float64 `json:"registered_capital" binding:"required"`
	Scale             string  `json:"scale" binding:"required"` // "S", "M" or "L"
}

// SimulateConfig overrides individual server-side config fields.
// Zero values mean "keep the server default"
type SimulateConfig struct {
	Battery       BatteryConfig `json:"battery,omitempty"`
	PVCapacityKWp float64       `json:"pv_capacity_kwp,omitempty"`
	TOU           *TOUConfig    `json:"tou,omitempty"`
	Markup        float64       `json:"markup,omitempty"`
	Seed          int64         `json:"seed,omitempty"`
}

// BatteryConfig defines battery parameters
type BatteryConfig struct {
	CapacityKWh float64 `json:"capacity_kwh,omitempty"`
	MaxPowerKW  float64 `json:"max_power_kw,omitempty"`
	MinSOC      float64 `json:"min_soc,omitempty"`
	MaxSOC      float64 `json:"max_soc,omitempty"`
	InitialSOC  float64 `json:"initial_soc,omitempty"`
}

// TOUConfig is a full replacement time-of-use schedule. Partial schedules
// are rejected; all three bands must be given together
type TOUConfig struct {
	Peak   TOUBand `json:"peak"`
	Flat   TOUBand `json:"flat"`
	Valley TOUBand `json:"valley"`
}

// TOUBand is one price band with its hours
type TOUBand struct {
	Hours []int   `json:"hours"`
	Price float64 `json:"price"`
}

// SimulateOptions contains optional simulation parameters
type SimulateOptions struct {
	LimitHours      int  `json:"limit_hours,omitempty"`      // 0 = all
	IncludeDispatch bool `json:"include_dispatch,omitempty"` // default: false
	IncludeBaseline bool `json:"include_baseline,omitempty"` // default: false
}

// ForecastRequest is the request body for fitting a load forecast without
// running the dispatch walk
type ForecastRequest struct {
	Weather  WeatherInput    `json:"weather" binding:"required"`
	Registry []BusinessInput `json:"registry" binding:"required"`
	Config   SimulateConfig  `json:"config,omitempty"`
	Alpha    float64         `json:"alpha,omitempty"` // 0 = default
}
