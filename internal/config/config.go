package config

import (
	"fmt"
	"os"

	"vpp-dispatch/internal/model"
	"vpp-dispatch/internal/simulate"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML). A missing file yields
// the defaults; environment variables override individual fields.
type Config struct {
	Battery    BatteryConfig    `yaml:"battery"`
	PV         PVConfig         `yaml:"pv"`
	TOU        TOUConfig        `yaml:"tou"`
	Market     MarketConfig     `yaml:"market"`
	Simulation SimulationConfig `yaml:"simulation"`
	Database   DatabaseConfig   `yaml:"database"`
}

type BatteryConfig struct {
	CapacityKWh float64 `yaml:"capacity_kwh"`
	MaxPowerKW  float64 `yaml:"max_power_kw"`
	MinSOC      float64 `yaml:"min_soc"`
	MaxSOC      float64 `yaml:"max_soc"`
	InitialSOC  float64 `yaml:"initial_soc"`
}

type PVConfig struct {
	CapacityKWp float64 `yaml:"capacity_kwp"`
}

type TOUBandConfig struct {
	Hours []int   `yaml:"hours"`
	Price float64 `yaml:"price"`
}

type TOUConfig struct {
	Peak   TOUBandConfig `yaml:"peak"`
	Flat   TOUBandConfig `yaml:"flat"`
	Valley TOUBandConfig `yaml:"valley"`
}

type MarketConfig struct {
	Markup            float64 `yaml:"markup"`
	DefaultBaseLoadKW float64 `yaml:"default_base_load_kw"`
}

type SimulationConfig struct {
	Seed int64 `yaml:"seed"`
}

type DatabaseConfig struct {
	SQLitePath string `yaml:"sqlite_path"`
}

// Load reads config from a YAML file, applies environment overrides and
// defaults, then validates. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("VPP_SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("VPP_MARKUP"); v != "" {
		var markup float64
		if _, err := fmt.Sscanf(v, "%f", &markup); err == nil {
			cfg.Market.Markup = markup
		}
	}
	if v := os.Getenv("VPP_SEED"); v != "" {
		var seed int64
		if _, err := fmt.Sscanf(v, "%d", &seed); err == nil {
			cfg.Simulation.Seed = seed
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Battery.CapacityKWh == 0 {
		// 20% power ratio with two hours of backup against the default
		// 12 MW park baseline.
		c.Battery.CapacityKWh = 15000
	}
	if c.Battery.MaxPowerKW == 0 {
		c.Battery.MaxPowerKW = 3000
	}
	if c.Battery.MinSOC == 0 {
		c.Battery.MinSOC = 20
	}
	if c.Battery.MaxSOC == 0 {
		c.Battery.MaxSOC = 90
	}
	if c.Battery.InitialSOC == 0 {
		c.Battery.InitialSOC = 60
	}
	if c.PV.CapacityKWp == 0 {
		c.PV.CapacityKWp = 1000
	}
	if len(c.TOU.Peak.Hours) == 0 && len(c.TOU.Flat.Hours) == 0 && len(c.TOU.Valley.Hours) == 0 {
		def := model.DefaultTOU()
		c.TOU = TOUConfig{
			Peak:   TOUBandConfig{Hours: def.Peak.Hours, Price: def.Peak.Price},
			Flat:   TOUBandConfig{Hours: def.Flat.Hours, Price: def.Flat.Price},
			Valley: TOUBandConfig{Hours: def.Valley.Hours, Price: def.Valley.Price},
		}
	}
	if c.Market.Markup == 0 {
		c.Market.Markup = 1.10
	}
	if c.Market.DefaultBaseLoadKW == 0 {
		c.Market.DefaultBaseLoadKW = 12000
	}
	if c.Simulation.Seed == 0 {
		c.Simulation.Seed = 42
	}
}

// Validate checks the config by constructing the engine parameters.
func (c *Config) Validate() error {
	if _, err := simulate.New(c.EngineParams()); err != nil {
		return fmt.Errorf("config invalid: %w", err)
	}
	return nil
}

// TOUSchedule converts the config bands into the model schedule.
func (c *Config) TOUSchedule() model.TOUSchedule {
	return model.TOUSchedule{
		Peak:   model.TOUBand{Hours: c.TOU.Peak.Hours, Price: c.TOU.Peak.Price},
		Flat:   model.TOUBand{Hours: c.TOU.Flat.Hours, Price: c.TOU.Flat.Price},
		Valley: model.TOUBand{Hours: c.TOU.Valley.Hours, Price: c.TOU.Valley.Price},
	}
}

// EngineParams converts the config into simulation parameters.
func (c *Config) EngineParams() simulate.Params {
	return simulate.Params{
		Battery: model.BatteryParams{
			CapacityKWh: c.Battery.CapacityKWh,
			MaxPowerKW:  c.Battery.MaxPowerKW,
			MinSOC:      c.Battery.MinSOC,
			MaxSOC:      c.Battery.MaxSOC,
		},
		InitialSOC:        c.Battery.InitialSOC,
		PVCapacityKWp:     c.PV.CapacityKWp,
		TOU:               c.TOUSchedule(),
		Markup:            c.Market.Markup,
		DefaultBaseLoadKW: c.Market.DefaultBaseLoadKW,
		Seed:              c.Simulation.Seed,
	}
}
