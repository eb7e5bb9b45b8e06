package data

import (
	"encoding/json"
	"fmt"
	"os"

	"vpp-dispatch/internal/model"
)

// registryRow is the raw JSON shape of one business registry entry.
type registryRow struct {
	Name              string  `json:"name"`
	Industry          string  `json:"industry"`
	RegisteredCapital float64 `json:"registered_capital"`
	Scale             string  `json:"scale"`
}

// LoadRegistryJSON reads a business registry file (a JSON array of entries)
// into validated Business values. Unknown industries or scales fail the load.
func LoadRegistryJSON(path string) ([]model.Business, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows []registryRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("parse registry file %s: %w", path, err)
	}

	registry := make([]model.Business, 0, len(rows))
	for i, row := range rows {
		ind, err := model.ParseIndustry(row.Industry)
		if err != nil {
			return nil, fmt.Errorf("registry row %d: %w", i, err)
		}
		scale, err := model.ParseScale(row.Scale)
		if err != nil {
			return nil, fmt.Errorf("registry row %d: %w", i, err)
		}
		b := model.Business{
			Name:              row.Name,
			Industry:          ind,
			RegisteredCapital: row.RegisteredCapital,
			Scale:             scale,
		}
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("registry row %d: %w", i, err)
		}
		registry = append(registry, b)
	}
	return registry, nil
}
