// Package seed installs the built-in reference presets on startup.
package seed

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/atomcost/lcoe/internal/lcoe"
)

const (
	referencePresetName  = "VVER-1200 x4 (reference)"
	singleUnitPresetName = "Single 1100 MWe unit (flat fuel cost)"
)

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run executes the startup seed in an idempotent way: presets are
// matched by name and never overwritten, so admin edits survive
// restarts.
func Run(db *sql.DB) (Stats, error) {
	tx, err := db.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := ensurePreset(tx, referencePresetName,
		"Four staggered VVER-1200 class units, detailed fuel cycle.",
		lcoe.DefaultScenario(), &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensurePreset(tx, singleUnitPresetName,
		"One 1100 MWe unit, aggregate annual fuel cost.",
		singleUnitScenario(), &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensurePreset(tx *sql.Tx, name, notes string, sc lcoe.Scenario, stats *Stats) error {
	var exists bool
	err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM presets WHERE name = ?)`, name).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check preset %q: %w", name, err)
	}
	if exists {
		return nil
	}

	params, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("marshal preset %q: %w", name, err)
	}

	if _, err := tx.Exec(`
		INSERT INTO presets (name, notes, params_json, active)
		VALUES (?, ?, ?, TRUE)
	`, name, notes, string(params)); err != nil {
		return fmt.Errorf("insert preset %q: %w", name, err)
	}

	stats.Inserts++
	return nil
}

func singleUnitScenario() lcoe.Scenario {
	return lcoe.Scenario{
		Project: lcoe.ProjectParameters{
			NReactors:              1,
			PowerPerReactorMWe:     1100,
			CapacityFactor:         0.92,
			FirstConstructionYears: 6,
			LifetimeYears:          60,
		},
		Costs: lcoe.CostParameters{
			DiscountRate:                 0.07,
			OvernightCostPerReactorUSD:   6e9,
			DismantlingCostPerReactorUSD: 500e6,
			FixedOMPerReactorYearUSD:     100e6,
			VariableOMPerMWhUSD:          5,
			FuelCostPerReactorYearUSD:    150e6,
		},
	}
}
