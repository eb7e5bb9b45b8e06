package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	"vpp-dispatch/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists run snapshots and dispatch traces to SQLite.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so reporting tools can read while a run is being written.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at         INTEGER NOT NULL,
			hours              INTEGER NOT NULL,
			predicted_peak_kw  REAL,
			baseline_load_kw   REAL,
			total_cost         REAL,
			total_revenue      REAL,
			total_margin       REAL,
			cost_saving        REAL,
			margin_gain        REAL,
			peak_reduction_kwh REAL,
			final_soc          REAL,
			r2                 REAL,
			mape               REAL,
			rmse               REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at)`,

		`CREATE TABLE IF NOT EXISTS dispatch_rows (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id           INTEGER NOT NULL REFERENCES runs(id),
			ts               INTEGER NOT NULL,
			hour             INTEGER NOT NULL,
			period           TEXT,
			price            REAL,
			grid_load_kw     REAL,
			pv_output_kw     REAL,
			action           TEXT,
			storage_power_kw REAL,
			grid_purchase_kw REAL,
			soc_after        REAL,
			cost             REAL,
			revenue          REAL,
			margin           REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_dispatch_run ON dispatch_rows(run_id)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// RecordRun inserts the snapshot and its dispatch trace in one transaction.
func (r *SQLiteRecorder) RecordRun(snap *RunSnapshot, dispatch []model.DispatchAction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO runs (
			started_at, hours, predicted_peak_kw, baseline_load_kw,
			total_cost, total_revenue, total_margin,
			cost_saving, margin_gain, peak_reduction_kwh,
			final_soc, r2, mape, rmse
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		snap.StartedAt.Unix(), snap.Hours, snap.PredictedPeakKW, snap.BaselineLoadKW,
		snap.TotalCost, snap.TotalRevenue, snap.TotalMargin,
		snap.CostSaving, snap.MarginGain, snap.PeakReductionKWh,
		snap.FinalSOC, snap.R2, snap.MAPE, snap.RMSE,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO dispatch_rows (
			run_id, ts, hour, period, price, grid_load_kw, pv_output_kw,
			action, storage_power_kw, grid_purchase_kw, soc_after,
			cost, revenue, margin
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare dispatch insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range dispatch {
		if _, err := stmt.Exec(
			runID, a.Time.Unix(), a.Hour, string(a.Period), a.Price,
			a.GridLoadKW, a.PVOutputKW, string(a.Action),
			a.StoragePowerKW, a.GridPurchaseKW, a.SOCAfter,
			a.Economics.Cost, a.Economics.Revenue, a.Economics.Margin,
		); err != nil {
			return fmt.Errorf("insert dispatch row: %w", err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
