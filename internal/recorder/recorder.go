package recorder

import (
	"time"

	"vpp-dispatch/internal/model"
	"vpp-dispatch/internal/simulate"
)

// RunSnapshot holds the aggregate record of one simulation run.
type RunSnapshot struct {
	StartedAt        time.Time
	Hours            int
	PredictedPeakKW  float64
	BaselineLoadKW   float64
	TotalCost        float64
	TotalRevenue     float64
	TotalMargin      float64
	CostSaving       float64
	MarginGain       float64
	PeakReductionKWh float64
	FinalSOC         float64
	R2               float64
	MAPE             float64
	RMSE             float64
}

// SnapshotFromResult flattens an engine result into a snapshot.
func SnapshotFromResult(res *simulate.Result, startedAt time.Time) *RunSnapshot {
	snap := &RunSnapshot{
		StartedAt:        startedAt,
		Hours:            len(res.Dispatch),
		PredictedPeakKW:  res.KPI.PredictedPeakKW,
		BaselineLoadKW:   res.KPI.BaselineLoadKW,
		TotalCost:        res.KPI.Dispatch.Cost,
		TotalRevenue:     res.KPI.Dispatch.Revenue,
		TotalMargin:      res.KPI.Dispatch.Margin,
		CostSaving:       res.KPI.CostSaving,
		MarginGain:       res.KPI.MarginGain,
		PeakReductionKWh: res.KPI.PeakReductionKWh,
		FinalSOC:         res.FinalSOC,
	}
	if res.Forecast != nil {
		snap.R2 = res.Forecast.R2
		snap.MAPE = res.Forecast.MAPE
		snap.RMSE = res.Forecast.RMSE
	}
	return snap
}

// Recorder persists run history for later reporting.
type Recorder interface {
	RecordRun(snap *RunSnapshot, dispatch []model.DispatchAction) error
	Close() error
}

// Noop discards everything. Used when no database is configured.
type Noop struct{}

func (Noop) RecordRun(*RunSnapshot, []model.DispatchAction) error { return nil }
func (Noop) Close() error                                         { return nil }
