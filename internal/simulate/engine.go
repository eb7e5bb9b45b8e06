package simulate

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"vpp-dispatch/internal/forecast"
	"vpp-dispatch/internal/model"
)

// Params are the fixed inputs of one simulation run.
type Params struct {
	Battery       model.BatteryParams
	InitialSOC    float64 // percent
	PVCapacityKWp float64
	TOU           model.TOUSchedule
	// Markup is the sales-price multiplier over the TOU purchase price.
	Markup float64
	// DefaultBaseLoadKW is used when the registry yields no predicted peak.
	DefaultBaseLoadKW float64
	Seed              int64
}

func (p Params) Validate() error {
	if _, err := model.NewBattery(p.Battery, p.InitialSOC); err != nil {
		return err
	}
	if p.PVCapacityKWp <= 0 {
		return fmt.Errorf("%w: PV capacity must be > 0", model.ErrInvalidInput)
	}
	if err := p.TOU.Validate(); err != nil {
		return err
	}
	if p.Markup < 1 {
		return fmt.Errorf("%w: markup must be >= 1", model.ErrInvalidInput)
	}
	if p.DefaultBaseLoadKW <= 0 {
		return fmt.Errorf("%w: default base load must be > 0", model.ErrInvalidInput)
	}
	return nil
}

// KPI is the aggregate record of one run.
type KPI struct {
	PredictedPeakKW  float64 `json:"predicted_peak_kw"`
	BaselineLoadKW   float64 `json:"baseline_load_kw"`
	Dispatch         Totals  `json:"dispatch"`
	Baseline         Totals  `json:"baseline"`
	CostSaving       float64 `json:"cost_saving"`
	MarginGain       float64 `json:"margin_gain"`
	PeakReductionKWh float64 `json:"peak_reduction_kwh"`
}

// Result is the full output snapshot of one run.
type Result struct {
	Samples    []model.SimulatedSample
	Businesses []model.BusinessForecast
	Dispatch   []model.DispatchAction
	Baseline   []model.DispatchAction
	KPI        KPI
	Forecast   *forecast.Model
	FinalSOC   float64
}

// Engine drives one full run: load/PV simulation, the sequential dispatch
// walk, the zero-storage baseline, economic aggregation and the forecast fit.
// A run is atomic and stateless between invocations.
type Engine struct {
	params Params
}

func New(params Params) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Engine{params: params}, nil
}

// Run executes one simulation over a weather series and a business registry.
// Either the whole trace and KPI set is produced, or nothing is.
func (e *Engine) Run(series []model.TimeSample, registry []model.Business) (*Result, error) {
	if err := model.ValidateSeries(series); err != nil {
		return nil, err
	}

	businesses, predictedPeak, err := model.PredictRegistry(registry)
	if err != nil {
		return nil, err
	}

	baseLoad := e.params.DefaultBaseLoadKW
	if predictedPeak > 0 {
		// Peak demand runs above the average; 0.6 maps it to a baseline.
		baseLoad = 0.6 * predictedPeak
	}

	rng := rand.New(rand.NewSource(e.params.Seed))
	samples := BuildSamples(series, e.params.PVCapacityKWp, baseLoad, rng)

	// The forecast fit only reads the immutable samples and counts, so it
	// runs alongside the dispatch walk.
	var (
		wg      sync.WaitGroup
		fcModel *forecast.Model
		fcErr   error
		counts  = model.CountByIndustry(registry)
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		frame, err := forecast.BuildFrame(samples, counts, e.params.TOU)
		if err != nil {
			fcErr = err
			return
		}
		fcModel, fcErr = forecast.FitEvaluate(frame, forecast.DefaultAlpha)
	}()

	dispatch, finalSOC, err := e.walkDispatch(samples)
	if err != nil {
		return nil, err
	}
	baseline, err := e.walkBaseline(samples)
	if err != nil {
		return nil, err
	}

	wg.Wait()
	if fcErr != nil {
		return nil, fmt.Errorf("forecast fit: %w", fcErr)
	}

	kpi := KPI{
		PredictedPeakKW: predictedPeak,
		BaselineLoadKW:  baseLoad,
		Dispatch:        Aggregate(dispatch),
		Baseline:        Aggregate(baseline),
	}
	kpi.CostSaving = Round2(kpi.Baseline.Cost - kpi.Dispatch.Cost)
	kpi.MarginGain = Round2(kpi.Dispatch.Margin - kpi.Baseline.Margin)
	for i := range dispatch {
		if dispatch[i].Period == model.PeriodPeak {
			kpi.PeakReductionKWh += math.Max(0, baseline[i].GridPurchaseKW-dispatch[i].GridPurchaseKW)
		}
	}

	return &Result{
		Samples:    samples,
		Businesses: businesses,
		Dispatch:   dispatch,
		Baseline:   baseline,
		KPI:        kpi,
		Forecast:   fcModel,
		FinalSOC:   finalSOC,
	}, nil
}

// walkDispatch is the stateful hourly fold: each hour's decision reads the
// SOC left by the previous hour, so the trace must be computed strictly
// in order.
func (e *Engine) walkDispatch(samples []model.SimulatedSample) ([]model.DispatchAction, float64, error) {
	batt, err := model.NewBattery(e.params.Battery, e.params.InitialSOC)
	if err != nil {
		return nil, 0, err
	}

	trace := make([]model.DispatchAction, 0, len(samples))
	for _, s := range samples {
		hour := s.Time.Hour()
		price, period, err := e.params.TOU.PriceFor(hour)
		if err != nil {
			return nil, 0, err
		}

		decision := Decide(period, batt.State.SOC, batt.Params)
		netLoad := s.GridLoadKW - s.PVOutputKW
		purchase := GridPurchaseKW(netLoad, decision.StoragePowerKW)
		socAfter := batt.ApplyPower(decision.StoragePowerKW)

		trace = append(trace, model.DispatchAction{
			Time:           s.Time,
			Hour:           hour,
			Period:         period,
			Price:          price,
			GridLoadKW:     s.GridLoadKW,
			PVOutputKW:     s.PVOutputKW,
			Action:         decision.Action,
			StoragePowerKW: decision.StoragePowerKW,
			GridPurchaseKW: purchase,
			SOCAfter:       socAfter,
			Reason:         decision.Reason,
			Economics:      Evaluate(purchase, decision.StoragePowerKW, price, e.params.Markup),
		})
	}
	return trace, batt.State.SOC, nil
}

// walkBaseline re-derives the counterfactual trace with storage forced
// inactive. It carries no cross-hour state.
func (e *Engine) walkBaseline(samples []model.SimulatedSample) ([]model.DispatchAction, error) {
	trace := make([]model.DispatchAction, 0, len(samples))
	for _, s := range samples {
		hour := s.Time.Hour()
		price, period, err := e.params.TOU.PriceFor(hour)
		if err != nil {
			return nil, err
		}
		purchase := GridPurchaseKW(s.GridLoadKW-s.PVOutputKW, 0)
		trace = append(trace, model.DispatchAction{
			Time:           s.Time,
			Hour:           hour,
			Period:         period,
			Price:          price,
			GridLoadKW:     s.GridLoadKW,
			PVOutputKW:     s.PVOutputKW,
			Action:         model.ActionHold,
			StoragePowerKW: 0,
			GridPurchaseKW: purchase,
			SOCAfter:       e.params.InitialSOC,
			Reason:         "no-storage baseline",
			Economics:      Evaluate(purchase, 0, price, e.params.Markup),
		})
	}
	return trace, nil
}
