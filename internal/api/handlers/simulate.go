package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"vpp-dispatch/internal/api/models"
	"vpp-dispatch/internal/config"
	"vpp-dispatch/internal/data"
	"vpp-dispatch/internal/model"
	"vpp-dispatch/internal/recorder"
	"vpp-dispatch/internal/simulate"

	"github.com/gin-gonic/gin"
)

// SimulateHandler handles simulation requests
type SimulateHandler struct {
	cfg *config.Config
	rec recorder.Recorder
}

// NewSimulateHandler creates a new simulate handler
func NewSimulateHandler(cfg *config.Config, rec recorder.Recorder) *SimulateHandler {
	if rec == nil {
		rec = recorder.Noop{}
	}
	return &SimulateHandler{cfg: cfg, rec: rec}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	series, err := parseWeather(req.Weather)
	if err != nil {
		respondError(c, err, "INVALID_WEATHER")
		return
	}
	if req.Options.LimitHours > 0 && req.Options.LimitHours < len(series) {
		series = series[:req.Options.LimitHours]
	}

	registry, err := parseRegistry(req.Registry)
	if err != nil {
		respondError(c, err, "INVALID_REGISTRY")
		return
	}

	params, err := buildParams(h.cfg, req.Config)
	if err != nil {
		respondError(c, err, "INVALID_CONFIG")
		return
	}

	engine, err := simulate.New(params)
	if err != nil {
		respondError(c, err, "INVALID_CONFIG")
		return
	}

	startedAt := time.Now()
	result, err := engine.Run(series, registry)
	if err != nil {
		respondError(c, err, "SIMULATION_ERROR")
		return
	}

	// Recording failures never fail the request; the result is already in hand.
	if err := h.rec.RecordRun(recorder.SnapshotFromResult(result, startedAt), result.Dispatch); err != nil {
		log.Printf("[WARN] record run: %v", err)
	}

	c.JSON(http.StatusOK, buildSimulateResponse(result, req.Options))
}

// buildParams layers request overrides over the server config.
func buildParams(cfg *config.Config, over models.SimulateConfig) (simulate.Params, error) {
	params := cfg.EngineParams()

	if over.Battery.CapacityKWh != 0 {
		params.Battery.CapacityKWh = over.Battery.CapacityKWh
	}
	if over.Battery.MaxPowerKW != 0 {
		params.Battery.MaxPowerKW = over.Battery.MaxPowerKW
	}
	if over.Battery.MinSOC != 0 {
		params.Battery.MinSOC = over.Battery.MinSOC
	}
	if over.Battery.MaxSOC != 0 {
		params.Battery.MaxSOC = over.Battery.MaxSOC
	}
	if over.Battery.InitialSOC != 0 {
		params.InitialSOC = over.Battery.InitialSOC
	}
	if over.PVCapacityKWp != 0 {
		params.PVCapacityKWp = over.PVCapacityKWp
	}
	if over.TOU != nil {
		params.TOU = model.TOUSchedule{
			Peak:   model.TOUBand{Hours: over.TOU.Peak.Hours, Price: over.TOU.Peak.Price},
			Flat:   model.TOUBand{Hours: over.TOU.Flat.Hours, Price: over.TOU.Flat.Price},
			Valley: model.TOUBand{Hours: over.TOU.Valley.Hours, Price: over.TOU.Valley.Price},
		}
	}
	if over.Markup != 0 {
		params.Markup = over.Markup
	}
	if over.Seed != 0 {
		params.Seed = over.Seed
	}

	if err := params.Validate(); err != nil {
		return simulate.Params{}, err
	}
	return params, nil
}

func buildSimulateResponse(result *simulate.Result, opts models.SimulateOptions) models.SimulateResponse {
	resp := models.SimulateResponse{
		Status:  "completed",
		Summary: buildSummary(result),
	}

	resp.Businesses = make([]models.BusinessRow, len(result.Businesses))
	for i, b := range result.Businesses {
		resp.Businesses[i] = models.BusinessRow{
			Name:            b.Name,
			Industry:        string(b.Industry),
			PredictedPeakKW: b.PredictedPeakKW,
			Shape:           string(b.Shape),
		}
	}

	if result.Forecast != nil {
		fc := buildForecastSummary(result.Forecast, false)
		resp.Forecast = &fc
	}
	if opts.IncludeDispatch {
		resp.Dispatch = convertTrace(result.Dispatch)
	}
	if opts.IncludeBaseline {
		resp.Baseline = convertTrace(result.Baseline)
	}
	return resp
}

func buildSummary(result *simulate.Result) models.SimulateSummary {
	summary := models.SimulateSummary{
		Hours:            len(result.Dispatch),
		PredictedPeakKW:  result.KPI.PredictedPeakKW,
		BaselineLoadKW:   result.KPI.BaselineLoadKW,
		Dispatch:         models.Totals(result.KPI.Dispatch),
		Baseline:         models.Totals(result.KPI.Baseline),
		CostSaving:       result.KPI.CostSaving,
		MarginGain:       result.KPI.MarginGain,
		PeakReductionKWh: result.KPI.PeakReductionKWh,
		FinalSOC:         result.FinalSOC,
	}
	if len(result.Dispatch) > 0 {
		summary.Window = models.TimeWindow{
			Start: result.Dispatch[0].Time,
			End:   result.Dispatch[len(result.Dispatch)-1].Time,
		}
	}
	return summary
}

func convertTrace(trace []model.DispatchAction) []models.TraceRow {
	rows := make([]models.TraceRow, len(trace))
	for i, a := range trace {
		rows[i] = models.TraceRow{
			Index:          i,
			Time:           a.Time,
			Hour:           a.Hour,
			Period:         string(a.Period),
			Price:          a.Price,
			GridLoadKW:     a.GridLoadKW,
			PVOutputKW:     a.PVOutputKW,
			Action:         string(a.Action),
			StoragePowerKW: a.StoragePowerKW,
			GridPurchaseKW: a.GridPurchaseKW,
			SOCAfter:       a.SOCAfter,
			Cost:           a.Economics.Cost,
			Revenue:        a.Economics.Revenue,
			Margin:         a.Economics.Margin,
			Reason:         a.Reason,
		}
	}
	return rows
}

// Shared request parsing

func parseWeather(w models.WeatherInput) ([]model.TimeSample, error) {
	resp := data.WeatherResponse{
		Hourly: data.WeatherHourly{
			Time:               w.Time,
			ShortwaveRadiation: w.ShortwaveRadiation,
			Temperature2M:      w.Temperature2M,
		},
	}
	return resp.Samples()
}

func parseRegistry(rows []models.BusinessInput) ([]model.Business, error) {
	registry := make([]model.Business, 0, len(rows))
	for _, row := range rows {
		ind, err := model.ParseIndustry(row.Industry)
		if err != nil {
			return nil, err
		}
		scale, err := model.ParseScale(row.Scale)
		if err != nil {
			return nil, err
		}
		b := model.Business{
			Name:              row.Name,
			Industry:          ind,
			RegisteredCapital: row.RegisteredCapital,
			Scale:             scale,
		}
		if err := b.Validate(); err != nil {
			return nil, err
		}
		registry = append(registry, b)
	}
	return registry, nil
}

// respondError maps domain errors to status codes. Input-shaped failures are
// the client's fault; everything else is ours.
func respondError(c *gin.Context, err error, fallbackCode string) {
	status := http.StatusInternalServerError
	code := fallbackCode

	switch {
	case errors.Is(err, model.ErrUnknownIndustry):
		status = http.StatusBadRequest
		code = "UNKNOWN_INDUSTRY"
	case errors.Is(err, model.ErrInvalidInput):
		status = http.StatusBadRequest
		code = "INVALID_INPUT"
	case errors.Is(err, model.ErrInsufficientData):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_DATA"
	}

	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}
