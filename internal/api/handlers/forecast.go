package handlers

import (
	"math/rand"
	"net/http"

	"vpp-dispatch/internal/api/models"
	"vpp-dispatch/internal/config"
	"vpp-dispatch/internal/forecast"
	"vpp-dispatch/internal/model"
	"vpp-dispatch/internal/simulate"

	"github.com/gin-gonic/gin"
)

// ForecastHandler handles standalone forecast fits
type ForecastHandler struct {
	cfg *config.Config
}

// NewForecastHandler creates a new forecast handler
func NewForecastHandler(cfg *config.Config) *ForecastHandler {
	return &ForecastHandler{cfg: cfg}
}

// RunForecast handles POST /api/v1/forecast. It simulates the load series the
// same way a full run would, then fits and evaluates the ridge model without
// walking the dispatch policy.
func (h *ForecastHandler) RunForecast(c *gin.Context) {
	var req models.ForecastRequest
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

	_, predictedPeak, err := model.PredictRegistry(registry)
	if err != nil {
		respondError(c, err, "INVALID_REGISTRY")
		return
	}
	baseLoad := params.DefaultBaseLoadKW
	if predictedPeak > 0 {
		baseLoad = 0.6 * predictedPeak
	}

	rng := rand.New(rand.NewSource(params.Seed))
	samples := simulate.BuildSamples(series, params.PVCapacityKWp, baseLoad, rng)

	frame, err := forecast.BuildFrame(samples, model.CountByIndustry(registry), params.TOU)
	if err != nil {
		respondError(c, err, "FORECAST_ERROR")
		return
	}

	alpha := req.Alpha
	if alpha == 0 {
		alpha = forecast.DefaultAlpha
	}
	fitted, err := forecast.FitEvaluate(frame, alpha)
	if err != nil {
		respondError(c, err, "FORECAST_ERROR")
		return
	}

	c.JSON(http.StatusOK, models.ForecastResponse{
		Status:   "completed",
		Forecast: buildForecastSummary(fitted, true),
	})
}

// buildForecastSummary converts a fitted model; includeSeries controls
// whether the held-out actual/predicted vectors are attached.
func buildForecastSummary(m *forecast.Model, includeSeries bool) models.ForecastSummary {
	summary := models.ForecastSummary{
		FeatureNames: m.FeatureNames,
		Coefficients: m.Coefficients,
		Intercept:    m.Intercept,
		R2:           m.R2,
		MAPE:         m.MAPE,
		RMSE:         m.RMSE,
	}
	if includeSeries {
		summary.Actual = m.Actual
		summary.Predicted = m.Predicted
	}
	return summary
}
