package forecast

import (
	"fmt"

	"vpp-dispatch/internal/model"
)

// DefaultAlpha is the fixed L2 regularization strength.
const DefaultAlpha = 1.0

// Model is a fitted and evaluated load forecast. Immutable after fitting.
type Model struct {
	FeatureNames []string  `json:"feature_names"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`

	R2   float64 `json:"r2"`
	MAPE float64 `json:"mape"`
	RMSE float64 `json:"rmse"`

	// Held-out rows, for reporting actual-vs-predicted.
	Actual    []float64 `json:"actual"`
	Predicted []float64 `json:"predicted"`
}

// FitEvaluate fits a ridge regression on the chronologically first 75% of the
// frame and evaluates it on the remaining 25%. The split is never shuffled;
// temporal order is preserved to avoid leakage through the lag feature.
//
// The split index is guarded at a minimum of 1 so a two-row frame still
// yields one training and one test row. A single-row frame evaluates the fit
// on its own training row rather than failing.
func FitEvaluate(frame *Frame, alpha float64) (*Model, error) {
	if frame == nil || len(frame.X) == 0 {
		return nil, fmt.Errorf("%w: empty feature frame", model.ErrInsufficientData)
	}
	n := len(frame.X)

	split := int(float64(n) * 0.75)
	if split < 1 {
		split = 1
	}
	trainX, trainY := frame.X[:split], frame.Y[:split]
	testX, testY := frame.X[split:], frame.Y[split:]
	if len(testX) == 0 {
		testX, testY = trainX, trainY
	}

	coefs, intercept, err := ridgeFit(trainX, trainY, alpha)
	if err != nil {
		return nil, err
	}

	predicted := make([]float64, len(testX))
	for i, row := range testX {
		predicted[i] = predict(coefs, intercept, row)
	}
	actual := make([]float64, len(testY))
	copy(actual, testY)

	return &Model{
		FeatureNames: frame.Names,
		Coefficients: coefs,
		Intercept:    intercept,
		R2:           rSquared(actual, predicted),
		MAPE:         meanAbsPercentageError(actual, predicted),
		RMSE:         rootMeanSquaredError(actual, predicted),
		Actual:       actual,
		Predicted:    predicted,
	}, nil
}
