package model

import "errors"

// Error kinds surfaced by the core. Callers match with errors.Is.
var (
	// ErrInvalidInput covers malformed collaborator data: empty or unsorted
	// weather series, hours outside [0,23], non-positive capacities/prices.
	// A run that hits it produces no partial trace.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientData means too few samples for the forecast split.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrUnknownIndustry means a registry row names a category outside the
	// closed industry set.
	ErrUnknownIndustry = errors.New("unknown industry")
)
