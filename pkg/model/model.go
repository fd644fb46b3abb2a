package model

import "errors"

var (
	// ErrNoSamples is returned when fitting on an empty dataset.
	ErrNoSamples = errors.New("model: no samples to fit")
	// ErrNotFitted is returned when predicting before a successful Fit.
	ErrNotFitted = errors.New("model: not fitted")
)

// Model is a generic supervised regression interface.
type Model interface {
	Fit(X [][]float64, y []float64) error
	Predict(X [][]float64) ([]float64, error)
}
