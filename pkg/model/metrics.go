package model

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

func MSE(yTrue, yPred []float64) float64 {
	n := float64(len(yTrue))
	s := 0.0
	for i := range yTrue {
		d := yPred[i] - yTrue[i]
		s += d * d
	}
	return s / n
}

func MAE(yTrue, yPred []float64) float64 {
	n := float64(len(yTrue))
	s := 0.0
	for i := range yTrue {
		s += math.Abs(yPred[i] - yTrue[i])
	}
	return s / n
}

func RMSE(yTrue, yPred []float64) float64 { return math.Sqrt(MSE(yTrue, yPred)) }

// R2 is the coefficient of determination. A constant yTrue scores 0.
func R2(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 || isConstant(yTrue) {
		return 0
	}
	return stat.RSquaredFrom(yPred, yTrue, nil)
}

// Residuals returns yTrue[i] - yPred[i].
func Residuals(yTrue, yPred []float64) []float64 {
	out := make([]float64, len(yTrue))
	for i := range yTrue {
		out[i] = yTrue[i] - yPred[i]
	}
	return out
}

// MeanResidual is ~0 for a least-squares fit with an intercept,
// evaluated on its own training data.
func MeanResidual(yTrue, yPred []float64) float64 {
	return stat.Mean(Residuals(yTrue, yPred), nil)
}
