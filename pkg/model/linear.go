package model

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var _ Model = (*LinearRegression)(nil)

// LinearRegression is ordinary least squares with an intercept.
type LinearRegression struct {
	Coef      []float64 // one weight per feature
	Intercept float64
	fitted    bool
}

// NewLinearRegression returns an unfitted model.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

// Fit solves for Coef and Intercept minimizing the squared residuals.
//
// X and y are centered first, so the intercept is recovered from the
// means. Columns with a single distinct value carry no information about
// the slope and get a zero coefficient; a one-sample fit therefore yields
// Coef=0 and Intercept=y[0].
func (m *LinearRegression) Fit(X [][]float64, y []float64) error {
	n := len(X)
	if n == 0 {
		return ErrNoSamples
	}
	if len(y) != n {
		return fmt.Errorf("model: %d rows but %d targets", n, len(y))
	}
	d := len(X[0])
	if d == 0 {
		return errors.New("model: rows have no features")
	}
	for i, row := range X {
		if len(row) != d {
			return fmt.Errorf("model: row %d has %d features, want %d", i, len(row), d)
		}
	}

	xMean := make([]float64, d)
	col := make([]float64, n)
	var active []int
	for j := 0; j < d; j++ {
		for i := range X {
			col[i] = X[i][j]
		}
		xMean[j] = stat.Mean(col, nil)
		if !isConstant(col) {
			active = append(active, j)
		}
	}
	yMean := stat.Mean(y, nil)

	coef := make([]float64, d)
	if len(active) > 0 {
		A := mat.NewDense(n, len(active), nil)
		b := mat.NewVecDense(n, nil)
		for i, row := range X {
			for k, j := range active {
				A.Set(i, k, row[j]-xMean[j])
			}
			b.SetVec(i, y[i]-yMean)
		}

		var w mat.VecDense
		if err := w.SolveVec(A, b); err != nil {
			return fmt.Errorf("model: least squares: %w", err)
		}
		for k, j := range active {
			coef[j] = w.AtVec(k)
		}
	}

	m.Coef = coef
	m.Intercept = yMean - floats.Dot(coef, xMean)
	m.fitted = true
	return nil
}

// Predict returns predictions for rows in X (rows of features).
func (m *LinearRegression) Predict(X [][]float64) ([]float64, error) {
	if !m.fitted {
		return nil, ErrNotFitted
	}
	pred := make([]float64, len(X))
	for i, row := range X {
		if len(row) != len(m.Coef) {
			return nil, fmt.Errorf("model: row %d has %d features, want %d", i, len(row), len(m.Coef))
		}
		pred[i] = m.Intercept + floats.Dot(m.Coef, row)
	}
	return pred, nil
}

// PredictOne evaluates the model at a single point.
func (m *LinearRegression) PredictOne(x ...float64) (float64, error) {
	pred, err := m.Predict([][]float64{x})
	if err != nil {
		return 0, err
	}
	return pred[0], nil
}

func isConstant(x []float64) bool {
	for _, v := range x[1:] {
		if v != x[0] {
			return false
		}
	}
	return true
}
