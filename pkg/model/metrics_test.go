package model

import "testing"

func TestRegressionMetrics(t *testing.T) {
	yTrue := []float64{1, 2, 3, 4}
	yPred := []float64{1, 3, 3, 2}

	approx(t, "MSE", MSE(yTrue, yPred), 1.25, 1e-12)
	approx(t, "MAE", MAE(yTrue, yPred), 0.75, 1e-12)
	approx(t, "RMSE", RMSE(yTrue, yPred), 1.118033988749895, 1e-12)
	// ssRes = 5, ssTot = 5
	approx(t, "R2", R2(yTrue, yPred), 0, 1e-12)
	approx(t, "R2 perfect", R2(yTrue, yTrue), 1, 1e-12)
	approx(t, "MeanResidual", MeanResidual(yTrue, yPred), 0.25, 1e-12)
}

func TestR2ConstantTarget(t *testing.T) {
	if got := R2([]float64{3, 3, 3}, []float64{1, 2, 3}); got != 0 {
		t.Errorf("R2 = %v, want 0", got)
	}
}
