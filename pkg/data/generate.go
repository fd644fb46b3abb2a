package data

import (
	"errors"
	"math/rand"
	"time"
)

// RegressionGenerator draws a random linear regression problem:
// standard normal features, coefficients in [0,100), zero bias and
// Gaussian noise on the target.
type RegressionGenerator struct {
	NSamples    int
	NFeatures   int
	Noise       float64 // standard deviation of the target noise
	Scale       float64 // factor applied before truncating to integers
	RandomState int64
}

// RegressionOption functional config for RegressionGenerator
type RegressionOption func(*RegressionGenerator)

func WithNSamples(n int) RegressionOption      { return func(g *RegressionGenerator) { g.NSamples = n } }
func WithNFeatures(d int) RegressionOption     { return func(g *RegressionGenerator) { g.NFeatures = d } }
func WithNoise(s float64) RegressionOption     { return func(g *RegressionGenerator) { g.Noise = s } }
func WithScale(f float64) RegressionOption     { return func(g *RegressionGenerator) { g.Scale = f } }
func WithRandomState(s int64) RegressionOption { return func(g *RegressionGenerator) { g.RandomState = s } }

// NewRegressionGenerator returns a generator for 50 single-feature samples
// with noise 0.1, scaled by 7. Runs are not reproducible unless
// WithRandomState is given.
func NewRegressionGenerator(opts ...RegressionOption) *RegressionGenerator {
	g := &RegressionGenerator{
		NSamples:    50,
		NFeatures:   1,
		Noise:       0.1,
		Scale:       7,
		RandomState: time.Now().UnixNano(),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

func (g *RegressionGenerator) validate() error {
	if g.NSamples < 0 {
		return errors.New("generator: negative sample count")
	}
	if g.NFeatures < 1 {
		return errors.New("generator: at least one feature is required")
	}
	if g.Noise < 0 {
		return errors.New("generator: negative noise")
	}
	return nil
}

// Generate returns the raw (unscaled) samples together with the
// ground-truth coefficients used to produce them.
func (g *RegressionGenerator) Generate() (X [][]float64, y []float64, coef []float64, err error) {
	if err := g.validate(); err != nil {
		return nil, nil, nil, err
	}
	rnd := rand.New(rand.NewSource(g.RandomState))

	X = make([][]float64, g.NSamples)
	for i := range X {
		X[i] = make([]float64, g.NFeatures)
		for j := range X[i] {
			X[i][j] = rnd.NormFloat64()
		}
	}

	coef = make([]float64, g.NFeatures)
	for j := range coef {
		coef[j] = 100 * rnd.Float64()
	}

	y = make([]float64, g.NSamples)
	for i, row := range X {
		for j, v := range row {
			y[i] += coef[j] * v
		}
	}
	if g.Noise > 0 {
		for i := range y {
			y[i] += g.Noise * rnd.NormFloat64()
		}
	}
	return X, y, coef, nil
}

// Records generates a dataset and converts it to integer records,
// keeping only the first feature.
func (g *RegressionGenerator) Records() ([]Record, error) {
	X, y, _, err := g.Generate()
	if err != nil {
		return nil, err
	}
	return ScaleTruncate(X, y, g.Scale), nil
}

// ScaleTruncate multiplies every value by factor and truncates toward zero.
// Only the first column of X is kept.
func ScaleTruncate(X [][]float64, y []float64, factor float64) []Record {
	out := make([]Record, len(X))
	for i := range X {
		out[i] = Record{
			Feature: int(X[i][0] * factor),
			Target:  int(y[i] * factor),
		}
	}
	return out
}

// LinearGenerator draws x uniformly from [0, Span) and
// y = Intercept + Slope*x + Noise*N(0,1).
type LinearGenerator struct {
	NSamples    int
	Span        float64
	Slope       float64
	Intercept   float64
	Noise       float64
	RandomState int64
}

// DefaultLinearGenerator is y = 4 + 3x + N(0,1) over 1000 points in [0,2),
// seeded with 0.
func DefaultLinearGenerator() *LinearGenerator {
	return &LinearGenerator{
		NSamples:  1000,
		Span:      2,
		Slope:     3,
		Intercept: 4,
		Noise:     1,
	}
}

// Generate returns the inputs and outputs. The same RandomState always
// produces the same pairs.
func (g *LinearGenerator) Generate() (x, y []float64) {
	rnd := rand.New(rand.NewSource(g.RandomState))
	n := g.NSamples
	if n < 0 {
		n = 0
	}
	x = make([]float64, n)
	for i := range x {
		x[i] = g.Span * rnd.Float64()
	}
	y = make([]float64, n)
	for i := range y {
		y[i] = g.Intercept + g.Slope*x[i] + g.Noise*rnd.NormFloat64()
	}
	return x, y
}
