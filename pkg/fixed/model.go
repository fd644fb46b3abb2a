package fixed

import "fmt"

// Layer is a single neuron: z = Σ Weights[i]*x[i] + Bias.
type Layer struct {
	Weights []int64
	Bias    int64
}

// Forward applies the layer to x, which must match the weight count.
func (l Layer) Forward(x []int64) (int64, error) {
	if len(x) != len(l.Weights) {
		return 0, fmt.Errorf("fixed: %d inputs for %d weights", len(x), len(l.Weights))
	}
	z := int64(0)
	for i, w := range l.Weights {
		p, err := Mul(w, x[i])
		if err != nil {
			return 0, err
		}
		if z, err = Add(z, p); err != nil {
			return 0, err
		}
	}
	return Add(z, l.Bias)
}

// Linear is (Σ Coef[i]*x[i]) / Divisor + Intercept.
type Linear struct {
	Coef      []int64
	Intercept int64
	Divisor   int64
}

// DefaultLinear has two coefficients of 5 scaled down by 10, i.e. the mean
// of two inputs expressed with one decimal of fixed-point precision.
func DefaultLinear() Linear {
	return Linear{Coef: []int64{5, 5}, Intercept: 0, Divisor: 10}
}

func (m Linear) Predict(x []int64) (int64, error) {
	dot, err := Layer{Weights: m.Coef}.Forward(x)
	if err != nil {
		return 0, err
	}
	z, err := Div(dot, m.Divisor)
	if err != nil {
		return 0, err
	}
	return Add(z, m.Intercept)
}

// MLP chains two ReLU neurons and an output neuron. The first hidden
// activation is fanned out to every input of the second, and the second
// to every input of the output.
type MLP struct {
	Hidden1 Layer
	Hidden2 Layer
	Output  Layer
}

func DefaultMLP() MLP {
	return MLP{
		Hidden1: Layer{Weights: []int64{2, 4, 3, 1, 5}, Bias: 3},
		Hidden2: Layer{Weights: []int64{3, 1, 4, 2, 6}, Bias: 2},
		Output:  Layer{Weights: []int64{1}, Bias: 5},
	}
}

func (m MLP) Predict(x []int64) (int64, error) {
	z1, err := m.Hidden1.Forward(x)
	if err != nil {
		return 0, fmt.Errorf("hidden layer 1: %w", err)
	}
	z2, err := m.Hidden2.Forward(fanOut(ReLU(z1), len(m.Hidden2.Weights)))
	if err != nil {
		return 0, fmt.Errorf("hidden layer 2: %w", err)
	}
	out, err := m.Output.Forward(fanOut(ReLU(z2), len(m.Output.Weights)))
	if err != nil {
		return 0, fmt.Errorf("output layer: %w", err)
	}
	return out, nil
}

func fanOut(v int64, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
