package data

// Record is a single (Feature, Target) sample as stored on disk.
type Record struct {
	Feature int `json:"Feature"`
	Target  int `json:"Target"`
}

// Features returns the Feature column as float64, in record order.
func Features(records []Record) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = float64(r.Feature)
	}
	return out
}

// Targets returns the Target column as float64, in record order.
func Targets(records []Record) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = float64(r.Target)
	}
	return out
}

// Column turns a single feature into a one-column design matrix.
func Column(x []float64) [][]float64 {
	X := make([][]float64, len(x))
	for i, v := range x {
		X[i] = []float64{v}
	}
	return X
}

// Columns returns the records as a single-feature design matrix and target vector.
func Columns(records []Record) (X [][]float64, y []float64) {
	return Column(Features(records)), Targets(records)
}
