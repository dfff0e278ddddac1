package linear_model

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ostrowskaew/logreg/pkg/errors"
)

// PredictProba returns σ(x·w), the positive class probability of each row.
func PredictProba(x mat.Matrix, w mat.Vector) (*mat.VecDense, error) {
	_, m := x.Dims()
	if m != w.Len() {
		return nil, errors.NewDimensionError("PredictProba", w.Len(), m, 1)
	}

	var z mat.VecDense
	z.MulVec(x, w)
	return Sigmoid(&z), nil
}

// Predict labels row i as 1 iff σ(x_i·w) > theta. The comparison is strict,
// so a probability equal to theta is labelled 0.
func Predict(x mat.Matrix, w mat.Vector, theta float64) (*mat.VecDense, error) {
	proba, err := PredictProba(x, w)
	if err != nil {
		return nil, errors.Wrap(err, "Predict")
	}
	return Threshold(proba, theta), nil
}

// Threshold maps probabilities to 0/1 labels with the strict rule p > theta.
func Threshold(proba mat.Vector, theta float64) *mat.VecDense {
	labels := mat.NewVecDense(proba.Len(), nil)
	for i := 0; i < proba.Len(); i++ {
		if proba.AtVec(i) > theta {
			labels.SetVec(i, 1)
		}
	}
	return labels
}
