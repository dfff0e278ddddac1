package model

import (
	"gonum.org/v1/gonum/mat"
)

// Fitter is implemented by models trained on a design matrix and a label vector.
type Fitter interface {
	Fit(X mat.Matrix, y mat.Vector) error
}

// Predictor is implemented by models producing 0/1 labels.
type Predictor interface {
	Predict(X mat.Matrix) (*mat.VecDense, error)
}

// Scorer is implemented by models that evaluate themselves on labelled data.
type Scorer interface {
	// Score returns a quality measure where higher is better.
	Score(X mat.Matrix, y mat.Vector) (float64, error)
}

// Classifier combines the interfaces of a binary probabilistic classifier.
type Classifier interface {
	Fitter
	Predictor
	Scorer

	// PredictProba returns the positive class probability of each row.
	PredictProba(X mat.Matrix) (*mat.VecDense, error)
}
