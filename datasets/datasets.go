// Package datasets generates small synthetic binary classification problems
// in the layout the rest of the module expects: a leading bias column of ones
// and 0/1 labels.
package datasets

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ostrowskaew/logreg/pkg/errors"
)

// Separation is the distance of each class mean from the origin along every
// feature axis.
const Separation = 2.0

// MakeSeparable draws n rows of two Gaussian clusters with unit variance,
// centred at -Separation (label 0) and +Separation (label 1) on every
// feature. Labels alternate 0, 1, 0, ... in row order so that any contiguous
// split or mini-batch sees both classes. The returned x is n×(features+1)
// with column 0 set to 1. The same seed always yields the same data.
func MakeSeparable(n, features int, seed uint64) (*mat.Dense, *mat.VecDense, error) {
	if n < 1 {
		return nil, nil, errors.NewValidationError("n", "must be at least 1", n)
	}
	if features < 1 {
		return nil, nil, errors.NewValidationError("features", "must be at least 1", features)
	}

	noise := distuv.Normal{
		Mu:    0,
		Sigma: 1,
		Src:   rand.NewPCG(seed, seed^0x9e3779b97f4a7c15),
	}

	x := mat.NewDense(n, features+1, nil)
	y := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		label := float64(i % 2)
		center := -Separation
		if label == 1 {
			center = Separation
		}

		y.SetVec(i, label)
		x.Set(i, 0, 1)
		for j := 1; j <= features; j++ {
			x.Set(i, j, center+noise.Rand())
		}
	}
	return x, y, nil
}

// TrainValSplit splits x and y contiguously: the first nTrain rows train, the
// rest validate. The results are views into x and y.
func TrainValSplit(x *mat.Dense, y *mat.VecDense, nTrain int) (xTrain *mat.Dense, yTrain *mat.VecDense, xVal *mat.Dense, yVal *mat.VecDense, err error) {
	r, c := x.Dims()
	if y.Len() != r {
		return nil, nil, nil, nil, errors.NewDimensionError("TrainValSplit", r, y.Len(), 0)
	}
	if nTrain < 1 || nTrain >= r {
		return nil, nil, nil, nil, errors.NewValidationError("n_train", "must leave at least one row on each side", nTrain)
	}

	xTrain = x.Slice(0, nTrain, 0, c).(*mat.Dense)
	xVal = x.Slice(nTrain, r, 0, c).(*mat.Dense)
	yTrain = y.SliceVec(0, nTrain).(*mat.VecDense)
	yVal = y.SliceVec(nTrain, r).(*mat.VecDense)
	return xTrain, yTrain, xVal, yVal, nil
}
