package optimize

import (
	"gonum.org/v1/gonum/mat"
)

// Objective evaluates a cost and its gradient at w. It is the callable driven
// by GradientDescent.
type Objective func(w mat.Vector) (float64, *mat.VecDense)

// BatchObjective evaluates a cost and its gradient at w over the rows x, y.
// It is the callable driven by StochasticGradientDescent, which passes one
// mini-batch at a time.
type BatchObjective func(w mat.Vector, x mat.Matrix, y mat.Vector) (float64, *mat.VecDense)

// Bind fixes the data of a BatchObjective, turning it into an Objective.
func Bind(obj BatchObjective, x mat.Matrix, y mat.Vector) Objective {
	return func(w mat.Vector) (float64, *mat.VecDense) {
		return obj(w, x, y)
	}
}
