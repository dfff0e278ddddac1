package linear_model

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ostrowskaew/logreg/core/parallel"
)

// Sigmoid applies the logistic function 1/(1+e^{-x}) to every element of x.
//
// There is no overflow guard: for very negative inputs e^{-x} overflows to
// +Inf and the result saturates to exactly 0, as IEEE arithmetic dictates.
func Sigmoid(x mat.Vector) *mat.VecDense {
	n := x.Len()
	out := mat.NewVecDense(n, nil)
	parallel.ParallelizeWithThreshold(n, parallel.DefaultThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			out.SetVec(i, sigmoid(x.AtVec(i)))
		}
	})
	return out
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
