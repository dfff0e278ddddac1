package linear_model

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ostrowskaew/logreg/optimize"
)

// LogisticCost returns the mean binary cross-entropy of the model w on x, y
// and its gradient:
//
//	cost = -(1/N) Σ [y·log σ(xw) + (1−y)·log(1−σ(xw))]
//	grad = (1/N) xᵀ(σ(xw) − y)
//
// x is N×M, w has length M and y holds N labels in {0, 1}. Nothing is
// clamped: a sigmoid output of exactly 0 or 1 yields an infinite or NaN cost.
// Mismatched shapes panic inside gonum. LogisticCost has the shape of an
// optimize.BatchObjective.
func LogisticCost(w mat.Vector, x mat.Matrix, y mat.Vector) (float64, *mat.VecDense) {
	n, m := x.Dims()

	var z mat.VecDense
	z.MulVec(x, w)
	p := Sigmoid(&z)

	var sum float64
	for i := 0; i < n; i++ {
		yi, pi := y.AtVec(i), p.AtVec(i)
		sum += yi*math.Log(pi) + (1-yi)*math.Log(1-pi)
	}

	residual := mat.NewVecDense(n, nil)
	residual.SubVec(p, y)

	grad := mat.NewVecDense(m, nil)
	grad.MulVec(x.T(), residual)
	grad.ScaleVec(1/float64(n), grad)

	return -sum / float64(n), grad
}

// RegularizedLogisticCost adds an L2 penalty on every weight except the bias
// w[0] to LogisticCost:
//
//	cost = LogisticCost + (λ/2)‖w[1:]‖²
//	grad = ∇LogisticCost + λ·w'   where w' is w with w'[0] = 0
//
// so the bias gradient is the unregularized one for any λ.
func RegularizedLogisticCost(w mat.Vector, x mat.Matrix, y mat.Vector, lambda float64) (float64, *mat.VecDense) {
	cost, grad := LogisticCost(w, x, y)

	penalized := mat.VecDenseCopyOf(w)
	penalized.SetVec(0, 0)

	cost += lambda / 2 * mat.Dot(penalized, penalized)
	grad.AddScaledVec(grad, lambda, penalized)
	return cost, grad
}

// Regularized binds lambda to RegularizedLogisticCost.
func Regularized(lambda float64) optimize.BatchObjective {
	return func(w mat.Vector, x mat.Matrix, y mat.Vector) (float64, *mat.VecDense) {
		return RegularizedLogisticCost(w, x, y, lambda)
	}
}
