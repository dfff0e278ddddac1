package errors

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// CheckScalar returns a NumericalInstabilityError if value is NaN or ±Inf.
func CheckScalar(operation string, value float64, iteration int) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewNumericalInstabilityError(operation, []float64{value}, iteration)
	}
	return nil
}

// CheckVector returns a NumericalInstabilityError listing up to ten
// non-finite elements of v.
func CheckVector(operation string, v mat.Vector, iteration int) error {
	var unstable []float64
	for i := 0; i < v.Len(); i++ {
		x := v.AtVec(i)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			unstable = append(unstable, x)
			if len(unstable) >= 10 {
				break
			}
		}
	}
	if len(unstable) > 0 {
		return NewNumericalInstabilityError(operation, unstable, iteration)
	}
	return nil
}

// WarnIfUnstable emits a warning for the first non-finite entry of history.
// It reports at most once per call so a diverged run does not flood the log.
func WarnIfUnstable(operation string, history []float64) {
	for i, v := range history {
		if err := CheckScalar(operation, v, i); err != nil {
			Warn(err)
			return
		}
	}
}
