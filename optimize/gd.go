package optimize

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/ostrowskaew/logreg/pkg/errors"
	"github.com/ostrowskaew/logreg/pkg/log"
)

// GradientDescent minimizes obj with full-batch gradient descent.
//
// The gradient at w0 is evaluated first and its cost discarded. Each of the
// epochs iterations then applies w ← w − eta·grad and re-evaluates obj at the
// new point; the cost of that evaluation is appended to history and its
// gradient drives the next step. history therefore has exactly epochs
// entries in chronological order.
//
// A panic inside obj, such as a gonum shape mismatch, is returned as an
// *errors.PanicError.
func GradientDescent(obj Objective, w0 mat.Vector, epochs int, eta float64, opts ...Option) (w *mat.VecDense, history []float64, err error) {
	const op = "GradientDescent"
	if err := validateRun(op, w0, epochs); err != nil {
		return nil, nil, err
	}
	cfg := newConfig(opts)
	logger := cfg.logger.With(log.OperationKey, log.OperationGradientDescent)
	debug := logger.Enabled(context.Background(), log.LevelDebug)

	defer func() {
		if err != nil {
			w, history = nil, nil
		}
	}()
	defer errors.Recover(&err, op)

	w = mat.VecDenseCopyOf(w0)
	history = make([]float64, 0, epochs)

	_, grad := obj(w)
	for k := 0; k < epochs; k++ {
		w.AddScaledVec(w, -eta, grad)

		var cost float64
		cost, grad = obj(w)
		history = append(history, cost)

		if debug {
			logger.Debug("Epoch finished", log.EpochKey, k+1, log.LossKey, cost)
		}
	}

	errors.WarnIfUnstable(log.OperationGradientDescent, history)
	logger.Debug("Gradient descent finished",
		log.EpochsKey, epochs,
		log.LearningRateKey, eta,
		log.LossKey, history[len(history)-1],
	)
	return w, history, nil
}

func validateRun(op string, w0 mat.Vector, epochs int) error {
	if w0 == nil || w0.Len() == 0 {
		return errors.NewModelError(op, "initial weights are empty", errors.ErrEmptyData)
	}
	if epochs < 1 {
		return errors.NewValidationError("epochs", "must be at least 1", epochs)
	}
	return nil
}
