package model_selection

import (
	"context"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/ostrowskaew/logreg/linear_model"
	"github.com/ostrowskaew/logreg/metrics"
	"github.com/ostrowskaew/logreg/optimize"
	"github.com/ostrowskaew/logreg/pkg/errors"
	"github.com/ostrowskaew/logreg/pkg/log"
)

// Result is the outcome of a grid search.
type Result struct {
	Lambda  float64       // Selected regularization strength
	Theta   float64       // Selected decision threshold
	W       *mat.VecDense // Weights trained with Lambda
	Measure float64       // Validation F-measure of (W, Theta)

	// F[i][j] is the validation F-measure of lambdas[i] with thetas[j].
	F *mat.Dense
	// Histories[i] is the SGD cost history of lambdas[i].
	Histories [][]float64
}

// SelectModel trains one model per lambda with StochasticGradientDescent on
// the regularized logistic cost, starting every run from w0, and evaluates
// every threshold in thetas on the validation set.
//
// The best candidate is tracked with a strict comparison starting from -1, so
// among equal F-measures the first one in lambda-major, theta-minor order is
// kept and NaN cells never win. If every cell is NaN the returned error wraps
// errors.ErrNoCandidate and the Result still carries F and Histories.
func SelectModel(
	xTrain mat.Matrix, yTrain mat.Vector,
	xVal mat.Matrix, yVal mat.Vector,
	w0 mat.Vector,
	epochs int, eta float64, miniBatch int,
	lambdas, thetas []float64,
	opts ...Option,
) (*Result, error) {
	const op = "SelectModel"
	if err := validateGrid(op, xVal, yVal, w0, lambdas, thetas); err != nil {
		return nil, err
	}

	cfg := newConfig(opts)
	logger := cfg.logger.With(log.OperationKey, log.OperationModelSelection)
	debug := logger.Enabled(context.Background(), log.LevelDebug)
	start := time.Now()

	logger.Info("Model selection started",
		log.EpochsKey, epochs,
		log.LearningRateKey, eta,
		log.BatchSizeKey, miniBatch,
		log.CandidatesKey, len(lambdas)*len(thetas),
	)

	res := &Result{
		F:         mat.NewDense(len(lambdas), len(thetas), nil),
		Histories: make([][]float64, len(lambdas)),
		Measure:   math.NaN(),
	}
	best := -1.0

	for i, lambda := range lambdas {
		w, history, err := optimize.StochasticGradientDescent(
			linear_model.Regularized(lambda), xTrain, yTrain, w0, epochs, eta, miniBatch,
			optimize.WithLogger(cfg.logger),
		)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: training with lambda=%g", op, lambda)
		}
		res.Histories[i] = history

		proba, err := linear_model.PredictProba(xVal, w)
		if err != nil {
			return nil, errors.Wrap(err, op)
		}

		for j, theta := range thetas {
			f, err := metrics.FMeasure(yVal, linear_model.Threshold(proba, theta))
			if err != nil {
				return nil, errors.Wrap(err, op)
			}
			res.F.Set(i, j, f)

			if debug {
				logger.Debug("Evaluated candidate",
					log.RegularizationKey, lambda,
					log.ThresholdKey, theta,
					log.FMeasureKey, f,
				)
			}

			if f > best {
				best = f
				res.Lambda, res.Theta, res.W, res.Measure = lambda, theta, w, f
			}
		}
	}

	if res.W == nil {
		err := errors.NewModelError(op, "every candidate has an undefined F-measure", errors.ErrNoCandidate)
		logger.Warn("No candidate selected", err)
		return res, err
	}

	logger.Info("Selected model",
		log.RegularizationKey, res.Lambda,
		log.ThresholdKey, res.Theta,
		log.FMeasureKey, res.Measure,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return res, nil
}

func validateGrid(op string, xVal mat.Matrix, yVal mat.Vector, w0 mat.Vector, lambdas, thetas []float64) error {
	if len(lambdas) == 0 {
		return errors.NewValueError(op, "lambdas must not be empty")
	}
	if len(thetas) == 0 {
		return errors.NewValueError(op, "thetas must not be empty")
	}
	if w0 == nil || w0.Len() == 0 {
		return errors.NewModelError(op, "initial weights are empty", errors.ErrEmptyData)
	}
	r, c := xVal.Dims()
	if c != w0.Len() {
		return errors.NewDimensionError(op, w0.Len(), c, 1)
	}
	if yVal.Len() != r {
		return errors.NewDimensionError(op, r, yVal.Len(), 0)
	}
	return metrics.CheckBinary(op, yVal)
}
