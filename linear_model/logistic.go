package linear_model

import (
	"gonum.org/v1/gonum/mat"

	"github.com/ostrowskaew/logreg/core/model"
	"github.com/ostrowskaew/logreg/core/parallel"
	"github.com/ostrowskaew/logreg/metrics"
	"github.com/ostrowskaew/logreg/optimize"
	"github.com/ostrowskaew/logreg/pkg/errors"
	"github.com/ostrowskaew/logreg/pkg/log"
)

const modelName = "LogisticRegression"

// LogisticRegression is a binary classifier trained by fixed-iteration
// gradient descent on the L2-regularized cross-entropy.
type LogisticRegression struct {
	state *model.StateManager

	// Hyperparameters
	epochs         int        // Number of epochs
	eta            float64    // Fixed step size
	miniBatch      int        // Mini-batch size, 0 for full-batch descent
	lambda         float64    // L2 strength, the bias is never penalized
	threshold      float64    // Decision threshold theta
	fitIntercept   bool       // Prepend a constant column to X
	initialWeights mat.Vector // Starting point, zeros when nil

	logger log.Logger

	// Learned parameters
	coef_    *mat.VecDense // bias first when fitIntercept
	history_ []float64     // Cost per epoch
}

// LogisticRegressionOption is a functional option for LogisticRegression
type LogisticRegressionOption func(*LogisticRegression)

// NewLogisticRegression creates a LogisticRegression classifier
func NewLogisticRegression(opts ...LogisticRegressionOption) *LogisticRegression {
	lr := &LogisticRegression{
		state:        model.NewStateManager(),
		epochs:       100,
		eta:          0.1,
		miniBatch:    0,
		lambda:       0,
		threshold:    0.5,
		fitIntercept: true,
	}
	for _, opt := range opts {
		opt(lr)
	}
	if lr.logger == nil {
		lr.logger = log.GetLoggerWithName("linear_model")
	}
	lr.logger = lr.logger.With(log.ModelNameKey, modelName)
	return lr
}

// WithEpochs sets the number of epochs
func WithEpochs(epochs int) LogisticRegressionOption {
	return func(lr *LogisticRegression) {
		lr.epochs = epochs
	}
}

// WithLearningRate sets the fixed step size eta
func WithLearningRate(eta float64) LogisticRegressionOption {
	return func(lr *LogisticRegression) {
		lr.eta = eta
	}
}

// WithMiniBatch selects mini-batch SGD with the given batch size. Zero selects
// full-batch gradient descent.
func WithMiniBatch(size int) LogisticRegressionOption {
	return func(lr *LogisticRegression) {
		lr.miniBatch = size
	}
}

// WithLambda sets the L2 regularization strength
func WithLambda(lambda float64) LogisticRegressionOption {
	return func(lr *LogisticRegression) {
		lr.lambda = lambda
	}
}

// WithThreshold sets the decision threshold used by Predict
func WithThreshold(theta float64) LogisticRegressionOption {
	return func(lr *LogisticRegression) {
		lr.threshold = theta
	}
}

// WithFitIntercept sets whether Fit prepends the bias column. Disable it when
// X already carries the constant feature in column 0.
func WithFitIntercept(fit bool) LogisticRegressionOption {
	return func(lr *LogisticRegression) {
		lr.fitIntercept = fit
	}
}

// WithInitialWeights sets the starting point. Its length must match the
// number of columns after the optional bias column is added.
func WithInitialWeights(w0 mat.Vector) LogisticRegressionOption {
	return func(lr *LogisticRegression) {
		lr.initialWeights = w0
	}
}

// WithLogger sets the logger used during training
func WithLogger(logger log.Logger) LogisticRegressionOption {
	return func(lr *LogisticRegression) {
		lr.logger = logger
	}
}

// Fit trains the model on X (N×M) and labels y (N, values in {0, 1}).
func (lr *LogisticRegression) Fit(X mat.Matrix, y mat.Vector) error {
	const op = "LogisticRegression.Fit"
	nSamples, nFeatures := X.Dims()
	if y.Len() != nSamples {
		return errors.NewDimensionError(op, nSamples, y.Len(), 0)
	}
	if err := metrics.CheckBinary(op, y); err != nil {
		return err
	}

	design := lr.design(X)
	_, nColumns := design.Dims()

	w0 := lr.initialWeights
	if w0 == nil {
		w0 = mat.NewVecDense(nColumns, nil)
	} else if w0.Len() != nColumns {
		return errors.NewDimensionError(op, nColumns, w0.Len(), 1)
	}

	lr.logger.Info("Training started",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, nSamples,
		log.FeaturesKey, nColumns,
		log.RegularizationKey, lr.lambda,
	)

	obj := Regularized(lr.lambda)
	var (
		w       *mat.VecDense
		history []float64
		err     error
	)
	if lr.miniBatch > 0 {
		w, history, err = optimize.StochasticGradientDescent(obj, design, y, w0, lr.epochs, lr.eta, lr.miniBatch,
			optimize.WithLogger(lr.logger))
	} else {
		w, history, err = optimize.GradientDescent(optimize.Bind(obj, design, y), w0, lr.epochs, lr.eta,
			optimize.WithLogger(lr.logger))
	}
	if err != nil {
		lr.logger.Error("Training failed", err, log.OperationKey, log.OperationFit)
		return errors.Wrap(err, op)
	}

	lr.coef_ = w
	lr.history_ = history
	lr.state.SetFitted(nFeatures, nSamples)

	lr.logger.Info("Training completed",
		log.OperationKey, log.OperationFit,
		log.LossKey, history[len(history)-1],
	)
	return nil
}

// PredictProba returns the positive class probability of each row of X.
func (lr *LogisticRegression) PredictProba(X mat.Matrix) (*mat.VecDense, error) {
	if err := lr.checkInput(X, "PredictProba"); err != nil {
		return nil, err
	}
	return PredictProba(lr.design(X), lr.coef_)
}

// Predict returns 0/1 labels using the configured threshold.
func (lr *LogisticRegression) Predict(X mat.Matrix) (*mat.VecDense, error) {
	proba, err := lr.PredictProba(X)
	if err != nil {
		return nil, err
	}
	return Threshold(proba, lr.threshold), nil
}

// Score returns the F-measure of Predict(X) against y.
func (lr *LogisticRegression) Score(X mat.Matrix, y mat.Vector) (float64, error) {
	pred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.FMeasure(y, pred)
}

// Coef returns a copy of the learned weights, bias first when the intercept
// is fitted. It returns nil before Fit.
func (lr *LogisticRegression) Coef() *mat.VecDense {
	if lr.coef_ == nil {
		return nil
	}
	return mat.VecDenseCopyOf(lr.coef_)
}

// Intercept returns the bias weight, or 0 when the intercept is not fitted.
func (lr *LogisticRegression) Intercept() float64 {
	if lr.coef_ == nil || !lr.fitIntercept {
		return 0
	}
	return lr.coef_.AtVec(0)
}

// History returns the cost recorded after each epoch of the last Fit.
func (lr *LogisticRegression) History() []float64 {
	return append([]float64(nil), lr.history_...)
}

func (lr *LogisticRegression) checkInput(X mat.Matrix, method string) error {
	if err := lr.state.RequireFitted(modelName, method); err != nil {
		return err
	}
	_, c := X.Dims()
	return lr.state.RequireFeatures(modelName+"."+method, c)
}

// design prepends the constant bias column when the intercept is fitted.
func (lr *LogisticRegression) design(X mat.Matrix) mat.Matrix {
	if !lr.fitIntercept {
		return X
	}
	r, c := X.Dims()
	withBias := mat.NewDense(r, c+1, nil)

	// Same row split as the rest of the library; rows are independent.
	parallel.ParallelizeWithThreshold(r, parallel.DefaultThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			withBias.Set(i, 0, 1.0)
			for j := 0; j < c; j++ {
				withBias.Set(i, j+1, X.At(i, j))
			}
		}
	})
	return withBias
}

var _ model.Classifier = (*LogisticRegression)(nil)
