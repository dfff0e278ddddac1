package linear_model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/ostrowskaew/logreg/optimize"
	"github.com/ostrowskaew/logreg/pkg/errors"
	"github.com/ostrowskaew/logreg/pkg/log"
)

// separable returns one feature without a bias column, negative below zero.
func separable() (*mat.Dense, *mat.VecDense) {
	x := mat.NewDense(8, 1, []float64{-3, -2, -1, -0.5, 0.5, 1, 2, 3})
	y := mat.NewVecDense(8, []float64{0, 0, 0, 0, 1, 1, 1, 1})
	return x, y
}

func TestLogisticRegression_NotFitted(t *testing.T) {
	lr := NewLogisticRegression()
	x, y := separable()

	_, err := lr.Predict(x)
	var nfErr *errors.NotFittedError
	require.True(t, errors.As(err, &nfErr))
	assert.Equal(t, "LogisticRegression", nfErr.ModelName)

	_, err = lr.PredictProba(x)
	assert.True(t, errors.As(err, &nfErr))

	_, err = lr.Score(x, y)
	assert.True(t, errors.As(err, &nfErr))

	assert.Nil(t, lr.Coef())
	assert.Empty(t, lr.History())
}

func TestLogisticRegression_FitSeparable(t *testing.T) {
	x, y := separable()
	lr := NewLogisticRegression(
		WithEpochs(300),
		WithLearningRate(0.5),
	)

	require.NoError(t, lr.Fit(x, y))

	coef := lr.Coef()
	require.Equal(t, 2, coef.Len())
	assert.Greater(t, coef.AtVec(1), 0.0)
	assert.Equal(t, coef.AtVec(0), lr.Intercept())

	pred, err := lr.Predict(x)
	require.NoError(t, err)
	assert.Equal(t, y.RawVector().Data, pred.RawVector().Data)

	score, err := lr.Score(x, y)
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)

	proba, err := lr.PredictProba(x)
	require.NoError(t, err)
	for i := 1; i < proba.Len(); i++ {
		assert.Greater(t, proba.AtVec(i), proba.AtVec(i-1))
	}
}

func TestLogisticRegression_HistoryDecreases(t *testing.T) {
	x, y := separable()
	lr := NewLogisticRegression(WithEpochs(50), WithLearningRate(0.1), WithLambda(0.1))
	require.NoError(t, lr.Fit(x, y))

	history := lr.History()
	require.Len(t, history, 50)
	for i := 1; i < len(history); i++ {
		assert.LessOrEqual(t, history[i], history[i-1])
	}
}

func TestLogisticRegression_MatchesGradientDescent(t *testing.T) {
	x, y := separable()
	withBias := mat.NewDense(8, 2, nil)
	for i := 0; i < 8; i++ {
		withBias.Set(i, 0, 1)
		withBias.Set(i, 1, x.At(i, 0))
	}
	const (
		epochs = 20
		eta    = 0.3
		lambda = 0.5
	)

	want, wantHistory, err := optimize.GradientDescent(
		optimize.Bind(Regularized(lambda), withBias, y), mat.NewVecDense(2, nil), epochs, eta)
	require.NoError(t, err)

	lr := NewLogisticRegression(
		WithFitIntercept(false),
		WithEpochs(epochs),
		WithLearningRate(eta),
		WithLambda(lambda),
	)
	require.NoError(t, lr.Fit(withBias, y))
	assert.Equal(t, want.RawVector().Data, lr.Coef().RawVector().Data)
	assert.Equal(t, wantHistory, lr.History())
	assert.Equal(t, 0.0, lr.Intercept())

	// Prepending the bias internally gives the same model.
	implicit := NewLogisticRegression(WithEpochs(epochs), WithLearningRate(eta), WithLambda(lambda))
	require.NoError(t, implicit.Fit(x, y))
	assert.InDeltaSlice(t, want.RawVector().Data, implicit.Coef().RawVector().Data, 1e-12)
}

func TestLogisticRegression_FullMiniBatchMatchesBatch(t *testing.T) {
	x, y := separable()
	batch := NewLogisticRegression(WithEpochs(10), WithLearningRate(0.2))
	mini := NewLogisticRegression(WithEpochs(10), WithLearningRate(0.2), WithMiniBatch(8))

	require.NoError(t, batch.Fit(x, y))
	require.NoError(t, mini.Fit(x, y))

	assert.InDeltaSlice(t, batch.Coef().RawVector().Data, mini.Coef().RawVector().Data, 1e-12)
	assert.InDeltaSlice(t, batch.History(), mini.History(), 1e-12)
}

func TestLogisticRegression_InitialWeights(t *testing.T) {
	x, y := separable()
	w0 := mat.NewVecDense(2, []float64{0.25, -1})

	lr := NewLogisticRegression(WithEpochs(1), WithLearningRate(0), WithInitialWeights(w0))
	require.NoError(t, lr.Fit(x, y))
	assert.Equal(t, []float64{0.25, -1}, lr.Coef().RawVector().Data)

	// Coef hands out a copy.
	lr.Coef().SetVec(0, 99)
	assert.Equal(t, 0.25, lr.Intercept())
}

func TestLogisticRegression_Threshold(t *testing.T) {
	x, y := separable()
	lr := NewLogisticRegression(WithEpochs(1), WithLearningRate(0), WithThreshold(0.5))
	require.NoError(t, lr.Fit(x, y))

	// Zero weights give p = 0.5 everywhere, which is not above 0.5.
	pred, err := lr.Predict(x)
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 8), pred.RawVector().Data)

	low := NewLogisticRegression(WithEpochs(1), WithLearningRate(0), WithThreshold(0.4))
	require.NoError(t, low.Fit(x, y))
	pred, err = low.Predict(x)
	require.NoError(t, err)
	for i := 0; i < pred.Len(); i++ {
		assert.Equal(t, 1.0, pred.AtVec(i))
	}
}

func TestLogisticRegression_FitValidation(t *testing.T) {
	x, _ := separable()

	t.Run("label count", func(t *testing.T) {
		err := NewLogisticRegression().Fit(x, mat.NewVecDense(3, nil))
		var dimErr *errors.DimensionError
		require.True(t, errors.As(err, &dimErr))
		assert.Equal(t, 0, dimErr.Axis)
	})

	t.Run("non binary labels", func(t *testing.T) {
		y := mat.NewVecDense(8, []float64{0, 1, 2, 0, 1, 0, 1, 0})
		err := NewLogisticRegression().Fit(x, y)
		var valErr *errors.ValueError
		assert.True(t, errors.As(err, &valErr))
	})

	t.Run("initial weight length", func(t *testing.T) {
		_, y := separable()
		err := NewLogisticRegression(WithInitialWeights(mat.NewVecDense(1, nil))).Fit(x, y)
		var dimErr *errors.DimensionError
		require.True(t, errors.As(err, &dimErr))
		assert.Equal(t, 2, dimErr.Expected)
	})

	t.Run("epochs", func(t *testing.T) {
		_, y := separable()
		err := NewLogisticRegression(WithEpochs(0)).Fit(x, y)
		var valErr *errors.ValidationError
		assert.True(t, errors.As(err, &valErr))
	})

	t.Run("mini batch larger than data", func(t *testing.T) {
		_, y := separable()
		lr := NewLogisticRegression(WithEpochs(3), WithMiniBatch(100))
		require.NoError(t, lr.Fit(x, y))
		assert.Equal(t, []float64{0, 0}, lr.Coef().RawVector().Data)
	})
}

func TestLogisticRegression_PredictFeatureMismatch(t *testing.T) {
	x, y := separable()
	lr := NewLogisticRegression(WithEpochs(2))
	require.NoError(t, lr.Fit(x, y))

	_, err := lr.Predict(mat.NewDense(2, 3, nil))
	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 1, dimErr.Expected)
	assert.Equal(t, 3, dimErr.Got)
}

func TestLogisticRegression_Logging(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelInfo)
	x, y := separable()

	lr := NewLogisticRegression(WithEpochs(5), WithLogger(logger))
	require.NoError(t, lr.Fit(x, y))

	assert.True(t, logger.ContainsMessage("Training started"))
	assert.True(t, logger.ContainsMessage("Training completed"))
	assert.True(t, logger.ContainsField(log.SamplesKey, 8.0))
	assert.Equal(t, 0, logger.CountMessages("Epoch finished"))
}
