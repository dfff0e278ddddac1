package optimize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/ostrowskaew/logreg/pkg/errors"
	"github.com/ostrowskaew/logreg/pkg/log"
)

// indexedRows builds an n×2 matrix whose first column holds the row index.
func indexedRows(n int) (*mat.Dense, *mat.VecDense) {
	x := mat.NewDense(n, 2, nil)
	y := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		x.Set(i, 0, float64(i))
		x.Set(i, 1, 1)
		y.SetVec(i, float64(i%2))
	}
	return x, y
}

// batchQuadratic ignores the data and returns ½‖w − c‖².
func batchQuadratic(c []float64) BatchObjective {
	obj := quadratic(c)
	return func(w mat.Vector, _ mat.Matrix, _ mat.Vector) (float64, *mat.VecDense) {
		return obj(w)
	}
}

func TestPartition(t *testing.T) {
	x, y := indexedRows(10)

	batches, err := Partition(x, y, 3)
	require.NoError(t, err)
	require.Len(t, batches, 3)

	for b, batch := range batches {
		r, c := batch.X.Dims()
		assert.Equal(t, 3, r)
		assert.Equal(t, 2, c)
		assert.Equal(t, 3, batch.Y.Len())
		for i := 0; i < r; i++ {
			assert.Equal(t, float64(b*3+i), batch.X.At(i, 0))
			assert.Equal(t, y.AtVec(b*3+i), batch.Y.AtVec(i))
		}
	}
}

func TestPartition_BatchLargerThanData(t *testing.T) {
	x, y := indexedRows(4)

	batches, err := Partition(x, y, 5)
	require.NoError(t, err)
	assert.Empty(t, batches)
}

func TestPartition_Validation(t *testing.T) {
	x, y := indexedRows(4)

	_, err := Partition(x, y, 0)
	var valErr *errors.ValidationError
	assert.True(t, errors.As(err, &valErr))

	_, err = Partition(x, mat.NewVecDense(3, nil), 2)
	var dimErr *errors.DimensionError
	require.True(t, errors.As(err, &dimErr))
	assert.Equal(t, 0, dimErr.Axis)
}

func TestStochasticGradientDescent_DropsRemainder(t *testing.T) {
	x, y := indexedRows(10)
	const epochs = 2

	var blockCalls, fullCalls int
	seen := make(map[int]bool)
	obj := func(w mat.Vector, xb mat.Matrix, yb mat.Vector) (float64, *mat.VecDense) {
		r, _ := xb.Dims()
		if r == 10 {
			fullCalls++
		} else {
			assert.Equal(t, 3, r)
			blockCalls++
			for i := 0; i < r; i++ {
				seen[int(xb.At(i, 0))] = true
			}
		}
		return 0, mat.NewVecDense(w.Len(), nil)
	}

	_, history, err := StochasticGradientDescent(obj, x, y, mat.NewVecDense(2, nil), epochs, 0.1, 3)
	require.NoError(t, err)

	assert.Len(t, history, epochs)
	assert.Equal(t, 3*epochs, blockCalls)
	assert.Equal(t, epochs, fullCalls)
	assert.Len(t, seen, 9)
	assert.False(t, seen[9], "row 10 must never drive a gradient step")
}

func TestStochasticGradientDescent_SequentialUpdates(t *testing.T) {
	x, y := indexedRows(8)
	c := []float64{1, -1}
	const (
		epochs = 3
		eta    = 0.2
		batch  = 2
	)

	w, history, err := StochasticGradientDescent(batchQuadratic(c), x, y, mat.NewVecDense(2, nil), epochs, eta, batch)
	require.NoError(t, err)
	require.Len(t, history, epochs)

	// four blocks per epoch, each shrinking the distance to c by (1-eta)
	for k := 1; k <= epochs; k++ {
		shrink := math.Pow(1-eta, float64(4*k))
		want := 0.5 * shrink * shrink * (c[0]*c[0] + c[1]*c[1])
		assert.InDelta(t, want, history[k-1], 1e-12)
	}
	shrink := math.Pow(1-eta, 4*epochs)
	assert.InDelta(t, c[0]*(1-shrink), w.AtVec(0), 1e-12)
	assert.InDelta(t, c[1]*(1-shrink), w.AtVec(1), 1e-12)
}

func TestStochasticGradientDescent_NoBlocksKeepsWeights(t *testing.T) {
	x, y := indexedRows(4)
	w0 := mat.NewVecDense(2, []float64{0.3, 0.7})
	obj := batchQuadratic([]float64{5, 5})
	initial, _ := obj(w0, x, y)

	w, history, err := StochasticGradientDescent(obj, x, y, w0, 3, 0.5, 10)
	require.NoError(t, err)

	assert.True(t, mat.Equal(w, w0))
	assert.Equal(t, []float64{initial, initial, initial}, history)
}

func TestStochasticGradientDescent_DoesNotMutateInputs(t *testing.T) {
	x, y := indexedRows(6)
	w0 := mat.NewVecDense(2, []float64{0.1, 0.2})
	xBefore := mat.DenseCopyOf(x)
	wBefore := mat.VecDenseCopyOf(w0)

	_, _, err := StochasticGradientDescent(batchQuadratic([]float64{1, 1}), x, y, w0, 4, 0.3, 2)
	require.NoError(t, err)

	assert.True(t, mat.Equal(x, xBefore))
	assert.True(t, mat.Equal(w0, wBefore))
}

func TestStochasticGradientDescent_Validation(t *testing.T) {
	x, y := indexedRows(6)
	obj := batchQuadratic([]float64{0, 0})

	tests := []struct {
		name      string
		w0        mat.Vector
		epochs    int
		miniBatch int
		check     func(t *testing.T, err error)
	}{
		{
			name: "weights length differs from features", w0: mat.NewVecDense(3, nil), epochs: 1, miniBatch: 2,
			check: func(t *testing.T, err error) {
				var dimErr *errors.DimensionError
				require.True(t, errors.As(err, &dimErr))
				assert.Equal(t, 1, dimErr.Axis)
			},
		},
		{
			name: "zero epochs", w0: mat.NewVecDense(2, nil), epochs: 0, miniBatch: 2,
			check: func(t *testing.T, err error) {
				var valErr *errors.ValidationError
				require.True(t, errors.As(err, &valErr))
				assert.Equal(t, "epochs", valErr.ParamName)
			},
		},
		{
			name: "zero mini-batch", w0: mat.NewVecDense(2, nil), epochs: 1, miniBatch: 0,
			check: func(t *testing.T, err error) {
				var valErr *errors.ValidationError
				require.True(t, errors.As(err, &valErr))
				assert.Equal(t, "mini_batch", valErr.ParamName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, history, err := StochasticGradientDescent(obj, x, y, tt.w0, tt.epochs, 0.1, tt.miniBatch)
			require.Error(t, err)
			assert.Nil(t, w)
			assert.Nil(t, history)
			tt.check(t, err)
		})
	}
}

func TestStochasticGradientDescent_LogsPartition(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelDebug)
	x, y := indexedRows(10)

	_, _, err := StochasticGradientDescent(batchQuadratic([]float64{0, 0}), x, y, mat.NewVecDense(2, nil), 2, 0.1, 3, WithLogger(logger))
	require.NoError(t, err)

	assert.True(t, logger.ContainsField(log.BatchesKey, 3.0))
	assert.True(t, logger.ContainsField(log.DroppedRowsKey, 1.0))
	assert.Equal(t, 2, logger.CountMessages("Epoch finished"))
}
