package optimize

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/ostrowskaew/logreg/pkg/errors"
	"github.com/ostrowskaew/logreg/pkg/log"
)

// Batch is one contiguous block of training rows.
type Batch struct {
	X mat.Matrix
	Y mat.Vector
}

// Partition splits x, y into ⌊N/miniBatch⌋ contiguous blocks of exactly
// miniBatch rows, in row order. The trailing N mod miniBatch rows are not
// part of any block. The blocks are views into x and y, not copies.
func Partition(x mat.Matrix, y mat.Vector, miniBatch int) ([]Batch, error) {
	const op = "Partition"
	if miniBatch < 1 {
		return nil, errors.NewValidationError("mini_batch", "must be at least 1", miniBatch)
	}
	n, m := x.Dims()
	if y.Len() != n {
		return nil, errors.NewDimensionError(op, n, y.Len(), 0)
	}

	xd := asDense(x)
	yd := asVecDense(y)

	nBatches := n / miniBatch
	batches := make([]Batch, nBatches)
	for b := 0; b < nBatches; b++ {
		lo, hi := b*miniBatch, (b+1)*miniBatch
		batches[b] = Batch{
			X: xd.Slice(lo, hi, 0, m),
			Y: yd.SliceVec(lo, hi),
		}
	}
	return batches, nil
}

// StochasticGradientDescent minimizes obj with mini-batch gradient descent.
//
// The training data is partitioned once with Partition. Every epoch visits
// the blocks in order; for each block obj is evaluated at the current w on
// that block and w ← w − eta·grad is applied immediately, so later blocks in
// the same epoch see the update. After the last block obj is evaluated once
// on the whole of x, y and that cost is appended to history. history has
// exactly epochs entries.
//
// If miniBatch exceeds the number of rows there are no blocks: w stays at w0
// and every history entry is the full-set cost at w0.
func StochasticGradientDescent(obj BatchObjective, x mat.Matrix, y mat.Vector, w0 mat.Vector, epochs int, eta float64, miniBatch int, opts ...Option) (w *mat.VecDense, history []float64, err error) {
	const op = "StochasticGradientDescent"
	if err := validateRun(op, w0, epochs); err != nil {
		return nil, nil, err
	}
	n, m := x.Dims()
	if m != w0.Len() {
		return nil, nil, errors.NewDimensionError(op, w0.Len(), m, 1)
	}
	batches, err := Partition(x, y, miniBatch)
	if err != nil {
		return nil, nil, err
	}

	cfg := newConfig(opts)
	logger := cfg.logger.With(log.OperationKey, log.OperationSGD)
	debug := logger.Enabled(context.Background(), log.LevelDebug)
	if debug {
		logger.Debug("Partitioned training data",
			log.SamplesKey, n,
			log.BatchSizeKey, miniBatch,
			log.BatchesKey, len(batches),
			log.DroppedRowsKey, n-len(batches)*miniBatch,
		)
	}

	defer func() {
		if err != nil {
			w, history = nil, nil
		}
	}()
	defer errors.Recover(&err, op)

	w = mat.VecDenseCopyOf(w0)
	history = make([]float64, 0, epochs)

	for k := 0; k < epochs; k++ {
		for _, batch := range batches {
			_, grad := obj(w, batch.X, batch.Y)
			w.AddScaledVec(w, -eta, grad)
		}

		cost, _ := obj(w, x, y)
		history = append(history, cost)

		if debug {
			logger.Debug("Epoch finished", log.EpochKey, k+1, log.LossKey, cost)
		}
	}

	errors.WarnIfUnstable(log.OperationSGD, history)
	logger.Debug("Stochastic gradient descent finished",
		log.EpochsKey, epochs,
		log.LearningRateKey, eta,
		log.BatchSizeKey, miniBatch,
		log.LossKey, history[len(history)-1],
	)
	return w, history, nil
}

func asDense(m mat.Matrix) *mat.Dense {
	if d, ok := m.(*mat.Dense); ok {
		return d
	}
	return mat.DenseCopyOf(m)
}

func asVecDense(v mat.Vector) *mat.VecDense {
	if vd, ok := v.(*mat.VecDense); ok {
		return vd
	}
	return mat.VecDenseCopyOf(v)
}
