// Package logreg is a from-scratch binary logistic regression library for Go
// built on gonum matrices.
//
// It covers the whole training loop of a small linear classifier: the
// sigmoid and the cross-entropy cost with optional L2 regularization of every
// weight except the bias, full-batch gradient descent and mini-batch SGD with
// a fixed number of epochs and a fixed step size, thresholded prediction, the
// F-measure, and a grid search over (lambda, theta) on a validation set.
//
// # Packages
//
//   - linear_model: Sigmoid, LogisticCost, RegularizedLogisticCost, Predict
//     and the LogisticRegression estimator
//   - optimize: GradientDescent and StochasticGradientDescent
//   - metrics: FMeasure and the confusion counts behind it
//   - model_selection: SelectModel
//   - datasets: seeded synthetic two-cluster data
//   - pkg/errors, pkg/log: structured errors and zerolog-backed logging
//
// # Quick Start
//
//	x, y, _ := datasets.MakeSeparable(200, 2, 1)
//	xTrain, yTrain, xVal, yVal, _ := datasets.TrainValSplit(x, y, 150)
//
//	res, err := model_selection.SelectModel(
//	    xTrain, yTrain, xVal, yVal,
//	    mat.NewVecDense(3, nil), // w0, bias first
//	    50, 0.1, 16,             // epochs, eta, mini-batch
//	    []float64{0, 0.01, 0.1}, // lambdas
//	    []float64{0.3, 0.5, 0.7}, // thetas
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Lambda, res.Theta, res.Measure)
//
// # Conventions
//
// Column 0 of every design matrix is the constant bias feature and the bias
// weight is w[0]. Labels are 0/1 values in a mat.Vector. Numeric edge cases
// are not guarded: a saturated sigmoid can make the cost infinite and an
// F-measure with no positives anywhere is NaN.
package logreg
