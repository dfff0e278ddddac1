// Package linear_model implements binary logistic regression: the sigmoid,
// the plain and L2-regularized cross-entropy costs with their gradients,
// thresholded prediction, and a LogisticRegression estimator that trains
// with the optimizers of package optimize.
//
// Data follows one convention throughout: x is an N×M matrix whose column 0
// is the constant bias feature, w has length M with the bias weight at index
// 0, and y holds N labels in {0, 1}.
package linear_model
