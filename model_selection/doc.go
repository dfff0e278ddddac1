// Package model_selection picks the regularization strength and decision
// threshold of a logistic regression model by exhaustive grid search on a
// held-out validation set.
//
// For each lambda a model is trained from the same initial weights with
// mini-batch SGD on the L2-regularized cost; each theta is then scored by the
// F-measure of the thresholded validation predictions. Candidates are visited
// lambda-major, theta-minor, and the first candidate with the highest F wins.
package model_selection
