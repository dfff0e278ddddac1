// Package optimize implements the two fixed-iteration first-order optimizers
// used to train logistic regression: full-batch gradient descent and
// mini-batch stochastic gradient descent.
//
// Both optimizers are agnostic to the cost being minimized. They receive it
// as a function value returning the cost and its gradient, so the plain and
// the L2-regularized logistic costs, or any closure binding extra
// hyperparameters, can be passed interchangeably:
//
//	obj := optimize.Bind(linear_model.LogisticCost, X, y)
//	w, history, err := optimize.GradientDescent(obj, w0, 100, 0.1)
//
// Neither optimizer checks for convergence and neither adapts the step size:
// they always run exactly the requested number of epochs. The initial weight
// vector is copied and never written to.
package optimize
