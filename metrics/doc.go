// Package metrics evaluates binary classifiers on 0/1 label vectors.
//
// Undefined ratios (0/0) are not guarded: they evaluate to NaN and an
// UndefinedMetricWarning is reported through pkg/errors.Warn.
package metrics
