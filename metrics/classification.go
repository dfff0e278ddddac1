package metrics

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/ostrowskaew/logreg/pkg/errors"
)

// ConfusionCounts holds the binary confusion matrix.
type ConfusionCounts struct {
	TP int // true ∧ pred
	FP int // ¬true ∧ pred
	FN int // true ∧ ¬pred
	TN int // ¬true ∧ ¬pred
}

// Confusion counts agreements between two 0/1 label vectors.
func Confusion(yTrue, yPred mat.Vector) (ConfusionCounts, error) {
	var c ConfusionCounts
	if err := checkPair("Confusion", yTrue, yPred); err != nil {
		return c, err
	}

	for i := 0; i < yTrue.Len(); i++ {
		t, p := yTrue.AtVec(i) == 1, yPred.AtVec(i) == 1
		switch {
		case t && p:
			c.TP++
		case !t && p:
			c.FP++
		case t && !p:
			c.FN++
		default:
			c.TN++
		}
	}
	return c, nil
}

// FMeasure computes F1 = 2·TP / (2·TP + FP + FN).
//
// When TP, FP and FN are all zero the ratio is 0/0 and NaN is returned
// together with an UndefinedMetricWarning sent through errors.Warn.
func FMeasure(yTrue, yPred mat.Vector) (float64, error) {
	c, err := Confusion(yTrue, yPred)
	if err != nil {
		return 0, errors.Wrap(err, "FMeasure")
	}
	return c.FMeasure(), nil
}

// FMeasure computes F1 from the counts. See the package level FMeasure.
func (c ConfusionCounts) FMeasure() float64 {
	return ratio("f_measure", "no true or predicted positives", 2*c.TP, 2*c.TP+c.FP+c.FN)
}

// Precision computes TP / (TP + FP), NaN without predicted positives.
func Precision(yTrue, yPred mat.Vector) (float64, error) {
	c, err := Confusion(yTrue, yPred)
	if err != nil {
		return 0, errors.Wrap(err, "Precision")
	}
	return ratio("precision", "no predicted positives", c.TP, c.TP+c.FP), nil
}

// Recall computes TP / (TP + FN), NaN without true positives in yTrue.
func Recall(yTrue, yPred mat.Vector) (float64, error) {
	c, err := Confusion(yTrue, yPred)
	if err != nil {
		return 0, errors.Wrap(err, "Recall")
	}
	return ratio("recall", "no true positives", c.TP, c.TP+c.FN), nil
}

// Accuracy returns the share of matching labels.
func Accuracy(yTrue, yPred mat.Vector) (float64, error) {
	c, err := Confusion(yTrue, yPred)
	if err != nil {
		return 0, errors.Wrap(err, "Accuracy")
	}
	return float64(c.TP+c.TN) / float64(yTrue.Len()), nil
}

// CheckBinary returns a ModelError wrapping ErrEmptyData for an empty y and a
// ValueError if y holds a value other than 0 or 1.
func CheckBinary(op string, y mat.Vector) error {
	if y == nil || y.Len() == 0 {
		return errors.NewModelError(op, "empty label vector", errors.ErrEmptyData)
	}
	for i := 0; i < y.Len(); i++ {
		if v := y.AtVec(i); v != 0 && v != 1 {
			return errors.NewValueError(op, "labels must be 0 or 1")
		}
	}
	return nil
}

func checkPair(op string, yTrue, yPred mat.Vector) error {
	if err := CheckBinary(op, yTrue); err != nil {
		return err
	}
	if err := CheckBinary(op, yPred); err != nil {
		return err
	}
	if yTrue.Len() != yPred.Len() {
		return errors.NewDimensionError(op, yTrue.Len(), yPred.Len(), 0)
	}
	return nil
}

// ratio divides without guarding against 0/0, warning when that happens.
func ratio(metric, condition string, num, den int) float64 {
	if den == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning(metric, condition, math.NaN()))
		return math.NaN()
	}
	return float64(num) / float64(den)
}
