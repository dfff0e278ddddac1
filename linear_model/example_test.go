package linear_model_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/ostrowskaew/logreg/linear_model"
)

func ExampleLogisticCost() {
	x := mat.NewDense(2, 2, []float64{
		1, 0.5,
		1, -1.5,
	})
	y := mat.NewVecDense(2, []float64{1, 0})
	w := mat.NewVecDense(2, nil)

	cost, _ := linear_model.LogisticCost(w, x, y)
	fmt.Printf("%.4f\n", cost)
	// Output: 0.6931
}

func ExamplePredict() {
	x := mat.NewDense(3, 2, []float64{
		1, -1,
		1, 0,
		1, 1,
	})
	w := mat.NewVecDense(2, []float64{0, 2})

	labels, _ := linear_model.Predict(x, w, 0.5)
	fmt.Println(labels.RawVector().Data)
	// Output: [0 0 1]
}
