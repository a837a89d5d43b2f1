// Package loss implements the diagnostic loss functions reported during
// training. Losses are observational only: the gradient code in
// internal/model uses their analytic derivatives directly.
package loss

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// CrossEntropy computes the mean binary cross-entropy
//
//	mean(-y·log(ŷ) - (1-y)·log(1-ŷ))
//
// over the paired elements of yHat and y. Inputs are not clamped: a ŷ of
// exactly 0 or 1 on the wrong label makes the result +Inf, and out-of-range
// values produce NaN. Panics with a mat shape error when lengths differ.
func CrossEntropy(yHat, y mat.Vector) float64 {
	n := yHat.Len()
	if y.Len() != n {
		panic(mat.ErrShape)
	}
	var sum float64
	for i := 0; i < n; i++ {
		h := yHat.AtVec(i)
		v := y.AtVec(i)
		sum += -v*math.Log(h) - (1-v)*math.Log(1-h)
	}
	return sum / float64(n)
}

// MSE computes the squared-error loss normalized by the number of examples
// (rows), not by the number of elements:
//
//	sum((pred - target)²) / rows
func MSE(pred, target mat.Matrix) float64 {
	var diff mat.Dense
	diff.Sub(pred, target)
	diff.MulElem(&diff, &diff)
	rows, _ := pred.Dims()
	return mat.Sum(&diff) / float64(rows)
}
