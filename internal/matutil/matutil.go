// Package matutil provides the small dense-matrix helpers shared by the
// models: bias augmentation, mini-batch index ranges and row argmax.
package matutil

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// AddBias returns a copy of x with a constant-1 column prepended, so the bias
// term can be trained as an ordinary weight.
func AddBias(x mat.Matrix) *mat.Dense {
	rows, cols := x.Dims()
	out := mat.NewDense(rows, cols+1, nil)
	for i := 0; i < rows; i++ {
		out.Set(i, 0, 1)
		for j := 0; j < cols; j++ {
			out.Set(i, j+1, x.At(i, j))
		}
	}
	return out
}

// Range is a half-open [Start, End) row interval of a dataset.
type Range struct {
	Start, End int
}

// Len returns the number of rows in the range.
func (r Range) Len() int { return r.End - r.Start }

// Batches splits n examples into floor(n/size) fixed-size ranges plus one
// remainder range holding the last n%size examples. When size divides n
// evenly there is no remainder range, so no example is visited twice per
// epoch. size >= n yields a single [0, n) range. Panics if size < 1.
func Batches(n, size int) []Range {
	if size < 1 {
		panic("matutil: batch size must be >= 1")
	}
	full := n / size
	out := make([]Range, 0, full+1)
	for j := 0; j < full; j++ {
		out = append(out, Range{Start: j * size, End: (j + 1) * size})
	}
	if rem := n - full*size; rem > 0 {
		out = append(out, Range{Start: n - rem, End: n})
	}
	return out
}

// ArgMax returns the index and value of the largest element of row.
func ArgMax(row []float64) (int, float64) {
	idx := floats.MaxIdx(row)
	return idx, row[idx]
}
