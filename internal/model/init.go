package model

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// heInit draws a rows×cols weight matrix from N(0, 2/fan-in) with fan-in =
// rows (the bias-augmented input dimensionality). The √(2/fan-in) scale keeps
// activation variance stable across the layer (He initialization).
func heInit(rows, cols int, src rand.Source) *mat.Dense {
	normal := distuv.Normal{
		Mu:    0,
		Sigma: math.Sqrt(2.0 / float64(rows)),
		Src:   src,
	}
	w := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			w.Set(i, j, normal.Rand())
		}
	}
	return w
}
