package matutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/shallow-ml/shallow/internal/matutil"
)

func TestAddBias(t *testing.T) {
	x := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	xb := matutil.AddBias(x)

	rows, cols := xb.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)

	want := mat.NewDense(2, 3, []float64{1, 1, 2, 1, 3, 4})
	assert.True(t, mat.EqualApprox(want, xb, 1e-15))
}

func TestBatches(t *testing.T) {
	tests := []struct {
		name string
		n    int
		size int
		want []matutil.Range
	}{
		{"remainder", 21, 20, []matutil.Range{{Start: 0, End: 20}, {Start: 20, End: 21}}},
		{"exact split has no remainder batch", 40, 20, []matutil.Range{{Start: 0, End: 20}, {Start: 20, End: 40}}},
		{"size larger than n", 4, 5, []matutil.Range{{Start: 0, End: 4}}},
		{"size one", 3, 1, []matutil.Range{{Start: 0, End: 1}, {Start: 1, End: 2}, {Start: 2, End: 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matutil.Batches(tt.n, tt.size))
		})
	}
}

// Every example is covered exactly once per epoch, in order.
func TestBatches_CoverEachExampleOnce(t *testing.T) {
	for _, tc := range []struct{ n, size int }{{21, 20}, {40, 20}, {7, 3}, {1, 20}} {
		seen := 0
		for _, b := range matutil.Batches(tc.n, tc.size) {
			require.Equal(t, seen, b.Start)
			require.Greater(t, b.End, b.Start)
			seen = b.End
		}
		assert.Equal(t, tc.n, seen, "n=%d size=%d", tc.n, tc.size)
	}
}

func TestBatches_InvalidSizePanics(t *testing.T) {
	assert.Panics(t, func() { matutil.Batches(10, 0) })
}

func TestArgMax(t *testing.T) {
	idx, val := matutil.ArgMax([]float64{0.1, 0.7, 0.2})
	assert.Equal(t, 1, idx)
	assert.Equal(t, 0.7, val)
}
