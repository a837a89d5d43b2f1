package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/shallow-ml/shallow/internal/matutil"
	"github.com/shallow-ml/shallow/internal/model"
)

// A single gradient step from zero weights on a one-example dataset has a
// closed form: W = -α·x_b·(σ(0) - y) = -α·x_b·(0.5 - y).
func TestLogisticRegression_SingleStepClosedForm(t *testing.T) {
	m := model.NewLogisticRegression(model.LogisticRegressionConfig{
		Iterations:   1,
		LearningRate: 0.1,
	})

	x := mat.NewDense(1, 2, []float64{2, 3})
	y := mat.NewVecDense(1, []float64{0})
	m.Fit(x, y)

	w := m.Weights()
	require.Equal(t, 3, w.Len())
	// x_b = (1, 2, 3), residual = 0.5, so W = -0.1·0.5·x_b.
	assert.InDelta(t, -0.05, w.AtVec(0), 1e-12)
	assert.InDelta(t, -0.10, w.AtVec(1), 1e-12)
	assert.InDelta(t, -0.15, w.AtVec(2), 1e-12)
}

func TestLogisticRegression_ConvergesOnSeparableData(t *testing.T) {
	var losses []float64
	m := model.NewLogisticRegression(model.LogisticRegressionConfig{
		Iterations:   500,
		LearningRate: 0.1,
		LogEvery:     1,
		Monitor:      func(_ int, l float64) { losses = append(losses, l) },
	})

	x := mat.NewDense(2, 2, []float64{1, 1, -1, -1})
	y := mat.NewVecDense(2, []float64{1, 0})
	m.Fit(x, y)

	require.Len(t, losses, 500)
	for i := 1; i < len(losses); i++ {
		require.LessOrEqualf(t, losses[i], losses[i-1], "loss rose at step %d", i)
	}

	got := m.Predict(matutil.AddBias(x), 0.5)
	assert.Equal(t, []bool{true, false}, got)
}

func TestLogisticRegression_PredictProbIsPure(t *testing.T) {
	m := model.NewLogisticRegression(model.LogisticRegressionConfig{
		Iterations:   50,
		LearningRate: 0.5,
	})
	x := mat.NewDense(3, 1, []float64{-1, 0, 1})
	y := mat.NewVecDense(3, []float64{0, 0, 1})
	m.Fit(x, y)

	xb := matutil.AddBias(x)
	first := m.PredictProb(xb)
	second := m.PredictProb(xb)
	assert.True(t, mat.Equal(first, second))

	// Row-count shape law.
	assert.Equal(t, 3, first.Len())
}

// Weight dimensionality follows the bias-augmented input, and a second Fit
// reinitializes rather than warm-starting.
func TestLogisticRegression_RefitResetsWeights(t *testing.T) {
	m := model.NewLogisticRegression(model.LogisticRegressionConfig{
		Iterations:   1,
		LearningRate: 0.1,
	})
	x := mat.NewDense(1, 2, []float64{2, 3})
	y := mat.NewVecDense(1, []float64{0})

	m.Fit(x, y)
	first := mat.VecDenseCopyOf(m.Weights())
	m.Fit(x, y)
	assert.True(t, mat.Equal(first, m.Weights()), "refit must restart from zero weights")

	// A wider input reallocates the weight vector.
	x3 := mat.NewDense(1, 3, []float64{2, 3, 4})
	m.Fit(x3, y)
	assert.Equal(t, 4, m.Weights().Len())
}

// PredictProb requires the caller to bias-augment; a raw input has the wrong
// width and must fail with a shape panic, not mispredict silently.
func TestLogisticRegression_UnaugmentedPredictPanics(t *testing.T) {
	m := model.NewLogisticRegression(model.LogisticRegressionConfig{
		Iterations:   1,
		LearningRate: 0.1,
	})
	x := mat.NewDense(2, 2, []float64{1, 1, -1, -1})
	y := mat.NewVecDense(2, []float64{1, 0})
	m.Fit(x, y)

	assert.Panics(t, func() { m.PredictProb(x) })
}

func TestNewLogisticRegression_Validation(t *testing.T) {
	assert.Panics(t, func() {
		model.NewLogisticRegression(model.LogisticRegressionConfig{Iterations: 0, LearningRate: 0.1})
	})
	assert.Panics(t, func() {
		model.NewLogisticRegression(model.LogisticRegressionConfig{Iterations: 10})
	})
}
