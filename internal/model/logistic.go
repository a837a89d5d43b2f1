package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/shallow-ml/shallow/internal/activation"
	"github.com/shallow-ml/shallow/internal/loss"
	"github.com/shallow-ml/shallow/internal/matutil"
)

// LogisticRegression is a fixed single-layer sigmoid classifier trained by
// full-batch gradient descent.
//
// The weight vector has length features+1; the leading entry is the bias,
// represented by the constant-1 column Fit prepends to the input.
//
// Example:
//
//	m := model.NewLogisticRegression(model.LogisticRegressionConfig{
//	    Iterations:   500,
//	    LearningRate: 0.1,
//	})
//	m.Fit(x, y)
//	probs := m.PredictProb(matutil.AddBias(x))
type LogisticRegression struct {
	iterations int
	lr         float64
	logEvery   int
	monitor    Monitor

	weights *mat.VecDense // (features+1), bias first; nil until Fit
}

// LogisticRegressionConfig holds the hyperparameters for LogisticRegression.
type LogisticRegressionConfig struct {
	Iterations   int     // Number of gradient steps (required, > 0)
	LearningRate float64 // Step size α (required, > 0)
	LogEvery     int     // Monitor cadence in steps (default: 100)
	Monitor      Monitor // Optional loss observer
}

// NewLogisticRegression creates an untrained classifier.
//
// Panics if Iterations or LearningRate is not positive; both are required
// hyperparameters with no sensible defaults.
func NewLogisticRegression(cfg LogisticRegressionConfig) *LogisticRegression {
	if cfg.Iterations <= 0 {
		panic(fmt.Sprintf("model: Iterations must be > 0, got %d", cfg.Iterations))
	}
	if cfg.LearningRate <= 0 {
		panic(fmt.Sprintf("model: LearningRate must be > 0, got %v", cfg.LearningRate))
	}
	if cfg.LogEvery <= 0 {
		cfg.LogEvery = defaultLogEvery
	}
	return &LogisticRegression{
		iterations: cfg.Iterations,
		lr:         cfg.LearningRate,
		logEvery:   cfg.LogEvery,
		monitor:    cfg.Monitor,
	}
}

// Fit trains the classifier on x (n×features) and targets y (length n, values
// in [0, 1]).
//
// The input is bias-augmented once, weights are zero-initialized, then for
// exactly Iterations steps:
//
//	z = X·W
//	ŷ = σ(z)
//	∇ = Xᵀ·(ŷ - y) / n
//	W ← W - α·∇
//
// There is no convergence check or early stopping. Re-calling Fit discards
// the previous weights entirely. Every LogEvery-th step the cross-entropy
// loss is recomputed with the just-updated weights and handed to the Monitor,
// if one is installed.
func (m *LogisticRegression) Fit(x mat.Matrix, y mat.Vector) {
	xb := matutil.AddBias(x)
	rows, cols := xb.Dims()
	m.weights = mat.NewVecDense(cols, nil)

	var z, grad mat.VecDense
	for i := 0; i < m.iterations; i++ {
		z.MulVec(xb, m.weights)
		yHat := sigmoidVec(&z)

		// ∇ = Xᵀ·(ŷ - y) / n
		yHat.SubVec(yHat, y)
		grad.MulVec(xb.T(), yHat)
		m.weights.AddScaledVec(m.weights, -m.lr/float64(rows), &grad)

		if m.monitor != nil && i%m.logEvery == 0 {
			z.MulVec(xb, m.weights)
			m.monitor(i, loss.CrossEntropy(sigmoidVec(&z), y))
		}
	}
}

// PredictProb returns σ(X·W) for each row of x.
//
// x must already include the bias column (use matutil.AddBias); otherwise the
// multiply panics with a mat shape error. Pure with respect to the model:
// weights are read, never written.
func (m *LogisticRegression) PredictProb(x mat.Matrix) *mat.VecDense {
	var z mat.VecDense
	z.MulVec(x, m.weights)
	return sigmoidVec(&z)
}

// Predict classifies each row of x as PredictProb(x) >= threshold.
// x must already include the bias column.
func (m *LogisticRegression) Predict(x mat.Matrix, threshold float64) []bool {
	probs := m.PredictProb(x)
	out := make([]bool, probs.Len())
	for i := range out {
		out[i] = probs.AtVec(i) >= threshold
	}
	return out
}

// Weights exposes the trained weight vector (bias first) for inspection.
// Returns nil before Fit. The returned vector is the live weight storage.
func (m *LogisticRegression) Weights() *mat.VecDense {
	return m.weights
}

func sigmoidVec(z *mat.VecDense) *mat.VecDense {
	out := mat.NewVecDense(z.Len(), nil)
	for i := 0; i < z.Len(); i++ {
		out.SetVec(i, activation.Sigmoid.Apply(z.AtVec(i)))
	}
	return out
}
