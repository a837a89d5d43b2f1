// Package model implements the two supervised models of this module: a
// binary logistic-regression classifier trained by full-batch gradient
// descent, and a one-hidden-layer feed-forward network trained by mini-batch
// gradient descent.
//
// Both models own their weights exclusively: Fit allocates fresh weights
// every call (no warm start) and mutates them in place each step, while
// PredictProb and Predict only read them. Training runs for a fixed number of
// steps with no convergence check, and numeric failure is fail-open: shape
// mismatches panic with gonum mat errors, and NaN/Inf from unclamped
// exponentials propagate silently into subsequent updates.
//
// The numeric loops perform no I/O. Diagnostic losses are delivered through
// an optional Monitor callback.
package model

// Monitor receives the diagnostic training loss every LogEvery-th step
// (0-indexed). It exists purely for observation: when no Monitor is
// installed the loss is never computed, and installing one has no effect on
// the trained weights.
type Monitor func(step int, loss float64)

// defaultLogEvery matches the source models' fixed reporting cadence.
const defaultLogEvery = 100
