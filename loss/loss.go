// Copyright 2025 Shallow ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package loss exposes the diagnostic loss functions: binary cross-entropy
// and per-example mean squared error. Both are observational; training uses
// their analytic gradients directly.
package loss

import (
	"gonum.org/v1/gonum/mat"

	"github.com/shallow-ml/shallow/internal/loss"
)

// CrossEntropy computes mean(-y·log(ŷ) - (1-y)·log(1-ŷ)). Unclamped: hard
// wrong predictions diverge to +Inf.
func CrossEntropy(yHat, y mat.Vector) float64 {
	return loss.CrossEntropy(yHat, y)
}

// MSE computes sum((pred - target)²) / rows.
func MSE(pred, target mat.Matrix) float64 {
	return loss.MSE(pred, target)
}
