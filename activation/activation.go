// Copyright 2025 Shallow ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package activation

import (
	"gonum.org/v1/gonum/mat"

	"github.com/shallow-ml/shallow/internal/activation"
)

// Function identifies one of the supported activation functions.
type Function = activation.Function

// Supported activation functions.
const (
	ReLU    = activation.ReLU
	Tanh    = activation.Tanh
	Sigmoid = activation.Sigmoid
)

// Parse resolves an activation by name ("relu", "tanh" or "sigmoid").
// Unknown names return an error.
func Parse(name string) (Function, error) {
	return activation.Parse(name)
}

// Map applies f element-wise to z.
func Map(f Function, z mat.Matrix) *mat.Dense {
	return activation.Map(f, z)
}

// MapDeriv applies f's derivative element-wise to the activation output a.
func MapDeriv(f Function, a mat.Matrix) *mat.Dense {
	return activation.MapDeriv(f, a)
}
