// Package activation implements the element-wise nonlinearities used by the
// shallow models in this module.
//
// Activations are a closed set of variants resolved once at model
// construction, not dispatched by name on every call:
//   - ReLU: f(z) = max(0, z)
//   - Tanh: f(z) = tanh(z)
//   - Sigmoid: f(z) = 1 / (1 + exp(-z))
//
// Derivatives are expressed in terms of the activation's output rather than
// its input, following the standard reparameterization used in backprop code.
package activation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Function identifies one of the supported activation functions.
//
// The zero value is invalid; obtain a Function from the exported constants or
// from Parse. Applying the zero value panics.
type Function int

const (
	// ReLU is the rectified linear unit: f(z) = max(0, z).
	ReLU Function = iota + 1
	// Tanh is the hyperbolic tangent.
	Tanh
	// Sigmoid is the logistic function: f(z) = 1 / (1 + exp(-z)).
	Sigmoid
)

// Parse resolves an activation by name.
//
// Accepted names are "relu", "tanh" and "sigmoid". Unknown names return a
// defined error instead of silently producing no activation.
func Parse(name string) (Function, error) {
	switch name {
	case "relu":
		return ReLU, nil
	case "tanh":
		return Tanh, nil
	case "sigmoid":
		return Sigmoid, nil
	default:
		return 0, fmt.Errorf("activation: unsupported function %q (want relu, tanh or sigmoid)", name)
	}
}

// String returns the canonical name of the function, the inverse of Parse.
func (f Function) String() string {
	switch f {
	case ReLU:
		return "relu"
	case Tanh:
		return "tanh"
	case Sigmoid:
		return "sigmoid"
	default:
		return fmt.Sprintf("Function(%d)", int(f))
	}
}

// Apply computes the activation at z.
//
// Sigmoid is intentionally not clamped: extreme z may overflow the
// exponential and the result propagates as ±Inf/NaN downstream.
func (f Function) Apply(z float64) float64 {
	switch f {
	case ReLU:
		return math.Max(z, 0)
	case Tanh:
		return math.Tanh(z)
	case Sigmoid:
		return 1 / (1 + math.Exp(-z))
	default:
		panic("activation: Apply on invalid Function")
	}
}

// Deriv computes the derivative of the activation given the activation's
// OUTPUT (not its input):
//   - relu: 1 where out > 0, else 0 (sub-gradient convention at 0)
//   - tanh: 1 - out²
//   - sigmoid: out * (1 - out)
func (f Function) Deriv(out float64) float64 {
	switch f {
	case ReLU:
		if out > 0 {
			return 1
		}
		return 0
	case Tanh:
		return 1 - out*out
	case Sigmoid:
		return out * (1 - out)
	default:
		panic("activation: Deriv on invalid Function")
	}
}

// Map applies f element-wise to z and returns the result as a new matrix.
func Map(f Function, z mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return f.Apply(v) }, z)
	return &out
}

// MapDeriv applies f's derivative element-wise to the activation output a and
// returns the result as a new matrix.
func MapDeriv(f Function, a mat.Matrix) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return f.Deriv(v) }, a)
	return &out
}
