// Copyright 2025 Shallow ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package model exposes the two supervised models of this module.
//
// # Overview
//
//   - LogisticRegression: binary sigmoid classifier, full-batch gradient
//     descent, zero-initialized weights.
//   - Network: one-hidden-layer feed-forward network, mini-batch gradient
//     descent on a squared-error objective, He-initialized weights.
//
// # Basic Usage
//
//	import (
//	    "gonum.org/v1/gonum/mat"
//
//	    "github.com/shallow-ml/shallow/activation"
//	    "github.com/shallow-ml/shallow/model"
//	)
//
//	func main() {
//	    x := mat.NewDense(4, 2, []float64{0, 0, 0, 1, 1, 0, 1, 1})
//	    y := mat.NewDense(4, 2, []float64{1, 0, 0, 1, 0, 1, 1, 0})
//
//	    net, _ := model.NewNetwork(model.NetworkConfig{
//	        HiddenUnits:      4,
//	        HiddenActivation: activation.Sigmoid,
//	        Epochs:           5000,
//	        LearningRate:     0.5,
//	    })
//	    net.Fit(x, y)
//	    preds := net.Predict(model.AddBias(x))
//	}
//
// # Contract
//
// Fit owns the weights: every call reinitializes them and mutates them in
// place for a fixed number of steps, with no convergence check. PredictProb
// and Predict only read weights and require the caller to bias-augment the
// input with AddBias. Shape mismatches panic with gonum mat errors, and
// numeric overflow propagates as ±Inf/NaN rather than being clamped.
//
// # Thread Safety
//
// Instances are not safe for concurrent use while Fit is running. Distinct
// instances share no state.
package model
