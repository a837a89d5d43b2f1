// Copyright 2025 Shallow ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package model

import (
	"gonum.org/v1/gonum/mat"

	"github.com/shallow-ml/shallow/internal/matutil"
	"github.com/shallow-ml/shallow/internal/model"
)

// Monitor receives the diagnostic training loss every LogEvery-th step.
type Monitor = model.Monitor

// LogisticRegression is a binary sigmoid classifier trained by full-batch
// gradient descent.
type LogisticRegression = model.LogisticRegression

// LogisticRegressionConfig holds the hyperparameters for LogisticRegression.
type LogisticRegressionConfig = model.LogisticRegressionConfig

// NewLogisticRegression creates an untrained classifier.
//
// Example:
//
//	m := model.NewLogisticRegression(model.LogisticRegressionConfig{
//	    Iterations:   500,
//	    LearningRate: 0.1,
//	})
//	m.Fit(x, y)
//	labels := m.Predict(model.AddBias(x), 0.5)
func NewLogisticRegression(cfg LogisticRegressionConfig) *LogisticRegression {
	return model.NewLogisticRegression(cfg)
}

// Network is a one-hidden-layer feed-forward network trained by mini-batch
// gradient descent.
type Network = model.Network

// NetworkConfig holds the hyperparameters for Network.
type NetworkConfig = model.NetworkConfig

// Prediction is the argmax class of one example with its output value.
type Prediction = model.Prediction

// NewNetwork creates an untrained network, applying defaults for zero-valued
// config fields.
//
// Example:
//
//	net, err := model.NewNetwork(model.NetworkConfig{
//	    HiddenUnits:      4,
//	    HiddenActivation: activation.Sigmoid,
//	    Epochs:           1000,
//	    LearningRate:     0.5,
//	})
func NewNetwork(cfg NetworkConfig) (*Network, error) {
	return model.NewNetwork(cfg)
}

// AddBias returns a copy of x with a constant-1 column prepended. Inputs to
// PredictProb and Predict must be bias-augmented with this helper; Fit
// augments internally.
func AddBias(x mat.Matrix) *mat.Dense {
	return matutil.AddBias(x)
}
