// Copyright 2025 Shallow ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package activation exposes the activation functions used by the shallow
// models: ReLU, Tanh and Sigmoid.
//
// An activation is a closed enum value resolved once, typically at model
// construction:
//
//	f, err := activation.Parse("tanh")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y := f.Apply(0.5)
//	dy := f.Deriv(y) // derivative expressed from the output
package activation
