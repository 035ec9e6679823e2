// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for parameters from
// package nn.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	layer := nn.NewLinear[float32, shape.D8, shape.D1](rng)
//	optimizer := optim.NewAdam(layer.Parameters(), optim.AdamConfig{LR: 0.001})
//
//	g := autodiff.NewGraph()
//	for range steps {
//	    g.Reset()
//	    loss := nn.MSE(layer.Forward(autodiff.New(g, x, false)), autodiff.New(g, y, false))
//	    loss.Backward(tensor.Ones[float32, shape.S0]())
//	    optimizer.Step()
//	}
//
// Step reads each parameter's gradient from the graph it was last bound to,
// so call it before resetting that graph.
package optim
