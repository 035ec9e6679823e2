// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides trainable building blocks on top of package autodiff.
//
// Parameters live outside any graph. Each training step binds them to a
// fresh graph as tracked leaves; after Backward an optimizer from package
// optim updates them in place.
//
// Example:
//
//	layer := nn.NewLinear[float32, shape.D4, shape.D1](rand.New(rand.NewSource(1)))
//	opt := optim.NewAdam(layer.Parameters(), optim.AdamConfig{LR: 0.01})
//
//	g := autodiff.NewGraph()
//	for range 100 {
//	    g.Reset()
//	    pred := layer.Forward(autodiff.New(g, inputs, false))
//	    loss := nn.MSE(pred, autodiff.New(g, targets, false))
//	    loss.Backward(tensor.Ones[float32, shape.S0]())
//	    opt.Step()
//	}
package nn
