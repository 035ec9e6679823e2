// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/shapegrad/autodiff"
	"github.com/born-ml/shapegrad/internal/nn"
	"github.com/born-ml/shapegrad/shape"
	"github.com/born-ml/shapegrad/tensor"
)

// Module is a component with trainable parameters.
type Module = nn.Module

// Param is the type-erased surface of a Parameter used by optimizers.
type Param = nn.Param

// Rule is an element-wise parameter update rule.
type Rule = nn.Rule

// Parameter is a trainable tensor.
type Parameter[T tensor.Float, S shape.Shape] = nn.Parameter[T, S]

// NewParameter creates a parameter holding a copy of value if it is a view.
func NewParameter[T tensor.Float, S shape.Shape](name string, value *tensor.Tensor[T, S]) *Parameter[T, S] {
	return nn.NewParameter(name, value)
}

// Linear is a fully connected layer y = x·W + b with a dynamic batch axis.
type Linear[T tensor.Float, In, Out shape.Dim] = nn.Linear[T, In, Out]

// NewLinear creates a Linear layer with Xavier weights and zero bias.
func NewLinear[T tensor.Float, In, Out shape.Dim](rng *rand.Rand) *Linear[T, In, Out] {
	return nn.NewLinear[T, In, Out](rng)
}

// Xavier draws weights from the Glorot uniform distribution.
func Xavier[T tensor.Float, S shape.Shape](rng *rand.Rand, fanIn, fanOut int) *tensor.Tensor[T, S] {
	return nn.Xavier[T, S](rng, fanIn, fanOut)
}

// MSE computes mean((pred - target)²).
func MSE[T tensor.Float, S shape.Shape](pred, target *autodiff.Variable[T, S]) *autodiff.Variable[T, shape.S0] {
	return nn.MSE(pred, target)
}
