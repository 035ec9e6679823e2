// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// shape-typed tensors.
//
// Operations on Variables record nodes in a Graph. Backward on a result
// accumulates gradients into every tracked variable it depends on.
//
// Example:
//
//	type M = shape.S2[shape.D2, shape.D2]
//
//	g := autodiff.NewGraph()
//	w := autodiff.New(g, tensor.MustFromSlice[M]([]float32{1, 2, 3, 4}), true)
//	x := autodiff.New(g, tensor.Ones[float32, M](), false)
//
//	loss := autodiff.SumAll(autodiff.Tanh(autodiff.MatMul(w.Clone(), x)))
//	loss.Backward(tensor.Ones[float32, shape.S0]())
//	dw := w.Grad()
//
// Operations consume their operand handles; Clone a handle to use the same
// variable more than once.
package autodiff

import (
	"github.com/born-ml/shapegrad/internal/autodiff"
	"github.com/born-ml/shapegrad/shape"
	"github.com/born-ml/shapegrad/tensor"
)

// Graph is the arena of recorded operations.
type Graph = autodiff.Graph

// NodeID indexes a node in its Graph.
type NodeID = autodiff.NodeID

// Variable is a handle on a graph node holding a tensor of type T and shape S.
type Variable[T tensor.Scalar, S shape.Shape] = autodiff.Variable[T, S]

// NewGraph creates an empty graph that records gradients.
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// New creates a leaf variable. When track is true, its gradient is
// accumulated by Backward.
func New[T tensor.Scalar, S shape.Shape](g *Graph, value *tensor.Tensor[T, S], track bool) *Variable[T, S] {
	return autodiff.New(g, value, track)
}

// Exp returns e^v.
func Exp[T tensor.Float, S shape.Shape](v *Variable[T, S]) *Variable[T, S] { return autodiff.Exp(v) }

// Log returns ln v.
func Log[T tensor.Float, S shape.Shape](v *Variable[T, S]) *Variable[T, S] { return autodiff.Log(v) }

// Sin returns sin v.
func Sin[T tensor.Float, S shape.Shape](v *Variable[T, S]) *Variable[T, S] { return autodiff.Sin(v) }

// Cos returns cos v.
func Cos[T tensor.Float, S shape.Shape](v *Variable[T, S]) *Variable[T, S] { return autodiff.Cos(v) }

// Tanh returns tanh v.
func Tanh[T tensor.Float, S shape.Shape](v *Variable[T, S]) *Variable[T, S] { return autodiff.Tanh(v) }

// Sqrt returns √v.
func Sqrt[T tensor.Float, S shape.Shape](v *Variable[T, S]) *Variable[T, S] { return autodiff.Sqrt(v) }

// Sigmoid returns 1/(1+e^-v).
func Sigmoid[T tensor.Float, S shape.Shape](v *Variable[T, S]) *Variable[T, S] {
	return autodiff.Sigmoid(v)
}

// Powf raises v to p.
func Powf[T tensor.Float, S shape.Shape](v *Variable[T, S], p T) *Variable[T, S] {
	return autodiff.Powf(v, p)
}

// Sum adds the elements of v along axis, keeping it with size 1.
func Sum[R shape.Shape, T tensor.Scalar, S shape.Shape](v *Variable[T, S], axis int) *Variable[T, R] {
	return autodiff.Sum[R](v, axis)
}

// Mean averages the elements of v along axis, keeping it with size 1.
func Mean[R shape.Shape, T tensor.Float, S shape.Shape](v *Variable[T, S], axis int) *Variable[T, R] {
	return autodiff.Mean[R](v, axis)
}

// SumAll adds every element of v into a scalar variable.
func SumAll[T tensor.Scalar, S shape.Shape](v *Variable[T, S]) *Variable[T, shape.S0] {
	return autodiff.SumAll(v)
}

// MatMul multiplies two matrix variables.
func MatMul[T tensor.Scalar, M, K, N shape.Dim](a *Variable[T, shape.S2[M, K]], b *Variable[T, shape.S2[K, N]]) *Variable[T, shape.S2[M, N]] {
	return autodiff.MatMul(a, b)
}

// Transpose2 swaps the axes of a matrix variable.
func Transpose2[T tensor.Scalar, A, B shape.Dim](v *Variable[T, shape.S2[A, B]]) *Variable[T, shape.S2[B, A]] {
	return autodiff.Transpose2(v)
}

// Reshape views v as Z, which must hold the same number of elements.
func Reshape[Z shape.Shape, T tensor.Scalar, S shape.Shape](v *Variable[T, S]) *Variable[T, Z] {
	return autodiff.Reshape[Z](v)
}

// As re-types v as Z, a shape type its runtime shape is an instance of.
func As[Z shape.Shape, T tensor.Scalar, S shape.Shape](v *Variable[T, S]) *Variable[T, Z] {
	return autodiff.As[Z](v)
}

// ReLU returns max(v, 0).
func ReLU[T tensor.Float, S shape.Shape](v *Variable[T, S]) *Variable[T, S] { return autodiff.ReLU(v) }

// Broadcast views v as the larger shape Z. The gradient is summed back over
// the repeated axes.
func Broadcast[Z shape.Shape, T tensor.Scalar, S shape.Shape](v *Variable[T, S]) *Variable[T, Z] {
	return autodiff.Broadcast[Z](v)
}

// BroadcastTo is Broadcast with explicit runtime target dims.
func BroadcastTo[Z shape.Shape, T tensor.Scalar, S shape.Shape](v *Variable[T, S], dims ...int) *Variable[T, Z] {
	return autodiff.BroadcastTo[Z](v, dims...)
}
