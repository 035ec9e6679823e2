// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/shapegrad/internal/tensor"
	"github.com/born-ml/shapegrad/shape"
)

// Element-wise math

// Exp computes e^x element-wise.
func Exp[T Float, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] { return tensor.Exp(t) }

// Log computes the natural logarithm element-wise.
func Log[T Float, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] { return tensor.Log(t) }

// Sin computes the sine element-wise.
func Sin[T Float, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] { return tensor.Sin(t) }

// Cos computes the cosine element-wise.
func Cos[T Float, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] { return tensor.Cos(t) }

// Tan computes the tangent element-wise.
func Tan[T Float, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] { return tensor.Tan(t) }

// Tanh computes the hyperbolic tangent element-wise.
func Tanh[T Float, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] { return tensor.Tanh(t) }

// Sqrt computes the square root element-wise.
func Sqrt[T Float, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] { return tensor.Sqrt(t) }

// Abs computes the absolute value element-wise.
func Abs[T Float, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] { return tensor.Abs(t) }

// Inv computes 1/x element-wise.
func Inv[T Float, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] { return tensor.Inv(t) }

// Sigmoid computes 1/(1+e^-x) element-wise.
func Sigmoid[T Float, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] { return tensor.Sigmoid(t) }

// Powf raises every element to p.
func Powf[T Float, S shape.Shape](t *Tensor[T, S], p T) *Tensor[T, S] { return tensor.Powf(t, p) }

// Powi raises every element to the integer power n.
func Powi[T Float, S shape.Shape](t *Tensor[T, S], n int) *Tensor[T, S] { return tensor.Powi(t, n) }

// Reductions

// Sum adds the elements along axis, keeping it with size 1.
//
// Example:
//
//	cols := tensor.Sum[shape.S2[shape.D3, shape.D1]](tensor.Eye[float32, shape.D3](), 1)
func Sum[R shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S], axis int) *Tensor[T, R] {
	return tensor.Sum[R](t, axis)
}

// Prod multiplies the elements along axis.
func Prod[R shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S], axis int) *Tensor[T, R] {
	return tensor.Prod[R](t, axis)
}

// ReduceMax keeps the largest element along axis.
func ReduceMax[R shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S], axis int) *Tensor[T, R] {
	return tensor.ReduceMax[R](t, axis)
}

// ReduceMin keeps the smallest element along axis.
func ReduceMin[R shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S], axis int) *Tensor[T, R] {
	return tensor.ReduceMin[R](t, axis)
}

// Mean averages the elements along axis.
func Mean[R shape.Shape, T Float, S shape.Shape](t *Tensor[T, S], axis int) *Tensor[T, R] {
	return tensor.Mean[R](t, axis)
}

// SumTo sums t down to dims, the reverse of BroadcastTo: repeated and
// leading axes are added together.
func SumTo[Z shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S], dims ...int) *Tensor[T, Z] {
	return tensor.SumTo[Z](t, dims...)
}

// Linear algebra

// MatMul multiplies an M×K matrix by a K×N matrix.
func MatMul[T Scalar, M, K, N shape.Dim](a *Tensor[T, shape.S2[M, K]], b *Tensor[T, shape.S2[K, N]]) *Tensor[T, shape.S2[M, N]] {
	return tensor.MatMul(a, b)
}

// Dot returns the inner product of two vectors.
func Dot[T Scalar, N shape.Dim](a, b *Tensor[T, shape.S1[N]]) T {
	return tensor.Dot(a, b)
}
