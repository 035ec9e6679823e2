// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand"

	"github.com/x448/float16"

	"github.com/born-ml/shapegrad/internal/parallel"
	"github.com/born-ml/shapegrad/internal/tensor"
	"github.com/born-ml/shapegrad/layout"
	"github.com/born-ml/shapegrad/shape"
)

// Scalar is the constraint for element types.
type Scalar = tensor.Scalar

// Float is the constraint for element types transcendental functions accept.
type Float = tensor.Float

// Tensor is a tensor of element type T and shape type S.
//
// Example:
//
//	type M = shape.S2[shape.D2, shape.D2]
//	a := tensor.MustFromSlice[M]([]float32{1, 2, 3, 4})
//	b := a.Add(tensor.Ones[float32, M]())
type Tensor[T Scalar, S shape.Shape] = tensor.Tensor[T, S]

// DataType represents the runtime element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int     DataType = tensor.Int
	Int8    DataType = tensor.Int8
	Int16   DataType = tensor.Int16
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint    DataType = tensor.Uint
	Uint8   DataType = tensor.Uint8
	Uint16  DataType = tensor.Uint16
	Uint32  DataType = tensor.Uint32
	Uint64  DataType = tensor.Uint64
)

// Order records how a tensor's elements relate to a row-major buffer.
type Order = tensor.Order

// Orders.
const (
	Contiguous Order = tensor.Contiguous
	Transposed Order = tensor.Transposed
	Strided    Order = tensor.Strided
)

// Constructor errors, wrapped with the offending shapes.
var (
	ErrElementCount      = tensor.ErrElementCount
	ErrIncompatibleShape = tensor.ErrIncompatibleShape
	ErrAmbiguousShape    = tensor.ErrAmbiguousShape
	ErrInvalidShape      = tensor.ErrInvalidShape
)

// Option configures tensor constructors.
type Option = tensor.Option

// WithPolicy sets the allocation policy of a new tensor and of every result
// computed from it.
func WithPolicy(p layout.Policy) Option {
	return tensor.WithPolicy(p)
}

// KernelConfig tunes how kernels split work across goroutines.
type KernelConfig = parallel.Config

// DefaultKernelConfig returns the configuration kernels start with.
func DefaultKernelConfig() KernelConfig {
	return parallel.DefaultConfig()
}

// SetKernelConfig replaces the kernel configuration.
func SetKernelConfig(cfg KernelConfig) {
	tensor.SetParallelConfig(cfg)
}

// Creation functions

// New wraps a layout, typically one allocated with layout.NewStatic or
// layout.NewDynamic, in a tensor. It panics if the layout's shape is not an
// instance of S. A nil policy means layout.DefaultPolicy.
func New[T Scalar, S shape.Shape](l layout.Layout[T], order Order, policy layout.Policy) *Tensor[T, S] {
	return tensor.New[T, S](l, order, policy)
}

// FromSlice copies data into a new tensor. A single Dyn axis of S is
// inferred from len(data).
//
// Example:
//
//	x, err := tensor.FromSlice[shape.S2[shape.D2, shape.D3]]([]float32{1, 2, 3, 4, 5, 6})
func FromSlice[S shape.Shape, T Scalar](data []T, opts ...Option) (*Tensor[T, S], error) {
	return tensor.FromSlice[S](data, opts...)
}

// FromSliceShape copies data into a new tensor of runtime shape dims.
func FromSliceShape[S shape.Shape, T Scalar](data []T, dims []int, opts ...Option) (*Tensor[T, S], error) {
	return tensor.FromSliceShape[S](data, dims, opts...)
}

// MustFromSlice is FromSlice that panics on error.
func MustFromSlice[S shape.Shape, T Scalar](data []T, opts ...Option) *Tensor[T, S] {
	return tensor.MustFromSlice[S](data, opts...)
}

// Borrow wraps data without copying. The tensor is a read-only view.
func Borrow[S shape.Shape, T Scalar](data []T, dims ...int) (*Tensor[T, S], error) {
	return tensor.Borrow[S](data, dims...)
}

// Zeros creates a tensor filled with zeros. S must be static.
func Zeros[T Scalar, S shape.Shape](opts ...Option) *Tensor[T, S] {
	return tensor.Zeros[T, S](opts...)
}

// Alloc creates a zero tensor of runtime shape dims.
func Alloc[T Scalar, S shape.Shape](dims []int, opts ...Option) *Tensor[T, S] {
	return tensor.Alloc[T, S](dims, opts...)
}

// ZerosLike creates a zero tensor shaped like t.
func ZerosLike[T Scalar, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] {
	return tensor.ZerosLike(t)
}

// Full creates a tensor filled with value.
func Full[T Scalar, S shape.Shape](value T, opts ...Option) *Tensor[T, S] {
	return tensor.Full[T, S](value, opts...)
}

// FullDyn creates a tensor of runtime shape dims filled with value.
func FullDyn[T Scalar, S shape.Shape](value T, dims []int, opts ...Option) *Tensor[T, S] {
	return tensor.FullDyn[T, S](value, dims, opts...)
}

// Ones creates a tensor filled with ones.
func Ones[T Scalar, S shape.Shape](opts ...Option) *Tensor[T, S] {
	return tensor.Ones[T, S](opts...)
}

// OnesLike creates a tensor of ones shaped like t.
func OnesLike[T Scalar, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] {
	return tensor.OnesLike(t)
}

// Eye creates an N×N identity matrix.
//
// Example:
//
//	identity := tensor.Eye[float32, shape.D3]()
func Eye[T Scalar, N shape.Dim](opts ...Option) *Tensor[T, shape.S2[N, N]] {
	return tensor.Eye[T, N](opts...)
}

// Arange fills a tensor with 0, 1, 2, ... in row-major order.
func Arange[T Scalar, S shape.Shape](opts ...Option) *Tensor[T, S] {
	return tensor.Arange[T, S](opts...)
}

// Randn draws from the standard normal distribution.
func Randn[T Float, S shape.Shape](rng *rand.Rand, opts ...Option) *Tensor[T, S] {
	return tensor.Randn[T, S](rng, opts...)
}

// Rand draws from the uniform distribution on [0, 1).
func Rand[T Float, S shape.Shape](rng *rand.Rand, opts ...Option) *Tensor[T, S] {
	return tensor.Rand[T, S](rng, opts...)
}

// FromFloat16 creates a float32 tensor from half-precision values.
func FromFloat16[S shape.Shape](data []float16.Float16, opts ...Option) (*Tensor[float32, S], error) {
	return tensor.FromFloat16[S](data, opts...)
}

// ToFloat16 converts the elements of t to half precision.
func ToFloat16[T Float, S shape.Shape](t *Tensor[T, S]) []float16.Float16 {
	return tensor.ToFloat16(t)
}

// Convert casts every element to U.
func Convert[U, T Scalar, S shape.Shape](t *Tensor[T, S]) *Tensor[U, S] {
	return tensor.Convert[U](t)
}

// Views

// As re-types t as Z, a shape type its runtime shape is an instance of.
func As[Z shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S]) *Tensor[T, Z] {
	return tensor.As[Z](t)
}

// Broadcast views t as the larger shape Z.
//
// Example:
//
//	row := tensor.MustFromSlice[shape.S2[shape.D1, shape.D2]]([]float32{1, 2})
//	m := tensor.Broadcast[shape.S2[shape.D2, shape.D2]](row)
func Broadcast[Z shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S]) *Tensor[T, Z] {
	return tensor.Broadcast[Z](t)
}

// BroadcastTo is Broadcast with explicit runtime target dims.
func BroadcastTo[Z shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S], dims ...int) *Tensor[T, Z] {
	return tensor.BroadcastTo[Z](t, dims...)
}

// Reshape views a contiguous tensor as Z.
func Reshape[Z shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S]) *Tensor[T, Z] {
	return tensor.Reshape[Z](t)
}

// ReshapeTo is Reshape with explicit runtime target dims.
func ReshapeTo[Z shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S], dims ...int) *Tensor[T, Z] {
	return tensor.ReshapeTo[Z](t, dims...)
}

// Transpose reverses the axes of t.
func Transpose[Z shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S]) *Tensor[T, Z] {
	return tensor.Transpose[Z](t)
}

// Transpose2 swaps the axes of a matrix.
func Transpose2[T Scalar, A, B shape.Dim](t *Tensor[T, shape.S2[A, B]]) *Tensor[T, shape.S2[B, A]] {
	return tensor.Transpose2(t)
}

// Transpose3 reverses the axes of a rank-3 tensor.
func Transpose3[T Scalar, A, B, C shape.Dim](t *Tensor[T, shape.S3[A, B, C]]) *Tensor[T, shape.S3[C, B, A]] {
	return tensor.Transpose3(t)
}

// Transpose4 reverses the axes of a rank-4 tensor.
func Transpose4[T Scalar, A, B, C, D shape.Dim](t *Tensor[T, shape.S4[A, B, C, D]]) *Tensor[T, shape.S4[D, C, B, A]] {
	return tensor.Transpose4(t)
}

// Stride views every steps[i]-th element along each axis i.
func Stride[Z shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S], steps ...int) *Tensor[T, Z] {
	return tensor.Stride[Z](t, steps...)
}
