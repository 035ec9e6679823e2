// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package shape provides the type-level shapes tensors are parameterized by.
//
// A shape type lists one dimension type per axis. Dimensions are either
// static (D1..D16, D32..D1024, or any type with a constant Size method) or
// Dyn, whose size is only known at runtime:
//
//	type Image = shape.S3[shape.D3, shape.D32, shape.D32]
//	type Batch = shape.S2[shape.Dyn, shape.D10]
//
// Operations that need matching shapes take operands of the same shape type,
// so mismatches between static shapes fail to compile. Dynamic axes are
// checked when the operation runs.
package shape

import (
	"github.com/born-ml/shapegrad/internal/shape"
)

// Dynamic is the runtime size reported by Dyn.
const Dynamic = shape.Dynamic

// MaxRank is the highest supported rank.
const MaxRank = shape.MaxRank

// Dims is a runtime shape. Dynamic marks an axis of unknown size.
type Dims = shape.Dims

// Dim is a dimension type.
type Dim = shape.Dim

// Shape is a shape type.
type Shape = shape.Shape

// Dyn is the dynamic dimension.
type Dyn = shape.Dyn

// Static dimensions.
type (
	D1    = shape.D1
	D2    = shape.D2
	D3    = shape.D3
	D4    = shape.D4
	D5    = shape.D5
	D6    = shape.D6
	D7    = shape.D7
	D8    = shape.D8
	D9    = shape.D9
	D10   = shape.D10
	D11   = shape.D11
	D12   = shape.D12
	D13   = shape.D13
	D14   = shape.D14
	D15   = shape.D15
	D16   = shape.D16
	D32   = shape.D32
	D64   = shape.D64
	D128  = shape.D128
	D256  = shape.D256
	D512  = shape.D512
	D1024 = shape.D1024
)

// Shape types by rank.
type (
	S0                       = shape.S0
	S1[A Dim]                = shape.S1[A]
	S2[A, B Dim]             = shape.S2[A, B]
	S3[A, B, C Dim]          = shape.S3[A, B, C]
	S4[A, B, C, D Dim]       = shape.S4[A, B, C, D]
	S5[A, B, C, D, E Dim]    = shape.S5[A, B, C, D, E]
	S6[A, B, C, D, E, F Dim] = shape.S6[A, B, C, D, E, F]
)

// Of returns the runtime dims of a shape type.
//
// Example:
//
//	shape.Of[shape.S2[shape.D2, shape.Dyn]]() // [2 ?]
func Of[S Shape]() Dims {
	return shape.Of[S]()
}

// SizeOf returns the size of a dimension type.
func SizeOf[D Dim]() int {
	return shape.SizeOf[D]()
}

// IsStatic reports whether a shape type has no Dyn axis.
func IsStatic[S Shape]() bool {
	return shape.IsStatic[S]()
}

// Broadcastable reports whether from can be broadcast to to.
func Broadcastable(from, to Dims) bool {
	return shape.Broadcastable(from, to)
}

// Reduction returns a with axis reduced to size 1.
func Reduction(a Dims, axis int) Dims {
	return shape.Reduction(a, axis)
}

// Same reports whether a and b have equal rank and, per axis, equal sizes
// or a Dynamic side.
func Same(a, b Dims) bool {
	return shape.Same(a, b)
}

// ReductionChunkSize returns the number of elements after axis.
func ReductionChunkSize(a Dims, axis int) int {
	return shape.ReductionChunkSize(a, axis)
}

// Transpose reverses the axis order.
func Transpose(a Dims) Dims {
	return shape.Transpose(a)
}

// Repr merges two Same shapes, the static side winning per axis.
func Repr(a, b Dims) (Dims, bool) {
	return shape.Repr(a, b)
}

// ReprStatic is Repr restricted to a fully static result.
func ReprStatic(a, b Dims) (Dims, bool) {
	return shape.ReprStatic(a, b)
}

// Strided returns ceil(dim/step) per axis.
func Strided(a, step Dims) (Dims, bool) {
	return shape.Strided(a, step)
}

// SameNumElements reports whether a and b hold the same number of elements.
// A dynamic side is accepted.
func SameNumElements(a, b Dims) bool {
	return shape.SameNumElements(a, b)
}

// FitIn reports whether a fits inside b axis by axis.
func FitIn(a, b Dims) bool {
	return shape.FitIn(a, b)
}

// MustBeSame panics unless a and b are Same. The message names op and both
// shapes.
func MustBeSame(op string, a, b Dims) {
	shape.MustBeSame(op, a, b)
}

// MustBroadcast panics unless from is Broadcastable to to.
func MustBroadcast(op string, from, to Dims) {
	shape.MustBroadcast(op, from, to)
}

// MustHaveSameNumElements panics unless both shapes hold as many elements.
func MustHaveSameNumElements(op string, from, to Dims) {
	shape.MustHaveSameNumElements(op, from, to)
}

// MustBeCompatible panics unless runtime is an instance of want.
func MustBeCompatible(op string, want Dims, runtime []int) {
	shape.MustBeCompatible(op, want, runtime)
}

// MustBeStatic panics if d has a Dynamic axis.
func MustBeStatic(op string, d Dims) {
	shape.MustBeStatic(op, d)
}
