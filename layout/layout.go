// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layout exposes the memory layouts and allocation policies behind
// tensors.
//
// Most code only needs a Policy:
//
//	t := tensor.Zeros[float32, shape.S2[shape.D4, shape.D4]](
//	    tensor.WithPolicy(layout.StackFirstPolicy{}))
package layout

import (
	"github.com/born-ml/shapegrad/internal/layout"
)

// Layout is the read-only view of a tensor buffer: shape, strides and the
// elements as a sequence of contiguous chunks.
type Layout[T any] = layout.Layout[T]

// MutLayout is an owned, writable Layout.
type MutLayout[T any] = layout.MutLayout[T]

// SliceLayout borrows the buffer of another layout.
type SliceLayout[T any] = layout.SliceLayout[T]

// Kind identifies a layout family.
type Kind = layout.Kind

// Layout kinds.
const (
	Heap  Kind = layout.Heap
	Stack Kind = layout.Stack
)

// StackCapacity is the largest element count of an inline layout.
const StackCapacity = layout.StackCapacity

// Policy decides where tensor results are allocated.
type Policy = layout.Policy

// DefaultPolicy allocates everything on the heap.
type DefaultPolicy = layout.DefaultPolicy

// StackFirstPolicy keeps small static results inline.
type StackFirstPolicy = layout.StackFirstPolicy

// IsContiguous reports whether l is laid out in row-major order without gaps.
func IsContiguous[T any](l Layout[T]) bool {
	return layout.IsContiguous(l)
}

// HeapLayout owns a heap-allocated, row-major buffer.
type HeapLayout[T any] = layout.HeapLayout[T]

// StackLayout owns an inline buffer of at most StackCapacity elements.
type StackLayout[T any] = layout.StackLayout[T]

// StaticPolicy picks the layout kind of results with a static shape.
type StaticPolicy = layout.StaticPolicy

// DynamicPolicy picks the layout kind of results with a runtime shape.
type DynamicPolicy = layout.DynamicPolicy

// NewStatic allocates a zeroed result layout for a static shape through p.
//
// Example:
//
//	out := layout.NewStatic[float32](layout.StackFirstPolicy{}, []int{2, 2})
//	t := tensor.New[float32, shape.S2[shape.D2, shape.D2]](out, tensor.Contiguous, nil)
func NewStatic[T any](p StaticPolicy, shape []int) MutLayout[T] {
	return layout.NewStatic[T](p, shape)
}

// NewDynamic allocates a zeroed result layout for a runtime shape through p.
func NewDynamic[T any](p DynamicPolicy, shape []int) MutLayout[T] {
	return layout.NewDynamic[T](p, shape)
}

// NewHeap allocates a zeroed heap buffer for shape.
func NewHeap[T any](shape []int) *HeapLayout[T] {
	return layout.NewHeap[T](shape)
}

// HeapFrom takes ownership of data, laid out row-major for shape.
func HeapFrom[T any](data []T, shape []int) *HeapLayout[T] {
	return layout.HeapFrom(data, shape)
}

// NewStack returns a zeroed inline layout. It panics unless FitsStack(shape).
func NewStack[T any](shape []int) *StackLayout[T] {
	return layout.NewStack[T](shape)
}

// FitsStack reports whether shape fits a StackLayout.
func FitsStack(shape []int) bool {
	return layout.FitsStack(shape)
}

// FromSlice creates a row-major view over data.
func FromSlice[T any](data []T, shape []int) *SliceLayout[T] {
	return layout.FromSlice(data, shape)
}

// FromSliceUnchecked creates a view over data with explicit strides. Every
// index reachable through shape and strides must lie inside data.
func FromSliceUnchecked[T any](data []T, shape, strides []int, numElements, optChunkSize int) *SliceLayout[T] {
	return layout.FromSliceUnchecked(data, shape, strides, numElements, optChunkSize)
}

// ContiguousStrides returns the row-major strides of shape.
func ContiguousStrides(shape []int) []int {
	return layout.ContiguousStrides(shape)
}

// OptimalChunkSize returns the longest trailing run of shape that strides
// lay out contiguously.
func OptimalChunkSize(shape, strides []int) int {
	return layout.OptimalChunkSize(shape, strides)
}

// MinChunkSize returns the largest chunk size every layout supports.
func MinChunkSize[T any](ls ...Layout[T]) int {
	return layout.MinChunkSize(ls...)
}

// Collect copies a layout's elements in row-major order.
func Collect[T any](l Layout[T]) []T {
	return layout.Collect(l)
}

// Overlaps reports whether a and b share memory.
func Overlaps[T any](a, b Layout[T]) bool {
	return layout.Overlaps(a, b)
}
