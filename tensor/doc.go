// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides tensors whose shape is part of their type.
//
// # Overview
//
// A Tensor[T, S] holds elements of type T laid out in the shape S, a type
// from package shape. Element-wise operations take operands of the same
// shape type, so adding a 2×3 matrix to a 3×2 one does not compile:
//
//	type M = shape.S2[shape.D2, shape.D3]
//
//	a := tensor.MustFromSlice[M]([]float32{1, 2, 3, 4, 5, 6})
//	b := tensor.Ones[float32, M]()
//	c := a.Add(b)                                    // Tensor[float32, M]
//	d := tensor.MatMul(a, tensor.Transpose2(b))      // Tensor[float32, shape.S2[D2, D2]]
//
// # Dynamic Axes
//
// Axes declared as shape.Dyn are sized at runtime and checked when an
// operation runs. As re-types a tensor once its runtime shape is known:
//
//	x, _ := tensor.FromSlice[shape.S1[shape.Dyn]](data)
//	v := tensor.As[shape.S1[shape.D4]](x)
//
// # Views
//
// Broadcast, Reshape, Transpose and Stride return views that borrow the
// buffer of their source. Views are read-only; AsContiguous copies one into
// an owned tensor. The source buffer stays alive as long as any view does.
//
// # Allocation
//
// Every result is allocated by the policy of its left operand
// (see WithPolicy). layout.StackFirstPolicy keeps tensors of up to
// layout.StackCapacity elements inline; layout.DefaultPolicy always uses the
// heap.
//
// # Parallelism
//
// Kernels process operands chunk by chunk and split each chunk across
// goroutines. SetKernelConfig tunes the worker count and the minimum amount
// of work per goroutine.
package tensor
