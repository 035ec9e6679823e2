package autodiff

import (
	"github.com/born-ml/shapegrad/internal/layout"
	"github.com/born-ml/shapegrad/internal/shape"
	"github.com/born-ml/shapegrad/internal/tensor"
)

// Sum adds the elements of v along axis, keeping it with size 1. The
// gradient is broadcast back over the reduced axis.
//
// Example:
//
//	rows := autodiff.Sum[shape.S2[shape.D2, shape.D1]](m, 1)
func Sum[R shape.Shape, T tensor.Scalar, S shape.Shape](v *Variable[T, S], axis int) *Variable[T, R] {
	x := v.Value()
	dims := x.Shape()
	return unaryOp(v, "sum", tensor.Sum[R](x, axis), func(g *tensor.Tensor[T, R]) *tensor.Tensor[T, S] {
		return tensor.BroadcastTo[S](g, dims...).AsContiguous()
	})
}

// Mean averages the elements of v along axis, keeping it with size 1.
func Mean[R shape.Shape, T tensor.Float, S shape.Shape](v *Variable[T, S], axis int) *Variable[T, R] {
	x := v.Value()
	dims := x.Shape()
	return unaryOp(v, "mean", tensor.Mean[R](x, axis), func(g *tensor.Tensor[T, R]) *tensor.Tensor[T, S] {
		return tensor.BroadcastTo[S](g, dims...).AsContiguous().ScalDivInPlace(T(dims[axis]))
	})
}

// SumAll adds every element of v into a scalar variable, the usual root of
// a Backward call.
func SumAll[T tensor.Scalar, S shape.Shape](v *Variable[T, S]) *Variable[T, shape.S0] {
	x := v.Value()
	dims := x.Shape()
	total := tensor.Full[T, shape.S0](x.SumAll(), tensor.WithPolicy(x.Policy()))
	return unaryOp(v, "sum_all", total, func(g *tensor.Tensor[T, shape.S0]) *tensor.Tensor[T, S] {
		return tensor.BroadcastTo[S](g, dims...).AsContiguous()
	})
}

// MatMul multiplies two matrix variables. Gradients: g·bᵀ and aᵀ·g.
func MatMul[T tensor.Scalar, M, K, N shape.Dim](v *Variable[T, shape.S2[M, K]], o *Variable[T, shape.S2[K, N]]) *Variable[T, shape.S2[M, N]] {
	a, b := v.take("matmul"), o.take("matmul")
	sameGraph("matmul", a.graph, b.graph)
	ta, tb := a.RequiresGrad(), b.RequiresGrad()
	x, y := a.Value(), b.Value()
	value := tensor.MatMul(x, y)

	return record(a.graph, "matmul", value, []NodeID{a.id, b.id}, ta || tb, func(g *tensor.Tensor[T, shape.S2[M, N]]) {
		if tb {
			b.Backward(tensor.MatMul(tensor.Transpose2(x), g))
		}
		if ta {
			a.Backward(tensor.MatMul(g, tensor.Transpose2(y)))
		}
	})
}

// Transpose2 swaps the axes of a matrix variable. The value is a view of
// v's value.
func Transpose2[T tensor.Scalar, A, B shape.Dim](v *Variable[T, shape.S2[A, B]]) *Variable[T, shape.S2[B, A]] {
	return unaryOp(v, "transpose", tensor.Transpose2(v.Value()), func(g *tensor.Tensor[T, shape.S2[B, A]]) *tensor.Tensor[T, shape.S2[A, B]] {
		return tensor.Transpose2(g).AsContiguous()
	})
}

// Reshape views v as Z, which must hold the same number of elements. A
// non-contiguous value is copied first.
func Reshape[Z shape.Shape, T tensor.Scalar, S shape.Shape](v *Variable[T, S]) *Variable[T, Z] {
	x := v.Value()
	dims := x.Shape()
	return unaryOp(v, "reshape", tensor.Reshape[Z](contiguous(x)), func(g *tensor.Tensor[T, Z]) *tensor.Tensor[T, S] {
		return tensor.ReshapeTo[S](contiguous(g), dims...)
	})
}

// As re-types v as Z, a shape type its runtime shape is an instance of.
func As[Z shape.Shape, T tensor.Scalar, S shape.Shape](v *Variable[T, S]) *Variable[T, Z] {
	return unaryOp(v, "as", tensor.As[Z](v.Value()), func(g *tensor.Tensor[T, Z]) *tensor.Tensor[T, S] {
		return tensor.As[S](g)
	})
}

func contiguous[T tensor.Scalar, S shape.Shape](t *tensor.Tensor[T, S]) *tensor.Tensor[T, S] {
	if layout.IsContiguous(t.Layout()) {
		return t
	}
	return t.AsContiguous()
}

// Broadcast views v as the larger shape Z. The gradient is summed back over
// the repeated axes.
func Broadcast[Z shape.Shape, T tensor.Scalar, S shape.Shape](v *Variable[T, S]) *Variable[T, Z] {
	return BroadcastTo[Z](v)
}

// BroadcastTo is Broadcast with explicit runtime target dims.
func BroadcastTo[Z shape.Shape, T tensor.Scalar, S shape.Shape](v *Variable[T, S], dims ...int) *Variable[T, Z] {
	x := v.Value()
	from := x.Shape()
	return unaryOp(v, "broadcast", tensor.BroadcastTo[Z](x, dims...), func(g *tensor.Tensor[T, Z]) *tensor.Tensor[T, S] {
		return tensor.SumTo[S](g, from...)
	})
}
