package tensor

import (
	"github.com/gomlx/exceptions"

	"github.com/born-ml/shapegrad/internal/layout"
	"github.com/born-ml/shapegrad/internal/shape"
)

// viewAs creates a borrowing view of t typed as Z.
func viewAs[Z shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S], dims, strides []int, order Order) *Tensor[T, Z] {
	l := t.layout.View(dims, strides, layout.NumElements(dims), layout.OptimalChunkSize(dims, strides))
	return New[T, Z](l, order, t.policy)
}

// As re-types t as Z, a shape type its runtime shape is an instance of. This
// is how a tensor with dynamic axes meets a static one:
//
//	sum := tensor.As[shape.S2[shape.D3, shape.D3]](dyn).Add(static)
func As[Z shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S]) *Tensor[T, Z] {
	shape.MustBeSame("as", shape.Of[Z](), t.Shape())
	return viewAs[Z](t, t.Shape(), t.Strides(), t.order)
}

// Broadcast views t as the larger shape Z. Size-1 axes and missing leading
// axes are repeated with a zero stride. A target axis of 1 never shrinks a
// larger axis of t, although shape.Broadcastable accepts the pair. Dynamic axes of Z take their size
// from the aligned axis of t.
//
// Example:
//
//	row := tensor.MustFromSlice[shape.S2[shape.D1, shape.D2]]([]float32{1, 2})
//	m := tensor.Broadcast[shape.S2[shape.D2, shape.D2]](row) // [[1 2] [1 2]]
func Broadcast[Z shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S]) *Tensor[T, Z] {
	return BroadcastTo[Z](t)
}

// BroadcastTo is Broadcast with explicit runtime target dims.
func BroadcastTo[Z shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S], dims ...int) *Tensor[T, Z] {
	from := shape.Dims(t.Shape())
	var target shape.Dims
	if len(dims) == 0 {
		target = resolveBroadcast(shape.Of[Z](), from)
	} else {
		target = shape.Dims(dims).Clone()
		shape.MustBeCompatible("broadcast", shape.Of[Z](), target)
	}
	shape.MustBroadcast("broadcast", from, target)
	if offset := len(target) - len(from); !shape.FitIn(from, target[offset:]) {
		exceptions.Panicf("broadcast: cannot shrink shape %s to %s", from, target)
	}

	srcStrides := t.Strides()
	strides := make([]int, len(target))
	offset := len(target) - len(from)
	repeated := false
	for i := range target {
		if i < offset {
			repeated = true
			continue
		}
		j := i - offset
		if from[j] == 1 && target[i] != 1 {
			repeated = true
			continue
		}
		strides[i] = srcStrides[j]
	}

	order := t.order
	if repeated {
		order = Strided
	}
	return viewAs[Z](t, target, strides, order)
}

func resolveBroadcast(target, from shape.Dims) shape.Dims {
	out := target.Clone()
	offset := len(target) - len(from)
	for i, d := range out {
		if d != shape.Dynamic {
			continue
		}
		if i < offset {
			exceptions.Panicf("broadcast: cannot infer new leading axis %d of %s from %s; use BroadcastTo", i, target, from)
		}
		out[i] = from[i-offset]
	}
	return out
}

// Reshape views a contiguous tensor as Z, which must hold the same number of
// elements. A single dynamic axis of Z is inferred.
//
// Example:
//
//	v := tensor.MustFromSlice[shape.S1[shape.D4]]([]int{1, 2, 3, 4})
//	m := tensor.Reshape[shape.S2[shape.D2, shape.D2]](v) // strides [2 1]
func Reshape[Z shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S]) *Tensor[T, Z] {
	want := shape.Of[Z]()
	shape.MustHaveSameNumElements("reshape", t.Shape(), want)
	target, err := want.Resolve(t.NumElements())
	if err != nil {
		exceptions.Panicf("reshape: %v", err)
	}
	return ReshapeTo[Z](t, target...)
}

// ReshapeTo is Reshape with explicit runtime target dims.
func ReshapeTo[Z shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S], dims ...int) *Tensor[T, Z] {
	if !layout.IsContiguous(t.layout) {
		exceptions.Panicf("reshape: tensor of shape %v is %s (strides %v); call AsContiguous first",
			t.Shape(), t.order, t.Strides())
	}
	shape.MustHaveSameNumElements("reshape", t.Shape(), dims)
	return viewAs[Z](t, dims, layout.ContiguousStrides(dims), Contiguous)
}

// Transpose reverses the axes of t. Z must be the reversed shape.
func Transpose[Z shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S]) *Tensor[T, Z] {
	dims := shape.Transpose(t.Shape())
	strides := shape.Transpose(t.Strides())
	order := t.order
	if t.Rank() > 1 {
		order = order.Transposed()
	}
	return viewAs[Z](t, dims, strides, order)
}

// Transpose2 swaps the two axes of a matrix.
func Transpose2[T Scalar, A, B shape.Dim](t *Tensor[T, shape.S2[A, B]]) *Tensor[T, shape.S2[B, A]] {
	return Transpose[shape.S2[B, A]](t)
}

// Transpose3 reverses the axes of a rank-3 tensor.
func Transpose3[T Scalar, A, B, C shape.Dim](t *Tensor[T, shape.S3[A, B, C]]) *Tensor[T, shape.S3[C, B, A]] {
	return Transpose[shape.S3[C, B, A]](t)
}

// Transpose4 reverses the axes of a rank-4 tensor.
func Transpose4[T Scalar, A, B, C, D shape.Dim](t *Tensor[T, shape.S4[A, B, C, D]]) *Tensor[T, shape.S4[D, C, B, A]] {
	return Transpose[shape.S4[D, C, B, A]](t)
}

// Stride views every steps[i]-th element along each axis i. Each axis keeps
// ceil(dim/step) elements.
func Stride[Z shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S], steps ...int) *Tensor[T, Z] {
	dims, ok := shape.Strided(t.Shape(), steps)
	if !ok {
		exceptions.Panicf("stride: invalid steps %v for shape %v", steps, t.Shape())
	}
	strides := t.Strides()
	unit := true
	for i, step := range steps {
		strides[i] *= step
		unit = unit && step == 1
	}
	order := t.order
	if !unit {
		order = Strided
	}
	return viewAs[Z](t, dims, strides, order)
}
