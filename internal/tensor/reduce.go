package tensor

import (
	"iter"

	"github.com/born-ml/shapegrad/internal/layout"
	"github.com/born-ml/shapegrad/internal/parallel"
	"github.com/born-ml/shapegrad/internal/shape"
)

// Sum adds the elements along axis. The axis is kept with size 1, so R is
// the shape of t with that axis replaced by shape.D1.
//
// Example:
//
//	eye := tensor.Eye[float32, shape.D3]()
//	cols := tensor.Sum[shape.S2[shape.D3, shape.D1]](eye, 1) // [[1] [1] [1]]
func Sum[R shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S], axis int) *Tensor[T, R] {
	return reduce[R](t, "sum", axis, func(acc, x T) T { return acc + x })
}

// Prod multiplies the elements along axis.
func Prod[R shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S], axis int) *Tensor[T, R] {
	return reduce[R](t, "prod", axis, func(acc, x T) T { return acc * x })
}

// ReduceMax keeps the largest element along axis.
func ReduceMax[R shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S], axis int) *Tensor[T, R] {
	return reduce[R](t, "max", axis, func(acc, x T) T { return max(acc, x) })
}

// ReduceMin keeps the smallest element along axis.
func ReduceMin[R shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S], axis int) *Tensor[T, R] {
	return reduce[R](t, "min", axis, func(acc, x T) T { return min(acc, x) })
}

// Mean averages the elements along axis.
func Mean[R shape.Shape, T Float, S shape.Shape](t *Tensor[T, S], axis int) *Tensor[T, R] {
	sum := Sum[R](t, axis)
	return sum.ScalDivInPlace(T(t.Shape()[axis]))
}

// SumAll returns the sum of every element.
func (t *Tensor[T, S]) SumAll() T {
	var total T
	for chunk := range t.layout.Chunks(t.layout.OptChunkSize()) {
		for _, x := range chunk {
			total += x
		}
	}
	return total
}

// SumTo reduces t to dims, a shape t can be broadcast from: leading axes
// missing from dims and axes where dims has size 1 are summed away. It is the
// adjoint of BroadcastTo.
func SumTo[Z shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S], dims ...int) *Tensor[T, Z] {
	from := shape.Dims(dims).Clone()
	shape.MustBeCompatible("sum_to", shape.Of[Z](), from)
	big := shape.Dims(t.Shape())
	shape.MustBroadcast("sum_to", from, big)

	// Output strides aligned to the axes of t, zero on the summed ones.
	outStrides := layout.ContiguousStrides(from)
	strides := make([]int, len(big))
	offset := len(big) - len(from)
	for i := offset; i < len(big); i++ {
		if from[i-offset] == big[i] {
			strides[i] = outStrides[i-offset]
		}
	}

	out := allocFor[T, Z](t.policy, from)
	acc := out.Backing()
	counter := make([]int, len(big))
	pos := 0
	for chunk := range t.layout.Chunks(t.layout.OptChunkSize()) {
		for _, x := range chunk {
			acc[pos] += x
			for ax := len(big) - 1; ax >= 0; ax-- {
				counter[ax]++
				pos += strides[ax]
				if counter[ax] < big[ax] {
					break
				}
				pos -= strides[ax] * big[ax]
				counter[ax] = 0
			}
		}
	}
	return result[T, Z](out, t.policy)
}

// reduce folds the elements along axis with f.
//
// The output of one outer index is a contiguous run of outChunk elements
// (the dims after axis). The input is read in chunks of inChunk, a divisor of
// outChunk, so for every outer index the input delivers dims[axis] groups of
// outChunk/inChunk chunks, each combined into the matching slice of the
// output run. The first group initializes the output.
func reduce[R shape.Shape, T Scalar, S shape.Shape](t *Tensor[T, S], op string, axis int, f func(acc, x T) T) *Tensor[T, R] {
	in := shape.Dims(t.Shape())
	outDims := shape.Reduction(in, axis)
	shape.MustBeSame(op, shape.Of[R](), outDims)

	out := allocFor[T, R](t.policy, outDims)
	outChunk := shape.ReductionChunkSize(in, axis)
	inChunk := min(t.layout.OptChunkSize(), outChunk)
	perOut := outChunk / inChunk
	axisSize := in[axis]

	next, stop := iter.Pull(t.layout.Chunks(inChunk))
	defer stop()

	cfg := ParallelConfig()
	for o := range out.ChunksMut(outChunk) {
		for m := 0; m < axisSize; m++ {
			for j := 0; j < perOut; j++ {
				src, _ := next()
				dst := o[j*inChunk : (j+1)*inChunk]
				if m == 0 {
					copy(dst, src)
					continue
				}
				parallel.ForRange(len(dst), func(start, end int) {
					for i := start; i < end; i++ {
						dst[i] = f(dst[i], src[i])
					}
				}, cfg)
			}
		}
	}
	return result[T, R](out, t.policy)
}
