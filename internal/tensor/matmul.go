package tensor

import (
	"slices"

	"github.com/gomlx/exceptions"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/born-ml/shapegrad/internal/layout"
	"github.com/born-ml/shapegrad/internal/parallel"
	"github.com/born-ml/shapegrad/internal/shape"
)

// MatMul multiplies an [M, K] matrix by a [K, N] matrix.
//
// float32 and float64 operands whose order is Contiguous or Transposed are
// handed to BLAS without copying; everything else goes through a naive
// parallel kernel.
//
// Example:
//
//	a := tensor.MustFromSlice[shape.S2[shape.D2, shape.D3]]([]float64{1, 2, 3, 4, 5, 6})
//	b := tensor.MustFromSlice[shape.S2[shape.D3, shape.D2]]([]float64{7, 8, 9, 10, 11, 12})
//	c := tensor.MatMul(a, b) // [[58 64] [139 154]]
func MatMul[T Scalar, M, K, N shape.Dim](a *Tensor[T, shape.S2[M, K]], b *Tensor[T, shape.S2[K, N]]) *Tensor[T, shape.S2[M, N]] {
	as, bs := a.Shape(), b.Shape()
	if as[1] != bs[0] {
		exceptions.Panicf("matmul: inner dimensions must match, got %v and %v", as, bs)
	}
	m, k, n := as[0], as[1], bs[1]

	policy := resultPolicy("matmul", a.policy, b.policy)
	out := allocFor[T, shape.S2[M, N]](policy, []int{m, n})
	c := out.Backing()
	if !gemm(a.layout, a.order, b.layout, b.order, c, m, k, n) {
		naiveMatMul(a.layout, b.layout, c, m, k, n)
	}
	return result[T, shape.S2[M, N]](out, policy)
}

// Dot returns the inner product of two vectors.
func Dot[T Scalar, N shape.Dim](a, b *Tensor[T, shape.S1[N]]) T {
	checkSame("dot", a, b)
	return a.Mul(b).SumAll()
}

// blasOperand describes a rank-2 layout to BLAS: the transpose flag and the
// dims and row stride of the stored row-major matrix.
func blasOperand[T Scalar](l layout.Layout[T], order Order) (trans blas.Transpose, rows, cols, stride int, ok bool) {
	trans, ok = order.BLAS()
	if !ok {
		return trans, 0, 0, 0, false
	}
	dims, strides := l.Shape(), l.Strides()
	if trans == blas.Trans {
		dims = []int{dims[1], dims[0]}
		strides = []int{strides[1], strides[0]}
	}
	if !slices.Equal(strides, layout.ContiguousStrides(dims)) {
		return trans, 0, 0, 0, false
	}
	return trans, dims[0], dims[1], dims[1], true
}

func gemm[T Scalar](a layout.Layout[T], ao Order, b layout.Layout[T], bo Order, c []T, m, k, n int) bool {
	ta, ar, ac, astride, okA := blasOperand(a, ao)
	tb, br, bc, bstride, okB := blasOperand(b, bo)
	if !okA || !okB {
		return false
	}

	switch cd := any(c).(type) {
	case []float64:
		ad := any(a.Backing()).([]float64)
		bd := any(b.Backing()).([]float64)
		blas64.Gemm(ta, tb, 1,
			blas64.General{Rows: ar, Cols: ac, Stride: astride, Data: ad[:m*k]},
			blas64.General{Rows: br, Cols: bc, Stride: bstride, Data: bd[:k*n]},
			0, blas64.General{Rows: m, Cols: n, Stride: n, Data: cd})
	case []float32:
		ad := any(a.Backing()).([]float32)
		bd := any(b.Backing()).([]float32)
		blas32.Gemm(ta, tb, 1,
			blas32.General{Rows: ar, Cols: ac, Stride: astride, Data: ad[:m*k]},
			blas32.General{Rows: br, Cols: bc, Stride: bstride, Data: bd[:k*n]},
			0, blas32.General{Rows: m, Cols: n, Stride: n, Data: cd})
	default:
		return false
	}
	return true
}

func naiveMatMul[T Scalar](a, b layout.Layout[T], c []T, m, k, n int) {
	ad, bd := a.Backing(), b.Backing()
	as, bs := a.Strides(), b.Strides()
	parallel.For(m, func(i int) {
		row := c[i*n : (i+1)*n]
		for j := range row {
			var acc T
			for p := 0; p < k; p++ {
				acc += ad[i*as[0]+p*as[1]] * bd[p*bs[0]+j*bs[1]]
			}
			row[j] = acc
		}
	}, ParallelConfig())
}
