package tensor

import "gonum.org/v1/gonum/blas"

// Order records how a tensor's elements relate to a row-major buffer. It is
// carried through views so matrix products can hand buffers to BLAS without
// copying.
type Order int

const (
	// Contiguous tensors are stored in row-major order.
	Contiguous Order = iota
	// Transposed tensors are the axis reversal of a row-major buffer.
	Transposed
	// Strided covers every other view: broadcasts, strides, and their transposes.
	Strided
)

func (o Order) String() string {
	switch o {
	case Contiguous:
		return "contiguous"
	case Transposed:
		return "transposed"
	case Strided:
		return "strided"
	default:
		return "unknown"
	}
}

// Transposed returns the order of the transpose of a tensor with order o.
func (o Order) Transposed() Order {
	switch o {
	case Contiguous:
		return Transposed
	case Transposed:
		return Contiguous
	default:
		return Strided
	}
}

// BLAS returns the transpose flag a matrix of this order is passed to BLAS
// with; ok is false when the buffer cannot be described to BLAS.
func (o Order) BLAS() (t blas.Transpose, ok bool) {
	switch o {
	case Contiguous:
		return blas.NoTrans, true
	case Transposed:
		return blas.Trans, true
	default:
		return blas.NoTrans, false
	}
}
