package tensor

import (
	"math"
	"math/rand"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"

	"github.com/born-ml/shapegrad/internal/layout"
	"github.com/born-ml/shapegrad/internal/shape"
)

// FromSlice creates a tensor of shape type S from a Go slice.
// The slice is copied into the tensor's memory. A single Dyn axis of S is
// inferred from len(data).
//
// Example:
//
//	t, err := tensor.FromSlice[shape.S2[shape.Dyn, shape.D3]]([]float64{1, 2, 3, 4, 5, 6}) // [2 3]
func FromSlice[S shape.Shape, T Scalar](data []T, opts ...Option) (*Tensor[T, S], error) {
	want := shape.Of[S]()
	if want.NumDynamic() > 1 {
		return nil, errors.Wrapf(ErrAmbiguousShape, "shape %s from %d elements", want, len(data))
	}
	dims, err := want.Resolve(len(data))
	if err != nil {
		return nil, errors.Wrap(ErrElementCount, err.Error())
	}
	return FromSliceShape[S](data, dims, opts...)
}

// FromSliceShape creates a tensor with explicit runtime dims, which must be
// an instance of S. The slice is copied.
func FromSliceShape[S shape.Shape, T Scalar](data []T, dims []int, opts ...Option) (*Tensor[T, S], error) {
	if err := validDims(dims); err != nil {
		return nil, err
	}
	if want := shape.Of[S](); !want.Compatible(dims) {
		return nil, errors.Wrapf(ErrIncompatibleShape, "dims %v for shape type %s", dims, want)
	}
	if n := layout.NumElements(dims); n != len(data) {
		return nil, errors.Wrapf(ErrElementCount, "shape %v requires %d elements, got %d", dims, n, len(data))
	}

	o := buildOptions(opts)
	l := allocFor[T, S](o.policy, dims)
	copy(l.Backing(), data)
	return result[T, S](l, o.policy), nil
}

// MustFromSlice is FromSlice that panics on error.
func MustFromSlice[S shape.Shape, T Scalar](data []T, opts ...Option) *Tensor[T, S] {
	return must.M1(FromSlice[S](data, opts...))
}

// Borrow creates a view over data without copying. The caller keeps
// ownership: writes to data are visible through the tensor. With no dims,
// S must be static.
func Borrow[S shape.Shape, T Scalar](data []T, dims ...int) (*Tensor[T, S], error) {
	if len(dims) == 0 {
		dims = shape.Of[S]()
		if !shape.Dims(dims).IsStatic() {
			return nil, errors.Wrapf(ErrAmbiguousShape, "borrowing as %s requires explicit dims", shape.Dims(dims))
		}
	}
	if err := validDims(dims); err != nil {
		return nil, err
	}
	if want := shape.Of[S](); !want.Compatible(dims) {
		return nil, errors.Wrapf(ErrIncompatibleShape, "dims %v for shape type %s", dims, want)
	}
	if n := layout.NumElements(dims); n != len(data) {
		return nil, errors.Wrapf(ErrElementCount, "shape %v requires %d elements, got %d", dims, n, len(data))
	}
	return &Tensor[T, S]{
		layout: layout.FromSlice(data, dims),
		order:  Contiguous,
		policy: layout.DefaultPolicy{},
	}, nil
}

// Zeros creates a tensor filled with zeros. S must be static.
//
// Example:
//
//	t := tensor.Zeros[float32, shape.S2[shape.D3, shape.D4]]()
func Zeros[T Scalar, S shape.Shape](opts ...Option) *Tensor[T, S] {
	dims := shape.Of[S]()
	shape.MustBeStatic("Zeros", dims)
	o := buildOptions(opts)
	return result[T, S](layout.NewStatic[T](o.policy, dims), o.policy)
}

// Alloc creates a zero tensor with runtime dims, allocated on the dynamic
// path of the policy.
func Alloc[T Scalar, S shape.Shape](dims []int, opts ...Option) *Tensor[T, S] {
	if err := validDims(dims); err != nil {
		exceptions.Panicf("Alloc: runtime shape %v for shape type %s: %v", dims, shape.Of[S](), err)
	}
	shape.MustBeCompatible("Alloc", shape.Of[S](), dims)
	o := buildOptions(opts)
	return result[T, S](layout.NewDynamic[T](o.policy, dims), o.policy)
}

// validDims rejects runtime dims with a non-positive axis.
func validDims(dims []int) error {
	d := shape.Dims(dims)
	if err := d.Validate(); err != nil {
		return errors.Wrap(ErrInvalidShape, err.Error())
	}
	if !d.IsStatic() {
		return errors.Wrapf(ErrInvalidShape, "runtime dims %v leave an axis unresolved", dims)
	}
	return nil
}

// ZerosLike creates an owned zero tensor with t's runtime shape and policy.
func ZerosLike[T Scalar, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] {
	return result[T, S](t.alloc(), t.policy)
}

// Full creates a tensor filled with a specific value. S must be static.
//
// Example:
//
//	t := tensor.Full[float32, shape.S2[shape.D3, shape.D3]](3.14)
func Full[T Scalar, S shape.Shape](value T, opts ...Option) *Tensor[T, S] {
	return fill(Zeros[T, S](opts...), value)
}

// FullDyn creates a tensor with runtime dims filled with value.
func FullDyn[T Scalar, S shape.Shape](value T, dims []int, opts ...Option) *Tensor[T, S] {
	return fill(Alloc[T, S](dims, opts...), value)
}

// Ones creates a tensor filled with ones. S must be static.
func Ones[T Scalar, S shape.Shape](opts ...Option) *Tensor[T, S] {
	return Full[T, S](1, opts...)
}

// OnesLike creates an owned tensor of ones with t's runtime shape and policy.
func OnesLike[T Scalar, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] {
	return fill(ZerosLike(t), 1)
}

// Eye creates an identity matrix.
func Eye[T Scalar, N shape.Dim](opts ...Option) *Tensor[T, shape.S2[N, N]] {
	t := Zeros[T, shape.S2[N, N]](opts...)
	n := shape.SizeOf[N]()
	for i := 0; i < n; i++ {
		t.Set(1, i, i)
	}
	return t
}

// Arange creates a tensor holding 0, 1, 2, ... in row-major order.
func Arange[T Scalar, S shape.Shape](opts ...Option) *Tensor[T, S] {
	t := Zeros[T, S](opts...)
	data := t.Data()
	for i := range data {
		data[i] = T(i)
	}
	return t
}

// Randn creates a tensor with random values from a normal distribution (mean=0, std=1).
// Uses Box-Muller transform for generating normal distribution.
// Note: Uses math/rand (not crypto/rand) - appropriate for ML/statistical purposes.
func Randn[T Float, S shape.Shape](rng *rand.Rand, opts ...Option) *Tensor[T, S] {
	t := Zeros[T, S](opts...)
	data := t.Data()
	for i := 0; i < len(data); i += 2 {
		u1 := rng.Float64()
		u2 := rng.Float64()
		for u1 == 0 {
			u1 = rng.Float64()
		}
		r := math.Sqrt(-2 * math.Log(u1))
		data[i] = T(r * math.Cos(2*math.Pi*u2))
		if i+1 < len(data) {
			data[i+1] = T(r * math.Sin(2*math.Pi*u2))
		}
	}
	return t
}

// Rand creates a tensor with random values uniformly distributed in [0, 1).
func Rand[T Float, S shape.Shape](rng *rand.Rand, opts ...Option) *Tensor[T, S] {
	t := Zeros[T, S](opts...)
	data := t.Data()
	for i := range data {
		data[i] = T(rng.Float64())
	}
	return t
}

func fill[T Scalar, S shape.Shape](t *Tensor[T, S], value T) *Tensor[T, S] {
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}
