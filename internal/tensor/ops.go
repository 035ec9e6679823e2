package tensor

import (
	"github.com/born-ml/shapegrad/internal/layout"
	"github.com/born-ml/shapegrad/internal/shape"
)

// Map returns f applied to every element.
func (t *Tensor[T, S]) Map(f func(T) T) *Tensor[T, S] {
	out := t.alloc()
	mapInto(out, t.layout, f)
	return result[T, S](out, t.policy)
}

// MapInPlace replaces every element x with f(x) and returns t.
func (t *Tensor[T, S]) MapInPlace(f func(T) T) *Tensor[T, S] {
	mapInPlace(t.mutable("MapInPlace"), f)
	return t
}

// Zip combines t and other element by element.
func (t *Tensor[T, S]) Zip(other *Tensor[T, S], f func(x, y T) T) *Tensor[T, S] {
	return t.zip("zip", other, f)
}

// ZipInPlace replaces every element x of t with f(x, y), y the matching
// element of other, and returns t.
func (t *Tensor[T, S]) ZipInPlace(other *Tensor[T, S], f func(x, y T) T) *Tensor[T, S] {
	return t.zipInPlace("zip", other, f)
}

// Convert returns a copy of t with elements converted to U.
func Convert[U, T Scalar, S shape.Shape](t *Tensor[T, S]) *Tensor[U, S] {
	out := allocFor[U, S](t.policy, t.Shape())
	mapInto(out, t.layout, func(x T) U { return U(x) })
	return result[U, S](out, t.policy)
}

func (t *Tensor[T, S]) zip(op string, other *Tensor[T, S], f func(x, y T) T) *Tensor[T, S] {
	checkSame(op, t, other)
	policy := resultPolicy(op, t.policy, other.policy)
	out := allocFor[T, S](policy, t.Shape())
	zipInto(out, t.layout, other.layout, f)
	return result[T, S](out, policy)
}

// zipInPlace reads other from a copy when it shares t's buffer: a permuted
// view would otherwise read cells already overwritten.
func (t *Tensor[T, S]) zipInPlace(op string, other *Tensor[T, S], f func(x, y T) T) *Tensor[T, S] {
	checkSame(op, t, other)
	dst := t.mutable(op)
	src := other.layout
	if layout.Overlaps[T](dst, src) {
		src = other.AsContiguous().layout
	}
	zipInPlace(dst, src, f)
	return t
}

// Add returns t + other.
func (t *Tensor[T, S]) Add(other *Tensor[T, S]) *Tensor[T, S] {
	return t.zip("add", other, func(x, y T) T { return x + y })
}

// Sub returns t - other.
func (t *Tensor[T, S]) Sub(other *Tensor[T, S]) *Tensor[T, S] {
	return t.zip("sub", other, func(x, y T) T { return x - y })
}

// Mul returns the element-wise product.
func (t *Tensor[T, S]) Mul(other *Tensor[T, S]) *Tensor[T, S] {
	return t.zip("mul", other, func(x, y T) T { return x * y })
}

// Div returns the element-wise quotient.
func (t *Tensor[T, S]) Div(other *Tensor[T, S]) *Tensor[T, S] {
	return t.zip("div", other, func(x, y T) T { return x / y })
}

// Max returns the element-wise maximum.
func (t *Tensor[T, S]) Max(other *Tensor[T, S]) *Tensor[T, S] {
	return t.zip("max", other, func(x, y T) T { return max(x, y) })
}

// Min returns the element-wise minimum.
func (t *Tensor[T, S]) Min(other *Tensor[T, S]) *Tensor[T, S] {
	return t.zip("min", other, func(x, y T) T { return min(x, y) })
}

// MulAdd returns t*x + b.
func (t *Tensor[T, S]) MulAdd(x, b *Tensor[T, S]) *Tensor[T, S] {
	checkSame("mul_add", t, x)
	checkSame("mul_add", t, b)
	out := t.alloc()
	zip3Into(out, t.layout, x.layout, b.layout, func(a, m, c T) T { return a*m + c })
	return result[T, S](out, t.policy)
}

// Neg returns -t.
func (t *Tensor[T, S]) Neg() *Tensor[T, S] {
	return t.Map(func(x T) T { return -x })
}

// ScalAdd adds v to every element.
func (t *Tensor[T, S]) ScalAdd(v T) *Tensor[T, S] {
	return t.Map(func(x T) T { return x + v })
}

// ScalSub subtracts v from every element.
func (t *Tensor[T, S]) ScalSub(v T) *Tensor[T, S] {
	return t.Map(func(x T) T { return x - v })
}

// ScalMul multiplies every element by v.
func (t *Tensor[T, S]) ScalMul(v T) *Tensor[T, S] {
	return t.Map(func(x T) T { return x * v })
}

// ScalDiv divides every element by v.
func (t *Tensor[T, S]) ScalDiv(v T) *Tensor[T, S] {
	return t.Map(func(x T) T { return x / v })
}

// ScalMulAdd returns t*m + a.
func (t *Tensor[T, S]) ScalMulAdd(m, a T) *Tensor[T, S] {
	return t.Map(func(x T) T { return x*m + a })
}

// AddInPlace adds other into t and returns t.
func (t *Tensor[T, S]) AddInPlace(other *Tensor[T, S]) *Tensor[T, S] {
	return t.zipInPlace("add", other, func(x, y T) T { return x + y })
}

// SubInPlace subtracts other from t and returns t.
func (t *Tensor[T, S]) SubInPlace(other *Tensor[T, S]) *Tensor[T, S] {
	return t.zipInPlace("sub", other, func(x, y T) T { return x - y })
}

// MulInPlace multiplies t by other element-wise and returns t.
func (t *Tensor[T, S]) MulInPlace(other *Tensor[T, S]) *Tensor[T, S] {
	return t.zipInPlace("mul", other, func(x, y T) T { return x * y })
}

// DivInPlace divides t by other element-wise and returns t.
func (t *Tensor[T, S]) DivInPlace(other *Tensor[T, S]) *Tensor[T, S] {
	return t.zipInPlace("div", other, func(x, y T) T { return x / y })
}

// NegInPlace negates every element and returns t.
func (t *Tensor[T, S]) NegInPlace() *Tensor[T, S] {
	return t.MapInPlace(func(x T) T { return -x })
}

// ScalAddInPlace adds v to every element and returns t.
func (t *Tensor[T, S]) ScalAddInPlace(v T) *Tensor[T, S] {
	return t.MapInPlace(func(x T) T { return x + v })
}

// ScalMulInPlace multiplies every element by v and returns t.
func (t *Tensor[T, S]) ScalMulInPlace(v T) *Tensor[T, S] {
	return t.MapInPlace(func(x T) T { return x * v })
}

// ScalDivInPlace divides every element by v and returns t.
func (t *Tensor[T, S]) ScalDivInPlace(v T) *Tensor[T, S] {
	return t.MapInPlace(func(x T) T { return x / v })
}

// Fill sets every element to v and returns t.
func (t *Tensor[T, S]) Fill(v T) *Tensor[T, S] {
	return fill(t, v)
}
