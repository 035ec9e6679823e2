package shape

import "github.com/gomlx/exceptions"

func dimsEqual(a, b int) bool {
	return a == b || a == Dynamic || b == Dynamic
}

// Same reports whether two shapes describe the same tensor: equal rank and,
// per axis, equal sizes or a Dynamic side.
func Same(a, b Dims) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !dimsEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Broadcastable reports whether from can be viewed as to. Shapes are aligned
// on their trailing axes; each aligned pair must be equal (Dynamic counts as
// equal) or have a side of exactly 1. Extra leading axes of to are always
// allowed, extra axes of from never are.
//
// A target axis of 1 pairs with any size of from, so the relation alone does
// not rule out shrinking; views check FitIn as well.
func Broadcastable(from, to Dims) bool {
	if len(from) > len(to) {
		return false
	}
	offset := len(to) - len(from)
	for i, dim := range from {
		target := to[offset+i]
		if dimsEqual(dim, target) || dim == 1 || target == 1 {
			continue
		}
		return false
	}
	return true
}

// Reduction returns the shape after reducing along axis: the axis is kept
// with size 1.
func Reduction(a Dims, axis int) Dims {
	checkAxis("reduction", a, axis)
	out := a.Clone()
	out[axis] = 1
	return out
}

// ReductionChunkSize is the number of contiguous output elements produced per
// input slice when reducing along axis: the product of the dims after it.
func ReductionChunkSize(a Dims, axis int) int {
	checkAxis("reduction", a, axis)
	n := 1
	for _, dim := range a[axis+1:] {
		if dim == Dynamic {
			return Dynamic
		}
		n *= dim
	}
	return n
}

// Transpose reverses the axis order.
func Transpose(a Dims) Dims {
	out := make(Dims, len(a))
	for i, dim := range a {
		out[len(a)-1-i] = dim
	}
	return out
}

// Repr picks the most informative representative of two same shapes: per
// axis the static side wins. ok is false when the shapes are not Same.
func Repr(a, b Dims) (Dims, bool) {
	if !Same(a, b) {
		return nil, false
	}
	out := a.Clone()
	for i := range out {
		if out[i] == Dynamic {
			out[i] = b[i]
		}
	}
	return out, true
}

// ReprStatic is Repr restricted to a fully static result.
func ReprStatic(a, b Dims) (Dims, bool) {
	out, ok := Repr(a, b)
	if !ok || !out.IsStatic() {
		return nil, false
	}
	return out, true
}

// Strided returns the shape of a view taking every step-th element per axis:
// ceil(dim/step). Dynamic on either side yields Dynamic.
func Strided(a, step Dims) (Dims, bool) {
	if len(a) != len(step) {
		return nil, false
	}
	out := make(Dims, len(a))
	for i := range a {
		switch {
		case step[i] == Dynamic || a[i] == Dynamic:
			out[i] = Dynamic
		case step[i] < 1:
			return nil, false
		default:
			out[i] = (a[i] + step[i] - 1) / step[i]
		}
	}
	return out, true
}

// SameNumElements reports whether both shapes hold the same number of
// elements. A dynamic side cannot be decided here and is accepted.
func SameNumElements(a, b Dims) bool {
	na, nb := a.NumElements(), b.NumElements()
	if na == Dynamic || nb == Dynamic {
		return true
	}
	return na == nb
}

// FitIn reports whether a fits inside b axis by axis.
func FitIn(a, b Dims) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] == Dynamic || b[i] == Dynamic {
			continue
		}
		if a[i] > b[i] {
			return false
		}
	}
	return true
}

func checkAxis(op string, a Dims, axis int) {
	if axis < 0 || axis >= len(a) {
		exceptions.Panicf("%s: axis %d out of range for shape %s", op, axis, a)
	}
}
