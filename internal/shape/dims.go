// Package shape implements the dimension and shape types of shapegrad together
// with the shape algebra used to validate tensor operations.
//
// Shapes exist at two levels. Shape types (S1, S2, ...) parameterized by
// dimension types (D1, D2, ..., Dyn) let the Go compiler reject mismatched
// operands. Dims is the runtime vector every shape type lowers to; the
// relations in this package operate on Dims and back every check the type
// system cannot express.
package shape

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Dynamic marks a dimension whose size is only known at runtime.
const Dynamic = -1

// MaxRank is the highest rank provided by the shape types (S6).
const MaxRank = 6

// Dims is the runtime representation of a shape: one entry per axis, either
// a positive size or Dynamic.
type Dims []int

// Rank returns the number of axes.
func (d Dims) Rank() int {
	return len(d)
}

// IsStatic reports whether every axis has a known size.
func (d Dims) IsStatic() bool {
	for _, dim := range d {
		if dim == Dynamic {
			return false
		}
	}
	return true
}

// NumDynamic returns how many axes are Dynamic.
func (d Dims) NumDynamic() int {
	n := 0
	for _, dim := range d {
		if dim == Dynamic {
			n++
		}
	}
	return n
}

// NumElements returns the product of all dimensions, or Dynamic if any axis
// is dynamic. A rank-0 shape holds one element.
func (d Dims) NumElements() int {
	n := 1
	for _, dim := range d {
		if dim == Dynamic {
			return Dynamic
		}
		n *= dim
	}
	return n
}

// Strides returns the row-major strides of a static shape: the last axis has
// stride 1 and every other axis the product of the dims after it.
func (d Dims) Strides() []int {
	strides := make([]int, len(d))
	if len(d) == 0 {
		return strides
	}

	strides[len(d)-1] = 1
	for i := len(d) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * d[i+1]
	}
	return strides
}

// Validate checks that every dimension is positive or Dynamic.
func (d Dims) Validate() error {
	for i, dim := range d {
		if dim <= 0 && dim != Dynamic {
			return errors.Errorf("invalid dimension at axis %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Compatible reports whether a concrete runtime shape can be described by d:
// equal rank, and every static axis of d matches.
func (d Dims) Compatible(runtime []int) bool {
	if len(d) != len(runtime) {
		return false
	}
	for i, dim := range d {
		if dim != Dynamic && dim != runtime[i] {
			return false
		}
	}
	return true
}

// Resolve returns a copy of d with its single dynamic axis inferred so the
// shape holds numElements elements. Static shapes are returned as a copy
// after checking the element count.
func (d Dims) Resolve(numElements int) (Dims, error) {
	out := d.Clone()
	known, dynAxis := 1, -1
	for i, dim := range d {
		if dim != Dynamic {
			known *= dim
			continue
		}
		if dynAxis >= 0 {
			return nil, errors.Errorf("cannot infer shape %s from %d elements: more than one dynamic axis", d, numElements)
		}
		dynAxis = i
	}
	if dynAxis < 0 {
		if known != numElements {
			return nil, errors.Errorf("shape %s requires %d elements, got %d", d, known, numElements)
		}
		return out, nil
	}
	if numElements <= 0 || numElements%known != 0 {
		return nil, errors.Errorf("cannot infer shape %s from %d elements", d, numElements)
	}
	out[dynAxis] = numElements / known
	return out, nil
}

// Equal checks if two shapes are identical, Dynamic axes included.
func (d Dims) Equal(other Dims) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if d[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (d Dims) Clone() Dims {
	clone := make(Dims, len(d))
	copy(clone, d)
	return clone
}

// String renders the shape as "[2 ? 3]" where "?" is a dynamic axis.
func (d Dims) String() string {
	parts := make([]string, len(d))
	for i, dim := range d {
		if dim == Dynamic {
			parts[i] = "?"
		} else {
			parts[i] = fmt.Sprint(dim)
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}
