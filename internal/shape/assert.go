package shape

import "github.com/gomlx/exceptions"

// MustBeSame panics unless the two shapes are Same.
func MustBeSame(op string, a, b Dims) {
	if !Same(a, b) {
		exceptions.Panicf("%s: tensors must have same shape, got %s and %s", op, a, b)
	}
}

// MustBroadcast panics unless from can be broadcast to to.
func MustBroadcast(op string, from, to Dims) {
	if !Broadcastable(from, to) {
		exceptions.Panicf("%s: cannot broadcast shape %s to %s", op, from, to)
	}
}

// MustHaveSameNumElements panics unless both shapes hold the same number of elements.
func MustHaveSameNumElements(op string, from, to Dims) {
	if !SameNumElements(from, to) {
		exceptions.Panicf("%s: shapes %s and %s hold a different number of elements (%d vs %d)",
			op, from, to, from.NumElements(), to.NumElements())
	}
}

// MustBeCompatible panics unless runtime is a concrete instance of want.
func MustBeCompatible(op string, want Dims, runtime []int) {
	if !want.Compatible(runtime) {
		exceptions.Panicf("%s: runtime shape %v does not match shape type %s", op, runtime, want)
	}
}

// MustBeStatic panics if the shape type has a Dyn axis.
func MustBeStatic(op string, d Dims) {
	if !d.IsStatic() {
		exceptions.Panicf("%s: shape %s is dynamic, pass the runtime dims explicitly", op, d)
	}
}
