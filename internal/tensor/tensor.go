package tensor

import (
	"fmt"
	"iter"
	"strings"

	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"

	"github.com/born-ml/shapegrad/internal/layout"
	"github.com/born-ml/shapegrad/internal/shape"
)

// Tensor is a multi-dimensional array of T whose shape type is S.
//
// S is a phantom type: operations that require identical shapes take
// operands of the same S, so mismatched static shapes do not compile.
// Dynamic axes (shape.Dyn) are checked when the operation runs.
//
// Example:
//
//	a := tensor.MustFromSlice[shape.S2[shape.D2, shape.D2]]([]float32{1, 2, 3, 4})
//	b := tensor.Ones[float32, shape.S2[shape.D2, shape.D2]]()
//	c := a.Add(b)
type Tensor[T Scalar, S shape.Shape] struct {
	layout layout.Layout[T]
	order  Order
	policy layout.Policy
}

// New wraps a layout. It panics if the layout's shape is not an instance of S.
func New[T Scalar, S shape.Shape](l layout.Layout[T], order Order, policy layout.Policy) *Tensor[T, S] {
	shape.MustBeCompatible("tensor", shape.Of[S](), l.Shape())
	if policy == nil {
		policy = layout.DefaultPolicy{}
	}
	return &Tensor[T, S]{layout: l, order: order, policy: policy}
}

// Shape returns the runtime dims.
func (t *Tensor[T, S]) Shape() []int {
	return t.layout.Shape()
}

// Dims returns the dims of the shape type, Dynamic axes included.
func (t *Tensor[T, S]) Dims() shape.Dims {
	return shape.Of[S]()
}

// Rank returns the number of axes.
func (t *Tensor[T, S]) Rank() int {
	return len(t.layout.Shape())
}

// Strides returns the element step per axis.
func (t *Tensor[T, S]) Strides() []int {
	return t.layout.Strides()
}

// NumElements returns the total number of elements.
func (t *Tensor[T, S]) NumElements() int {
	return t.layout.NumElements()
}

// OptChunkSize is the largest chunk the layout yields.
func (t *Tensor[T, S]) OptChunkSize() int {
	return t.layout.OptChunkSize()
}

// Chunks yields the elements in logical order, chunkSize at a time.
func (t *Tensor[T, S]) Chunks(chunkSize int) iter.Seq[[]T] {
	return t.layout.Chunks(chunkSize)
}

// Order returns the contiguity marker.
func (t *Tensor[T, S]) Order() Order {
	return t.order
}

// Policy returns the allocation policy results of t are created with.
func (t *Tensor[T, S]) Policy() layout.Policy {
	return t.policy
}

// WithPolicy changes the allocation policy of future results computed from
// t and returns t. The existing buffer is not moved.
func (t *Tensor[T, S]) WithPolicy(p layout.Policy) *Tensor[T, S] {
	t.policy = p
	return t
}

// Layout returns the underlying layout.
func (t *Tensor[T, S]) Layout() layout.Layout[T] {
	return t.layout
}

// IsView reports whether t borrows another tensor's buffer.
func (t *Tensor[T, S]) IsView() bool {
	_, owned := t.layout.(layout.MutLayout[T])
	return !owned
}

// DType returns the runtime element type.
func (t *Tensor[T, S]) DType() DataType {
	return DataTypeOf[T]()
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor[T, S]) At(indices ...int) T {
	return t.layout.Backing()[layout.Offset(t.layout.Shape(), t.layout.Strides(), indices)]
}

// Set sets the element at the given indices. Only owned tensors can be written.
func (t *Tensor[T, S]) Set(value T, indices ...int) {
	m := t.mutable("Set")
	m.Backing()[layout.Offset(m.Shape(), m.Strides(), indices)] = value
}

// Item returns the only element of a one-element tensor.
func (t *Tensor[T, S]) Item() T {
	if t.NumElements() != 1 {
		exceptions.Panicf("Item() only works for one-element tensors, got shape %v", t.Shape())
	}
	return t.layout.Backing()[0]
}

// Data returns the buffer of an owned tensor in row-major order.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T, S]) Data() []T {
	return t.mutable("Data").Backing()
}

// ToSlice copies the elements into a new slice in logical row-major order.
func (t *Tensor[T, S]) ToSlice() []T {
	return layout.Collect(t.layout)
}

// AsContiguous copies t into a new owned, row-major tensor.
func (t *Tensor[T, S]) AsContiguous() *Tensor[T, S] {
	out := t.alloc()
	size := t.layout.OptChunkSize()
	dst := out.Backing()
	pos := 0
	for chunk := range t.layout.Chunks(size) {
		pos += copy(dst[pos:], chunk)
	}
	return &Tensor[T, S]{layout: out, order: Contiguous, policy: t.policy}
}

// Clone returns an independent copy of an owned tensor. Cloning a view
// copies only the descriptor: the clone borrows the same buffer.
func (t *Tensor[T, S]) Clone() *Tensor[T, S] {
	if t.IsView() {
		return t.AsView()
	}
	return t.AsContiguous()
}

// AsView returns a borrowing view of the whole tensor.
func (t *Tensor[T, S]) AsView() *Tensor[T, S] {
	l := t.layout
	return &Tensor[T, S]{
		layout: l.View(l.Shape(), l.Strides(), l.NumElements(), l.OptChunkSize()),
		order:  t.order,
		policy: t.policy,
	}
}

// String renders the type, shape, order and, for small tensors, the values.
func (t *Tensor[T, S]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Tensor[%s]%v(%s, %s)", t.DType(), t.Shape(), t.order, t.policy)
	if t.NumElements() <= 16 {
		fmt.Fprintf(&sb, " %v", t.ToSlice())
	}
	return sb.String()
}

// mutable returns the owned layout of t or panics.
func (t *Tensor[T, S]) mutable(op string) layout.MutLayout[T] {
	m, ok := t.layout.(layout.MutLayout[T])
	if !ok {
		exceptions.Panicf("%s requires an owned tensor, got a %s view of shape %v; call AsContiguous first",
			op, t.order, t.Shape())
	}
	return m
}

// alloc allocates a zeroed result shaped like t with t's policy.
func (t *Tensor[T, S]) alloc() layout.MutLayout[T] {
	return allocFor[T, S](t.policy, t.Shape())
}

// allocFor allocates a zeroed buffer of runtime shape dims for a result of
// shape type S: the static path of the policy when S has no dynamic axis,
// the dynamic path otherwise.
func allocFor[T Scalar, S shape.Shape](p layout.Policy, dims []int) layout.MutLayout[T] {
	if shape.IsStatic[S]() {
		return layout.NewStatic[T](p, dims)
	}
	return layout.NewDynamic[T](p, dims)
}

// result wraps a freshly computed buffer.
func result[T Scalar, S shape.Shape](l layout.MutLayout[T], p layout.Policy) *Tensor[T, S] {
	return &Tensor[T, S]{layout: l, order: Contiguous, policy: p}
}

// resultPolicy applies the left-operand convention for binary operations.
func resultPolicy(op string, left, right layout.Policy) layout.Policy {
	if klog.V(2).Enabled() && left.String() != right.String() {
		klog.Infof("tensor: %s mixes allocation policies %s and %s; result uses %s", op, left, right, left)
	}
	return left
}

// checkSame panics unless both tensors have the same runtime shape.
func checkSame[T Scalar, S, Z shape.Shape](op string, a *Tensor[T, S], b *Tensor[T, Z]) {
	shape.MustBeSame(op, a.Shape(), b.Shape())
}
