package layout

import (
	"unsafe"

	"github.com/dustin/go-humanize"
	"k8s.io/klog/v2"
)

// Kind identifies a layout family.
type Kind int

const (
	// Heap is a heap-allocated buffer of any size.
	Heap Kind = iota
	// Stack is an inline buffer of at most StackCapacity elements.
	Stack
)

func (k Kind) String() string {
	switch k {
	case Heap:
		return "heap"
	case Stack:
		return "stack"
	default:
		return "unknown"
	}
}

// StaticPolicy picks the layout for results whose shape is fully known from
// their type.
type StaticPolicy interface {
	StaticKind(numElements int) Kind
}

// DynamicPolicy picks the layout for results with a runtime shape.
type DynamicPolicy interface {
	DynamicKind() Kind
}

// Policy decides where tensor results are allocated.
type Policy interface {
	StaticPolicy
	DynamicPolicy
	String() string
}

// DefaultPolicy allocates everything on the heap.
type DefaultPolicy struct{}

func (DefaultPolicy) StaticKind(int) Kind { return Heap }
func (DefaultPolicy) DynamicKind() Kind   { return Heap }
func (DefaultPolicy) String() string      { return "default" }

// StackFirstPolicy keeps small static results inline and falls back to the
// heap for large or dynamic ones.
type StackFirstPolicy struct{}

func (StackFirstPolicy) StaticKind(numElements int) Kind {
	if numElements <= StackCapacity {
		return Stack
	}
	return Heap
}

func (StackFirstPolicy) DynamicKind() Kind { return Heap }
func (StackFirstPolicy) String() string    { return "stack-first" }

// NewStatic allocates a zeroed layout for a static shape.
func NewStatic[T any](p StaticPolicy, shape []int) MutLayout[T] {
	return allocate[T](p.StaticKind(NumElements(shape)), shape)
}

// NewDynamic allocates a zeroed layout for a runtime shape.
func NewDynamic[T any](p DynamicPolicy, shape []int) MutLayout[T] {
	return allocate[T](p.DynamicKind(), shape)
}

func allocate[T any](kind Kind, shape []int) MutLayout[T] {
	if kind == Stack && !FitsStack(shape) {
		kind = Heap
	}
	if klog.V(4).Enabled() {
		var zero T
		bytes := uint64(NumElements(shape)) * uint64(unsafe.Sizeof(zero))
		klog.Infof("layout: allocating %s buffer for shape %v (%s)", kind, shape, humanize.IBytes(bytes))
	}
	if kind == Stack {
		return NewStack[T](shape)
	}
	return NewHeap[T](shape)
}
