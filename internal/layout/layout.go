// Package layout describes how tensor elements are placed in memory.
//
// A Layout owns or borrows a flat buffer and exposes it as a sequence of
// chunks: runs of elements that are contiguous both in memory and in the
// logical row-major order of the tensor. Kernels walk several layouts chunk by
// chunk in lockstep, so the only thing they need to agree on is a chunk size
// every participant supports (see MinChunkSize).
package layout

import (
	"iter"
	"unsafe"

	"github.com/gomlx/exceptions"
)

// Layout is the read-only surface of a memory layout.
type Layout[T any] interface {
	// Shape returns the runtime dims.
	Shape() []int
	// Strides returns the element step per axis. A zero stride repeats data.
	Strides() []int
	NumElements() int
	// OptChunkSize is the largest chunk size Chunks supports.
	OptChunkSize() int
	// Chunks yields the elements in logical order, chunkSize at a time.
	// chunkSize must divide OptChunkSize. Each range over the result starts
	// from the first chunk.
	Chunks(chunkSize int) iter.Seq[[]T]
	// View creates a borrowing layout over the same buffer. No validation is
	// done: the caller guarantees every index the shape and strides can
	// address lies inside the buffer.
	View(shape, strides []int, numElements, optChunkSize int) *SliceLayout[T]
	// Backing returns the raw buffer the strides index into.
	Backing() []T
}

// MutLayout is a layout that owns its buffer and can be written to.
type MutLayout[T any] interface {
	Layout[T]
	ChunksMut(chunkSize int) iter.Seq[[]T]
}

// ContiguousStrides returns row-major strides for shape.
func ContiguousStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}

// OptimalChunkSize returns the number of trailing logical elements that are
// also contiguous in memory: walking from the innermost axis, an axis extends
// the run while its stride equals the run length so far. Size-1 axes never
// break a run.
func OptimalChunkSize(shape, strides []int) int {
	expected := 1
	for i := len(shape) - 1; i >= 0; i-- {
		if strides[i] != expected && shape[i] != 1 {
			break
		}
		expected *= shape[i]
	}
	return expected
}

// NumElements returns the product of the dims.
func NumElements(shape []int) int {
	n := 1
	for _, dim := range shape {
		n *= dim
	}
	return n
}

// IsContiguous reports whether a layout's elements are laid out in row-major
// order without gaps or repetitions.
func IsContiguous[T any](l Layout[T]) bool {
	return l.OptChunkSize() == l.NumElements()
}

// MinChunkSize returns the largest chunk size supported by every layout.
// Optimal chunk sizes of same-shaped layouts are products of trailing dims, so
// the smallest one divides all others.
func MinChunkSize[T any](ls ...Layout[T]) int {
	if len(ls) == 0 {
		exceptions.Panicf("MinChunkSize requires at least one layout")
	}
	size := ls[0].OptChunkSize()
	for _, l := range ls[1:] {
		size = min(size, l.OptChunkSize())
	}
	return size
}

// Overlaps reports whether the buffers behind a and b share memory, as a
// tensor and its views do.
func Overlaps[T any](a, b Layout[T]) bool {
	x, y := a.Backing(), b.Backing()
	if len(x) == 0 || len(y) == 0 {
		return false
	}
	size := unsafe.Sizeof(x[0])
	xs := uintptr(unsafe.Pointer(unsafe.SliceData(x)))
	ys := uintptr(unsafe.Pointer(unsafe.SliceData(y)))
	return xs < ys+uintptr(len(y))*size && ys < xs+uintptr(len(x))*size
}

// Collect materializes a layout in logical row-major order.
func Collect[T any](l Layout[T]) []T {
	out := make([]T, 0, l.NumElements())
	for chunk := range l.Chunks(l.OptChunkSize()) {
		out = append(out, chunk...)
	}
	return out
}

// ownedChunks splits a contiguous buffer into chunkSize pieces.
func ownedChunks[T any](data []T, chunkSize int) iter.Seq[[]T] {
	checkChunkSize(chunkSize)
	return func(yield func([]T) bool) {
		for start := 0; start < len(data); start += chunkSize {
			end := min(start+chunkSize, len(data))
			if !yield(data[start:end:end]) {
				return
			}
		}
	}
}

// viewOf builds a SliceLayout over an owned buffer.
func viewOf[T any](data []T, shape, strides []int, numElements, optChunkSize int) *SliceLayout[T] {
	return FromSliceUnchecked(data, shape, strides, numElements, optChunkSize)
}

func checkChunkSize(chunkSize int) {
	if chunkSize <= 0 {
		exceptions.Panicf("chunk size must be positive, got %d", chunkSize)
	}
}

func cloneInts(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}
