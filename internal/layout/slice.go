package layout

import (
	"iter"

	"github.com/gomlx/exceptions"
)

// SliceLayout is a non-owning view: shape and strides over a buffer that
// belongs to someone else. The buffer stays alive for as long as any view
// references it, and writes to the owner are visible through the view.
type SliceLayout[T any] struct {
	data         []T
	shape        []int
	strides      []int
	numElements  int
	optChunkSize int
}

// FromSliceUnchecked creates a view over data. The caller guarantees every
// index reachable through shape and strides lies inside data, and that
// optChunkSize is OptimalChunkSize(shape, strides) or a divisor of it.
func FromSliceUnchecked[T any](data []T, shape, strides []int, numElements, optChunkSize int) *SliceLayout[T] {
	return &SliceLayout[T]{
		data:         data,
		shape:        cloneInts(shape),
		strides:      cloneInts(strides),
		numElements:  numElements,
		optChunkSize: optChunkSize,
	}
}

// FromSlice creates a row-major view over data, which must hold exactly the
// elements of shape.
func FromSlice[T any](data []T, shape []int) *SliceLayout[T] {
	n := NumElements(shape)
	if len(data) != n {
		exceptions.Panicf("slice of %d elements cannot be viewed as shape %v (%d elements)", len(data), shape, n)
	}
	return FromSliceUnchecked(data, shape, ContiguousStrides(shape), n, n)
}

func (s *SliceLayout[T]) Shape() []int      { return cloneInts(s.shape) }
func (s *SliceLayout[T]) Strides() []int    { return cloneInts(s.strides) }
func (s *SliceLayout[T]) NumElements() int  { return s.numElements }
func (s *SliceLayout[T]) OptChunkSize() int { return s.optChunkSize }
func (s *SliceLayout[T]) Backing() []T      { return s.data }

func (s *SliceLayout[T]) View(shape, strides []int, numElements, optChunkSize int) *SliceLayout[T] {
	return FromSliceUnchecked(s.data, shape, strides, numElements, optChunkSize)
}

// At returns the element at a multi-dimensional index.
func (s *SliceLayout[T]) At(index ...int) T {
	return s.data[Offset(s.shape, s.strides, index)]
}

func (s *SliceLayout[T]) Chunks(chunkSize int) iter.Seq[[]T] {
	return stridedChunks(s.data, s.shape, s.strides, chunkSize)
}

// Offset returns the buffer position of index under shape and strides.
func Offset(shape, strides, index []int) int {
	if len(index) != len(shape) {
		exceptions.Panicf("index %v has rank %d, shape %v has rank %d", index, len(index), shape, len(shape))
	}
	off := 0
	for i, idx := range index {
		if idx < 0 || idx >= shape[i] {
			exceptions.Panicf("index %v out of range for shape %v", index, shape)
		}
		off += idx * strides[i]
	}
	return off
}

// splitRun separates the trailing axes that form one contiguous run from the
// outer axes. The run is returned as its element count; its memory stride is 1.
func splitRun(shape, strides []int) (outer, outerStrides []int, run int) {
	run = 1
	k := len(shape)
	for k > 0 {
		i := k - 1
		if strides[i] != run && shape[i] != 1 {
			break
		}
		run *= shape[i]
		k = i
	}
	return shape[:k], strides[:k], run
}

// stridedChunks walks a strided view in logical order. The trailing
// contiguous run is sliced directly; the outer axes advance like an odometer,
// innermost first, and each chunk starts at the dot product of the counter
// and the strides.
func stridedChunks[T any](data []T, shape, strides []int, chunkSize int) iter.Seq[[]T] {
	checkChunkSize(chunkSize)
	outer, outerStrides, run := splitRun(shape, strides)
	if run%chunkSize != 0 {
		exceptions.Panicf("chunk size %d does not divide the contiguous run of %d elements of shape %v, strides %v",
			chunkSize, run, shape, strides)
	}
	outer, outerStrides = cloneInts(outer), cloneInts(outerStrides)

	return func(yield func([]T) bool) {
		counter := make([]int, len(outer))
		for {
			base := 0
			for i, c := range counter {
				base += c * outerStrides[i]
			}
			for pos := 0; pos < run; pos += chunkSize {
				start, end := base+pos, base+pos+chunkSize
				if !yield(data[start:end:end]) {
					return
				}
			}

			axis := len(counter) - 1
			for ; axis >= 0; axis-- {
				counter[axis]++
				if counter[axis] < outer[axis] {
					break
				}
				counter[axis] = 0
			}
			if axis < 0 {
				return
			}
		}
	}
}
