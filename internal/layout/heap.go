package layout

import "iter"

// HeapLayout owns a heap-allocated, row-major buffer.
type HeapLayout[T any] struct {
	data    []T
	shape   []int
	strides []int
}

// NewHeap allocates a zeroed buffer for shape.
func NewHeap[T any](shape []int) *HeapLayout[T] {
	return &HeapLayout[T]{
		data:    make([]T, NumElements(shape)),
		shape:   cloneInts(shape),
		strides: ContiguousStrides(shape),
	}
}

// HeapFrom takes ownership of data, which must hold exactly the elements of
// shape in row-major order.
func HeapFrom[T any](data []T, shape []int) *HeapLayout[T] {
	return &HeapLayout[T]{
		data:    data,
		shape:   cloneInts(shape),
		strides: ContiguousStrides(shape),
	}
}

func (h *HeapLayout[T]) Shape() []int      { return cloneInts(h.shape) }
func (h *HeapLayout[T]) Strides() []int    { return cloneInts(h.strides) }
func (h *HeapLayout[T]) NumElements() int  { return len(h.data) }
func (h *HeapLayout[T]) OptChunkSize() int { return len(h.data) }
func (h *HeapLayout[T]) Backing() []T      { return h.data }

func (h *HeapLayout[T]) Chunks(chunkSize int) iter.Seq[[]T] {
	return ownedChunks(h.data, chunkSize)
}

func (h *HeapLayout[T]) ChunksMut(chunkSize int) iter.Seq[[]T] {
	return ownedChunks(h.data, chunkSize)
}

func (h *HeapLayout[T]) View(shape, strides []int, numElements, optChunkSize int) *SliceLayout[T] {
	return viewOf(h.data, shape, strides, numElements, optChunkSize)
}
