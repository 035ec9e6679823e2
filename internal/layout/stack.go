package layout

import (
	"iter"

	"github.com/gomlx/exceptions"
)

// StackCapacity is the number of elements a StackLayout holds inline.
const StackCapacity = 64

// maxRank bounds the inline shape storage of a StackLayout.
const maxRank = 6

// StackLayout owns a fixed-capacity inline buffer. Descriptor and elements
// share one allocation, and small values that do not escape stay on the
// goroutine stack.
type StackLayout[T any] struct {
	buf     [StackCapacity]T
	n       int
	rank    int
	shape   [maxRank]int
	strides [maxRank]int
}

// FitsStack reports whether a shape can be stored in a StackLayout.
func FitsStack(shape []int) bool {
	return len(shape) <= maxRank && NumElements(shape) <= StackCapacity
}

// NewStack returns a zeroed inline layout for shape. It panics if the shape
// does not fit.
func NewStack[T any](shape []int) *StackLayout[T] {
	if !FitsStack(shape) {
		exceptions.Panicf("shape %v does not fit a stack layout (capacity %d elements, rank %d)",
			shape, StackCapacity, maxRank)
	}
	s := &StackLayout[T]{n: NumElements(shape), rank: len(shape)}
	copy(s.shape[:], shape)
	copy(s.strides[:], ContiguousStrides(shape))
	return s
}

func (s *StackLayout[T]) Shape() []int      { return cloneInts(s.shape[:s.rank]) }
func (s *StackLayout[T]) Strides() []int    { return cloneInts(s.strides[:s.rank]) }
func (s *StackLayout[T]) NumElements() int  { return s.n }
func (s *StackLayout[T]) OptChunkSize() int { return s.n }
func (s *StackLayout[T]) Backing() []T      { return s.buf[:s.n] }

func (s *StackLayout[T]) Chunks(chunkSize int) iter.Seq[[]T] {
	return ownedChunks(s.buf[:s.n], chunkSize)
}

func (s *StackLayout[T]) ChunksMut(chunkSize int) iter.Seq[[]T] {
	return ownedChunks(s.buf[:s.n], chunkSize)
}

func (s *StackLayout[T]) View(shape, strides []int, numElements, optChunkSize int) *SliceLayout[T] {
	return viewOf(s.buf[:s.n], shape, strides, numElements, optChunkSize)
}
