package tensor

import (
	"iter"
	"math"
	"slices"

	"github.com/born-ml/shapegrad/internal/layout"
)

// Equal reports whether both tensors have the same runtime shape and the same
// elements in logical order, whatever their layouts.
func (t *Tensor[T, S]) Equal(other *Tensor[T, S]) bool {
	return t.allChunks(other, slices.Equal[[]T])
}

// AllClose is Equal with an absolute tolerance on every element.
func (t *Tensor[T, S]) AllClose(other *Tensor[T, S], tol float64) bool {
	return t.allChunks(other, func(a, b []T) bool {
		for i := range a {
			if math.Abs(float64(a[i])-float64(b[i])) > tol {
				return false
			}
		}
		return true
	})
}

func (t *Tensor[T, S]) allChunks(other *Tensor[T, S], same func(a, b []T) bool) bool {
	if !slices.Equal(t.Shape(), other.Shape()) {
		return false
	}
	size := layout.MinChunkSize[T](t.layout, other.layout)
	next, stop := iter.Pull(other.layout.Chunks(size))
	defer stop()
	for chunk := range t.layout.Chunks(size) {
		theirs, _ := next()
		if !same(chunk, theirs) {
			return false
		}
	}
	return true
}
