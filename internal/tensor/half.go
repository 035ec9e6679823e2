package tensor

import (
	"github.com/x448/float16"

	"github.com/born-ml/shapegrad/internal/shape"
)

// FromFloat16 creates a float32 tensor from IEEE 754 half-precision values.
// A single Dyn axis of S is inferred from len(data).
func FromFloat16[S shape.Shape](data []float16.Float16, opts ...Option) (*Tensor[float32, S], error) {
	values := make([]float32, len(data))
	for i, h := range data {
		values[i] = h.Float32()
	}
	return FromSlice[S](values, opts...)
}

// ToFloat16 exports the elements of t in logical order as half-precision
// values, rounding to nearest even.
func ToFloat16[T Float, S shape.Shape](t *Tensor[T, S]) []float16.Float16 {
	out := make([]float16.Float16, 0, t.NumElements())
	for chunk := range t.Chunks(t.OptChunkSize()) {
		for _, x := range chunk {
			out = append(out, float16.Fromfloat32(float32(x)))
		}
	}
	return out
}
