package nn

import (
	"math"
	"math/rand"

	"github.com/born-ml/shapegrad/internal/shape"
	"github.com/born-ml/shapegrad/internal/tensor"
)

// Xavier (Glorot) initialization for weights.
//
// Values are drawn from U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))).
func Xavier[T tensor.Float, S shape.Shape](rng *rand.Rand, fanIn, fanOut int) *tensor.Tensor[T, S] {
	bound := T(math.Sqrt(6.0 / float64(fanIn+fanOut)))
	return tensor.Rand[T, S](rng).ScalMulInPlace(2 * bound).ScalAddInPlace(-bound)
}
