package nn

import (
	"math/rand"

	"github.com/born-ml/shapegrad/internal/autodiff"
	"github.com/born-ml/shapegrad/internal/shape"
	"github.com/born-ml/shapegrad/internal/tensor"
)

// Linear implements a fully connected layer: y = x·W + b.
//
//   - x has shape [batch, In]; the batch size is dynamic
//   - W has shape [In, Out]
//   - b has shape [1, Out] and is broadcast over the batch
//
// Weights use Xavier initialization, biases start at zero.
//
// Example:
//
//	layer := nn.NewLinear[float32, shape.D4, shape.D2](rand.New(rand.NewSource(1)))
//	y := layer.Forward(x) // x: Variable[float32, shape.S2[shape.Dyn, shape.D4]]
type Linear[T tensor.Float, In, Out shape.Dim] struct {
	weight *Parameter[T, shape.S2[In, Out]]
	bias   *Parameter[T, shape.S2[shape.D1, Out]]
}

// NewLinear creates a Linear layer.
func NewLinear[T tensor.Float, In, Out shape.Dim](rng *rand.Rand) *Linear[T, In, Out] {
	in, out := shape.SizeOf[In](), shape.SizeOf[Out]()
	return &Linear[T, In, Out]{
		weight: NewParameter("weight", Xavier[T, shape.S2[In, Out]](rng, in, out)),
		bias:   NewParameter("bias", tensor.Zeros[T, shape.S2[shape.D1, Out]]()),
	}
}

// Forward computes x·W + b in x's graph.
func (l *Linear[T, In, Out]) Forward(x *autodiff.Variable[T, shape.S2[shape.Dyn, In]]) *autodiff.Variable[T, shape.S2[shape.Dyn, Out]] {
	g := x.Graph()
	batch := x.Value().Shape()[0]
	y := autodiff.MatMul(x, l.weight.Bind(g))
	b := autodiff.BroadcastTo[shape.S2[shape.Dyn, Out]](l.bias.Bind(g), batch, shape.SizeOf[Out]())
	return y.Add(b)
}

// Parameters returns [weight, bias].
func (l *Linear[T, In, Out]) Parameters() []Param {
	return []Param{l.weight, l.bias}
}

// Weight returns the weight parameter.
func (l *Linear[T, In, Out]) Weight() *Parameter[T, shape.S2[In, Out]] {
	return l.weight
}

// Bias returns the bias parameter.
func (l *Linear[T, In, Out]) Bias() *Parameter[T, shape.S2[shape.D1, Out]] {
	return l.bias
}
