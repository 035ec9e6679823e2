package nn

import (
	"github.com/born-ml/shapegrad/internal/autodiff"
	"github.com/born-ml/shapegrad/internal/shape"
	"github.com/born-ml/shapegrad/internal/tensor"
)

// MSE computes the mean squared error mean((pred - target)²). Both handles
// are consumed.
func MSE[T tensor.Float, S shape.Shape](pred, target *autodiff.Variable[T, S]) *autodiff.Variable[T, shape.S0] {
	n := pred.Value().NumElements()
	diff := pred.Sub(target)
	return autodiff.SumAll(diff.Clone().Mul(diff)).ScalDiv(T(n))
}
