package autodiff

import (
	"github.com/born-ml/shapegrad/internal/shape"
	"github.com/born-ml/shapegrad/internal/tensor"
)

// elementwise records a float function whose derivative is an element-wise
// factor computed from the input x and the output y.
func elementwise[T tensor.Float, S shape.Shape](v *Variable[T, S], op string,
	f func(*tensor.Tensor[T, S]) *tensor.Tensor[T, S],
	deriv func(x, y *tensor.Tensor[T, S]) *tensor.Tensor[T, S],
) *Variable[T, S] {
	x := v.Value()
	y := f(x)
	return unaryOp(v, op, y, func(g *tensor.Tensor[T, S]) *tensor.Tensor[T, S] {
		return owned(g).MulInPlace(deriv(x, y))
	})
}

// Exp returns e^v. Derivative: e^v.
func Exp[T tensor.Float, S shape.Shape](v *Variable[T, S]) *Variable[T, S] {
	return elementwise(v, "exp", tensor.Exp[T, S], func(_, y *tensor.Tensor[T, S]) *tensor.Tensor[T, S] {
		return y
	})
}

// Log returns ln v. Derivative: 1/v.
func Log[T tensor.Float, S shape.Shape](v *Variable[T, S]) *Variable[T, S] {
	return elementwise(v, "log", tensor.Log[T, S], func(x, _ *tensor.Tensor[T, S]) *tensor.Tensor[T, S] {
		return tensor.Inv(x)
	})
}

// Sin returns sin v. Derivative: cos v.
func Sin[T tensor.Float, S shape.Shape](v *Variable[T, S]) *Variable[T, S] {
	return elementwise(v, "sin", tensor.Sin[T, S], func(x, _ *tensor.Tensor[T, S]) *tensor.Tensor[T, S] {
		return tensor.Cos(x)
	})
}

// Cos returns cos v. Derivative: -sin v.
func Cos[T tensor.Float, S shape.Shape](v *Variable[T, S]) *Variable[T, S] {
	return elementwise(v, "cos", tensor.Cos[T, S], func(x, _ *tensor.Tensor[T, S]) *tensor.Tensor[T, S] {
		return tensor.Sin(x).NegInPlace()
	})
}

// Tanh returns tanh v. Derivative: 1 - tanh² v.
func Tanh[T tensor.Float, S shape.Shape](v *Variable[T, S]) *Variable[T, S] {
	return elementwise(v, "tanh", tensor.Tanh[T, S], func(_, y *tensor.Tensor[T, S]) *tensor.Tensor[T, S] {
		return y.Mul(y).NegInPlace().ScalAddInPlace(1)
	})
}

// Sqrt returns √v. Derivative: 1/(2√v).
func Sqrt[T tensor.Float, S shape.Shape](v *Variable[T, S]) *Variable[T, S] {
	return elementwise(v, "sqrt", tensor.Sqrt[T, S], func(_, y *tensor.Tensor[T, S]) *tensor.Tensor[T, S] {
		return tensor.Inv(y).ScalMulInPlace(0.5)
	})
}

// Sigmoid returns 1/(1+e^-v). Derivative: σ(v)(1-σ(v)).
func Sigmoid[T tensor.Float, S shape.Shape](v *Variable[T, S]) *Variable[T, S] {
	return elementwise(v, "sigmoid", tensor.Sigmoid[T, S], func(_, y *tensor.Tensor[T, S]) *tensor.Tensor[T, S] {
		return y.Neg().ScalAddInPlace(1).MulInPlace(y)
	})
}

// Powf raises v to p. Derivative: p·v^(p-1).
func Powf[T tensor.Float, S shape.Shape](v *Variable[T, S], p T) *Variable[T, S] {
	pow := func(x *tensor.Tensor[T, S]) *tensor.Tensor[T, S] { return tensor.Powf(x, p) }
	return elementwise(v, "powf", pow, func(x, _ *tensor.Tensor[T, S]) *tensor.Tensor[T, S] {
		return tensor.Powf(x, p-1).ScalMulInPlace(p)
	})
}

// ReLU returns max(v, 0). Derivative: 1 where v > 0, else 0.
func ReLU[T tensor.Float, S shape.Shape](v *Variable[T, S]) *Variable[T, S] {
	relu := func(x *tensor.Tensor[T, S]) *tensor.Tensor[T, S] {
		return x.Map(func(e T) T { return max(e, 0) })
	}
	return elementwise(v, "relu", relu, func(x, _ *tensor.Tensor[T, S]) *tensor.Tensor[T, S] {
		return x.Map(func(e T) T {
			if e > 0 {
				return 1
			}
			return 0
		})
	})
}
