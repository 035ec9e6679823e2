package tensor

import (
	"math"

	"github.com/born-ml/shapegrad/internal/shape"
)

func unary[T Float, S shape.Shape](t *Tensor[T, S], f func(float64) float64) *Tensor[T, S] {
	return t.Map(func(x T) T { return T(f(float64(x))) })
}

// Exp returns e raised to every element.
func Exp[T Float, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] { return unary(t, math.Exp) }

// Log returns the natural logarithm of every element.
func Log[T Float, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] { return unary(t, math.Log) }

// Sin returns the sine of every element.
func Sin[T Float, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] { return unary(t, math.Sin) }

// Cos returns the cosine of every element.
func Cos[T Float, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] { return unary(t, math.Cos) }

// Tan returns the tangent of every element.
func Tan[T Float, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] { return unary(t, math.Tan) }

// Tanh returns the hyperbolic tangent of every element.
func Tanh[T Float, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] { return unary(t, math.Tanh) }

// Sqrt returns the square root of every element.
func Sqrt[T Float, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] { return unary(t, math.Sqrt) }

// Abs returns the absolute value of every element.
func Abs[T Float, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] { return unary(t, math.Abs) }

// Inv returns 1/x for every element.
func Inv[T Float, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] {
	return t.Map(func(x T) T { return 1 / x })
}

// Sigmoid returns 1/(1+e^-x) for every element.
func Sigmoid[T Float, S shape.Shape](t *Tensor[T, S]) *Tensor[T, S] {
	return unary(t, func(x float64) float64 { return 1 / (1 + math.Exp(-x)) })
}

// Powf raises every element to p.
func Powf[T Float, S shape.Shape](t *Tensor[T, S], p T) *Tensor[T, S] {
	return unary(t, func(x float64) float64 { return math.Pow(x, float64(p)) })
}

// Powi raises every element to the integer power n.
func Powi[T Float, S shape.Shape](t *Tensor[T, S], n int) *Tensor[T, S] {
	return unary(t, func(x float64) float64 { return math.Pow(x, float64(n)) })
}
