package autodiff

import (
	"github.com/born-ml/shapegrad/internal/shape"
	"github.com/born-ml/shapegrad/internal/tensor"
)

// binary consumes both operands of op and checks they share a graph.
func binary[T tensor.Scalar, S shape.Shape](op string, v, o *Variable[T, S]) (a, b *Variable[T, S]) {
	a, b = v.take(op), o.take(op)
	sameGraph(op, a.graph, b.graph)
	return a, b
}

// Add returns v + o. Gradient: g to both operands.
func (v *Variable[T, S]) Add(o *Variable[T, S]) *Variable[T, S] {
	a, b := binary("add", v, o)
	ta, tb := a.RequiresGrad(), b.RequiresGrad()
	value := a.Value().Add(b.Value())

	return record(a.graph, "add", value, []NodeID{a.id, b.id}, ta || tb, func(g *tensor.Tensor[T, S]) {
		gb := g
		if ta && tb {
			gb = g.AsContiguous()
		}
		if ta {
			a.Backward(g)
		}
		if tb {
			b.Backward(gb)
		}
	})
}

// Sub returns v - o. Gradient: g and -g.
func (v *Variable[T, S]) Sub(o *Variable[T, S]) *Variable[T, S] {
	a, b := binary("sub", v, o)
	ta, tb := a.RequiresGrad(), b.RequiresGrad()
	value := a.Value().Sub(b.Value())

	return record(a.graph, "sub", value, []NodeID{a.id, b.id}, ta || tb, func(g *tensor.Tensor[T, S]) {
		if tb {
			b.Backward(g.Neg())
		}
		if ta {
			a.Backward(g)
		}
	})
}

// Mul returns the element-wise product. Gradient: g*o and g*v.
func (v *Variable[T, S]) Mul(o *Variable[T, S]) *Variable[T, S] {
	a, b := binary("mul", v, o)
	ta, tb := a.RequiresGrad(), b.RequiresGrad()
	x, y := a.Value(), b.Value()
	value := x.Mul(y)

	return record(a.graph, "mul", value, []NodeID{a.id, b.id}, ta || tb, func(g *tensor.Tensor[T, S]) {
		if tb {
			b.Backward(g.Mul(x))
		}
		if ta {
			a.Backward(owned(g).MulInPlace(y))
		}
	})
}

// Div returns the element-wise quotient. Gradient: g/o and -g*v/o².
func (v *Variable[T, S]) Div(o *Variable[T, S]) *Variable[T, S] {
	a, b := binary("div", v, o)
	ta, tb := a.RequiresGrad(), b.RequiresGrad()
	x, y := a.Value(), b.Value()
	value := x.Div(y)

	return record(a.graph, "div", value, []NodeID{a.id, b.id}, ta || tb, func(g *tensor.Tensor[T, S]) {
		if tb {
			b.Backward(g.Mul(x).DivInPlace(y).DivInPlace(y).NegInPlace())
		}
		if ta {
			a.Backward(owned(g).DivInPlace(y))
		}
	})
}

// unaryOp consumes v and records a single-operand operation.
func unaryOp[T tensor.Scalar, S, R shape.Shape](v *Variable[T, S], op string, value *tensor.Tensor[T, R], back func(g *tensor.Tensor[T, R]) *tensor.Tensor[T, S]) *Variable[T, R] {
	a := v.take(op)
	return record(a.graph, op, value, []NodeID{a.id}, a.RequiresGrad(), func(g *tensor.Tensor[T, R]) {
		a.Backward(back(g))
	})
}

// Neg returns -v.
func (v *Variable[T, S]) Neg() *Variable[T, S] {
	return unaryOp(v, "neg", v.Value().Neg(), func(g *tensor.Tensor[T, S]) *tensor.Tensor[T, S] {
		return owned(g).NegInPlace()
	})
}

// ScalAdd adds p to every element.
func (v *Variable[T, S]) ScalAdd(p T) *Variable[T, S] {
	return unaryOp(v, "scal_add", v.Value().ScalAdd(p), identity[T, S])
}

// ScalSub subtracts p from every element.
func (v *Variable[T, S]) ScalSub(p T) *Variable[T, S] {
	return unaryOp(v, "scal_sub", v.Value().ScalSub(p), identity[T, S])
}

// ScalMul multiplies every element by p.
func (v *Variable[T, S]) ScalMul(p T) *Variable[T, S] {
	return unaryOp(v, "scal_mul", v.Value().ScalMul(p), func(g *tensor.Tensor[T, S]) *tensor.Tensor[T, S] {
		return owned(g).ScalMulInPlace(p)
	})
}

// ScalDiv divides every element by p.
func (v *Variable[T, S]) ScalDiv(p T) *Variable[T, S] {
	return unaryOp(v, "scal_div", v.Value().ScalDiv(p), func(g *tensor.Tensor[T, S]) *tensor.Tensor[T, S] {
		return owned(g).ScalDivInPlace(p)
	})
}

// Detach returns a new untracked leaf holding v's value. v is not consumed.
func (v *Variable[T, S]) Detach() *Variable[T, S] {
	return New(v.graph, v.Value(), false)
}

func identity[T tensor.Scalar, S shape.Shape](g *tensor.Tensor[T, S]) *tensor.Tensor[T, S] {
	return g
}
