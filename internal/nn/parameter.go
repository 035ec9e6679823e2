package nn

import (
	"github.com/born-ml/shapegrad/internal/autodiff"
	"github.com/born-ml/shapegrad/internal/shape"
	"github.com/born-ml/shapegrad/internal/tensor"
)

// Parameter is a trainable tensor.
//
// Example:
//
//	w := nn.NewParameter("weight", tensor.Zeros[float32, shape.S2[shape.D4, shape.D2]]())
//	v := w.Bind(g) // tracked leaf in g
type Parameter[T tensor.Float, S shape.Shape] struct {
	name  string
	value *tensor.Tensor[T, S]
	leaf  *autodiff.Variable[T, S]
	slots int
	state []float64
}

// NewParameter creates a parameter. A view is copied so the parameter owns
// its buffer.
func NewParameter[T tensor.Float, S shape.Shape](name string, value *tensor.Tensor[T, S]) *Parameter[T, S] {
	if value.IsView() {
		value = value.AsContiguous()
	}
	return &Parameter[T, S]{name: name, value: value}
}

// Name returns the parameter name.
func (p *Parameter[T, S]) Name() string {
	return p.name
}

// Value returns the parameter tensor.
func (p *Parameter[T, S]) Value() *tensor.Tensor[T, S] {
	return p.value
}

// NumElements returns the number of scalars in the parameter.
func (p *Parameter[T, S]) NumElements() int {
	return p.value.NumElements()
}

// Bind returns a handle on the parameter's tracked leaf in g, creating the
// leaf the first time the parameter is bound after g was created or reset.
func (p *Parameter[T, S]) Bind(g *autodiff.Graph) *autodiff.Variable[T, S] {
	if p.leaf == nil || p.leaf.Graph() != g || p.leaf.Stale() {
		p.leaf = autodiff.New(g, p.value, true)
	}
	return p.leaf.Clone()
}

// Grad returns the gradient accumulated in the current graph, or nil.
func (p *Parameter[T, S]) Grad() *tensor.Tensor[T, S] {
	if p.leaf == nil || p.leaf.Stale() {
		return nil
	}
	return p.leaf.Grad()
}

// Update implements Param.
func (p *Parameter[T, S]) Update(rule Rule) bool {
	grad := p.Grad()
	if grad == nil {
		return false
	}
	k := rule.Slots()
	if k != p.slots {
		p.slots = k
		p.state = make([]float64, k*p.NumElements())
	}
	data := p.value.Data()
	for i, g := range grad.ToSlice() {
		data[i] = T(rule.Apply(float64(data[i]), float64(g), p.state[i*k:(i+1)*k]))
	}
	return true
}
