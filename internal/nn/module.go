// Package nn implements trainable building blocks on top of autodiff.
//
// This package provides:
//   - Parameter: a tensor that is bound to each step's graph as a tracked leaf
//   - Linear: a fully connected layer with typed input and output features
//   - MSE: mean squared error loss
//
// A training step binds parameters to a fresh graph, runs Backward on the
// loss and lets an optimizer (package optim) update the parameters in place:
//
//	g := autodiff.NewGraph()
//	for range steps {
//	    g.Reset()
//	    x := autodiff.New(g, inputs, false)
//	    loss := nn.MSE(layer.Forward(x), autodiff.New(g, targets, false))
//	    loss.Backward(tensor.Ones[float32, shape.S0]())
//	    optimizer.Step()
//	}
package nn

// Module is a component with trainable parameters.
type Module interface {
	// Parameters returns all trainable parameters, nested modules included.
	Parameters() []Param
}

// Param is the type-erased surface of a Parameter used by optimizers.
type Param interface {
	// Name returns the parameter name.
	Name() string
	// NumElements returns the number of scalars in the parameter.
	NumElements() int
	// Update applies rule to every element. It reports false, leaving the
	// parameter unchanged, when the parameter has no gradient in its
	// current graph.
	Update(rule Rule) bool
}

// Rule is an element-wise update rule. State holds Slots() values per
// element; they start at zero and persist across updates.
type Rule interface {
	Slots() int
	Apply(value, grad float64, state []float64) float64
}
