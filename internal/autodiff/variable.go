package autodiff

import (
	"github.com/gomlx/exceptions"
	"k8s.io/klog/v2"

	"github.com/born-ml/shapegrad/internal/shape"
	"github.com/born-ml/shapegrad/internal/tensor"
)

// Variable is a handle on a graph node holding a tensor of type T and shape S.
//
// Operations consume their operand handles: a handle passed to an operation
// cannot be passed to another one. Use Clone to feed the same node to several
// operations. Value, Grad, RequiresGrad and Backward remain usable on a
// consumed handle.
//
// Second-order derivatives are not supported: replay closures update
// gradient tensors in place and do not record new nodes.
type Variable[T tensor.Scalar, S shape.Shape] struct {
	graph      *Graph
	id         NodeID
	generation int
	consumed   string
}

// New creates a leaf variable. When track is true, Backward accumulates
// gradients into a zero tensor shaped like value.
//
// Example:
//
//	g := autodiff.NewGraph()
//	w := autodiff.New(g, tensor.Ones[float32, shape.S2[shape.D2, shape.D2]](), true)
func New[T tensor.Scalar, S shape.Shape](g *Graph, value *tensor.Tensor[T, S], track bool) *Variable[T, S] {
	n := &node{op: "leaf", value: value, replay: func(any) {}}
	if track {
		n.grad = tensor.ZerosLike(value)
	}
	return &Variable[T, S]{graph: g, id: g.add(n), generation: g.generation}
}

// ID returns the node index of v in its graph.
func (v *Variable[T, S]) ID() NodeID {
	return v.id
}

// Graph returns the graph v belongs to.
func (v *Variable[T, S]) Graph() *Graph {
	return v.graph
}

// Stale reports whether v's graph was reset after v was created.
func (v *Variable[T, S]) Stale() bool {
	return v.generation != v.graph.generation
}

// Clone returns a new handle on the same node.
func (v *Variable[T, S]) Clone() *Variable[T, S] {
	v.node()
	return &Variable[T, S]{graph: v.graph, id: v.id, generation: v.generation}
}

// Value returns the forward value.
func (v *Variable[T, S]) Value() *tensor.Tensor[T, S] {
	return v.node().value.(*tensor.Tensor[T, S])
}

// RequiresGrad reports whether v accumulates gradients.
func (v *Variable[T, S]) RequiresGrad() bool {
	return v.node().grad != nil
}

// Grad returns a copy of the accumulated gradient, or nil when v does not
// track gradients.
func (v *Variable[T, S]) Grad() *tensor.Tensor[T, S] {
	n := v.node()
	if n.grad == nil {
		return nil
	}
	return n.grad.(*tensor.Tensor[T, S]).Clone()
}

// ZeroGrad resets the accumulated gradient to zero.
func (v *Variable[T, S]) ZeroGrad() {
	n := v.node()
	if n.grad != nil {
		n.accumulate(v.id, func() { n.grad.(*tensor.Tensor[T, S]).Fill(0) })
	}
}

// Backward adds grad to v's gradient, if tracked, and propagates it to the
// operands of the operation that produced v. grad must have the shape of
// v's value. Backward may modify grad.
//
// Each call visits every recorded edge below v once: a node reached through
// two consumers is replayed twice.
func (v *Variable[T, S]) Backward(grad *tensor.Tensor[T, S]) {
	n := v.node()
	value := n.value.(*tensor.Tensor[T, S])
	shape.MustBeSame("backward: variable value and gradient", value.Shape(), grad.Shape())

	if n.grad != nil {
		acc := n.grad.(*tensor.Tensor[T, S])
		n.accumulate(v.id, func() { acc.AddInPlace(grad) })
	}
	if klog.V(3).Enabled() {
		klog.Infof("autodiff: replaying node #%d (%s)", v.id, n.op)
	}
	n.replayWith(grad)
}

// node resolves the handle, rejecting handles from before a Reset.
func (v *Variable[T, S]) node() *node {
	if v.Stale() {
		exceptions.Panicf("autodiff: variable #%d is stale: its graph was reset", v.id)
	}
	return v.graph.node(v.id)
}

// take marks v as consumed by op and returns it.
func (v *Variable[T, S]) take(op string) *Variable[T, S] {
	if v.consumed != "" {
		exceptions.Panicf("autodiff: variable #%d already consumed by %s; Clone it to use it in %s", v.id, v.consumed, op)
	}
	v.node()
	v.consumed = op
	return v
}

// record creates the node of an operation result. The result tracks
// gradients when the graph is recording and any operand tracks; back then
// receives the incoming gradient.
func record[T tensor.Scalar, S shape.Shape](g *Graph, op string, value *tensor.Tensor[T, S], inputs []NodeID, tracks bool, back func(grad *tensor.Tensor[T, S])) *Variable[T, S] {
	n := &node{op: op, inputs: inputs, value: value, replay: func(any) {}}
	if tracks && g.recording {
		n.grad = tensor.ZerosLike(value)
		n.replay = func(grad any) { back(grad.(*tensor.Tensor[T, S])) }
	}
	return &Variable[T, S]{graph: g, id: g.add(n), generation: g.generation}
}

// sameGraph panics unless every operand lives in g.
func sameGraph(op string, g *Graph, others ...*Graph) {
	for _, o := range others {
		if o != g {
			exceptions.Panicf("autodiff: %s combines variables from different graphs", op)
		}
	}
}

// owned returns grad if the caller may modify it, a copy otherwise.
func owned[T tensor.Scalar, S shape.Shape](grad *tensor.Tensor[T, S]) *tensor.Tensor[T, S] {
	if grad.IsView() {
		return grad.AsContiguous()
	}
	return grad
}
