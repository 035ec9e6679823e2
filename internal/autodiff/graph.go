// Package autodiff implements reverse-mode automatic differentiation over
// shape-typed tensors.
//
// Every differentiable operation records a node in a Graph: the forward
// value, an optional gradient accumulator, and a replay closure that applies
// the operation's derivative rule and pushes the result to its operands.
// Calling Backward on a Variable accumulates the incoming gradient and replays
// the closure, which walks the graph towards the leaves.
package autodiff

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
)

// NodeID indexes a node in its Graph.
type NodeID int

// node is the type-erased storage of one Variable. value and grad hold
// *tensor.Tensor[T, S] of the Variable's own T and S; grad is nil when the
// node does not track gradients.
type node struct {
	op     string
	inputs []NodeID
	value  any
	grad   any
	replay func(grad any)

	// Borrow state: replaying holds a shared borrow, accumulating needs an
	// exclusive one.
	replaying int
	writing   bool
}

// Graph is the arena holding the nodes of one computation. Nodes are
// released all at once by Reset or when the Graph is garbage collected.
//
// A Graph is not safe for concurrent use.
//
// Usage:
//
//	g := autodiff.NewGraph()
//	x := autodiff.New(g, xs, true)
//	y := autodiff.New(g, ys, false)
//	z := x.Clone().Mul(y)
//	z.Backward(tensor.OnesLike(z.Value()))
//	dx := x.Grad()
type Graph struct {
	nodes      []*node
	generation int
	recording  bool
}

// NewGraph creates an empty graph that records gradients.
func NewGraph() *Graph {
	return &Graph{
		nodes:     make([]*node, 0, 64), // Pre-allocate for common case
		recording: true,
	}
}

// StartRecording lets new operation results track gradients again.
func (g *Graph) StartRecording() {
	g.recording = true
}

// StopRecording makes every new operation result untracked, whatever its
// operands. Leaves created with track=true still track.
func (g *Graph) StopRecording() {
	g.recording = false
}

// IsRecording returns true if operation results may track gradients.
func (g *Graph) IsRecording() bool {
	return g.recording
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Reset drops every node. Variables created before Reset become stale and
// panic when used.
func (g *Graph) Reset() {
	g.nodes = g.nodes[:0]
	g.generation++
}

// Op returns the name of the operation that produced a node ("leaf" for inputs).
func (g *Graph) Op(id NodeID) string {
	return g.node(id).op
}

// Inputs returns the operand nodes of a node.
func (g *Graph) Inputs(id NodeID) []NodeID {
	return append([]NodeID(nil), g.node(id).inputs...)
}

// String lists the nodes, one per line.
func (g *Graph) String() string {
	var sb strings.Builder
	for i, n := range g.nodes {
		tracked := ""
		if n.grad != nil {
			tracked = " (grad)"
		}
		fmt.Fprintf(&sb, "#%d %s%v%s\n", i, n.op, n.inputs, tracked)
	}
	return sb.String()
}

func (g *Graph) add(n *node) NodeID {
	g.nodes = append(g.nodes, n)
	return NodeID(len(g.nodes) - 1)
}

func (g *Graph) node(id NodeID) *node {
	if int(id) < 0 || int(id) >= len(g.nodes) {
		exceptions.Panicf("autodiff: node #%d does not exist in a graph of %d nodes", id, len(g.nodes))
	}
	return g.nodes[id]
}

// accumulate runs add under an exclusive borrow of the node's accumulator.
func (n *node) accumulate(id NodeID, add func()) {
	if n.writing || n.replaying > 0 {
		exceptions.Panicf("autodiff: gradient of node #%d (%s) is already borrowed; the graph has a cycle", id, n.op)
	}
	n.writing = true
	defer func() { n.writing = false }()
	add()
}

// replayWith runs the node's derivative closure under a shared borrow.
func (n *node) replayWith(grad any) {
	n.replaying++
	defer func() { n.replaying-- }()
	n.replay(grad)
}
