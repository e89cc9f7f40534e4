// Package autodiff implements reverse-mode automatic differentiation over
// scalar values.
//
// A Graph is a dynamically built DAG of scalar operations. Every operation
// appends one node to the graph's arena and returns a Value handle to it;
// predecessor references are arena indices, so nodes are never shared by
// pointer and the DAG stays acyclic by construction (a node's operands must
// already exist when the node is created).
//
// Architecture:
//   - Graph: arena of node records (value, gradient, operator tag, operand indices)
//   - Value: cheap index handle with the full operator set (Add, Mul, Pow, ...)
//   - Backward: iterative reverse-topological walk with a single dispatch
//     function per operator tag instead of per-node closures
//
// Usage:
//
//	g := autodiff.NewGraph()
//	x := g.NewValue(2.0)
//	y := x.Mul(x) // y = x²
//
//	y.Backward()
//	fmt.Println(x.Grad()) // dy/dx = 2x = 4.0
package autodiff

import (
	"fmt"
	"math"
)

// node is one record in the graph arena.
//
// Operand slots hold arena indices (-1 when unused). The exponent field is
// meaningful only for OpPow: the exponent is a recorded constant, never a
// node, so it is not differentiated.
type node struct {
	data     float64
	grad     float64
	exponent float64
	a, b     int32
	op       Op
}

// Graph owns the arena of scalar nodes for one computation DAG.
//
// Construction is purely additive: operations append nodes and never mutate
// existing structure. The only mutable node state is data (via SetData,
// typically an optimizer) and grad (via Backward and ZeroGrad).
//
// A Graph must not be used from multiple goroutines concurrently. Distinct
// Graphs are fully independent.
type Graph struct {
	nodes []node
}

// NewGraph creates an empty computation graph.
func NewGraph() *Graph {
	return &Graph{
		nodes: make([]node, 0, 64), // Pre-allocate for common case
	}
}

// NewValue appends a leaf node (an input or trainable parameter) holding
// data and returns its handle. Leaves have operator tag OpNone and no
// predecessors; their gradient starts at zero.
func (g *Graph) NewValue(data float64) Value {
	return g.push(node{data: data, a: -1, b: -1, op: OpNone})
}

// Len returns the number of nodes currently in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Mark is a checkpoint of the graph size, taken with Graph.Mark and consumed
// by Graph.Reset.
type Mark int

// Mark captures the current graph size so nodes created after it can be
// discarded with Reset. Typical training loops mark the graph once the
// parameters exist, then reset to that mark every iteration to drop the
// forward pass's intermediate nodes.
func (g *Graph) Mark() Mark {
	return Mark(len(g.nodes))
}

// Reset truncates the graph back to a checkpoint taken with Mark.
//
// Nodes created before the mark (parameters, persistent inputs) survive with
// their data and gradients intact. Handles to nodes created after the mark
// are invalidated and must not be used again. Panics if m does not come from
// Mark on this graph's current history.
func (g *Graph) Reset(m Mark) {
	if m < 0 || int(m) > len(g.nodes) {
		panic(fmt.Sprintf("autodiff: Reset: mark %d out of range [0, %d]", m, len(g.nodes)))
	}
	g.nodes = g.nodes[:m]
}

// push appends a node and returns its handle.
func (g *Graph) push(n node) Value {
	g.nodes = append(g.nodes, n)
	return Value{graph: g, id: int32(len(g.nodes) - 1)}
}

// Value is a handle to one scalar node in a Graph.
//
// Values are small and comparable; copy them freely and use them as map
// keys. The zero Value belongs to no graph and must not be used — obtain
// Values from Graph.NewValue or from operations on existing Values.
type Value struct {
	graph *Graph
	id    int32
}

// Data returns the node's current scalar value.
func (v Value) Data() float64 {
	return v.graph.nodes[v.id].data
}

// SetData overwrites the node's scalar value in place.
//
// This is the optimizer's write access for parameter updates between
// backward passes. It does not touch the gradient.
func (v Value) SetData(data float64) {
	v.graph.nodes[v.id].data = data
}

// Grad returns the node's accumulated gradient.
//
// After Backward on a terminal T, this is ∂T/∂v summed over every path from
// v to T. It stays zero until a backward pass reaches the node.
func (v Value) Grad() float64 {
	return v.graph.nodes[v.id].grad
}

// SetGrad overwrites the node's accumulated gradient.
func (v Value) SetGrad(grad float64) {
	v.graph.nodes[v.id].grad = grad
}

// ZeroGrad resets the node's gradient to zero.
//
// Callers must zero gradients between independent optimization steps;
// Backward deliberately accumulates instead of overwriting.
func (v Value) ZeroGrad() {
	v.graph.nodes[v.id].grad = 0
}

// Op returns the tag of the operation that produced this node, OpNone for a
// leaf. The tag is introspection only; backward dispatch is internal.
func (v Value) Op() Op {
	return v.graph.nodes[v.id].op
}

// Operands returns handles to the node's direct predecessors in the order
// they were supplied: none for a leaf, one for a unary operation, two for a
// binary one.
func (v Value) Operands() []Value {
	n := &v.graph.nodes[v.id]
	if n.a < 0 {
		return nil
	}
	if n.b < 0 {
		return []Value{{graph: v.graph, id: n.a}}
	}
	return []Value{{graph: v.graph, id: n.a}, {graph: v.graph, id: n.b}}
}

// IsFinite reports whether the node's value is neither infinite nor NaN.
//
// Division by zero and similar non-finite results propagate through the
// graph instead of raising errors; this is the detection hook for callers
// that care.
func (v Value) IsFinite() bool {
	d := v.graph.nodes[v.id].data
	return !math.IsInf(d, 0) && !math.IsNaN(d)
}

// String implements fmt.Stringer.
func (v Value) String() string {
	n := &v.graph.nodes[v.id]
	return fmt.Sprintf("Value(data=%g, grad=%g)", n.data, n.grad)
}
