// Copyright 2025 Gradlet ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// Expressions are built by calling operator methods on Values; every call
// appends a node to the owning Graph, so the computation DAG grows as the
// forward pass runs. Calling Backward on the final value computes the
// gradient of that value with respect to every node that produced it,
// summing contributions when a node is used more than once.
//
// Example:
//
//	import "github.com/gradlet-ml/gradlet/autodiff"
//
//	func main() {
//	    g := autodiff.NewGraph()
//
//	    a := g.NewValue(2.0)
//	    b := g.NewValue(-3.0)
//	    c := g.NewValue(10.0)
//
//	    d := a.Mul(b).Add(c) // d = a*b + c
//	    f := d.Mul(d)        // f = d²
//
//	    f.Backward()
//	    fmt.Println(a.Grad()) // ∂f/∂a = -24
//	}
package autodiff

import (
	"github.com/gradlet-ml/gradlet/internal/autodiff"
)

// Graph owns the arena of scalar nodes for one computation DAG.
type Graph = autodiff.Graph

// NewGraph creates an empty computation graph.
//
// Example:
//
//	g := autodiff.NewGraph()
//	x := g.NewValue(3.0)
func NewGraph() *Graph {
	return autodiff.NewGraph()
}

// Value is a handle to one scalar node in a Graph: its data, its accumulated
// gradient, and the operation that produced it.
type Value = autodiff.Value

// Mark is a graph checkpoint taken with Graph.Mark and consumed by
// Graph.Reset, so training loops can discard each step's intermediate nodes.
type Mark = autodiff.Mark

// Op identifies the operation that produced a node.
type Op = autodiff.Op

// Operator tags, readable through Value.Op.
const (
	OpNone = autodiff.OpNone // leaf: input or trainable parameter
	OpAdd  = autodiff.OpAdd
	OpSub  = autodiff.OpSub
	OpMul  = autodiff.OpMul
	OpDiv  = autodiff.OpDiv
	OpNeg  = autodiff.OpNeg
	OpPow  = autodiff.OpPow
	OpReLU = autodiff.OpReLU
)

// UnsupportedOperandError reports an operand that cannot participate in an
// operation, such as a Value owned by a different Graph.
type UnsupportedOperandError = autodiff.UnsupportedOperandError

// Trace walks the subgraph reachable from root and returns every node plus
// the (predecessor, successor) edges between them, without mutating the
// graph. This is the read-only surface for visualization and debugging.
//
// Example:
//
//	nodes, edges := autodiff.Trace(loss)
//	for _, n := range nodes {
//	    fmt.Println(n.Op(), n.Data(), n.Grad())
//	}
func Trace(root Value) (nodes []Value, edges [][2]Value) {
	return autodiff.Trace(root)
}
