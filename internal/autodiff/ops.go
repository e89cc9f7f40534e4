package autodiff

import "math"

// Op identifies the operation that produced a node.
//
// Tags exist for introspection (tracing, debugging); the backward rule for
// each tag lives in one dispatch switch (backprop) rather than in per-node
// closures, which keeps nodes plain data and the engine allocation-light.
type Op uint8

// The supported operator set. Subtraction, division and negation are
// expressible through {add, multiply, power}, but each carries its own tag
// and direct backward rule; the derived rules are algebraically identical.
const (
	OpNone Op = iota // leaf: input or trainable parameter
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpNeg
	OpPow
	OpReLU
)

// String returns the display label used by tracing tools. Leaves render as
// the empty string.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpNeg:
		return "neg"
	case OpPow:
		return "**"
	case OpReLU:
		return "ReLU"
	default:
		return ""
	}
}

// binary appends a binary operation node. Both operands must belong to g.
func (g *Graph) binary(op Op, data float64, a, b Value) Value {
	if a.graph != g || b.graph != g {
		panic(&UnsupportedOperandError{Op: op.String(), Reason: "operands belong to different graphs"})
	}
	return g.push(node{data: data, a: a.id, b: b.id, op: op})
}

// unary appends a unary operation node.
func (g *Graph) unary(op Op, data float64, a Value) Value {
	return g.push(node{data: data, a: a.id, b: -1, op: op})
}

// Add returns a new node holding v + other.
//
// Backward: d(a+b)/da = 1 and d(a+b)/db = 1, so the output gradient flows
// unchanged to both operands.
func (v Value) Add(other Value) Value {
	return v.graph.binary(OpAdd, v.Data()+other.Data(), v, other)
}

// Sub returns a new node holding v - other.
//
// Backward: d(a-b)/da = 1, d(a-b)/db = -1.
func (v Value) Sub(other Value) Value {
	return v.graph.binary(OpSub, v.Data()-other.Data(), v, other)
}

// Mul returns a new node holding v * other.
//
// Backward: d(a*b)/da = b, d(a*b)/db = a.
func (v Value) Mul(other Value) Value {
	return v.graph.binary(OpMul, v.Data()*other.Data(), v, other)
}

// Div returns a new node holding v / other.
//
// Backward: d(a/b)/da = 1/b, d(a/b)/db = -a/b².
//
// Division by a node whose value is exactly zero is not guarded: the result
// is ±Inf or NaN per IEEE-754 and propagates through later operations. Use
// IsFinite to detect it downstream.
func (v Value) Div(other Value) Value {
	return v.graph.binary(OpDiv, v.Data()/other.Data(), v, other)
}

// Neg returns a new node holding -v.
func (v Value) Neg() Value {
	return v.graph.unary(OpNeg, -v.Data(), v)
}

// Pow returns a new node holding v raised to a constant exponent.
//
// Backward: d(a^k)/da = k·a^(k-1). The exponent is recorded on the node and
// is not differentiated; an exponent that is itself a node is unsupported
// (only constant exponents differentiate correctly under this rule), which
// the signature enforces.
//
// A zero base with a negative or fractional exponent produces ±Inf or NaN
// per math.Pow and propagates; it is not guarded.
func (v Value) Pow(exponent float64) Value {
	return v.graph.push(node{
		data:     math.Pow(v.Data(), exponent),
		exponent: exponent,
		a:        v.id,
		b:        -1,
		op:       OpPow,
	})
}

// ReLU returns a new node holding max(0, v).
//
// Backward: the output gradient flows to the operand only where the operand
// is strictly positive. At exactly zero the contribution is zero.
func (v Value) ReLU() Value {
	d := v.Data()
	if d < 0 {
		d = 0
	}
	return v.graph.unary(OpReLU, d, v)
}

// AddF lifts f to a leaf node and returns v + f.
func (v Value) AddF(f float64) Value {
	return v.Add(v.graph.NewValue(f))
}

// SubF lifts f to a leaf node and returns v - f.
func (v Value) SubF(f float64) Value {
	return v.Sub(v.graph.NewValue(f))
}

// MulF lifts f to a leaf node and returns v * f.
func (v Value) MulF(f float64) Value {
	return v.Mul(v.graph.NewValue(f))
}

// DivF lifts f to a leaf node and returns v / f.
func (v Value) DivF(f float64) Value {
	return v.Div(v.graph.NewValue(f))
}

// backprop distributes the node's gradient for this pass onto its operands'
// entries in grads, applying the local derivative rule for the node's tag.
// Contributions are always accumulated (+=), never assigned: a node used by
// several successors receives one share from each.
func (g *Graph) backprop(id int32, grads []float64) {
	n := &g.nodes[id]
	seed := grads[id]

	switch n.op {
	case OpAdd:
		grads[n.a] += seed
		grads[n.b] += seed

	case OpSub:
		grads[n.a] += seed
		grads[n.b] -= seed

	case OpMul:
		grads[n.a] += seed * g.nodes[n.b].data
		grads[n.b] += seed * g.nodes[n.a].data

	case OpDiv:
		bd := g.nodes[n.b].data
		grads[n.a] += seed / bd
		grads[n.b] -= seed * g.nodes[n.a].data / (bd * bd)

	case OpNeg:
		grads[n.a] -= seed

	case OpPow:
		grads[n.a] += seed * n.exponent * math.Pow(g.nodes[n.a].data, n.exponent-1)

	case OpReLU:
		if g.nodes[n.a].data > 0 {
			grads[n.a] += seed
		}

	case OpNone:
		// Leaves have no predecessors; nothing to distribute.
	}
}
