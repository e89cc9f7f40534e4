package nn

import (
	"fmt"
	"math/rand"

	"github.com/gradlet-ml/gradlet/internal/autodiff"
)

// Neuron is a single affine unit: out = b + Σ wᵢ·xᵢ, optionally passed
// through ReLU.
//
// Weights are initialized uniformly in [-1, 1); the bias starts at zero.
// Both are leaf nodes on the supplied graph, so gradients from any backward
// pass over the neuron's output accumulate directly onto them.
//
// Example:
//
//	g := autodiff.NewGraph()
//	n := nn.NewNeuron(g, 2, true)
//
//	x := []autodiff.Value{g.NewValue(1.0), g.NewValue(-0.5)}
//	out := n.Forward(x)
type Neuron struct {
	weights []autodiff.Value
	bias    autodiff.Value
	nonlin  bool
}

// NewNeuron creates a neuron with nin input connections on graph g.
//
// Parameters:
//   - g: Graph that owns the neuron's weights and bias
//   - nin: Number of input connections
//   - nonlin: Whether the output passes through ReLU (true) or stays linear
//
// Returns a new Neuron.
func NewNeuron(g *autodiff.Graph, nin int, nonlin bool) *Neuron {
	weights := make([]autodiff.Value, nin)
	for i := range weights {
		//nolint:gosec // math/rand for weight initialization (not security-critical)
		weights[i] = g.NewValue(rand.Float64()*2.0 - 1.0)
	}

	return &Neuron{
		weights: weights,
		bias:    g.NewValue(0),
		nonlin:  nonlin,
	}
}

// Forward computes the neuron's output for the given inputs.
//
// Panics if the number of inputs does not match the neuron's fan-in.
func (n *Neuron) Forward(inputs []autodiff.Value) autodiff.Value {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("Neuron.Forward: expected %d inputs, got %d", len(n.weights), len(inputs)))
	}

	act := n.bias
	for i, w := range n.weights {
		act = act.Add(w.Mul(inputs[i]))
	}

	if n.nonlin {
		return act.ReLU()
	}
	return act
}

// Parameters returns the neuron's trainable values: weights first, then the
// bias.
func (n *Neuron) Parameters() []autodiff.Value {
	params := make([]autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// Weights returns the weight values in input order.
func (n *Neuron) Weights() []autodiff.Value {
	return n.weights
}

// Bias returns the bias value.
func (n *Neuron) Bias() autodiff.Value {
	return n.bias
}

// String implements fmt.Stringer.
func (n *Neuron) String() string {
	if n.nonlin {
		return fmt.Sprintf("ReLUNeuron(%d)", len(n.weights))
	}
	return fmt.Sprintf("LinearNeuron(%d)", len(n.weights))
}
