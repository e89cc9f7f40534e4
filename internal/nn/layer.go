package nn

import (
	"fmt"
	"strings"

	"github.com/gradlet-ml/gradlet/internal/autodiff"
)

// Layer is a bank of neurons that share the same input vector. Its output
// has one value per neuron.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of nout neurons, each with nin inputs.
//
// Parameters:
//   - g: Graph that owns the layer's parameters
//   - nin: Number of input connections per neuron
//   - nout: Number of neurons
//   - nonlin: Whether the neurons apply ReLU
//
// Returns a new Layer.
func NewLayer(g *autodiff.Graph, nin, nout int, nonlin bool) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(g, nin, nonlin)
	}
	return &Layer{neurons: neurons}
}

// Forward computes the output of every neuron for the given inputs.
func (l *Layer) Forward(inputs []autodiff.Value) []autodiff.Value {
	out := make([]autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Forward(inputs)
	}
	return out
}

// Parameters returns the trainable values of all neurons in neuron order.
func (l *Layer) Parameters() []autodiff.Value {
	var params []autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// String implements fmt.Stringer.
func (l *Layer) String() string {
	parts := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		parts[i] = n.String()
	}
	return fmt.Sprintf("Layer of [%s]", strings.Join(parts, ", "))
}
