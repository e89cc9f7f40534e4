package nn

import (
	"fmt"
	"strings"

	"github.com/gradlet-ml/gradlet/internal/autodiff"
)

// MLP is a multi-layer perceptron: fully connected layers applied in
// sequence, with ReLU on every layer except the last, which stays linear so
// the network can produce unbounded outputs (regression targets, logits,
// margins).
//
// Example:
//
//	g := autodiff.NewGraph()
//	model := nn.NewMLP(g, 2, []int{16, 16, 1})
//
//	out := model.Forward(inputs) // len(out) == 1
//	out[0].Backward()
type MLP struct {
	layers []*Layer
}

// NewMLP creates a perceptron with nin input features and one layer per
// entry of nouts, where each entry is that layer's neuron count.
//
// Parameters:
//   - g: Graph that owns all network parameters
//   - nin: Number of input features
//   - nouts: Output sizes of the successive layers
//
// Returns a new MLP.
func NewMLP(g *autodiff.Graph, nin int, nouts []int) *MLP {
	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range layers {
		nonlin := i != len(nouts)-1
		layers[i] = NewLayer(g, sizes[i], sizes[i+1], nonlin)
	}
	return &MLP{layers: layers}
}

// Forward runs the inputs through every layer in order and returns the final
// layer's outputs.
func (m *MLP) Forward(inputs []autodiff.Value) []autodiff.Value {
	out := inputs
	for _, layer := range m.layers {
		out = layer.Forward(out)
	}
	return out
}

// Parameters returns the trainable values of all layers in layer order.
func (m *MLP) Parameters() []autodiff.Value {
	var params []autodiff.Value
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// Layers returns the network's layers.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// String implements fmt.Stringer.
func (m *MLP) String() string {
	parts := make([]string, len(m.layers))
	for i, layer := range m.layers {
		parts[i] = layer.String()
	}
	return fmt.Sprintf("MLP of [%s]", strings.Join(parts, ", "))
}
