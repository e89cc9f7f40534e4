// Package nn implements feed-forward network modules on top of the scalar
// autodiff engine.
//
// This package provides the building blocks for small dense networks:
//   - Module interface: base interface for all network components
//   - Neuron: single affine unit with an optional ReLU
//   - Layer: a bank of neurons sharing an input
//   - MLP: layers stacked into a multi-layer perceptron
//
// Modules are purely structural: they hold trainable leaf values and compose
// engine operations. All differentiation lives in the autodiff package —
// calling Backward on a module's output populates the gradients an optimizer
// reads through Parameters.
package nn

import (
	"github.com/gradlet-ml/gradlet/internal/autodiff"
)

// Module is the base interface for all neural network components.
type Module interface {
	// Parameters returns all trainable values of this module in a flat,
	// deterministic order: weights before bias within a neuron, neurons in
	// layer order, layers in network order. Nested module parameters are
	// included.
	Parameters() []autodiff.Value
}

// ZeroGrad resets the gradient of every parameter in the module.
//
// Callers must do this between independent optimization steps; Backward
// accumulates gradients rather than overwriting them.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}
