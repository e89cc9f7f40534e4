// Copyright 2025 Gradlet ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/gradlet-ml/gradlet/autodiff"
	"github.com/gradlet-ml/gradlet/internal/nn"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// ZeroGrad resets the gradient of every parameter in the module.
//
// Example:
//
//	loss.Backward()
//	updateParameters(model)
//	nn.ZeroGrad(model)
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// Neuron represents a single affine unit with an optional ReLU.
type Neuron = nn.Neuron

// NewNeuron creates a neuron with nin inputs on graph g. Weights initialize
// uniformly in [-1, 1) and the bias starts at zero; nonlin selects ReLU
// (true) or a linear output (false).
//
// Example:
//
//	g := autodiff.NewGraph()
//	n := nn.NewNeuron(g, 2, true)
//	out := n.Forward([]autodiff.Value{g.NewValue(1.0), g.NewValue(-0.5)})
func NewNeuron(g *autodiff.Graph, nin int, nonlin bool) *Neuron {
	return nn.NewNeuron(g, nin, nonlin)
}

// Layer represents a bank of neurons sharing the same input.
type Layer = nn.Layer

// NewLayer creates a layer of nout neurons with nin inputs each.
//
// Example:
//
//	g := autodiff.NewGraph()
//	layer := nn.NewLayer(g, 2, 16, true)
func NewLayer(g *autodiff.Graph, nin, nout int, nonlin bool) *Layer {
	return nn.NewLayer(g, nin, nout, nonlin)
}

// MLP represents a multi-layer perceptron.
type MLP = nn.MLP

// NewMLP creates a perceptron with nin input features and one layer per
// entry of nouts. Every layer applies ReLU except the last, which stays
// linear.
//
// Example:
//
//	g := autodiff.NewGraph()
//	model := nn.NewMLP(g, 2, []int{16, 16, 1})
//	out := model.Forward(inputs)
func NewMLP(g *autodiff.Graph, nin int, nouts []int) *MLP {
	return nn.NewMLP(g, nin, nouts)
}
