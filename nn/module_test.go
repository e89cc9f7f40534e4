// Copyright 2025 Gradlet ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn_test

import (
	"testing"

	"github.com/gradlet-ml/gradlet/autodiff"
	"github.com/gradlet-ml/gradlet/nn"
)

// TestModuleInterface verifies that concrete types implement Module interface.
func TestModuleInterface(t *testing.T) {
	g := autodiff.NewGraph()

	tests := []struct {
		name   string
		module nn.Module
	}{
		{
			name:   "Neuron",
			module: nn.NewNeuron(g, 4, true),
		},
		{
			name:   "Layer",
			module: nn.NewLayer(g, 4, 2, true),
		},
		{
			name:   "MLP",
			module: nn.NewMLP(g, 4, []int{3, 1}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Verify Parameters works
			params := tt.module.Parameters()
			if params == nil {
				t.Error("Parameters() returned nil, expected non-nil slice")
			}

			// Every parameter must be a trainable leaf
			for i, p := range params {
				if p.Op() != autodiff.OpNone {
					t.Errorf("parameter %d is not a leaf (op %v)", i, p.Op())
				}
			}
		})
	}
}

// TestModuleComposition verifies a full forward and backward pass through
// the public API.
func TestModuleComposition(t *testing.T) {
	g := autodiff.NewGraph()

	model := nn.NewMLP(g, 3, []int{8, 8, 1})

	// Verify it implements Module
	var _ nn.Module = model

	// Test forward pass
	inputs := []autodiff.Value{g.NewValue(1.0), g.NewValue(0.5), g.NewValue(-0.5)}
	out := model.Forward(inputs)

	if len(out) != 1 {
		t.Fatalf("Forward() returned %d outputs, want 1", len(out))
	}

	// Verify parameters from nested modules:
	// 8*(3+1) + 8*(8+1) + 1*(8+1) = 32 + 72 + 9
	params := model.Parameters()
	if len(params) != 113 {
		t.Errorf("Parameters() returned %d params, want 113", len(params))
	}

	// Backward populates gradients readable through the facade
	out[0].Backward()
	if out[0].Grad() != 1.0 {
		t.Errorf("terminal gradient = %v, want 1.0", out[0].Grad())
	}
}

// TestZeroGrad verifies gradient clearing through the facade.
func TestZeroGrad(t *testing.T) {
	g := autodiff.NewGraph()
	model := nn.NewMLP(g, 2, []int{4, 1})

	out := model.Forward([]autodiff.Value{g.NewValue(1.0), g.NewValue(2.0)})
	out[0].Backward()

	nn.ZeroGrad(model)

	for i, p := range model.Parameters() {
		if p.Grad() != 0 {
			t.Errorf("parameter %d: grad = %v after ZeroGrad, want 0", i, p.Grad())
		}
	}
}
