// Copyright 2025 Gradlet ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides feed-forward network building blocks over the scalar
// autodiff engine.
//
// # Overview
//
// This package contains:
//   - Neuron: single affine unit with an optional ReLU
//   - Layer: a bank of neurons sharing an input
//   - MLP: layers stacked into a multi-layer perceptron
//   - Utilities: Module interface, ZeroGrad
//
// Modules are purely structural. They hold trainable leaf values on a Graph
// and compose engine operations in their Forward methods; all
// differentiation happens in the autodiff package when Backward runs on a
// module's output.
//
// # Basic Usage
//
//	import (
//	    "github.com/gradlet-ml/gradlet/autodiff"
//	    "github.com/gradlet-ml/gradlet/nn"
//	)
//
//	func main() {
//	    g := autodiff.NewGraph()
//
//	    // Build a small MLP: 2 inputs, two hidden layers, 1 output
//	    model := nn.NewMLP(g, 2, []int{16, 16, 1})
//
//	    // Forward pass
//	    x := []autodiff.Value{g.NewValue(0.5), g.NewValue(-1.0)}
//	    out := model.Forward(x)
//
//	    // Backward pass populates parameter gradients
//	    out[0].Backward()
//	}
//
// # Training Loop Pattern
//
//	mark := g.Mark() // checkpoint after parameters exist
//
//	for epoch := range numEpochs {
//	    // 1. Zero gradients
//	    nn.ZeroGrad(model)
//
//	    // 2. Forward pass
//	    loss := buildLoss(model, batch)
//
//	    // 3. Backward pass
//	    loss.Backward()
//
//	    // 4. Update parameters (see the optim package)
//	    optimizer.Step()
//
//	    // 5. Drop this step's intermediate nodes
//	    g.Reset(mark)
//	}
//
// # Parameter Management
//
// Access model parameters for optimization:
//
//	params := model.Parameters()
//	for _, p := range params {
//	    fmt.Println(p.Data(), p.Grad())
//	}
package nn
