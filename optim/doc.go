// Copyright 2025 Gradlet ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training networks built
// on the scalar autodiff engine.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// Optimizers read each parameter's accumulated gradient and write its data
// in place through the engine's Value surface; they never add nodes to the
// graph.
//
// # Basic Usage
//
//	import (
//	    "github.com/gradlet-ml/gradlet/autodiff"
//	    "github.com/gradlet-ml/gradlet/nn"
//	    "github.com/gradlet-ml/gradlet/optim"
//	)
//
//	func main() {
//	    g := autodiff.NewGraph()
//	    model := nn.NewMLP(g, 2, []int{16, 1})
//
//	    // Create optimizer
//	    optimizer := optim.NewAdam(
//	        model.Parameters(),
//	        optim.AdamConfig{
//	            LR:    0.001,
//	            Betas: [2]float64{0.9, 0.999},
//	        },
//	    )
//
//	    mark := g.Mark()
//
//	    // Training loop
//	    for epoch := 0; epoch < 10; epoch++ {
//	        // Forward pass
//	        loss := buildLoss(g, model, xs, ys)
//
//	        // Backward pass
//	        optimizer.ZeroGrad()
//	        loss.Backward()
//	        optimizer.Step()
//
//	        g.Reset(mark)
//	    }
//	}
//
// # Optimizers
//
// SGD (Stochastic Gradient Descent):
//
//	optimizer := optim.NewSGD(
//	    model.Parameters(),
//	    optim.SGDConfig{
//	        LR:       0.01,
//	        Momentum: 0.9,
//	    },
//	)
//
// Adam (Adaptive Moment Estimation):
//
//	optimizer := optim.NewAdam(
//	    model.Parameters(),
//	    optim.AdamConfig{
//	        LR:    0.001,
//	        Betas: [2]float64{0.9, 0.999},
//	        Eps:   1e-8,
//	    },
//	)
//
// # Training Loop Pattern
//
//	for epoch := 0; epoch < numEpochs; epoch++ {
//	    for _, batch := range batches {
//	        // 1. Zero gradients
//	        optimizer.ZeroGrad()
//
//	        // 2. Forward pass
//	        loss := buildLoss(model, batch)
//
//	        // 3. Backward pass
//	        loss.Backward()
//
//	        // 4. Update parameters
//	        optimizer.Step()
//
//	        // 5. Drop intermediate nodes
//	        g.Reset(mark)
//	    }
//	}
package optim
