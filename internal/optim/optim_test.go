package optim_test

import (
	"math"
	"testing"

	"github.com/gradlet-ml/gradlet/internal/autodiff"
	"github.com/gradlet-ml/gradlet/internal/optim"
)

// Helper to check float equality with tolerance.
func floatEqual(a, b, eps float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < eps
}

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	g := autodiff.NewGraph()

	// Create a simple parameter: x = 2.0
	param := g.NewValue(2.0)

	// Create SGD optimizer (no momentum)
	optimizer := optim.NewSGD([]autodiff.Value{param},
		optim.SGDConfig{LR: 0.1, Momentum: 0.0})

	// Simulate gradient: grad_x = 1.0
	param.SetGrad(1.0)

	// Perform one step
	optimizer.Step()

	// Expected: x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0 = 1.9
	if got := param.Data(); !floatEqual(got, 1.9, 1e-12) {
		t.Errorf("SGD update: got %f, want 1.9", got)
	}
}

// TestSGD_WithMomentum tests SGD with momentum.
func TestSGD_WithMomentum(t *testing.T) {
	g := autodiff.NewGraph()

	// Create parameter: x = 1.0
	param := g.NewValue(1.0)

	// Create SGD with momentum=0.9
	optimizer := optim.NewSGD([]autodiff.Value{param},
		optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	// First step: grad = 1.0
	param.SetGrad(1.0)
	optimizer.Step()

	// First step:
	// v_1 = 0.9 * 0 + 1.0 = 1.0
	// x_1 = 1.0 - 0.1 * 1.0 = 0.9
	if got := param.Data(); !floatEqual(got, 0.9, 1e-12) {
		t.Errorf("SGD momentum step 1: got %f, want 0.9", got)
	}

	// Second step: grad = 1.0
	param.SetGrad(1.0)
	optimizer.Step()

	// Second step:
	// v_2 = 0.9 * 1.0 + 1.0 = 1.9
	// x_2 = 0.9 - 0.1 * 1.9 = 0.71
	if got := param.Data(); !floatEqual(got, 0.71, 1e-12) {
		t.Errorf("SGD momentum step 2: got %f, want 0.71", got)
	}
}

// TestSGD_ZeroGrad tests ZeroGrad method.
func TestSGD_ZeroGrad(t *testing.T) {
	g := autodiff.NewGraph()

	param := g.NewValue(1.0)
	param.SetGrad(5.0)

	if param.Grad() == 0 {
		t.Fatal("Grad should be non-zero after SetGrad")
	}

	optimizer := optim.NewSGD([]autodiff.Value{param},
		optim.SGDConfig{LR: 0.1})

	// ZeroGrad should clear gradient
	optimizer.ZeroGrad()

	if param.Grad() != 0 {
		t.Errorf("Grad after ZeroGrad = %f, want 0", param.Grad())
	}
}

// TestSGD_GetSetLR tests learning rate getter/setter.
func TestSGD_GetSetLR(t *testing.T) {
	g := autodiff.NewGraph()
	param := g.NewValue(1.0)

	optimizer := optim.NewSGD([]autodiff.Value{param},
		optim.SGDConfig{LR: 0.01})

	// Test GetLR
	if optimizer.GetLR() != 0.01 {
		t.Errorf("GetLR: got %f, want 0.01", optimizer.GetLR())
	}

	// Test SetLR
	optimizer.SetLR(0.001)
	if optimizer.GetLR() != 0.001 {
		t.Errorf("GetLR after SetLR: got %f, want 0.001", optimizer.GetLR())
	}
}

// TestSGD_Defaults tests that the zero-value config picks up defaults.
func TestSGD_Defaults(t *testing.T) {
	g := autodiff.NewGraph()
	param := g.NewValue(1.0)

	optimizer := optim.NewSGD([]autodiff.Value{param}, optim.SGDConfig{})

	if optimizer.GetLR() != 0.01 {
		t.Errorf("default LR: got %f, want 0.01", optimizer.GetLR())
	}
}

// TestAdam_SimpleUpdate tests Adam optimizer update.
func TestAdam_SimpleUpdate(t *testing.T) {
	g := autodiff.NewGraph()

	// Create parameter: x = 1.0
	param := g.NewValue(1.0)

	// Create Adam optimizer with default hyperparameters
	optimizer := optim.NewAdam([]autodiff.Value{param},
		optim.AdamConfig{
			LR:    0.001,
			Betas: [2]float64{0.9, 0.999},
			Eps:   1e-8,
		})

	// Gradient: grad = 1.0
	param.SetGrad(1.0)

	// First step
	optimizer.Step()

	// After first step (with bias correction):
	// m_1 = 0.9 * 0 + 0.1 * 1.0 = 0.1
	// v_1 = 0.999 * 0 + 0.001 * 1.0 = 0.001
	// m_hat = 0.1 / (1 - 0.9^1) = 0.1 / 0.1 = 1.0
	// v_hat = 0.001 / (1 - 0.999^1) = 0.001 / 0.001 = 1.0
	// x_new = 1.0 - 0.001 * 1.0 / (sqrt(1.0) + 1e-8) ≈ 0.999
	if got := param.Data(); !floatEqual(got, 0.999, 1e-9) {
		t.Errorf("Adam first step: got %f, want 0.999", got)
	}
}

// TestAdam_BiasCorrection tests that Adam applies bias correction correctly.
func TestAdam_BiasCorrection(t *testing.T) {
	g := autodiff.NewGraph()
	param := g.NewValue(1.0)

	optimizer := optim.NewAdam([]autodiff.Value{param},
		optim.AdamConfig{
			LR:    0.01,
			Betas: [2]float64{0.9, 0.999},
			Eps:   1e-8,
		})

	// Check initial timestep
	if optimizer.GetTimestep() != 0 {
		t.Errorf("Initial timestep: got %d, want 0", optimizer.GetTimestep())
	}

	// Perform 3 steps and verify timestep increments
	for i := 1; i <= 3; i++ {
		param.SetGrad(1.0)
		optimizer.Step()

		if optimizer.GetTimestep() != i {
			t.Errorf("After step %d, timestep: got %d, want %d", i, optimizer.GetTimestep(), i)
		}
	}

	// Parameter should decrease over steps due to bias correction
	if final := param.Data(); final >= 1.0 {
		t.Errorf("After 3 Adam steps with positive gradient, parameter should decrease: got %f", final)
	}
}

// TestAdam_Defaults tests that the zero-value config picks up defaults.
func TestAdam_Defaults(t *testing.T) {
	g := autodiff.NewGraph()
	param := g.NewValue(1.0)

	optimizer := optim.NewAdam([]autodiff.Value{param}, optim.AdamConfig{})

	if optimizer.GetLR() != 0.001 {
		t.Errorf("default LR: got %f, want 0.001", optimizer.GetLR())
	}

	// With grad 1.0 the first bias-corrected step is lr/(1+eps) regardless
	// of betas, so the defaults are observable through the update itself.
	param.SetGrad(1.0)
	optimizer.Step()

	if got := param.Data(); !floatEqual(got, 0.999, 1e-9) {
		t.Errorf("first step with defaults: got %f, want 0.999", got)
	}
}

// TestAdam_ZeroGrad tests ZeroGrad for Adam.
func TestAdam_ZeroGrad(t *testing.T) {
	g := autodiff.NewGraph()

	param := g.NewValue(1.0)
	param.SetGrad(5.0)

	optimizer := optim.NewAdam([]autodiff.Value{param},
		optim.AdamConfig{LR: 0.001})

	optimizer.ZeroGrad()

	if param.Grad() != 0 {
		t.Errorf("Adam ZeroGrad: grad = %f, want 0", param.Grad())
	}
}

// TestConvergence_SimpleQuadratic tests optimizer convergence on f(x) = x².
//
// This is an integration test that verifies both SGD and Adam can minimize
// a simple quadratic function through the engine itself: the gradient comes
// from a real forward/backward pass each iteration, not a hand-fed value.
// The minimum is at x = 0.
func TestConvergence_SimpleQuadratic(t *testing.T) {
	// Test SGD convergence
	t.Run("SGD", func(t *testing.T) {
		g := autodiff.NewGraph()

		// Start at x = 3.0
		param := g.NewValue(3.0)
		mark := g.Mark()

		optimizer := optim.NewSGD([]autodiff.Value{param},
			optim.SGDConfig{LR: 0.1, Momentum: 0.9})

		// Train for 100 steps
		for i := 0; i < 100; i++ {
			optimizer.ZeroGrad()

			loss := param.Mul(param) // f(x) = x²
			loss.Backward()

			optimizer.Step()
			g.Reset(mark)
		}

		// After 100 steps, x should be close to 0
		if final := param.Data(); math.Abs(final) > 0.1 {
			t.Errorf("SGD convergence: x = %f, expected close to 0", final)
		}
	})

	// Test Adam convergence
	t.Run("Adam", func(t *testing.T) {
		g := autodiff.NewGraph()

		// Start at x = 3.0
		param := g.NewValue(3.0)
		mark := g.Mark()

		optimizer := optim.NewAdam([]autodiff.Value{param},
			optim.AdamConfig{
				LR:    0.1,
				Betas: [2]float64{0.9, 0.999},
				Eps:   1e-8,
			})

		// Train for 100 steps
		for i := 0; i < 100; i++ {
			optimizer.ZeroGrad()

			loss := param.Mul(param)
			loss.Backward()

			optimizer.Step()
			g.Reset(mark)
		}

		// After 100 steps, x should be close to 0
		if final := param.Data(); math.Abs(final) > 0.1 {
			t.Errorf("Adam convergence: x = %f, expected close to 0", final)
		}
	})
}

// TestMultipleParameters tests optimizers with multiple parameters.
func TestMultipleParameters(t *testing.T) {
	g := autodiff.NewGraph()

	// Create three parameters
	p1 := g.NewValue(1.0)
	p2 := g.NewValue(2.0)
	p3 := g.NewValue(3.0)

	optimizer := optim.NewSGD([]autodiff.Value{p1, p2, p3},
		optim.SGDConfig{LR: 0.1})

	// Set distinct gradients
	p1.SetGrad(1.0)
	p2.SetGrad(2.0)
	p3.SetGrad(0.5)

	// Perform step
	optimizer.Step()

	// Check p1: 1.0 - 0.1 * 1.0 = 0.9
	if got := p1.Data(); !floatEqual(got, 0.9, 1e-12) {
		t.Errorf("p1: got %f, want 0.9", got)
	}

	// Check p2: 2.0 - 0.1 * 2.0 = 1.8
	if got := p2.Data(); !floatEqual(got, 1.8, 1e-12) {
		t.Errorf("p2: got %f, want 1.8", got)
	}

	// Check p3: 3.0 - 0.1 * 0.5 = 2.95
	if got := p3.Data(); !floatEqual(got, 2.95, 1e-12) {
		t.Errorf("p3: got %f, want 2.95", got)
	}
}
