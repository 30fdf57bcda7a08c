package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cascade-ml/cascade/internal/nn"
)

func TestActivation_Values(t *testing.T) {
	a := []float64{-2, 0, 3}

	assert.InDelta(t, -2, nn.NewIdentity().F(a, 0), 1e-15)
	assert.InDelta(t, 0.5, nn.NewSigmoid().F(a, 1), 1e-15)
	assert.InDelta(t, math.Tanh(3), nn.NewTanh().F(a, 2), 1e-15)
	assert.InDelta(t, 0, nn.NewReLU().F(a, 0), 1e-15)
	assert.InDelta(t, 3, nn.NewReLU().F(a, 2), 1e-15)
}

// TestActivation_DerivativeMatchesFiniteDifference checks the DF convention:
// DF takes the *output* value y = f(x) and returns f'(x).
func TestActivation_DerivativeMatchesFiniteDifference(t *testing.T) {
	activations := map[string]nn.Activation{
		"identity": nn.NewIdentity(),
		"sigmoid":  nn.NewSigmoid(),
		"tanh":     nn.NewTanh(),
		"relu":     nn.NewReLU(),
	}

	// Points away from ReLU's kink.
	points := []float64{-1.5, -0.3, 0.4, 2.0}
	const h = 1e-6

	for name, act := range activations {
		for _, x := range points {
			y := act.F([]float64{x}, 0)
			numeric := (act.F([]float64{x + h}, 0) - act.F([]float64{x - h}, 0)) / (2 * h)

			assert.InDelta(t, numeric, act.DF(y), 1e-6, "%s at x=%v", name, x)
		}
	}
}

func TestSoftmax_NormalizesVector(t *testing.T) {
	sm := nn.NewSoftmax()
	a := []float64{1, 2, 3, 4}

	var sum float64
	prev := math.Inf(-1)
	for i := range a {
		y := sm.F(a, i)
		sum += y
		assert.Greater(t, y, prev, "softmax must preserve ordering")
		prev = y
	}

	assert.InDelta(t, 1, sum, 1e-12)
}

// TestSoftmax_LargeInputsStable checks the max-subtraction stabilization.
func TestSoftmax_LargeInputsStable(t *testing.T) {
	sm := nn.NewSoftmax()
	a := []float64{1000, 1000, 1000}

	for i := range a {
		y := sm.F(a, i)
		assert.False(t, math.IsNaN(y))
		assert.InDelta(t, 1.0/3.0, y, 1e-12)
	}
}
