package nn_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/cascade-ml/cascade/internal/nn"
)

// TestDense_Metadata checks the parameter-count and fan metadata for every
// constructor combination, including hasBias=false.
func TestDense_Metadata(t *testing.T) {
	cases := []struct {
		inDim, outDim int
		hasBias       bool
		want          int
	}{
		{3, 2, true, 3*2 + 2},
		{3, 2, false, 3 * 2},
		{1, 1, true, 2},
		{1, 1, false, 1},
		{10, 7, true, 10*7 + 7},
		{10, 7, false, 10 * 7},
	}

	for _, tc := range cases {
		l := nn.NewDense(tc.inDim, tc.outDim, nn.NewSigmoid(), tc.hasBias)

		assert.Equal(t, tc.want, l.ConnectionSize(), "in=%d out=%d bias=%v", tc.inDim, tc.outDim, tc.hasBias)
		assert.Equal(t, tc.inDim, l.FanInSize())
		assert.Equal(t, tc.outDim, l.FanOutSize())
		assert.Equal(t, "fully-connected", l.LayerType())
		assert.Equal(t, tc.hasBias, l.HasBias())
	}
}

// TestDense_ForwardMatchesReference checks forward propagation against an
// affine transform computed independently with gonum/mat:
// output = sigmoid(W^T·x + b).
func TestDense_ForwardMatchesReference(t *testing.T) {
	l := nn.NewDense(3, 2, nn.NewSigmoid(), true)

	w := []float64{
		0.1, -0.2, // input 0 -> outputs 0, 1
		0.4, 0.5, // input 1
		-0.6, 0.3, // input 2
	}
	copy(l.Weights(), w)
	copy(l.Biases(), []float64{0.05, -0.15})

	in := []float64{1.5, -2.0, 0.25}

	// Reference: W is [inSize x outSize] row-major by input index.
	wm := mat.NewDense(3, 2, w)
	x := mat.NewVecDense(3, in)
	var y mat.VecDense
	y.MulVec(wm.T(), x)

	sigmoid := nn.NewSigmoid()
	out := l.ForwardPropagation(in, 0)

	require.Len(t, out, 2)
	for i := 0; i < 2; i++ {
		pre := []float64{y.AtVec(i) + l.Biases()[i]}
		assert.InDelta(t, sigmoid.F(pre, 0), out[i], 1e-12, "output %d", i)
	}
}

// TestDense_ForwardNoBias checks that a bias-free layer computes W^T·x only.
func TestDense_ForwardNoBias(t *testing.T) {
	l := nn.NewDense(2, 2, nn.NewIdentity(), false)
	copy(l.Weights(), []float64{1, 2, 3, 4})

	out := l.ForwardPropagation([]float64{1, 1}, 0)

	require.Len(t, out, 2)
	assert.InDelta(t, 4, out[0], 1e-12) // 1*1 + 1*3
	assert.InDelta(t, 6, out[1], 1e-12) // 1*2 + 1*4
	assert.Empty(t, l.Biases())
}

// buildChain wires Input -> Dense(4, tanh) -> Dense(2, identity) with fixed
// weights drawn from rng.
func buildChain(parallelize bool, rng *rand.Rand) (*nn.Chain, *nn.Dense, *nn.Dense) {
	hidden := nn.NewDense(3, 4, nn.NewTanh(), true)
	out := nn.NewDense(4, 2, nn.NewIdentity(), true)

	chain := nn.NewChain(nn.WithParallelism(parallelize)).Add(hidden).Add(out)

	for _, l := range []*nn.Dense{hidden, out} {
		for i := range l.Weights() {
			l.Weights()[i] = rng.NormFloat64() * 0.5
		}
		for i := range l.Biases() {
			l.Biases()[i] = rng.NormFloat64() * 0.1
		}
	}

	return chain, hidden, out
}

// TestDense_ParallelMatchesSequential checks that the parallel-execution
// flag changes only scheduling, never the result beyond rounding.
func TestDense_ParallelMatchesSequential(t *testing.T) {
	seqChain, seqHidden, seqOut := buildChain(false, rand.New(rand.NewSource(7)))
	parChain, parHidden, parOut := buildChain(true, rand.New(rand.NewSource(7)))

	in := []float64{0.3, -1.2, 0.7}
	delta := []float64{0.25, -0.5}

	seqForward := seqChain.Forward(in, 0)
	parForward := parChain.Forward(in, 0)
	for i := range seqForward {
		assert.InDelta(t, seqForward[i], parForward[i], 1e-12, "forward output %d", i)
	}

	seqDelta := seqChain.Backward(delta, 0)
	parDelta := parChain.Backward(delta, 0)
	for i := range seqDelta {
		assert.InDelta(t, seqDelta[i], parDelta[i], 1e-12, "propagated delta %d", i)
	}

	for name, pair := range map[string][2]*nn.Dense{
		"hidden": {seqHidden, parHidden},
		"output": {seqOut, parOut},
	} {
		seqDW, seqDB := pair[0].Gradients(0)
		parDW, parDB := pair[1].Gradients(0)

		for i := range seqDW {
			assert.InDelta(t, seqDW[i], parDW[i], 1e-12, "%s dW[%d]", name, i)
		}
		for i := range seqDB {
			assert.InDelta(t, seqDB[i], parDB[i], 1e-12, "%s db[%d]", name, i)
		}
	}
}

// TestDense_GradientCheck verifies the analytic dW/db from backward
// propagation against finite-difference gradients of the squared-error loss,
// computed with gonum/diff/fd.
func TestDense_GradientCheck(t *testing.T) {
	chain, hidden, out := buildChain(false, rand.New(rand.NewSource(11)))

	in := []float64{0.5, -0.4, 1.1}
	target := []float64{0.2, -0.3}

	// Analytic gradients. The output layer's activation is identity, so the
	// delta fed to the chain tail is simply out - target.
	forward := chain.Forward(in, 0)
	delta := make([]float64, len(forward))
	for i := range delta {
		delta[i] = forward[i] - target[i]
	}
	chain.Backward(delta, 0)

	layers := []*nn.Dense{hidden, out}

	// Flatten all parameters into one vector for fd.Gradient.
	var params []float64
	for _, l := range layers {
		params = append(params, l.Weights()...)
		params = append(params, l.Biases()...)
	}

	loss := func(x []float64) float64 {
		offset := 0
		for _, l := range layers {
			offset += copy(l.Weights(), x[offset:offset+len(l.Weights())])
			offset += copy(l.Biases(), x[offset:offset+len(l.Biases())])
		}

		y := chain.Forward(in, 0)
		var e float64
		for i := range y {
			d := y[i] - target[i]
			e += 0.5 * d * d
		}
		return e
	}

	numeric := fd.Gradient(nil, loss, params, &fd.Settings{Formula: fd.Central})
	loss(params) // restore original parameters

	offset := 0
	for li, l := range layers {
		dW, db := l.Gradients(0)
		for i := range dW {
			assert.InDelta(t, numeric[offset+i], dW[i], 1e-6, "layer %d dW[%d]", li, i)
		}
		offset += len(dW)
		for i := range db {
			assert.InDelta(t, numeric[offset+i], db[i], 1e-6, "layer %d db[%d]", li, i)
		}
		offset += len(db)
	}
}

// TestDense_SecondOrderAccumulation checks the curvature update for a single
// sample with delta2 all ones: WHessian gains exactly prevOut[c]², bHessian
// gains exactly 1.
func TestDense_SecondOrderAccumulation(t *testing.T) {
	l := nn.NewDense(3, 2, nn.NewSigmoid(), true)
	chain := nn.NewChain().Add(l)

	in := []float64{0.5, -1.5, 2.0}
	chain.Forward(in, 0)

	delta2 := []float64{1, 1}
	propagated := chain.Backward2nd(delta2)

	require.Len(t, propagated, 3)

	for c := 0; c < 3; c++ {
		for r := 0; r < 2; r++ {
			assert.InDelta(t, in[c]*in[c], l.WeightHessian()[c*2+r], 1e-15, "WHessian[%d,%d]", c, r)
		}
	}
	for r := 0; r < 2; r++ {
		assert.InDelta(t, 1, l.BiasHessian()[r], 1e-15, "bHessian[%d]", r)
	}

	// The propagated second-order delta is Σ_r delta2[r]·W[c,r]² scaled by
	// the squared derivative of the previous (input, identity) layer.
	for c := 0; c < 3; c++ {
		var want float64
		for r := 0; r < 2; r++ {
			w := l.Weights()[c*2+r]
			want += w * w
		}
		assert.InDelta(t, want, propagated[c], 1e-12, "prevDelta2[%d]", c)
	}

	// A second sweep accumulates on top of the first.
	chain.Backward2nd(delta2)
	assert.InDelta(t, 2*in[0]*in[0], l.WeightHessian()[0], 1e-15)

	chain.DivideHessian(2)
	assert.InDelta(t, in[0]*in[0], l.WeightHessian()[0], 1e-15)

	chain.ResetHessian()
	assert.Zero(t, l.WeightHessian()[0])
	assert.Zero(t, l.BiasHessian()[0])
}
