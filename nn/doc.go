// Copyright 2025 Cascade ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the layer-chain building blocks of the Cascade
// framework.
//
// # Overview
//
// This package contains:
//   - Layers: Dense (fully-connected), Input
//   - Activations: Identity, Sigmoid, Tanh, ReLU, Softmax
//   - Chain: owned layer sequence driving forward/backward cascades
//   - Initialization: XavierFill
//
// A chain cascades three kinds of calls through its layers: forward
// propagation (input to output), first-order backward propagation
// (parameter gradients plus the delta handed to the previous layer), and
// second-order backward propagation (diagonal curvature estimates for
// curvature-aware optimizers).
//
// Passes are identified by an integer index so several samples can be in
// flight concurrently: each pass index owns its own scratch buffers inside
// every layer. For one pass index, forward must complete before backward.
// Gradient-accumulating backward calls for the same pass index must not run
// concurrently with each other or with the weight update.
//
// # Basic Usage
//
//	import (
//	    "github.com/cascade-ml/cascade/nn"
//	    "github.com/cascade-ml/cascade/optim"
//	)
//
//	func main() {
//	    chain := nn.NewChain().
//	        Add(nn.NewDense(2, 8, nn.NewTanh(), true)).
//	        Add(nn.NewDense(8, 1, nn.NewTanh(), true))
//
//	    opt := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//
//	    for epoch := 0; epoch < 1000; epoch++ {
//	        for _, s := range samples {
//	            out := chain.Forward(s.In, 0)
//	            delta := []float64{out[0] - s.Target}
//	            chain.Backward(delta, 0)
//	        }
//	        chain.UpdateWeights(opt, len(samples))
//	    }
//	}
package nn
