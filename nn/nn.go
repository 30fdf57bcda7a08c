// Copyright 2025 Cascade ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/cascade-ml/cascade/internal/nn"
)

// Layer is the chain protocol every layer kind implements.
type Layer = nn.Layer

// Optimizer applies one update step to a flat parameter slice; see the
// optim package for implementations.
type Optimizer = nn.Optimizer

// Activation is the nonlinearity capability attached to a layer.
type Activation = nn.Activation

// Chain is an owned, ordered sequence of layers wired into a bidirectional
// forward/backward cascade.
type Chain = nn.Chain

// Option configures a Chain at construction.
type Option = nn.Option

// NewChain creates an empty chain.
//
// Example:
//
//	chain := nn.NewChain(nn.WithPasses(4)).
//	    Add(nn.NewDense(2, 8, nn.NewTanh(), true)).
//	    Add(nn.NewDense(8, 1, nn.NewTanh(), true))
func NewChain(opts ...Option) *Chain {
	return nn.NewChain(opts...)
}

// WithPasses sets the maximum number of concurrently in-flight pass indices.
func WithPasses(n int) Option {
	return nn.WithPasses(n)
}

// WithParallelism enables or disables data-parallel fan-out inside each
// layer's propagation.
func WithParallelism(on bool) Option {
	return nn.WithParallelism(on)
}

// Layers

// Dense is a fully-connected layer.
type Dense = nn.Dense

// NewDense creates a fully-connected layer with Xavier initialization.
//
// Example:
//
//	layer := nn.NewDense(784, 128, nn.NewTanh(), true)
func NewDense(inDim, outDim int, h Activation, hasBias bool) *Dense {
	return nn.NewDense(inDim, outDim, h, hasBias)
}

// Input is the chain head layer; chains insert one automatically ahead of
// their first layer.
type Input = nn.Input

// NewInput creates an input layer of the given width.
func NewInput(size int) *Input {
	return nn.NewInput(size)
}

// Activations

// Identity is the no-op activation.
type Identity = nn.Identity

// NewIdentity creates an Identity activation.
func NewIdentity() Identity { return nn.NewIdentity() }

// Sigmoid is the logistic activation.
type Sigmoid = nn.Sigmoid

// NewSigmoid creates a Sigmoid activation.
func NewSigmoid() Sigmoid { return nn.NewSigmoid() }

// Tanh is the hyperbolic tangent activation.
type Tanh = nn.Tanh

// NewTanh creates a Tanh activation.
func NewTanh() Tanh { return nn.NewTanh() }

// ReLU is the rectified linear activation.
type ReLU = nn.ReLU

// NewReLU creates a ReLU activation.
func NewReLU() ReLU { return nn.NewReLU() }

// Softmax normalizes the whole pre-activation vector into a probability
// distribution.
type Softmax = nn.Softmax

// NewSoftmax creates a Softmax activation.
func NewSoftmax() Softmax { return nn.NewSoftmax() }

// Initialization

// XavierFill fills w with Xavier/Glorot uniform values for the given fan-in
// and fan-out.
func XavierFill(w []float64, fanIn, fanOut int) {
	nn.XavierFill(w, fanIn, fanOut)
}
