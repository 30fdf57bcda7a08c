package nn

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Activation is the nonlinearity capability attached to a layer.
//
// F receives the full pre-activation vector plus the index of the unit being
// activated, because some activations (softmax) depend on every unit, not
// just their own. DF is the derivative expressed in terms of the *output*
// value f(x), which is how backward passes consume it: they only have the
// stored output, never the pre-activation.
type Activation interface {
	// F evaluates the activation for unit i of pre-activation vector a.
	F(a []float64, i int) float64

	// DF returns the derivative at output value y = f(x).
	DF(y float64) float64
}

// Identity is the no-op activation: f(x) = x.
type Identity struct{}

// NewIdentity creates an Identity activation.
func NewIdentity() Identity { return Identity{} }

func (Identity) F(a []float64, i int) float64 { return a[i] }

func (Identity) DF(y float64) float64 { return 1 }

// Sigmoid is the logistic activation: f(x) = 1 / (1 + exp(-x)).
//
// Its derivative in terms of the output is f'(x) = y * (1 - y).
type Sigmoid struct{}

// NewSigmoid creates a Sigmoid activation.
func NewSigmoid() Sigmoid { return Sigmoid{} }

func (Sigmoid) F(a []float64, i int) float64 { return 1 / (1 + math.Exp(-a[i])) }

func (Sigmoid) DF(y float64) float64 { return y * (1 - y) }

// Tanh is the hyperbolic tangent activation.
//
// Its derivative in terms of the output is f'(x) = 1 - y².
type Tanh struct{}

// NewTanh creates a Tanh activation.
func NewTanh() Tanh { return Tanh{} }

func (Tanh) F(a []float64, i int) float64 { return math.Tanh(a[i]) }

func (Tanh) DF(y float64) float64 { return 1 - y*y }

// ReLU is the rectified linear activation: f(x) = max(0, x).
type ReLU struct{}

// NewReLU creates a ReLU activation.
func NewReLU() ReLU { return ReLU{} }

func (ReLU) F(a []float64, i int) float64 { return math.Max(0, a[i]) }

func (ReLU) DF(y float64) float64 {
	if y > 0 {
		return 1
	}
	return 0
}

// Softmax normalizes the whole pre-activation vector into a probability
// distribution: f(x)_i = exp(x_i) / Σ_k exp(x_k). The largest pre-activation
// is subtracted before exponentiation for numeric stability.
type Softmax struct{}

// NewSoftmax creates a Softmax activation.
func NewSoftmax() Softmax { return Softmax{} }

func (Softmax) F(a []float64, i int) float64 {
	alpha := floats.Max(a)
	var denom float64
	for _, v := range a {
		denom += math.Exp(v - alpha)
	}
	return math.Exp(a[i]-alpha) / denom
}

func (Softmax) DF(y float64) float64 { return y * (1 - y) }
