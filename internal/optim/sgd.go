package optim

import "gonum.org/v1/gonum/floats"

// SGD implements stochastic gradient descent with optional momentum over
// flat parameter slices.
//
// Update rule without momentum:
//
//	w -= lr * dw
//
// Update rule with momentum:
//
//	v = momentum * v + dw
//	w -= lr * v
//
// SGD ignores the diagonal Hessian argument; see LevenbergMarquardt for a
// curvature-aware rule.
//
// Example:
//
//	opt := optim.NewSGD(optim.SGDConfig{LR: 0.01, Momentum: 0.9})
//	chain.UpdateWeights(opt, batchSize)
type SGD struct {
	lr       float64
	momentum float64

	// One velocity buffer per parameter slice, keyed by the slice's first
	// element. Parameter slices are stable for a layer's lifetime.
	velocities map[*float64][]float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default 0.01)
	Momentum float64 // Momentum factor (default 0, range [0, 1))
}

// NewSGD creates an SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*float64][]float64),
	}
}

// Update applies one gradient-descent step to w. h is ignored.
func (s *SGD) Update(w, dw, h []float64) {
	if len(w) == 0 {
		return
	}

	if s.momentum == 0 {
		floats.AddScaled(w, -s.lr, dw)
		return
	}

	v := s.velocity(&w[0], len(w))
	floats.Scale(s.momentum, v)
	floats.Add(v, dw)
	floats.AddScaled(w, -s.lr, v)
}

func (s *SGD) velocity(key *float64, n int) []float64 {
	v, ok := s.velocities[key]
	if !ok {
		v = make([]float64, n)
		s.velocities[key] = v
	}
	return v
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 { return s.lr }

// SetLR updates the learning rate. Useful for scheduling during training.
func (s *SGD) SetLR(lr float64) { s.lr = lr }
