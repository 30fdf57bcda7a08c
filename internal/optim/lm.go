package optim

import "gonum.org/v1/gonum/floats"

// LevenbergMarquardt implements curvature-scaled gradient descent over flat
// parameter slices, consuming the diagonal Hessian estimates the layer chain
// accumulates during second-order backward sweeps:
//
//	w[i] -= alpha / (h[i] + mu) * dw[i]
//
// mu regularizes the step where curvature is near zero. When no curvature is
// available (h nil) the rule degrades to plain alpha-scaled descent.
//
// Example:
//
//	opt := optim.NewLevenbergMarquardt(optim.LMConfig{})
//	chain.ResetHessian()
//	chain.Backward2nd(delta2)
//	chain.DivideHessian(samples)
//	chain.UpdateWeights(opt, batchSize)
type LevenbergMarquardt struct {
	alpha float64
	mu    float64
}

// LMConfig holds configuration for the LevenbergMarquardt optimizer.
type LMConfig struct {
	Alpha float64 // Base step size (default 0.00085)
	Mu    float64 // Curvature regularizer (default 0.02)
}

// NewLevenbergMarquardt creates a LevenbergMarquardt optimizer.
func NewLevenbergMarquardt(config LMConfig) *LevenbergMarquardt {
	if config.Alpha == 0 {
		config.Alpha = 0.00085
	}
	if config.Mu == 0 {
		config.Mu = 0.02
	}

	return &LevenbergMarquardt{alpha: config.Alpha, mu: config.Mu}
}

// Update applies one curvature-scaled step to w.
func (o *LevenbergMarquardt) Update(w, dw, h []float64) {
	if h == nil {
		floats.AddScaled(w, -o.alpha, dw)
		return
	}

	for i := range w {
		w[i] -= o.alpha / (h[i] + o.mu) * dw[i]
	}
}

// LR returns the base step size.
func (o *LevenbergMarquardt) LR() float64 { return o.alpha }

// SetLR updates the base step size.
func (o *LevenbergMarquardt) SetLR(alpha float64) { o.alpha = alpha }
