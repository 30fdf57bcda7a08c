// Package optim implements weight-update rules for the Cascade layer chain.
//
// This package provides:
//   - Optimizer interface: one update step over a flat parameter slice
//   - SGD: stochastic gradient descent with optional momentum
//   - Adam: adaptive moment estimation
//   - LevenbergMarquardt: curvature-scaled descent consuming the chain's
//     diagonal Hessian estimates
//
// Optimizers own the update rule only. The layer chain owns gradient and
// curvature accumulation and hands reduced, batch-scaled gradients to
// Update; see Chain.UpdateWeights.
//
// Example usage:
//
//	opt := optim.NewSGD(optim.SGDConfig{LR: 0.01, Momentum: 0.9})
//
//	for epoch := range epochs {
//	    for pass, sample := range batch {
//	        out := chain.Forward(sample.In, pass)
//	        chain.Backward(lossGrad(out, sample.Target), pass)
//	    }
//	    chain.UpdateWeights(opt, len(batch))
//	}
package optim

// Optimizer is the base interface for all update rules.
//
// Update applies one step to parameter slice w in place, given its reduced
// gradient dw and, when the caller accumulated curvature, the diagonal
// Hessian estimate h (nil otherwise). w, dw, and h have equal length.
type Optimizer interface {
	Update(w, dw, h []float64)
}

var (
	_ Optimizer = (*SGD)(nil)
	_ Optimizer = (*Adam)(nil)
	_ Optimizer = (*LevenbergMarquardt)(nil)
)
