package optim

import "math"

// Adam implements the Adam (Adaptive Moment Estimation) optimizer over flat
// parameter slices.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	w = w - lr * m_hat / (sqrt(v_hat) + eps)
//
// Adam ignores the diagonal Hessian argument: it estimates curvature from
// squared gradients itself.
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	lr    float64
	beta1 float64
	beta2 float64
	eps   float64

	states map[*float64]*adamState
}

// adamState carries the per-parameter-slice moment estimates and timestep.
type adamState struct {
	m []float64
	v []float64
	t int
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default 0.001)
	Betas [2]float64 // Running-average coefficients (default [0.9, 0.999])
	Eps   float64    // Numerical stability term (default 1e-8)
}

// NewAdam creates an Adam optimizer with standard defaults.
func NewAdam(config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		states: make(map[*float64]*adamState),
	}
}

// Update applies one Adam step to w. h is ignored.
func (a *Adam) Update(w, dw, h []float64) {
	if len(w) == 0 {
		return
	}

	st := a.state(&w[0], len(w))
	st.t++

	biasCorrection1 := 1.0 - math.Pow(a.beta1, float64(st.t))
	biasCorrection2 := 1.0 - math.Pow(a.beta2, float64(st.t))

	for i := range w {
		g := dw[i]

		st.m[i] = a.beta1*st.m[i] + (1.0-a.beta1)*g
		st.v[i] = a.beta2*st.v[i] + (1.0-a.beta2)*g*g

		mHat := st.m[i] / biasCorrection1
		vHat := st.v[i] / biasCorrection2

		w[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
	}
}

func (a *Adam) state(key *float64, n int) *adamState {
	st, ok := a.states[key]
	if !ok {
		st = &adamState{m: make([]float64, n), v: make([]float64, n)}
		a.states[key] = st
	}
	return st
}

// LR returns the current learning rate.
func (a *Adam) LR() float64 { return a.lr }

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float64) { a.lr = lr }
