package nn

import "fmt"

// Chain is an owned, ordered sequence of layers wired into a bidirectional
// cascade. The chain owns the layer slice and sets every neighbor link at
// assembly time; layers never re-link themselves.
//
// Adding the first layer automatically inserts an Input head sized to that
// layer's fan-in, so the first parameterized layer always has a previous
// layer whose stored output its backward pass can read.
//
// Example:
//
//	chain := nn.NewChain(nn.WithPasses(4), nn.WithParallelism(true)).
//	    Add(nn.NewDense(2, 8, nn.NewTanh(), true)).
//	    Add(nn.NewDense(8, 1, nn.NewTanh(), true))
//
//	out := chain.Forward(sample, pass)
//	chain.Backward(delta, pass)
//	chain.UpdateWeights(opt, batchSize)
type Chain struct {
	layers      []Layer
	passes      int
	parallelize bool
}

// Option configures a Chain at construction.
type Option func(*Chain)

// WithPasses sets the maximum number of concurrently in-flight pass indices.
// Worker storage is sized for exactly this many passes; using a larger pass
// index is a precondition violation. Default 1.
func WithPasses(n int) Option {
	return func(c *Chain) { c.passes = n }
}

// WithParallelism enables or disables data-parallel fan-out inside each
// layer's propagation. Default on.
func WithParallelism(on bool) Option {
	return func(c *Chain) { c.parallelize = on }
}

// NewChain creates an empty chain.
func NewChain(opts ...Option) *Chain {
	c := &Chain{passes: 1, parallelize: true}
	for _, opt := range opts {
		opt(c)
	}
	if c.passes < 1 {
		panic(fmt.Sprintf("nn.NewChain: passes must be >= 1, got %d", c.passes))
	}
	return c
}

// Add appends a layer to the chain, wiring its neighbor links and sizing its
// worker storage. Panics if the layer's fan-in does not match the previous
// layer's output width — shapes are fixed at assembly time, never checked
// during propagation.
func (c *Chain) Add(l Layer) *Chain {
	if len(c.layers) == 0 {
		c.attach(NewInput(l.InSize()))
	}
	c.attach(l)
	return c
}

func (c *Chain) attach(l Layer) {
	if n := len(c.layers); n > 0 {
		last := c.layers[n-1]
		if last.OutSize() != l.InSize() {
			panic(fmt.Sprintf("Chain.Add: layer %d (%s) expects %d inputs, previous layer produces %d",
				n, l.LayerType(), l.InSize(), last.OutSize()))
		}
		last.setNext(l)
		l.setPrev(last)
	}
	l.setParallelize(c.parallelize)
	l.resizeWorkers(c.passes)
	c.layers = append(c.layers, l)
}

// Forward runs a forward cascade from the chain head and returns the final
// layer's output for the pass. Distinct pass indices may run concurrently.
func (c *Chain) Forward(in []float64, pass int) []float64 {
	return c.layers[0].ForwardPropagation(in, pass)
}

// Backward runs a first-order backward cascade from the chain tail,
// accumulating parameter gradients into each layer's pass-local storage, and
// returns the delta propagated past the first layer. The pass's forward call
// must have completed first.
func (c *Chain) Backward(delta []float64, pass int) []float64 {
	return c.layers[len(c.layers)-1].BackPropagation(delta, pass)
}

// Backward2nd runs a second-order backward cascade from the chain tail,
// accumulating diagonal curvature estimates. It is a single non-concurrent
// sweep over pass index 0.
func (c *Chain) Backward2nd(delta2 []float64) []float64 {
	return c.layers[len(c.layers)-1].BackPropagation2nd(delta2)
}

// UpdateWeights reduces every layer's pass-local gradient accumulators,
// scales them by batchSize, applies opt, and clears the accumulators. It
// must not run concurrently with backward passes.
func (c *Chain) UpdateWeights(opt Optimizer, batchSize int) {
	for _, l := range c.layers {
		l.updateWeights(opt, batchSize)
	}
}

// DivideHessian turns accumulated curvature sums into per-sample means after
// a second-order sweep over n samples.
func (c *Chain) DivideHessian(n int) {
	for _, l := range c.layers {
		l.divideHessian(n)
	}
}

// ResetHessian clears every layer's curvature accumulators.
func (c *Chain) ResetHessian() {
	for _, l := range c.layers {
		l.resetHessian()
	}
}

// Layers returns the chain's layers in order, including the Input head.
func (c *Chain) Layers() []Layer { return c.layers }

// Len returns the number of layers, including the Input head.
func (c *Chain) Len() int { return len(c.layers) }

// InSize returns the chain's input width.
func (c *Chain) InSize() int { return c.layers[0].InSize() }

// OutSize returns the chain's output width.
func (c *Chain) OutSize() int { return c.layers[len(c.layers)-1].OutSize() }

// ConnectionSize returns the total learnable parameter count of the chain.
func (c *Chain) ConnectionSize() int {
	total := 0
	for _, l := range c.layers {
		total += l.ConnectionSize()
	}
	return total
}
