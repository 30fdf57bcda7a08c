package nn

import (
	"github.com/cascade-ml/cascade/internal/parallel"
	"github.com/cascade-ml/cascade/internal/vek"
)

// Dense is a fully-connected layer: every output unit is a weighted sum of
// all input units plus an optional bias, followed by the layer's activation.
//
// The weight matrix is stored flattened in row-major order by input index:
// W[c*outSize+i] is the weight from input unit c to output unit i. Weights
// and biases are shared across all concurrent passes; they are read-only
// during forward and delta propagation and mutated only by gradient
// accumulation and the optimizer.
//
// Example:
//
//	layer := nn.NewDense(784, 128, nn.NewTanh(), true)
//	chain := nn.NewChain().Add(layer)
//	out := chain.Forward(sample, 0)
type Dense struct {
	layerBase

	hasBias bool

	w []float64 // inSize*outSize, row-major by input index
	b []float64 // outSize, empty without bias

	wHessian []float64 // diagonal curvature accumulator, same shape as w
	bHessian []float64 // diagonal curvature accumulator, same shape as b
}

// NewDense creates a fully-connected layer mapping inDim inputs to outDim
// outputs through activation h. Weights are Xavier-initialized; biases, when
// present, start at zero.
func NewDense(inDim, outDim int, h Activation, hasBias bool) *Dense {
	biasSize := 0
	if hasBias {
		biasSize = outDim
	}

	l := &Dense{
		layerBase: newLayerBase(inDim, outDim, h),
		hasBias:   hasBias,
		w:         make([]float64, inDim*outDim),
		b:         make([]float64, biasSize),
		wHessian:  make([]float64, inDim*outDim),
		bHessian:  make([]float64, biasSize),
	}
	XavierFill(l.w, inDim, outDim)
	l.resizeWorkers(1)
	return l
}

// ConnectionSize returns the total learnable scalar parameter count:
// inDim*outDim weights plus outDim biases when the bias is present.
func (l *Dense) ConnectionSize() int {
	return l.inSize*l.outSize + len(l.b)
}

// FanInSize returns the number of inputs feeding each output unit.
func (l *Dense) FanInSize() int { return l.inSize }

// FanOutSize returns the number of outputs fed by each input unit.
func (l *Dense) FanOutSize() int { return l.outSize }

// LayerType identifies the layer kind.
func (l *Dense) LayerType() string { return "fully-connected" }

// HasBias reports whether the layer carries a bias vector.
func (l *Dense) HasBias() bool { return l.hasBias }

// Weights returns the flattened weight matrix. The slice aliases the layer's
// parameters; callers may mutate it between passes.
func (l *Dense) Weights() []float64 { return l.w }

// Biases returns the bias vector, empty when the layer has no bias.
func (l *Dense) Biases() []float64 { return l.b }

// WeightHessian returns the accumulated diagonal curvature of the weights.
func (l *Dense) WeightHessian() []float64 { return l.wHessian }

// BiasHessian returns the accumulated diagonal curvature of the biases.
func (l *Dense) BiasHessian() []float64 { return l.bHessian }

// Gradients returns the weight and bias gradient accumulators for a pass
// index. The slices alias worker storage: they are valid until the next
// weight update clears them.
func (l *Dense) Gradients(pass int) (dW, db []float64) {
	ws := l.worker(pass)
	return ws.dW, ws.db
}

// ForwardPropagation computes output[i] = h(W^T·in + b, i) for every output
// unit and cascades into the next layer. Each output unit is independent, so
// both the affine step and the activation step fan out per unit.
func (l *Dense) ForwardPropagation(in []float64, pass int) []float64 {
	ws := l.worker(pass)
	a, out := ws.a, ws.output

	parallel.For(l.parallelize, l.outSize, func(i int) {
		a[i] = 0
		for c := 0; c < l.inSize; c++ {
			a[i] += l.w[c*l.outSize+i] * in[c]
		}
		if l.hasBias {
			a[i] += l.b[i]
		}
	})

	parallel.For(l.parallelize, l.outSize, func(i int) {
		out[i] = l.h.F(a, i)
	})

	if l.next != nil {
		return l.next.ForwardPropagation(out, pass)
	}
	return out
}

// BackPropagation consumes currDelta, the error gradient for this layer's
// units, accumulates dW and db into the pass's worker storage, and cascades
// the propagated delta into the previous layer.
//
// Delta propagation fans out over input units: each prevDelta[c] is the dot
// product of currDelta with row c of W, chained through the previous layer's
// activation derivative. Gradient accumulation fans out over blocks of the
// *output* range instead: every block owns a disjoint column slice of each
// dW row, so concurrent blocks never write the same element and no locking
// is needed.
//
// Requires the previous layer's stored output for this pass index (the
// forward precondition).
func (l *Dense) BackPropagation(currDelta []float64, pass int) []float64 {
	ws := l.worker(pass)
	prevOut := l.prev.Output(pass)
	prevH := l.prev.ActivationFunction()

	parallel.For(l.parallelize, l.inSize, func(c int) {
		ws.prevDelta[c] = vek.Dot(currDelta, l.w[c*l.outSize:(c+1)*l.outSize])
		ws.prevDelta[c] *= prevH.DF(prevOut[c])
	})

	parallel.ForRange(l.parallelize, 0, l.outSize, func(r parallel.Range) {
		l.accumulateGradients(ws, currDelta, prevOut, r)
	})

	return l.prev.BackPropagation(ws.prevDelta, pass)
}

// accumulateGradients adds the outer-product contribution for one output
// block: dW[c*outSize+i] += currDelta[i] * prevOut[c] for i in r, plus the
// bias gradient. Writes stay inside the block's column slice — the
// disjoint-write invariant that keeps concurrent blocks race-free.
func (l *Dense) accumulateGradients(ws *workerStorage, currDelta, prevOut []float64, r parallel.Range) {
	for c := 0; c < l.inSize; c++ {
		vek.MulAdd(ws.dW[c*l.outSize+r.Begin:c*l.outSize+r.End], currDelta[r.Begin:r.End], prevOut[c])
	}
	if l.hasBias {
		for i := r.Begin; i < r.End; i++ {
			ws.db[i] += currDelta[i]
		}
	}
}

// BackPropagation2nd accumulates the diagonal curvature estimate for the
// layer's parameters from currDelta2 and cascades the propagated
// second-order delta. This is a single non-concurrent sweep over pass
// index 0; the squared derivative matches the Gauss-Newton diagonal
// approximation.
func (l *Dense) BackPropagation2nd(currDelta2 []float64) []float64 {
	ws := l.worker(0)
	prevOut := l.prev.Output(0)
	prevH := l.prev.ActivationFunction()

	for c := 0; c < l.inSize; c++ {
		in2 := prevOut[c] * prevOut[c]
		for r := 0; r < l.outSize; r++ {
			l.wHessian[c*l.outSize+r] += currDelta2[r] * in2
		}
	}

	if l.hasBias {
		for r := 0; r < l.outSize; r++ {
			l.bHessian[r] += currDelta2[r]
		}
	}

	for c := 0; c < l.inSize; c++ {
		ws.prevDelta2[c] = 0
		for r := 0; r < l.outSize; r++ {
			w := l.w[c*l.outSize+r]
			ws.prevDelta2[c] += currDelta2[r] * w * w
		}
		df := prevH.DF(prevOut[c])
		ws.prevDelta2[c] *= df * df
	}

	return l.prev.BackPropagation2nd(ws.prevDelta2)
}

func (l *Dense) resizeWorkers(passes int) {
	l.workers = make([]*workerStorage, passes)
	for i := range l.workers {
		l.workers[i] = newWorkerStorage(l.inSize, l.outSize, len(l.w), len(l.b))
	}
}

// updateWeights reduces the pass-local gradient accumulators into one,
// scales by the batch size, applies the optimizer to weights and biases, and
// clears the accumulators for the next batch.
func (l *Dense) updateWeights(opt Optimizer, batchSize int) {
	dW, db := l.workers[0].dW, l.workers[0].db
	for _, ws := range l.workers[1:] {
		vek.MulAdd(dW, ws.dW, 1)
		if l.hasBias {
			vek.MulAdd(db, ws.db, 1)
		}
	}

	if batchSize > 1 {
		inv := 1 / float64(batchSize)
		vek.Scale(dW, inv)
		if l.hasBias {
			vek.Scale(db, inv)
		}
	}

	opt.Update(l.w, dW, l.wHessian)
	if l.hasBias {
		opt.Update(l.b, db, l.bHessian)
	}

	for _, ws := range l.workers {
		ws.resetGradients()
	}
}

// divideHessian turns accumulated curvature sums into per-sample means after
// an accumulation sweep over n samples.
func (l *Dense) divideHessian(n int) {
	if n <= 1 {
		return
	}
	inv := 1 / float64(n)
	vek.Scale(l.wHessian, inv)
	vek.Scale(l.bHessian, inv)
}

// resetHessian clears the curvature accumulators for a new epoch.
func (l *Dense) resetHessian() {
	clear(l.wHessian)
	clear(l.bHessian)
}
