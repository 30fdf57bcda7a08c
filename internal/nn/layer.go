// Package nn implements the layer-chain core of the Cascade framework.
//
// A network is an ordered chain of layers. Forward calls cascade from the
// first layer toward the last, backward calls cascade from the last toward
// the first, and each layer's intermediate state is kept in per-pass worker
// storage so that several passes (distinct samples) can be in flight at
// once without aliasing.
//
// Propagation code performs no runtime validation: vector lengths and the
// forward-before-backward ordering per pass index are caller contracts,
// enforced at chain assembly time and by the orchestration layer.
package nn

// Layer is the chain protocol every layer kind implements.
//
// Forward and first-order backward calls carry a pass index selecting the
// worker storage for that in-flight computation. For a given pass index,
// ForwardPropagation must complete before BackPropagation is invoked with
// the same index: backward reads the previous layer's stored output.
// Second-order backward is a single non-concurrent sweep and always uses
// pass index 0.
type Layer interface {
	// ForwardPropagation computes this layer's output from in and cascades
	// into the next layer, returning the end of the chain's output. A layer
	// with no next layer returns its own output.
	ForwardPropagation(in []float64, pass int) []float64

	// BackPropagation consumes the delta for this layer, accumulates the
	// layer's parameter gradients into the pass's worker storage, and
	// cascades the propagated delta into the previous layer. A layer with
	// no previous layer returns the delta it was handed.
	BackPropagation(currDelta []float64, pass int) []float64

	// BackPropagation2nd accumulates diagonal curvature estimates for this
	// layer's parameters and cascades the propagated second-order delta
	// into the previous layer.
	BackPropagation2nd(currDelta2 []float64) []float64

	// Output returns the layer's stored post-activation output for a pass.
	Output(pass int) []float64

	// ActivationFunction returns the layer's nonlinearity.
	ActivationFunction() Activation

	// ConnectionSize returns the number of learnable scalar parameters.
	ConnectionSize() int

	// FanInSize and FanOutSize feed weight-initialization heuristics.
	FanInSize() int
	FanOutSize() int

	// InSize and OutSize are the layer's input and output vector lengths.
	InSize() int
	OutSize() int

	// LayerType identifies the layer kind.
	LayerType() string

	setPrev(p Layer)
	setNext(n Layer)
	setParallelize(on bool)
	resizeWorkers(passes int)
	updateWeights(opt Optimizer, batchSize int)
	divideHessian(n int)
	resetHessian()
}

// Optimizer applies one update step to a flat parameter slice given its
// accumulated gradient and, when available, its diagonal Hessian estimate.
// h is nil for layers that never accumulated curvature.
type Optimizer interface {
	Update(w, dw, h []float64)
}

// layerBase carries the state and plumbing common to every layer kind:
// dimensions, neighbor links, the activation, and per-pass worker storage.
// Concrete layers embed it and implement the propagation algorithms.
type layerBase struct {
	inSize  int
	outSize int

	h Activation

	prev Layer // nil for the chain head
	next Layer // nil for the chain tail

	parallelize bool

	workers []*workerStorage
}

func newLayerBase(inSize, outSize int, h Activation) layerBase {
	return layerBase{inSize: inSize, outSize: outSize, h: h}
}

// InSize returns the layer's input vector length.
func (l *layerBase) InSize() int { return l.inSize }

// OutSize returns the layer's output vector length.
func (l *layerBase) OutSize() int { return l.outSize }

// ActivationFunction returns the layer's nonlinearity.
func (l *layerBase) ActivationFunction() Activation { return l.h }

// Output returns the stored post-activation output for a pass index.
// Reading it before the pass's forward call has completed is a precondition
// violation.
func (l *layerBase) Output(pass int) []float64 { return l.workers[pass].output }

func (l *layerBase) setPrev(p Layer) { l.prev = p }

func (l *layerBase) setNext(n Layer) { l.next = n }

func (l *layerBase) setParallelize(on bool) { l.parallelize = on }

func (l *layerBase) worker(pass int) *workerStorage { return l.workers[pass] }
