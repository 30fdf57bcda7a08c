package nn

// Input is the chain head. It stores each pass's network input as its output
// so that the first parameterized layer's backward pass can read it, applies
// no transformation, and terminates backward cascades by returning the delta
// it is handed.
type Input struct {
	layerBase
}

// NewInput creates an input layer of the given width. Chains insert one
// automatically ahead of their first layer.
func NewInput(size int) *Input {
	l := &Input{layerBase: newLayerBase(size, size, NewIdentity())}
	l.resizeWorkers(1)
	return l
}

// ConnectionSize returns 0: the input layer has no learnable parameters.
func (l *Input) ConnectionSize() int { return 0 }

// FanInSize returns the layer width.
func (l *Input) FanInSize() int { return l.inSize }

// FanOutSize returns the layer width.
func (l *Input) FanOutSize() int { return l.outSize }

// LayerType identifies the layer kind.
func (l *Input) LayerType() string { return "input" }

// ForwardPropagation stores in as this pass's output and cascades into the
// next layer.
func (l *Input) ForwardPropagation(in []float64, pass int) []float64 {
	ws := l.worker(pass)
	copy(ws.a, in)
	copy(ws.output, in)

	if l.next != nil {
		return l.next.ForwardPropagation(ws.output, pass)
	}
	return ws.output
}

// BackPropagation terminates the backward cascade: the delta propagated to
// the input is the chain's final gradient with respect to the network input.
func (l *Input) BackPropagation(currDelta []float64, pass int) []float64 {
	return currDelta
}

// BackPropagation2nd terminates the second-order cascade.
func (l *Input) BackPropagation2nd(currDelta2 []float64) []float64 {
	return currDelta2
}

func (l *Input) resizeWorkers(passes int) {
	l.workers = make([]*workerStorage, passes)
	for i := range l.workers {
		l.workers[i] = newWorkerStorage(l.inSize, l.outSize, 0, 0)
	}
}

func (l *Input) updateWeights(opt Optimizer, batchSize int) {}
func (l *Input) divideHessian(n int)                        {}
func (l *Input) resetHessian()                              {}
