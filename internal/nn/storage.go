package nn

// workerStorage holds the scratch buffers for one in-flight pass through a
// layer. Each pass index owns its own storage, so concurrent passes never
// alias each other's intermediate state. Buffers are allocated once, at
// chain wiring time, and overwritten each time their pass index is reused.
//
// dW and db are gradient accumulators: backward passes add into them and
// the weight update reduces across pass indices and clears them.
type workerStorage struct {
	a          []float64 // pre-activation, len outSize
	output     []float64 // post-activation, len outSize
	prevDelta  []float64 // delta propagated to the previous layer, len inSize
	dW         []float64 // weight gradient accumulator, len inSize*outSize
	db         []float64 // bias gradient accumulator, len outSize (empty without bias)
	prevDelta2 []float64 // second-order delta to the previous layer, len inSize
}

func newWorkerStorage(inSize, outSize, weightSize, biasSize int) *workerStorage {
	return &workerStorage{
		a:          make([]float64, outSize),
		output:     make([]float64, outSize),
		prevDelta:  make([]float64, inSize),
		dW:         make([]float64, weightSize),
		db:         make([]float64, biasSize),
		prevDelta2: make([]float64, inSize),
	}
}

// resetGradients zeroes the gradient accumulators, keeping the scratch
// vectors untouched.
func (ws *workerStorage) resetGradients() {
	clear(ws.dW)
	clear(ws.db)
}
