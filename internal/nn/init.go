package nn

import (
	"math"
	"math/rand"
)

// XavierFill fills w with values from the Xavier/Glorot uniform
// distribution: U(-sqrt(6/(fanIn+fanOut)), sqrt(6/(fanIn+fanOut))).
//
// This initialization keeps activation variance stable across layers.
// Biases are left at zero by convention.
func XavierFill(w []float64, fanIn, fanOut int) {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	for i := range w {
		//nolint:gosec // math/rand is fine for weight initialization (not security-critical)
		w[i] = (rand.Float64()*2.0 - 1.0) * bound
	}
}
