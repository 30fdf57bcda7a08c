// Copyright 2025 Cascade ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/cascade-ml/cascade/internal/optim"
)

// Optimizer is the common interface for all update rules.
type Optimizer = optim.Optimizer

// SGD (Stochastic Gradient Descent)

// SGD implements stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	opt := optim.NewSGD(optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
//	chain.UpdateWeights(opt, batchSize)
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// Adam (Adaptive Moment Estimation)

// Adam implements the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for the Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer.
//
// Example:
//
//	opt := optim.NewAdam(optim.AdamConfig{LR: 0.001})
//	chain.UpdateWeights(opt, batchSize)
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}

// Levenberg-Marquardt gradient descent

// LevenbergMarquardt implements curvature-scaled gradient descent consuming
// the layer chain's diagonal Hessian estimates.
type LevenbergMarquardt = optim.LevenbergMarquardt

// LMConfig contains configuration for the LevenbergMarquardt optimizer.
type LMConfig = optim.LMConfig

// NewLevenbergMarquardt creates a new LevenbergMarquardt optimizer.
//
// Example:
//
//	opt := optim.NewLevenbergMarquardt(optim.LMConfig{Alpha: 0.00085, Mu: 0.02})
//	chain.ResetHessian()
//	chain.Backward2nd(delta2)
//	chain.DivideHessian(samples)
//	chain.UpdateWeights(opt, batchSize)
func NewLevenbergMarquardt(config LMConfig) *LevenbergMarquardt {
	return optim.NewLevenbergMarquardt(config)
}
