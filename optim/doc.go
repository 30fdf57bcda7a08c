// Copyright 2025 Cascade ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides weight-update rules for the Cascade layer chain.
//
// # Overview
//
// This package contains:
//   - SGD: stochastic gradient descent with optional momentum
//   - Adam: adaptive moment estimation
//   - LevenbergMarquardt: curvature-scaled descent using the chain's
//     diagonal Hessian estimates from second-order backward sweeps
//
// Optimizers implement a single method, Update(w, dw, h), applied by
// Chain.UpdateWeights to every layer's parameters after the chain has
// reduced and batch-scaled the pass-local gradient accumulators.
package optim
