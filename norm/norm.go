// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package norm provides the public API for spectral normalization.
//
// A SpectralNorm estimator maintains a running power-iteration estimate
// of a weight tensor's largest singular value and exposes the
// normalized view weight / sigma:
//
//	backend := cpu.New()
//	weight, _ := tensor.FromSlice(data, tensor.Shape{4, 6}, backend)
//	sn, err := norm.New(weight, 1, 0, norm.DefaultEps)
//	normalized, err := sn.Forward(weight, norm.Training)
package norm

import (
	"math/rand"

	"github.com/born-ml/spectral/internal/norm"
	"github.com/born-ml/spectral/internal/tensor"
)

// DefaultEps is the default floor for normalization denominators.
const DefaultEps = norm.DefaultEps

// Mode selects the estimator's behavior for a forward call.
type Mode = norm.Mode

// Estimator modes.
const (
	Training   Mode = norm.Training
	Evaluation Mode = norm.Evaluation
)

// SpectralNorm is a stateful power-iteration estimator of a weight
// tensor's spectral norm.
type SpectralNorm[T tensor.DType, B tensor.Backend] = norm.SpectralNorm[T, B]

// Configuration errors.
var (
	ErrNonPositiveIterations = norm.ErrNonPositiveIterations
	ErrDimOutOfRange         = norm.ErrDimOutOfRange
)

// ShapeError reports a weight whose shape no longer matches the
// estimator's buffers.
type ShapeError = norm.ShapeError

// MissingBufferError reports a state dict without one of the
// estimator's named buffers.
type MissingBufferError = norm.MissingBufferError

// New creates a spectral norm estimator for weight, treating axis dim
// as the output dimension.
func New[T tensor.DType, B tensor.Backend](weight *tensor.Tensor[T, B], nPowerIterations, dim int, eps float64) (*SpectralNorm[T, B], error) {
	return norm.New(weight, nPowerIterations, dim, eps)
}

// NewFromSource is like New but draws the initial u and v vectors from
// rng, for reproducible construction.
func NewFromSource[T tensor.DType, B tensor.Backend](weight *tensor.Tensor[T, B], nPowerIterations, dim int, eps float64, rng *rand.Rand) (*SpectralNorm[T, B], error) {
	return norm.NewFromSource(weight, nPowerIterations, dim, eps, rng)
}
