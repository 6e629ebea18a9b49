// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the public API for wiring spectral normalization
// into a host module's parameters.
//
// Example:
//
//	backend := cpu.New()
//	weight := nn.NewParameter("disc.weight", weightTensor)
//	sn, err := nn.RegisterSpectralNorm(weight, 1, 0, norm.DefaultEps)
//	w, err := weight.Effective(norm.Training) // weight / sigma
package nn

import (
	"github.com/born-ml/spectral/internal/nn"
	"github.com/born-ml/spectral/internal/norm"
	"github.com/born-ml/spectral/internal/tensor"
)

// Parameter represents a named weight tensor owned by a host module.
type Parameter[T tensor.DType, B tensor.Backend] = nn.Parameter[T, B]

// Parametrization maps a raw parameter value to the effective value a
// host module should use, and back.
type Parametrization[T tensor.DType, B tensor.Backend] = nn.Parametrization[T, B]

// NewParameter creates a new parameter.
func NewParameter[T tensor.DType, B tensor.Backend](name string, t *tensor.Tensor[T, B]) *Parameter[T, B] {
	return nn.NewParameter[T, B](name, t)
}

// Register installs a parametrization on the parameter.
func Register[T tensor.DType, B tensor.Backend](p *Parameter[T, B], par Parametrization[T, B]) {
	nn.Register[T, B](p, par)
}

// RegisterSpectralNorm builds a spectral norm estimator over the
// parameter's current tensor and installs it as the parameter's
// parametrization.
func RegisterSpectralNorm[T tensor.DType, B tensor.Backend](p *Parameter[T, B], nPowerIterations, dim int, eps float64) (*norm.SpectralNorm[T, B], error) {
	return nn.RegisterSpectralNorm[T, B](p, nPowerIterations, dim, eps)
}
