package nn

import (
	"github.com/born-ml/spectral/internal/norm"
	"github.com/born-ml/spectral/internal/tensor"
)

// Parametrization maps a raw parameter value to the effective value a
// host module should use, and back.
//
// Forward is called every time the host needs the effective weight.
// RightInverse is called when a value is installed or re-seeded, to
// compute what raw storage to keep under the hood.
type Parametrization[T tensor.DType, B tensor.Backend] interface {
	Forward(weight *tensor.Tensor[T, B], mode norm.Mode) (*tensor.Tensor[T, B], error)
	RightInverse(value *tensor.Tensor[T, B]) *tensor.Tensor[T, B]
}

// Register installs a parametrization on the parameter. The current
// raw value is re-seeded through the parametrization's RightInverse.
func Register[T tensor.DType, B tensor.Backend](p *Parameter[T, B], par Parametrization[T, B]) {
	p.tensor = par.RightInverse(p.tensor)
	p.parametrization = par
}

// RegisterSpectralNorm builds a spectral norm estimator over the
// parameter's current tensor and installs it as the parameter's
// parametrization. The returned estimator gives the host access to the
// persistent u/v buffers for checkpointing and replication.
//
// dim selects which axis of the weight is treated as the output
// dimension; 0 is the usual choice for linear and convolution weights
// laid out [out, ...].
func RegisterSpectralNorm[T tensor.DType, B tensor.Backend](p *Parameter[T, B], nPowerIterations, dim int, eps float64) (*norm.SpectralNorm[T, B], error) {
	sn, err := norm.New(p.tensor, nPowerIterations, dim, eps)
	if err != nil {
		return nil, err
	}
	Register[T, B](p, sn)
	return sn, nil
}
