// Package nn provides the host-side wiring that substitutes a
// parameter's constrained view for its raw value.
package nn

import (
	"github.com/born-ml/spectral/internal/norm"
	"github.com/born-ml/spectral/internal/tensor"
)

// Parameter represents a named weight tensor owned by a host module.
//
// A parameter may carry a parametrization; when it does, Effective
// returns the parametrized view instead of the raw tensor, which is
// how spectral normalization substitutes weight / sigma wherever the
// original weight would be used.
//
// Example:
//
//	weight := nn.NewParameter("weight", weightTensor)
//	sn, err := nn.RegisterSpectralNorm(weight, 1, 0, norm.DefaultEps)
//	w, err := weight.Effective(norm.Training) // normalized view
type Parameter[T tensor.DType, B tensor.Backend] struct {
	name            string              // Parameter name (e.g., "weight")
	tensor          *tensor.Tensor[T, B] // The raw parameter tensor
	parametrization Parametrization[T, B]
}

// NewParameter creates a new parameter.
//
// Parameters:
//   - name: Descriptive name for this parameter (e.g., "disc.weight")
//   - t: The initialized parameter tensor
func NewParameter[T tensor.DType, B tensor.Backend](name string, t *tensor.Tensor[T, B]) *Parameter[T, B] {
	return &Parameter[T, B]{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter[T, B]) Name() string {
	return p.name
}

// Tensor returns the raw parameter tensor, bypassing any
// parametrization.
func (p *Parameter[T, B]) Tensor() *tensor.Tensor[T, B] {
	return p.tensor
}

// SetTensor replaces the raw parameter value. If a parametrization is
// registered, the value is first passed through its RightInverse to
// compute the pre-image to store.
func (p *Parameter[T, B]) SetTensor(t *tensor.Tensor[T, B]) {
	if p.parametrization != nil {
		t = p.parametrization.RightInverse(t)
	}
	p.tensor = t
}

// Effective returns the value the host should use in place of the raw
// parameter: the parametrized view when a parametrization is
// registered, the raw tensor otherwise.
func (p *Parameter[T, B]) Effective(mode norm.Mode) (*tensor.Tensor[T, B], error) {
	if p.parametrization == nil {
		return p.tensor, nil
	}
	return p.parametrization.Forward(p.tensor, mode)
}

// Parametrized reports whether a parametrization is registered.
func (p *Parameter[T, B]) Parametrized() bool {
	return p.parametrization != nil
}
