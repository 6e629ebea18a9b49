package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/spectral/internal/backend/cpu"
	"github.com/born-ml/spectral/internal/norm"
	"github.com/born-ml/spectral/internal/tensor"
)

func weightTensor(t *testing.T) *tensor.Tensor[float64, *cpu.CPUBackend] {
	t.Helper()
	w, err := tensor.FromSlice([]float64{
		2.0, 0.0, 0.0,
		0.0, 1.0, 0.0,
	}, tensor.Shape{2, 3}, cpu.New())
	require.NoError(t, err)
	return w
}

func TestParameterWithoutParametrization(t *testing.T) {
	w := weightTensor(t)
	p := NewParameter("weight", w)

	assert.Equal(t, "weight", p.Name())
	assert.False(t, p.Parametrized())

	eff, err := p.Effective(norm.Training)
	require.NoError(t, err)
	assert.Same(t, w, eff, "unparametrized parameter passes the raw tensor through")
}

func TestRegisterSpectralNorm(t *testing.T) {
	w := weightTensor(t)
	p := NewParameter("disc.weight", w)

	sn, err := RegisterSpectralNorm(p, 1, 0, norm.DefaultEps)
	require.NoError(t, err)
	require.True(t, p.Parametrized())

	// The raw value is re-seeded through the identity right inverse.
	assert.Same(t, w, p.Tensor())

	var eff *tensor.Tensor[float64, *cpu.CPUBackend]
	for i := 0; i < 30; i++ {
		eff, err = p.Effective(norm.Training)
		require.NoError(t, err)
	}
	require.NotNil(t, eff)
	assert.Equal(t, w.Shape(), eff.Shape())

	// The raw parameter is untouched; only the effective view is scaled.
	assert.InDelta(t, 2.0, p.Tensor().At(0, 0), 0)

	// This weight's spectral norm is exactly 2, so the effective view
	// is weight / 2 once the estimate has converged.
	sigma, err := sn.Sigma(w)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sigma, 1e-6)
	assert.InDelta(t, 1.0, eff.At(0, 0), 1e-6)
	assert.InDelta(t, 0.5, eff.At(1, 1), 1e-6)
}

func TestRegisterSpectralNormValidates(t *testing.T) {
	p := NewParameter("weight", weightTensor(t))

	_, err := RegisterSpectralNorm(p, 0, 0, norm.DefaultEps)
	assert.ErrorIs(t, err, norm.ErrNonPositiveIterations)
	assert.False(t, p.Parametrized(), "failed registration must leave the parameter untouched")
}

func TestSetTensorRoutesThroughRightInverse(t *testing.T) {
	p := NewParameter("weight", weightTensor(t))
	_, err := RegisterSpectralNorm(p, 1, 0, norm.DefaultEps)
	require.NoError(t, err)

	replacement := tensor.Randn[float64](tensor.Shape{2, 3}, cpu.New())
	p.SetTensor(replacement)

	// Spectral norm's right inverse is the identity, so the value is
	// stored as-is.
	assert.Same(t, replacement, p.Tensor())
}
