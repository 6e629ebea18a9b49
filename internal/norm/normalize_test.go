package norm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/spectral/internal/tensor"
)

func rawFromSlice64(t *testing.T, data []float64) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(tensor.Shape{len(data)}, tensor.Float64, tensor.CPU)
	require.NoError(t, err)
	copy(raw.AsFloat64(), data)
	return raw
}

func norm2(data []float64) float64 {
	var sum float64
	for _, v := range data {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func TestNormalizeInPlaceUnitNorm(t *testing.T) {
	x := rawFromSlice64(t, []float64{3, 4})

	normalizeInPlace(x, DefaultEps)

	data := x.AsFloat64()
	assert.InDelta(t, 1.0, norm2(data), 1e-12)
	assert.InDelta(t, 0.6, data[0], 1e-12)
	assert.InDelta(t, 0.8, data[1], 1e-12)
}

func TestNormalizeInPlaceZeroVector(t *testing.T) {
	x := rawFromSlice64(t, []float64{0, 0, 0})

	normalizeInPlace(x, DefaultEps)

	for _, v := range x.AsFloat64() {
		assert.Zero(t, v, "zero vector must stay zero, not become NaN")
		assert.False(t, math.IsNaN(v))
	}
}

func TestNormalizeInPlaceTinyVectorIsFloored(t *testing.T) {
	// Norm far below eps: the denominator is floored, so the result is
	// large but finite.
	x := rawFromSlice64(t, []float64{1e-300})

	normalizeInPlace(x, 1e-12)

	v := x.AsFloat64()[0]
	require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	assert.InDelta(t, 1e-288, v, 1e-292)
}

func TestNormalizeInPlaceFloat32(t *testing.T) {
	raw, err := tensor.NewRaw(tensor.Shape{2}, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	copy(raw.AsFloat32(), []float32{3, 4})

	normalizeInPlace(raw, DefaultEps)

	data := raw.AsFloat32()
	assert.InDelta(t, 0.6, data[0], 1e-6)
	assert.InDelta(t, 0.8, data[1], 1e-6)
}
