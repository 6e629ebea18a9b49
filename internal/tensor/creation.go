package tensor

import (
	"math"
	"math/rand"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float64](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	dtype := inferDataType(dummy)

	raw, err := NewRaw(shape, dtype, b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float32](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var one T = 1
	return Full[T, B](shape, one, b)
}

// Randn creates a tensor with random values from a normal distribution
// (mean=0, std=1) using the shared math/rand source.
// Note: Uses math/rand (not crypto/rand) - appropriate for ML/statistical purposes.
//
// Example:
//
//	t := tensor.Randn[float32](Shape{100, 100}, backend)
func Randn[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	randnFill(t.Data(), rand.Float64) //nolint:gosec // G404: ML uses math/rand intentionally
	return t
}

// RandnFrom creates a tensor with random normal values drawn from the
// given source. Two tensors created from sources with the same seed are
// element-for-element identical, which is what makes estimator
// construction reproducible.
//
// Example:
//
//	rng := rand.New(rand.NewSource(42))
//	t := tensor.RandnFrom[float64](Shape{10}, rng, backend)
func RandnFrom[T DType, B Backend](shape Shape, rng *rand.Rand, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	randnFill(t.Data(), rng.Float64)
	return t
}

// randnFill fills data with N(0, 1) draws using the Box-Muller transform.
func randnFill[T DType](data []T, uniform func() float64) {
	for i := 0; i < len(data); i += 2 {
		u1 := uniform()
		u2 := uniform()
		z0 := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
		z1 := math.Sqrt(-2.0*math.Log(u1)) * math.Sin(2.0*math.Pi*u2)
		data[i] = T(z0)
		if i+1 < len(data) {
			data[i+1] = T(z1)
		}
	}
}
