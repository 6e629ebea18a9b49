package cpu

import (
	"fmt"

	"github.com/born-ml/spectral/internal/tensor"
)

// Dot computes the dot product of two 1D tensors, accumulating in
// float64 regardless of the tensor dtype.
func (cpu *CPUBackend) Dot(a, b *tensor.RawTensor) float64 {
	if len(a.Shape()) != 1 || len(b.Shape()) != 1 {
		panic(fmt.Sprintf("dot: vectors must be 1D, got %v and %v", a.Shape(), b.Shape()))
	}
	if a.Shape()[0] != b.Shape()[0] {
		panic(fmt.Sprintf("dot: length mismatch %d vs %d", a.Shape()[0], b.Shape()[0]))
	}

	var sum float64
	switch a.DType() {
	case tensor.Float32:
		av, bv := a.AsFloat32(), b.AsFloat32()
		for i := range av {
			sum += float64(av[i]) * float64(bv[i])
		}
	case tensor.Float64:
		av, bv := a.AsFloat64(), b.AsFloat64()
		for i := range av {
			sum += av[i] * bv[i]
		}
	default:
		panic(fmt.Sprintf("dot: unsupported dtype %s", a.DType()))
	}
	return sum
}

// MulScalar multiplies every element by a scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result := cpu.newLike(x, "mulscalar")

	switch x.DType() {
	case tensor.Float32:
		src, dst := x.AsFloat32(), result.AsFloat32()
		s := float32(scalar)
		for i, v := range src {
			dst[i] = v * s
		}
	case tensor.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		for i, v := range src {
			dst[i] = v * scalar
		}
	default:
		panic(fmt.Sprintf("mulscalar: unsupported dtype %s", x.DType()))
	}

	return result
}

// DivScalar divides every element by a scalar. Division is performed
// directly rather than by multiplying with the reciprocal, so results
// are bit-identical to an element-wise division.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar float64) *tensor.RawTensor {
	result := cpu.newLike(x, "divscalar")

	switch x.DType() {
	case tensor.Float32:
		src, dst := x.AsFloat32(), result.AsFloat32()
		s := float32(scalar)
		for i, v := range src {
			dst[i] = v / s
		}
	case tensor.Float64:
		src, dst := x.AsFloat64(), result.AsFloat64()
		for i, v := range src {
			dst[i] = v / scalar
		}
	default:
		panic(fmt.Sprintf("divscalar: unsupported dtype %s", x.DType()))
	}

	return result
}

// newLike allocates a fresh tensor with the same shape and dtype as x.
func (cpu *CPUBackend) newLike(x *tensor.RawTensor, op string) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", op, err))
	}
	return result
}
