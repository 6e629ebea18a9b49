package cpu

import (
	"fmt"

	"github.com/born-ml/spectral/internal/tensor"
)

// Reshape returns a view of t with a new shape. No data is moved: the
// result shares storage with the input.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	v, err := t.View(newShape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return v
}

// Transpose permutes the dimensions of t and returns a contiguous copy
// in the permuted order.
//
// If axes is empty, all dimensions are reversed (standard 2D transpose).
func (cpu *CPUBackend) Transpose(t *tensor.RawTensor, axes ...int) *tensor.RawTensor {
	shape := t.Shape()
	rank := len(shape)

	if len(axes) == 0 {
		axes = make([]int, rank)
		for i := range axes {
			axes[i] = rank - 1 - i
		}
	}
	if len(axes) != rank {
		panic(fmt.Sprintf("transpose: got %d axes for rank-%d tensor", len(axes), rank))
	}

	seen := make([]bool, rank)
	outShape := make(tensor.Shape, rank)
	for i, ax := range axes {
		if ax < 0 || ax >= rank || seen[ax] {
			panic(fmt.Sprintf("transpose: invalid axes permutation %v for rank %d", axes, rank))
		}
		seen[ax] = true
		outShape[i] = shape[ax]
	}

	result, err := tensor.NewRaw(outShape, t.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("transpose: failed to create result tensor: %v", err))
	}

	if rank == 0 {
		if err := result.CopyFrom(t); err != nil {
			panic(fmt.Sprintf("transpose: %v", err))
		}
		return result
	}

	inStrides := shape.ComputeStrides()
	outStrides := outShape.ComputeStrides()
	total := shape.NumElements()

	switch t.DType() {
	case tensor.Float32:
		transposeCopy(result.AsFloat32(), t.AsFloat32(), axes, inStrides, outStrides, outShape, total)
	case tensor.Float64:
		transposeCopy(result.AsFloat64(), t.AsFloat64(), axes, inStrides, outStrides, outShape, total)
	default:
		panic(fmt.Sprintf("transpose: unsupported dtype %s", t.DType()))
	}

	return result
}

// transposeCopy walks the output in linear order and gathers from the
// permuted input coordinates.
func transposeCopy[T float32 | float64](dst, src []T, axes, inStrides, outStrides []int, outShape tensor.Shape, total int) {
	rank := len(outShape)
	for outIdx := 0; outIdx < total; outIdx++ {
		remaining := outIdx
		inIdx := 0
		for i := 0; i < rank; i++ {
			coord := remaining / outStrides[i]
			remaining %= outStrides[i]
			inIdx += coord * inStrides[axes[i]]
		}
		dst[outIdx] = src[inIdx]
	}
}
