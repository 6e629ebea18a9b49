package cpu

import (
	"fmt"

	"github.com/born-ml/spectral/internal/parallel"
	"github.com/born-ml/spectral/internal/tensor"
)

// MatMul performs matrix multiplication.
// For 2D tensors: (M, K) @ (K, N) -> (M, N)
// Uses a naive row-parallel O(n³) implementation; power iteration works
// on small weight matrices, so cache blocking is not worth the code.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	aShape := a.Shape()
	bShape := b.Shape()

	if len(aShape) != 2 || len(bShape) != 2 {
		panic(fmt.Sprintf("matmul: only 2D tensors supported, got %dD and %dD", len(aShape), len(bShape)))
	}

	m, k := aShape[0], aShape[1]
	kAlt, n := bShape[0], bShape[1]

	if k != kAlt {
		panic(fmt.Sprintf("matmul: shape mismatch [%d,%d] @ [%d,%d]", m, k, kAlt, n))
	}

	result, err := tensor.NewRaw(tensor.Shape{m, n}, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("matmul: failed to create result tensor: %v", err))
	}

	switch a.DType() {
	case tensor.Float32:
		matmulFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), m, k, n, cpu.par)
	case tensor.Float64:
		matmulFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), m, k, n, cpu.par)
	default:
		panic(fmt.Sprintf("matmul: unsupported dtype %s", a.DType()))
	}

	return result
}

// MatVec performs a matrix-vector product: (M, N) @ (N) -> (M).
func (cpu *CPUBackend) MatVec(a, x *tensor.RawTensor) *tensor.RawTensor {
	aShape := a.Shape()
	xShape := x.Shape()

	if len(aShape) != 2 {
		panic(fmt.Sprintf("matvec: matrix must be 2D, got %dD", len(aShape)))
	}
	if len(xShape) != 1 {
		panic(fmt.Sprintf("matvec: vector must be 1D, got %dD", len(xShape)))
	}

	m, n := aShape[0], aShape[1]
	if n != xShape[0] {
		panic(fmt.Sprintf("matvec: shape mismatch [%d,%d] @ [%d]", m, n, xShape[0]))
	}

	result, err := tensor.NewRaw(tensor.Shape{m}, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("matvec: failed to create result tensor: %v", err))
	}

	switch a.DType() {
	case tensor.Float32:
		matvecFloat32(result.AsFloat32(), a.AsFloat32(), x.AsFloat32(), m, n, cpu.par)
	case tensor.Float64:
		matvecFloat64(result.AsFloat64(), a.AsFloat64(), x.AsFloat64(), m, n, cpu.par)
	default:
		panic(fmt.Sprintf("matvec: unsupported dtype %s", a.DType()))
	}

	return result
}

// matmulFloat32 performs naive matrix multiplication for float32.
// C[i,j] = sum_k A[i,k] * B[k,j]
func matmulFloat32(c, a, b []float32, m, k, n int, cfg parallel.Config) {
	parallel.For(m, func(i int) {
		for j := 0; j < n; j++ {
			var sum float32
			for p := 0; p < k; p++ {
				sum += a[i*k+p] * b[p*n+j]
			}
			c[i*n+j] = sum
		}
	}, cfg)
}

// matmulFloat64 performs naive matrix multiplication for float64.
func matmulFloat64(c, a, b []float64, m, k, n int, cfg parallel.Config) {
	parallel.For(m, func(i int) {
		for j := 0; j < n; j++ {
			var sum float64
			for p := 0; p < k; p++ {
				sum += a[i*k+p] * b[p*n+j]
			}
			c[i*n+j] = sum
		}
	}, cfg)
}

// matvecFloat32 computes y[i] = sum_j A[i,j] * x[j] for float32.
func matvecFloat32(y, a, x []float32, m, n int, cfg parallel.Config) {
	parallel.For(m, func(i int) {
		var sum float32
		row := a[i*n : (i+1)*n]
		for j, v := range row {
			sum += v * x[j]
		}
		y[i] = sum
	}, cfg)
}

// matvecFloat64 computes y[i] = sum_j A[i,j] * x[j] for float64.
func matvecFloat64(y, a, x []float64, m, n int, cfg parallel.Config) {
	parallel.For(m, func(i int) {
		var sum float64
		row := a[i*n : (i+1)*n]
		for j, v := range row {
			sum += v * x[j]
		}
		y[i] = sum
	}, cfg)
}
