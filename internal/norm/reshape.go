package norm

import (
	"github.com/born-ml/spectral/internal/tensor"
)

// weightToMatrix maps an N-dimensional weight to a 2D matrix whose
// first dimension equals the weight's extent along dim and whose second
// dimension is the product of all remaining extents.
//
// When dim is already the leading axis this is a pure view over the
// weight's storage. Otherwise dim is permuted to the front (the other
// axes keep their relative order), which requires a contiguous copy.
// A rank-0 weight collapses to 1x1, a rank-1 weight to Nx1.
func weightToMatrix(w *tensor.RawTensor, dim int, b tensor.Backend) *tensor.RawTensor {
	shape := w.Shape()
	rank := len(shape)

	if rank == 0 {
		return b.Reshape(w, tensor.Shape{1, 1})
	}

	mat := w
	if dim != 0 {
		mat = b.Transpose(w, matrixPermutation(dim, rank)...)
	}

	h := mat.Shape()[0]
	return b.Reshape(mat, tensor.Shape{h, mat.NumElements() / h})
}

// matrixPermutation returns the axis order that moves dim to the front
// while keeping the remaining axes in their original relative order.
func matrixPermutation(dim, rank int) []int {
	perm := make([]int, 0, rank)
	perm = append(perm, dim)
	for d := 0; d < rank; d++ {
		if d != dim {
			perm = append(perm, d)
		}
	}
	return perm
}

// inversePermutation returns the permutation that undoes perm.
func inversePermutation(perm []int) []int {
	inv := make([]int, len(perm))
	for i, p := range perm {
		inv[p] = i
	}
	return inv
}
