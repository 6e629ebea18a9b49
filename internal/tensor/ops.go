package tensor

// MatMul performs matrix multiplication.
//
// Requirements:
//   - (M, K) @ (K, N) → (M, N), 2D tensors only
//
// Example:
//
//	a := tensor.Randn[float64](Shape{3, 4}, backend)
//	b := tensor.Randn[float64](Shape{4, 5}, backend)
//	c := a.MatMul(b) // Shape: [3, 5]
func (t *Tensor[T, B]) MatMul(other *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.MatMul(t.raw, other.raw)
	return New[T, B](result, t.backend)
}

// MatVec performs a matrix-vector product: (M, N) @ (N) → (M).
func (t *Tensor[T, B]) MatVec(x *Tensor[T, B]) *Tensor[T, B] {
	result := t.backend.MatVec(t.raw, x.raw)
	return New[T, B](result, t.backend)
}

// Dot computes the dot product of two 1D tensors as a float64 scalar.
func (t *Tensor[T, B]) Dot(other *Tensor[T, B]) float64 {
	return t.backend.Dot(t.raw, other.raw)
}

// Reshape returns a tensor with the same data but different shape.
// The new shape must have the same number of elements. The result is a
// view over the same storage.
//
// Example:
//
//	t := tensor.Randn[float64](Shape{12}, backend)
//	reshaped := t.Reshape(3, 4) // Shape: [3, 4]
func (t *Tensor[T, B]) Reshape(newShape ...int) *Tensor[T, B] {
	result := t.backend.Reshape(t.raw, Shape(newShape))
	return New[T, B](result, t.backend)
}

// Transpose transposes the tensor by permuting its dimensions.
//
// If axes is empty, reverses all dimensions (for 2D, this is standard transpose).
// Otherwise, axes specifies the permutation.
//
// Example:
//
//	t := tensor.Randn[float64](Shape{2, 3, 4}, backend)
//	transposed := t.Transpose(2, 0, 1) // Shape: [4, 2, 3]
func (t *Tensor[T, B]) Transpose(axes ...int) *Tensor[T, B] {
	result := t.backend.Transpose(t.raw, axes...)
	return New[T, B](result, t.backend)
}

// T is a shortcut for 2D transpose (swaps rows and columns).
// Panics if the tensor is not 2D.
func (t *Tensor[T, B]) T() *Tensor[T, B] {
	if len(t.Shape()) != 2 {
		panic("T() only works for 2D tensors")
	}
	return t.Transpose(1, 0)
}

// MulScalar multiplies every element by a scalar.
func (t *Tensor[T, B]) MulScalar(scalar float64) *Tensor[T, B] {
	result := t.backend.MulScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}

// DivScalar divides every element by a scalar.
func (t *Tensor[T, B]) DivScalar(scalar float64) *Tensor[T, B] {
	result := t.backend.DivScalar(t.raw, scalar)
	return New[T, B](result, t.backend)
}
