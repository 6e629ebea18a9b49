package tensor

// Backend defines the interface that compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The operation set is scoped to what spectral estimation needs:
// matrix-vector products for the power iteration, a dot product for the
// sigma estimate, permutation/reshape for the weight-to-matrix mapping,
// and scalar scaling for the normalized weight.
type Backend interface {
	// Matrix operations
	MatMul(a, b *RawTensor) *RawTensor // (M, K) @ (K, N) -> (M, N)
	MatVec(a, x *RawTensor) *RawTensor // (M, N) @ (N) -> (M)
	Dot(a, b *RawTensor) float64       // (N) · (N) -> scalar

	// Shape operations
	Reshape(t *RawTensor, newShape Shape) *RawTensor // view, no data movement
	Transpose(t *RawTensor, axes ...int) *RawTensor  // contiguous permuted copy

	// Scalar operations (element-wise with scalar)
	MulScalar(x *RawTensor, scalar float64) *RawTensor
	DivScalar(x *RawTensor, scalar float64) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
