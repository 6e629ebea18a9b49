package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBackend is a metadata-only backend stub; tensor-level tests never
// dispatch compute operations.
type testBackend struct{}

func (testBackend) MatMul(a, b *RawTensor) *RawTensor                { panic("not implemented") }
func (testBackend) MatVec(a, x *RawTensor) *RawTensor                { panic("not implemented") }
func (testBackend) Dot(a, b *RawTensor) float64                      { panic("not implemented") }
func (testBackend) Reshape(t *RawTensor, newShape Shape) *RawTensor  { panic("not implemented") }
func (testBackend) Transpose(t *RawTensor, axes ...int) *RawTensor   { panic("not implemented") }
func (testBackend) MulScalar(x *RawTensor, scalar float64) *RawTensor { panic("not implemented") }
func (testBackend) DivScalar(x *RawTensor, scalar float64) *RawTensor { panic("not implemented") }
func (testBackend) Name() string                                     { return "test" }
func (testBackend) Device() Device                                   { return CPU }

func TestFromSlice(t *testing.T) {
	b := testBackend{}

	x, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, b)
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 3}, x.Shape())
	assert.Equal(t, Float64, x.DType())
	assert.InDelta(t, 6.0, x.At(1, 2), 0)

	_, err = FromSlice([]float64{1, 2, 3}, Shape{2, 3}, b)
	assert.Error(t, err, "element count mismatch must fail")
}

func TestTensorSet(t *testing.T) {
	b := testBackend{}
	x := Zeros[float32](Shape{2, 2}, b)

	x.Set(3.5, 1, 0)
	assert.InDelta(t, 3.5, x.At(1, 0), 0)
	assert.InDelta(t, 0.0, x.At(0, 1), 0)
}

func TestCloneSharesStorage(t *testing.T) {
	b := testBackend{}
	x, err := FromSlice([]float64{1, 2, 3}, Shape{3}, b)
	require.NoError(t, err)

	c := x.Clone()
	require.True(t, x.Raw().SharesStorage(c.Raw()))

	// A write through the clone is visible through the original.
	c.Data()[0] = 42
	assert.InDelta(t, 42.0, x.Data()[0], 0)
}

func TestDetachHasFreshStorage(t *testing.T) {
	b := testBackend{}
	x, err := FromSlice([]float64{1, 2, 3}, Shape{3}, b)
	require.NoError(t, err)

	d := x.Detach()
	require.False(t, x.Raw().SharesStorage(d.Raw()))
	assert.Equal(t, x.Data(), d.Data(), "detached copy is numerically identical")

	d.Data()[0] = 42
	assert.InDelta(t, 1.0, x.Data()[0], 0, "write to detached copy must not propagate")
}

func TestRawCopyFrom(t *testing.T) {
	b := testBackend{}
	dst, err := FromSlice([]float64{0, 0, 0}, Shape{3}, b)
	require.NoError(t, err)
	src, err := FromSlice([]float64{7, 8, 9}, Shape{3}, b)
	require.NoError(t, err)

	// The write must land in dst's existing storage so aliased views see it.
	alias := dst.Raw().Clone()
	require.NoError(t, dst.Raw().CopyFrom(src.Raw()))
	assert.Equal(t, []float64{7, 8, 9}, alias.AsFloat64())

	bad, err := FromSlice([]float64{1, 2}, Shape{2}, b)
	require.NoError(t, err)
	assert.Error(t, dst.Raw().CopyFrom(bad.Raw()), "shape mismatch must fail")
}

func TestRawView(t *testing.T) {
	b := testBackend{}
	x, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, b)
	require.NoError(t, err)

	v, err := x.Raw().View(Shape{3, 2})
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, v.Shape())
	assert.True(t, v.SharesStorage(x.Raw()), "view must not copy data")

	_, err = x.Raw().View(Shape{4, 2})
	assert.Error(t, err, "element count mismatch must fail")
}
