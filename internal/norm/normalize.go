package norm

import (
	"fmt"
	"math"

	"github.com/born-ml/spectral/internal/tensor"
)

// normalizeInPlace scales x to unit Euclidean norm, writing into the
// storage x already owns. The denominator is floored at eps, so a
// near-zero vector produces a large-but-finite result instead of a
// division by zero; the zero vector stays zero.
func normalizeInPlace(x *tensor.RawTensor, eps float64) {
	switch x.DType() {
	case tensor.Float32:
		data := x.AsFloat32()
		var sum float64
		for _, v := range data {
			sum += float64(v) * float64(v)
		}
		denom := float32(math.Max(math.Sqrt(sum), eps))
		for i := range data {
			data[i] /= denom
		}
	case tensor.Float64:
		data := x.AsFloat64()
		var sum float64
		for _, v := range data {
			sum += v * v
		}
		denom := math.Max(math.Sqrt(sum), eps)
		for i := range data {
			data[i] /= denom
		}
	default:
		panic(fmt.Sprintf("normalize: unsupported dtype %s", x.DType()))
	}
}
