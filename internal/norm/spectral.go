package norm

import (
	"math/rand"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/born-ml/spectral/internal/tensor"
)

// DefaultEps is the default floor for normalization denominators.
const DefaultEps = 1e-12

// SpectralNorm maintains a running power-iteration estimate of a weight
// tensor's largest singular value and produces the normalized view
// weight / sigma.
//
// The estimator owns two buffers: u (length = weight extent along dim)
// and v (length = product of the remaining extents), the current
// estimates of the dominant left and right singular vectors of the
// reshaped weight. Each training-mode call refines them with
// nPowerIterations alternating matrix-vector products; one or a few
// iterations per call, amortized over many calls, converge far more
// cheaply than a full decomposition every call. Evaluation-mode calls
// freeze the estimate.
//
// Example:
//
//	backend := cpu.New()
//	weight, _ := tensor.FromSlice(data, tensor.Shape{4, 6}, backend)
//	sn, err := norm.New(weight, 1, 0, norm.DefaultEps)
//	normalized, err := sn.Forward(weight, norm.Training)
type SpectralNorm[T tensor.DType, B tensor.Backend] struct {
	dim              int
	nPowerIterations int
	eps              float64
	backend          B

	// u and v are refined in place on the storage they were constructed
	// with. A host replication layer hands each worker a Replicate()
	// whose buffers alias this storage; an in-place write is the only
	// way a worker's refinement reaches the canonical copy. A strategy
	// that allocates fresh vectors and reassigns would lose every
	// update made on a replica.
	u *tensor.RawTensor
	v *tensor.RawTensor

	initialized bool
	warnOnce    sync.Once
}

// New creates a spectral norm estimator for weight, treating axis dim
// as the output dimension. u and v are initialized from the shared
// math/rand source.
//
// nPowerIterations is the number of refinement steps per training-mode
// call and must be positive. eps floors every normalization
// denominator; use DefaultEps unless the host has a reason not to.
func New[T tensor.DType, B tensor.Backend](weight *tensor.Tensor[T, B], nPowerIterations, dim int, eps float64) (*SpectralNorm[T, B], error) {
	return newEstimator(weight, nPowerIterations, dim, eps, func(shape tensor.Shape) *tensor.Tensor[T, B] {
		return tensor.Randn[T, B](shape, weight.Backend())
	})
}

// NewFromSource is like New but draws the initial u and v from rng.
// Two estimators built from identically seeded sources over the same
// weight start with identical buffers.
func NewFromSource[T tensor.DType, B tensor.Backend](weight *tensor.Tensor[T, B], nPowerIterations, dim int, eps float64, rng *rand.Rand) (*SpectralNorm[T, B], error) {
	return newEstimator(weight, nPowerIterations, dim, eps, func(shape tensor.Shape) *tensor.Tensor[T, B] {
		return tensor.RandnFrom[T, B](shape, rng, weight.Backend())
	})
}

func newEstimator[T tensor.DType, B tensor.Backend](weight *tensor.Tensor[T, B], nPowerIterations, dim int, eps float64, randn func(tensor.Shape) *tensor.Tensor[T, B]) (*SpectralNorm[T, B], error) {
	if nPowerIterations <= 0 {
		return nil, ErrNonPositiveIterations
	}
	rank := len(weight.Shape())
	if dim < 0 || (rank > 0 && dim >= rank) || (rank == 0 && dim != 0) {
		return nil, ErrDimOutOfRange
	}

	backend := weight.Backend()
	mat := weightToMatrix(weight.Raw(), dim, backend)
	h, w := mat.Shape()[0], mat.Shape()[1]

	u := randn(tensor.Shape{h}).Raw()
	v := randn(tensor.Shape{w}).Raw()
	normalizeInPlace(u, eps)
	normalizeInPlace(v, eps)

	return &SpectralNorm[T, B]{
		dim:              dim,
		nPowerIterations: nPowerIterations,
		eps:              eps,
		backend:          backend,
		u:                u,
		v:                v,
	}, nil
}

// Forward returns weight / sigma, where sigma is the current spectral
// norm estimate u^T (W v) of the reshaped weight W.
//
// In Training mode the u and v buffers are first refined in place with
// nPowerIterations alternating steps (v from u, then u from v; the
// order changes the numerical trajectory), then rebound to detached copies in fresh storage so that
// two forward passes feeding one downstream computation never observe
// each other's mutations. In Evaluation mode the buffers are left
// untouched; if no training-mode call has ever refined them, a warning
// is logged once per instance because the estimate is still the random
// initial draw.
//
// The input weight is never mutated; the returned tensor has the same
// shape and fresh storage.
func (sn *SpectralNorm[T, B]) Forward(weight *tensor.Tensor[T, B], mode Mode) (*tensor.Tensor[T, B], error) {
	mat := weightToMatrix(weight.Raw(), sn.dim, sn.backend)
	h, w := mat.Shape()[0], mat.Shape()[1]
	if h != sn.u.NumElements() || w != sn.v.NumElements() {
		return nil, &ShapeError{
			Expected: tensor.Shape{sn.u.NumElements(), sn.v.NumElements()},
			Got:      tensor.Shape{h, w},
		}
	}

	switch mode {
	case Training:
		matT := sn.backend.Transpose(mat, 1, 0)
		for i := 0; i < sn.nPowerIterations; i++ {
			// v <- normalize(W^T u), then u <- normalize(W v).
			next := sn.backend.MatVec(matT, sn.u)
			normalizeInPlace(next, sn.eps)
			if err := sn.v.CopyFrom(next); err != nil {
				return nil, err
			}
			next = sn.backend.MatVec(mat, sn.v)
			normalizeInPlace(next, sn.eps)
			if err := sn.u.CopyFrom(next); err != nil {
				return nil, err
			}
		}
		// Rebind to fresh storage with no shared lineage. The aliased
		// canonical storage has already received the in-place updates;
		// the copies keep sigma usable across two independent forward
		// passes.
		sn.u = sn.u.DeepClone()
		sn.v = sn.v.DeepClone()
		sn.initialized = true
	case Evaluation:
		if !sn.initialized {
			sn.warnOnce.Do(func() {
				log.Warn().Msg("spectral norm forward called in evaluation mode before any training pass; u and v are still their random initialization")
			})
		}
	}

	sigma := sn.backend.Dot(sn.u, sn.backend.MatVec(mat, sn.v))
	return weight.DivScalar(sigma), nil
}

// RightInverse returns the pre-image the host should store as the raw
// parameter when value is installed as the constrained weight. It is
// the identity: the value is not validated or projected against the
// spectral-norm constraint. A stricter variant could reject values
// whose spectral norm already exceeds the target, but this one
// deliberately does not.
func (sn *SpectralNorm[T, B]) RightInverse(value *tensor.Tensor[T, B]) *tensor.Tensor[T, B] {
	return value
}

// Sigma returns the current spectral norm estimate for weight without
// refining the buffers.
func (sn *SpectralNorm[T, B]) Sigma(weight *tensor.Tensor[T, B]) (float64, error) {
	mat := weightToMatrix(weight.Raw(), sn.dim, sn.backend)
	h, w := mat.Shape()[0], mat.Shape()[1]
	if h != sn.u.NumElements() || w != sn.v.NumElements() {
		return 0, &ShapeError{
			Expected: tensor.Shape{sn.u.NumElements(), sn.v.NumElements()},
			Got:      tensor.Shape{h, w},
		}
	}
	return sn.backend.Dot(sn.u, sn.backend.MatVec(mat, sn.v)), nil
}

// Replicate returns an estimator whose buffers alias this estimator's
// storage, the way a data-parallel host broadcasts buffers to worker
// replicas. Training-mode refinement on the replica writes into the
// shared storage, so the canonical estimator observes it.
func (sn *SpectralNorm[T, B]) Replicate() *SpectralNorm[T, B] {
	return &SpectralNorm[T, B]{
		dim:              sn.dim,
		nPowerIterations: sn.nPowerIterations,
		eps:              sn.eps,
		backend:          sn.backend,
		u:                sn.u.Clone(),
		v:                sn.v.Clone(),
		initialized:      sn.initialized,
	}
}

// U returns the left singular vector estimate buffer.
func (sn *SpectralNorm[T, B]) U() *tensor.RawTensor {
	return sn.u
}

// V returns the right singular vector estimate buffer.
func (sn *SpectralNorm[T, B]) V() *tensor.RawTensor {
	return sn.v
}

// Initialized reports whether a training-mode pass has ever refined the
// buffers.
func (sn *SpectralNorm[T, B]) Initialized() bool {
	return sn.initialized
}

// NPowerIterations returns the number of refinement steps per
// training-mode call.
func (sn *SpectralNorm[T, B]) NPowerIterations() int {
	return sn.nPowerIterations
}

// StateDict returns the estimator's persistent buffers keyed by name.
// A host checkpointing layer must persist and restore them verbatim;
// they are state, not derivable from the weight alone.
func (sn *SpectralNorm[T, B]) StateDict() map[string]*tensor.RawTensor {
	return map[string]*tensor.RawTensor{
		"u": sn.u,
		"v": sn.v,
	}
}

// LoadStateDict restores the u and v buffers from a state dict
// produced by StateDict. The estimator is conservatively marked
// initialized: restored buffers already reflect prior refinement.
func (sn *SpectralNorm[T, B]) LoadStateDict(stateDict map[string]*tensor.RawTensor) error {
	u, ok := stateDict["u"]
	if !ok {
		return &MissingBufferError{Name: "u"}
	}
	v, ok := stateDict["v"]
	if !ok {
		return &MissingBufferError{Name: "v"}
	}
	if err := sn.u.CopyFrom(u); err != nil {
		return err
	}
	if err := sn.v.CopyFrom(v); err != nil {
		return err
	}
	sn.initialized = true
	return nil
}
