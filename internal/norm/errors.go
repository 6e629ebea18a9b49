package norm

import (
	"errors"
	"fmt"

	"github.com/born-ml/spectral/internal/tensor"
)

// Configuration errors.
var (
	ErrNonPositiveIterations = errors.New("expected n_power_iterations to be positive")
	ErrDimOutOfRange         = errors.New("dim is outside the weight's rank")
)

// ShapeError reports a weight whose matrix shape no longer matches the
// estimator's buffers. The weight shape is fixed when the estimator is
// constructed; changing it between calls is a caller contract
// violation.
type ShapeError struct {
	Expected tensor.Shape // matrix shape the buffers were sized for
	Got      tensor.Shape // matrix shape of the weight passed in
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("weight matrix shape %v does not match estimator buffers sized for %v", e.Got, e.Expected)
}

// MissingBufferError reports a state dict without one of the
// estimator's named buffers.
type MissingBufferError struct {
	Name string
}

// Error implements the error interface.
func (e *MissingBufferError) Error() string {
	return fmt.Sprintf("state dict is missing buffer %q", e.Name)
}
