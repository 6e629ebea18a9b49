package norm

// Mode selects the estimator's behavior for a forward call.
//
// The mode is an explicit per-call argument rather than module state so
// the estimator can be driven (and tested) in isolation from any host
// module's train/eval switching.
type Mode int

// Estimator modes.
const (
	// Training refines the u and v estimates before computing sigma.
	Training Mode = iota
	// Evaluation freezes the current estimate; buffers are never mutated.
	Evaluation
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case Training:
		return "training"
	case Evaluation:
		return "evaluation"
	default:
		return "unknown"
	}
}
