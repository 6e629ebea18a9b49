// Package norm implements spectral normalization of weight tensors.
//
// The package provides a stateful power-iteration estimator of a weight
// tensor's largest singular value (its spectral norm) and the
// normalized view weight / sigma, following the method of
// "Spectral Normalization for Generative Adversarial Networks"
// (https://arxiv.org/abs/1802.05957).
//
// The estimator reshapes the weight to 2D along a fixed axis, refines
// its left/right singular-vector estimates in place on every
// training-mode call, and freezes the estimate in evaluation mode.
package norm
