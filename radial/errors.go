// SPDX-License-Identifier: MIT
// Package radial: sentinel error set.
//
// Every message is prefixed with "radial: ". Validation failures are
// returned before any sampling starts. ErrBoundExceeded is the one runtime
// failure: it means the model's γ_max is wrong or a sampler produced an
// impossible chain, and the estimate is abandoned rather than misbinned.

package radial

import (
	"errors"
	"fmt"
)

var (
	// ErrNilModel indicates a nil chain model.
	ErrNilModel = errors.New("radial: model is nil")

	// ErrBadLinkCount indicates a model with fewer than one link.
	ErrBadLinkCount = errors.New("radial: link count must be >= 1")

	// ErrBadBinCount indicates a non-positive bin count.
	ErrBadBinCount = errors.New("radial: bin count must be >= 1")

	// ErrBadSampleCount indicates a non-positive sample count.
	ErrBadSampleCount = errors.New("radial: sample count must be >= 1")

	// ErrBadMaxGamma indicates a non-finite or non-positive γ_max.
	ErrBadMaxGamma = errors.New("radial: max gamma must be finite and > 0")

	// ErrBoundExceeded indicates a sample outside [0, γ_max] (or NaN).
	ErrBoundExceeded = errors.New("radial: sample outside [0, max gamma]")

	// ErrHistogramMismatch indicates merging histograms of different shape.
	ErrHistogramMismatch = errors.New("radial: histogram shape mismatch")

	// ErrEmptyHistogram indicates normalizing a histogram with no samples.
	ErrEmptyHistogram = errors.New("radial: histogram has no samples")

	// ErrTooFewBins indicates interpolation over fewer than two bins.
	ErrTooFewBins = errors.New("radial: interpolation needs >= 2 bins")
)

// Method names used as error prefixes.
const (
	methodNewHistogram = "NewHistogram"
	methodAdd          = "Histogram.Add"
	methodMerge        = "Histogram.Merge"
	methodDensity      = "Histogram.Density"
	methodEstimate     = "Estimate"
	methodPredictor    = "Distribution.Predictor"
)

// radialErrorf prefixes err with the method name and a formatted detail.
func radialErrorf(method string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
