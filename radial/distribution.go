// SPDX-License-Identifier: MIT

package radial

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// Distribution is a normalized nondimensional radial distribution: parallel
// slices of increasing bin centers and densities. It is produced once by
// Histogram.Density and not mutated afterwards.
type Distribution struct {
	Centers   []float64
	Densities []float64
	MaxGamma  float64
	Samples   uint64
}

// Bins returns the number of bins.
func (d *Distribution) Bins() int { return len(d.Centers) }

// BinWidth returns γ_max/B.
func (d *Distribution) BinWidth() float64 {
	if len(d.Centers) == 0 {
		return 0
	}
	return d.MaxGamma / float64(len(d.Centers))
}

// Integral returns Σ density·width; 1 up to rounding for a fresh estimate.
func (d *Distribution) Integral() float64 {
	return floats.Sum(d.Densities) * d.BinWidth()
}

// Mean returns the bin-center estimate of ⟨γ⟩.
func (d *Distribution) Mean() float64 {
	return floats.Dot(d.Centers, d.Densities) * d.BinWidth()
}

// MeanSquare returns the bin-center estimate of ⟨γ²⟩.
func (d *Distribution) MeanSquare() float64 {
	var s float64
	for i, c := range d.Centers {
		s += c * c * d.Densities[i]
	}
	return s * d.BinWidth()
}

// Predictor returns a piecewise-linear interpolant through
// (Centers[i], Densities[i]). Outside the first and last centers it holds
// the end values.
func (d *Distribution) Predictor() (interp.Predictor, error) {
	if len(d.Centers) < 2 {
		return nil, radialErrorf(methodPredictor, ErrTooFewBins, "bins=%d", len(d.Centers))
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(d.Centers, d.Densities); err != nil {
		return nil, radialErrorf(methodPredictor, err, "fit")
	}
	return &pl, nil
}
