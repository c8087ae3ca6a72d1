// SPDX-License-Identifier: MIT

package compare

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/interp"
)

var (
	// ErrEmptySeries indicates a series with no points or mismatched X/Y lengths.
	ErrEmptySeries = errors.New("compare: empty or ragged series")

	// ErrNotMonotonic indicates empirical X values that are not strictly increasing.
	ErrNotMonotonic = errors.New("compare: series x must be strictly increasing")

	// ErrBadTolerance indicates a negative or non-finite tolerance.
	ErrBadTolerance = errors.New("compare: tolerance must be finite and >= 0")

	// ErrMismatch indicates a point outside tolerance.
	ErrMismatch = errors.New("compare: series differ beyond tolerance")
)

// Series is an ordered set of (X[i], Y[i]) points.
type Series struct {
	X []float64
	Y []float64
}

// Len returns the number of points.
func (s Series) Len() int { return len(s.X) }

func (s Series) validate(name string) error {
	if len(s.X) == 0 || len(s.X) != len(s.Y) {
		return fmt.Errorf("%s: x=%d y=%d: %w", name, len(s.X), len(s.Y), ErrEmptySeries)
	}
	return nil
}

// Mismatch describes the first point that failed AllClose.
type Mismatch struct {
	X, Want, Got float64
}

// Interpolate returns the empirical value at x: linear between points,
// constant beyond the ends. A single-point series is constant.
func Interpolate(s Series, x float64) (float64, error) {
	p, err := predictor(s)
	if err != nil {
		return 0, err
	}
	return p.Predict(x), nil
}

func predictor(s Series) (interp.Predictor, error) {
	if err := s.validate("empirical"); err != nil {
		return nil, err
	}
	if !sort.SliceIsSorted(s.X, func(i, j int) bool { return s.X[i] < s.X[j] }) || hasDuplicates(s.X) {
		return nil, fmt.Errorf("empirical: %w", ErrNotMonotonic)
	}
	if len(s.X) == 1 {
		return constant(s.Y[0]), nil
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(s.X, s.Y); err != nil {
		return nil, fmt.Errorf("empirical: %w", err)
	}
	return &pl, nil
}

type constant float64

func (c constant) Predict(float64) float64 { return float64(c) }

func hasDuplicates(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] == xs[i-1] {
			return true
		}
	}
	return false
}

// AllClose interpolates empirical at every theoretical X and accepts the
// point when |Δ| <= tol or |Δ|/|want| <= tol.
//
// Errors:
//   - ErrEmptySeries, ErrNotMonotonic, ErrBadTolerance — malformed input.
//   - ErrMismatch — wrapped with the first failing point.
func AllClose(empirical, theoretical Series, tol float64) error {
	_, err := FirstMismatch(empirical, theoretical, tol)
	return err
}

// FirstMismatch is AllClose that also returns the failing point (nil on
// success).
func FirstMismatch(empirical, theoretical Series, tol float64) (*Mismatch, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return nil, fmt.Errorf("tol=%v: %w", tol, ErrBadTolerance)
	}
	if err := theoretical.validate("theoretical"); err != nil {
		return nil, err
	}
	p, err := predictor(empirical)
	if err != nil {
		return nil, err
	}

	for i, x := range theoretical.X {
		want := theoretical.Y[i]
		got := p.Predict(x)
		if !scalar.EqualWithinAbsOrRel(got, want, tol, tol) {
			mm := &Mismatch{X: x, Want: want, Got: got}
			return mm, fmt.Errorf("x=%v want=%v got=%v tol=%v: %w", x, want, got, tol, ErrMismatch)
		}
	}
	return nil, nil
}
