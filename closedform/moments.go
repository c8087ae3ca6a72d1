// SPDX-License-Identifier: MIT

package closedform

import (
	"fmt"
	"math"
)

// FJCMeanSquare returns ⟨γ²⟩ = 1/N for the freely-jointed chain.
func FJCMeanSquare(links int) (float64, error) {
	if links < 1 {
		return 0, fmt.Errorf("FJCMeanSquare: got %d: %w", links, ErrBadLinkCount)
	}
	return 1 / float64(links), nil
}

// FRCMeanSquare returns ⟨γ²⟩ of the freely-rotating chain with constraint
// angle theta (radians), c = cos θ:
//
//	⟨R²⟩ = N(1+c)/(1−c) − 2c(1−c^N)/(1−c)²,   ⟨γ²⟩ = ⟨R²⟩/N².
func FRCMeanSquare(links int, theta float64) (float64, error) {
	if links < 1 {
		return 0, fmt.Errorf("FRCMeanSquare: got %d: %w", links, ErrBadLinkCount)
	}
	if math.IsNaN(theta) || theta <= 0 || theta >= math.Pi {
		return 0, fmt.Errorf("FRCMeanSquare: theta %v: %w", theta, ErrBadParameter)
	}
	n := float64(links)
	c := math.Cos(theta)
	r2 := n*(1+c)/(1-c) - 2*c*(1-math.Pow(c, n))/((1-c)*(1-c))
	return r2 / (n * n), nil
}

// WLCMeanSquare returns ⟨γ²⟩ = 2κ − 2κ²(1 − e^{−1/κ}) of the wormlike chain
// with nondimensional persistence length κ = P/L.
func WLCMeanSquare(kappa float64) (float64, error) {
	if math.IsNaN(kappa) || math.IsInf(kappa, 0) || kappa <= 0 {
		return 0, fmt.Errorf("WLCMeanSquare: kappa %v: %w", kappa, ErrBadParameter)
	}
	return 2*kappa - 2*kappa*kappa*(-math.Expm1(-1/kappa)), nil
}

// EFJCMeanSquare returns the untruncated large-stiffness estimate of ⟨γ²⟩ for
// the extensible FJC: ⟨λ²⟩/N with the link-length density ∝ λ²exp(−κ(λ−1)²/2)
// approximated by Gaussian moments, ⟨λ²⟩ ≈ (1 + 6σ² + 3σ⁴)/(1 + σ²), σ² = 1/κ.
func EFJCMeanSquare(links int, kappa float64) (float64, error) {
	if links < 1 {
		return 0, fmt.Errorf("EFJCMeanSquare: got %d: %w", links, ErrBadLinkCount)
	}
	if math.IsNaN(kappa) || math.IsInf(kappa, 0) || kappa <= 0 {
		return 0, fmt.Errorf("EFJCMeanSquare: kappa %v: %w", kappa, ErrBadParameter)
	}
	s2 := 1 / kappa
	l2 := (1 + 6*s2 + 3*s2*s2) / (1 + s2)
	return l2 / float64(links), nil
}
