// SPDX-License-Identifier: MIT

package closedform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// wlcGrid is the number of points the WLC density is normalized on.
const wlcGrid = 1 << 14

// Becker–Rosa–Everaers interpolation constants.
const (
	breA = 14.054
	breB = 0.473
)

// breC holds c_ij for i = −1, 0 (rows) and j = 1, 2, 3 (columns).
var breC = [2][3]float64{
	{-3.0 / 4, 23.0 / 64, -7.0 / 64},
	{-1.0 / 2, 17.0 / 16, -9.0 / 16},
}

// WLC evaluates the radial distribution of the wormlike chain with
// nondimensional persistence length κ = P/L at each γ. The end-to-end vector
// density follows the Becker–Rosa–Everaers interpolation
//
//	G(γ) ∝ ((1−cγ²)/(1−γ²))^{5/2} · exp(Σ_{i=−1..0} Σ_{j=1..3} c_ij κ^i γ^{2j} / (1−γ²))
//	       · exp(−dκab(1+b)γ²/(1−b²γ²)) · I₀(dκa(1+b)γ/(1−b²γ²))
//
// and g(γ) = 4πγ²G(γ) is normalized numerically on [0, 1]. Values outside
// (0, 1) are zero. Its ⟨γ²⟩ is within a few percent of WLCMeanSquare over the
// whole κ range and within one percent for κ >= 0.4.
func WLC(kappa float64, gammas []float64) ([]float64, error) {
	if math.IsNaN(kappa) || math.IsInf(kappa, 0) || kappa <= 0 {
		return nil, fmt.Errorf("WLC: kappa %v: %w", kappa, ErrBadParameter)
	}
	w := newWLCDensity(kappa)

	// Stage 1: log-density on the grid, shifted by its maximum.
	xs := make([]float64, wlcGrid)
	floats.Span(xs, 0, 1)
	ls := make([]float64, wlcGrid)
	for i, x := range xs {
		ls[i] = w.logRadial(x)
	}
	top := floats.Max(ls)

	// Stage 2: normalization constant.
	ys := make([]float64, wlcGrid)
	for i, l := range ls {
		ys[i] = math.Exp(l - top)
	}
	z := integrate.Trapezoidal(xs, ys)

	// Stage 3: requested points.
	out := make([]float64, len(gammas))
	for i, g := range gammas {
		out[i] = math.Exp(w.logRadial(g)-top) / z
	}
	return out, nil
}

// wlcDensity holds the κ-dependent coefficients of one WLC density.
type wlcDensity struct {
	kappa float64
	c, d  float64
	poly  [3]float64 // Σ_i c_ij κ^i for j = 1, 2, 3
}

func newWLCDensity(kappa float64) wlcDensity {
	w := wlcDensity{kappa: kappa}
	w.c = 1 - math.Pow(1+math.Pow(0.38*math.Pow(kappa, -0.95), -5), -0.2)
	if kappa >= 1.0/8 {
		k := kappa - 0.111
		w.d = 1 - 1/(0.177/k+6.40*math.Pow(k, 0.783))
	}
	for j := range w.poly {
		w.poly[j] = breC[0][j]/kappa + breC[1][j]
	}
	return w
}

// logRadial returns ln(4πγ²G(γ)) up to the normalization constant, −Inf
// outside (0, 1).
func (w wlcDensity) logRadial(g float64) float64 {
	if !(g > 0 && g < 1) {
		return math.Inf(-1)
	}
	g2 := g * g
	s := 1 - g2
	expo := (w.poly[0]*g2 + w.poly[1]*g2*g2 + w.poly[2]*g2*g2*g2) / s
	den := 1 - breB*breB*g2
	dka := w.d * w.kappa * breA

	return math.Log(4*math.Pi*g2) +
		2.5*(math.Log(1-w.c*g2)-math.Log(s)) +
		expo -
		dka*breB*(1+breB)*g2/den +
		logI0(dka*(1+breB)*g/den)
}

// logI0 returns ln I₀(z), the modified Bessel function of the first kind of
// order zero: power series below 30, asymptotic expansion above.
func logI0(z float64) float64 {
	z = math.Abs(z)
	if z < 30 {
		q := z * z / 4
		sum, term := 1.0, 1.0
		for k := 1.0; term > 1e-17*sum; k++ {
			term *= q / (k * k)
			sum += term
		}
		return math.Log(sum)
	}
	inv := 1 / z
	return z - 0.5*math.Log(2*math.Pi*z) + math.Log1p(inv/8+9*inv*inv/128+225*inv*inv*inv/3072)
}
