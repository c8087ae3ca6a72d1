// SPDX-License-Identifier: MIT

package closedform

import (
	"fmt"
	"math"
)

// MaxTreloarLinks caps FJC: beyond it the alternating sum loses all
// significant digits and Ideal is the better reference.
const MaxTreloarLinks = 30

// Ideal evaluates the ideal-chain radial distribution
//
//	g(γ) = 4π·N³·γ²·(3/(2πN))^{3/2}·exp(−3Nγ²/2)
//
// at each γ. It integrates to one over [0, ∞).
func Ideal(links int, gammas []float64) ([]float64, error) {
	if links < 1 {
		return nil, fmt.Errorf("Ideal: got %d: %w", links, ErrBadLinkCount)
	}
	n := float64(links)
	pre := 4 * math.Pi * n * n * n * math.Pow(3/(2*math.Pi*n), 1.5)

	out := make([]float64, len(gammas))
	for i, g := range gammas {
		if g < 0 {
			continue
		}
		out[i] = pre * g * g * math.Exp(-1.5*n*g*g)
	}
	return out, nil
}

// FJC evaluates the exact freely-jointed-chain radial distribution
//
//	g(γ) = N²γ / (2^{N−1}(N−2)!) · Σ_{k=0}^{⌊N(1−γ)/2⌋} (−1)^k C(N,k) (N − 2k − Nγ)^{N−2}
//
// for 2 <= N <= MaxTreloarLinks. Values outside [0, 1] are zero.
func FJC(links int, gammas []float64) ([]float64, error) {
	if links < 2 || links > MaxTreloarLinks {
		return nil, fmt.Errorf("FJC: got %d, want [2,%d]: %w", links, MaxTreloarLinks, ErrBadLinkCount)
	}
	n := float64(links)
	lgPre, _ := math.Lgamma(n - 1) // ln (N−2)!
	pre := n * n / math.Exp(float64(links-1)*math.Ln2+lgPre)

	out := make([]float64, len(gammas))
	for i, g := range gammas {
		if g <= 0 || g > 1 {
			continue
		}
		r := n * g
		var sum float64
		binom := 1.0
		for k := 0; k <= links; k++ {
			base := n - 2*float64(k) - r
			if base < 0 {
				break
			}
			term := binom * math.Pow(base, n-2)
			if k%2 == 1 {
				term = -term
			}
			sum += term
			binom = binom * float64(links-k) / float64(k+1)
		}
		// cancellation can leave tiny negative residue near γ = 1
		out[i] = math.Max(0, pre*g*sum)
	}
	return out, nil
}
