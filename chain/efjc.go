// SPDX-License-Identifier: MIT

package chain

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/chainstat/vec3"
)

// EFJC is the extensible freely-jointed chain. Links are harmonic springs of
// nondimensional stiffness κ around unit rest length; orientations are
// isotropic.
//
// The link stretch λ follows ∝ λ²·exp(−κ(λ−1)²/2) on [λ_min, λ_max] with
// λ_min = max(0, 1 − w/√κ), λ_max = 1 + w/√κ and w the truncation width.
// Because |R| ≤ Σλ, γ never exceeds λ_max.
type EFJC struct {
	links int
	kappa float64
	sigma float64
	lmin  float64
	lmax  float64
}

// NewEFJC returns an extensible freely-jointed chain.
func NewEFJC(links int, kappa float64, opts ...EFJCOption) (*EFJC, error) {
	if links < MinLinks {
		return nil, chainErrorf(MethodNewEFJC, ErrBadLinkCount, "got %d", links)
	}
	if math.IsNaN(kappa) || math.IsInf(kappa, 0) || kappa <= 0 {
		return nil, chainErrorf(MethodNewEFJC, ErrBadStiffness, "got %v", kappa)
	}

	cfg := newEFJCConfig(opts...)
	sigma := 1 / math.Sqrt(kappa)
	return &EFJC{
		links: links,
		kappa: kappa,
		sigma: sigma,
		lmin:  math.Max(0, 1-cfg.truncation*sigma),
		lmax:  1 + cfg.truncation*sigma,
	}, nil
}

// Name returns "efjc".
func (m *EFJC) Name() string { return "efjc" }

// Links returns the number of links N.
func (m *EFJC) Links() int { return m.links }

// Kappa returns the nondimensional link stiffness.
func (m *EFJC) Kappa() float64 { return m.kappa }

// StretchRange returns the window [λ_min, λ_max] link stretches are drawn from.
func (m *EFJC) StretchRange() (lo, hi float64) { return m.lmin, m.lmax }

// MaxGamma returns λ_max: every link fully stretched and aligned.
func (m *EFJC) MaxGamma() float64 { return m.lmax }

// Bond draws an isotropic direction scaled by a random stretch.
func (m *EFJC) Bond(rng *rand.Rand, _ vec3.Vec, _ int) vec3.Vec {
	return vec3.Scale(m.Stretch(rng), vec3.RandomUnit(rng))
}

// Stretch draws one link stretch λ.
//
// Stage 1: Gaussian proposal N(1, 1/√κ), rejected outside [λ_min, λ_max].
// Stage 2: accept with probability (λ/λ_max)², the radial Jacobian of a 3-D
// link vector.
func (m *EFJC) Stretch(rng *rand.Rand) float64 {
	normal := distuv.Normal{Mu: 1, Sigma: m.sigma, Src: rng}
	hi2 := m.lmax * m.lmax
	for {
		l := normal.Rand()
		if l < m.lmin || l > m.lmax {
			continue
		}
		if rng.Float64()*hi2 <= l*l {
			return l
		}
	}
}
