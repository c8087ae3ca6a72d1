// SPDX-License-Identifier: MIT

package chain

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/chainstat/vec3"
)

// FRC is the freely-rotating chain: each bond turns by the fixed angle θ away
// from the previous one, with a uniformly random azimuth. The first bond is
// isotropic.
type FRC struct {
	links int
	theta vec3.Angle
	gmax  float64
}

// NewFRC returns a freely-rotating chain with the given number of links and
// constraint angle θ ∈ (0, π).
func NewFRC(links int, theta vec3.Angle) (*FRC, error) {
	if links < MinLinks {
		return nil, chainErrorf(MethodNewFRC, ErrBadLinkCount, "got %d", links)
	}
	th := theta.Radians()
	if math.IsNaN(th) || th <= 0 || th >= math.Pi {
		return nil, chainErrorf(MethodNewFRC, ErrBadAngle, "got %v", th)
	}

	return &FRC{links: links, theta: theta, gmax: frcMaxGamma(links, theta)}, nil
}

// frcMaxGamma bounds |R|/N for the freely-rotating chain.
//
// Any two consecutive bonds sum to at most 2cos(θ/2), so an even chain
// reaches at most N·cos(θ/2) = N·sqrt(2 − 2cos(π − θ))/2 (the planar zig-zag).
// An odd chain has one unpaired bond adding at most 1.
func frcMaxGamma(links int, theta vec3.Angle) float64 {
	pair := math.Sqrt(2-2*math.Cos(math.Pi-theta.Radians())) / 2
	if links%2 == 0 {
		return pair
	}
	return (float64(links-1)*pair + 1) / float64(links)
}

// Name returns "frc".
func (m *FRC) Name() string { return "frc" }

// Links returns the number of links N.
func (m *FRC) Links() int { return m.links }

// Theta returns the constraint angle.
func (m *FRC) Theta() vec3.Angle { return m.theta }

// MaxGamma returns the fully stretched zig-zag ratio: cos(θ/2) for even N,
// ((N−1)·cos(θ/2) + 1)/N for odd N.
func (m *FRC) MaxGamma() float64 { return m.gmax }

// Bond draws the first bond isotropically and every later bond on the cone of
// half-angle θ around prev.
func (m *FRC) Bond(rng *rand.Rand, prev vec3.Vec, i int) vec3.Vec {
	if i == 0 {
		return vec3.RandomUnit(rng)
	}
	return vec3.ConeStep(rng, prev, m.theta)
}
