// SPDX-License-Identifier: MIT

package chain

import (
	"math/rand/v2"

	"github.com/katalvlaran/chainstat/vec3"
)

// FJC is the freely-jointed chain: N unit links with independent isotropic
// orientations.
type FJC struct {
	links int
}

// NewFJC returns a freely-jointed chain with the given number of links.
func NewFJC(links int) (*FJC, error) {
	if links < MinLinks {
		return nil, chainErrorf(MethodNewFJC, ErrBadLinkCount, "got %d", links)
	}
	return &FJC{links: links}, nil
}

// Name returns "fjc".
func (m *FJC) Name() string { return "fjc" }

// Links returns the number of links N.
func (m *FJC) Links() int { return m.links }

// MaxGamma is 1: the fully stretched chain has |R| = N.
func (m *FJC) MaxGamma() float64 { return 1 }

// Bond ignores the previous bond.
func (m *FJC) Bond(rng *rand.Rand, _ vec3.Vec, _ int) vec3.Vec {
	return vec3.RandomUnit(rng)
}
