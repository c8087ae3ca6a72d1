// SPDX-License-Identifier: MIT

package chain

import (
	"math/rand/v2"

	"github.com/katalvlaran/chainstat/vec3"
)

// MinLinks is the smallest chain that has an end-to-end vector.
const MinLinks = 1

// Method names used as error prefixes.
const (
	MethodNewFJC      = "NewFJC"
	MethodNewFRC      = "NewFRC"
	MethodNewEFJC     = "NewEFJC"
	MethodGenerate    = "Generate"
	MethodMeanSquare  = "MeanSquare"
	MethodMeanCosines = "MeanCosines"
)

// Model is a single-chain model that can be sampled one bond at a time.
//
// Bond returns bond i (0-based) given the previous bond. For i == 0, prev is
// the zero vector and must be ignored. Implementations must be stateless with
// respect to sampling: all randomness comes from rng.
type Model interface {
	// Name is a short lowercase identifier ("fjc", "frc", "efjc").
	Name() string
	// Links is the number of links N (>= MinLinks for a valid model).
	Links() int
	// MaxGamma is the largest reachable nondimensional end-to-end length per link.
	MaxGamma() float64
	// Bond draws one bond vector.
	Bond(rng *rand.Rand, prev vec3.Vec, i int) vec3.Vec
}

// Configuration is one sampled chain realization.
//
//   - Bonds[i]     — the i-th bond vector.
//   - Positions[i] — running sum Bonds[0] + … + Bonds[i]; Positions[N-1] is R.
//   - Cosines[i]   — cosine of the angle between Bonds[i] and Bonds[0]
//     (Cosines[0] == 1).
type Configuration struct {
	Bonds     []vec3.Vec
	Positions []vec3.Vec
	Cosines   []float64
}

// Links returns the number of links in the configuration.
func (c Configuration) Links() int {
	return len(c.Positions)
}

// EndToEnd returns the end-to-end vector R (zero for an empty configuration).
func (c Configuration) EndToEnd() vec3.Vec {
	if len(c.Positions) == 0 {
		return vec3.Zero
	}
	return c.Positions[len(c.Positions)-1]
}

// Gamma returns |R|/N, the nondimensional end-to-end length per link.
func (c Configuration) Gamma() float64 {
	if len(c.Positions) == 0 {
		return 0
	}
	return vec3.Norm(c.EndToEnd()) / float64(len(c.Positions))
}
