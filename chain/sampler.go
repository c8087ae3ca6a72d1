// SPDX-License-Identifier: MIT

package chain

import (
	"math/rand/v2"

	"github.com/katalvlaran/chainstat/vec3"
)

// Generate samples one full configuration of m.
//
// Implementation:
//   - Stage 1: validate m, rng and the link count.
//   - Stage 2: draw bonds in order, each from the previous one, keeping the
//     running position sum and the cosine with the first bond.
//
// Complexity: O(N) time and memory.
func Generate(m Model, rng *rand.Rand) (Configuration, error) {
	if m == nil {
		return Configuration{}, chainErrorf(MethodGenerate, ErrNilModel, "model")
	}
	if rng == nil {
		return Configuration{}, chainErrorf(MethodGenerate, ErrNilRand, "rng")
	}
	n := m.Links()
	if n < MinLinks {
		return Configuration{}, chainErrorf(MethodGenerate, ErrBadLinkCount, "got %d", n)
	}

	cfg := Configuration{
		Bonds:     make([]vec3.Vec, n),
		Positions: make([]vec3.Vec, n),
		Cosines:   make([]float64, n),
	}

	var prev, pos vec3.Vec
	var first vec3.Vec
	for i := 0; i < n; i++ {
		b := m.Bond(rng, prev, i)
		pos = vec3.Add(pos, b)
		if i == 0 {
			first = vec3.Unit(b)
		}
		cfg.Bonds[i] = b
		cfg.Positions[i] = pos
		cfg.Cosines[i] = vec3.Dot(first, vec3.Unit(b))
		prev = b
	}

	return cfg, nil
}

// EndToEnd samples one chain and returns γ = |R|/N.
// It keeps only the running sum, so it allocates nothing. The caller
// guarantees m and rng are non-nil and m.Links() >= MinLinks.
func EndToEnd(m Model, rng *rand.Rand) float64 {
	n := m.Links()
	var prev, pos vec3.Vec
	for i := 0; i < n; i++ {
		prev = m.Bond(rng, prev, i)
		pos = vec3.Add(pos, prev)
	}
	return vec3.Norm(pos) / float64(n)
}

// MeanSquare estimates ⟨γ²⟩ from the given number of samples.
func MeanSquare(m Model, rng *rand.Rand, samples int) (float64, error) {
	if err := validateSampling(MethodMeanSquare, m, rng, samples); err != nil {
		return 0, err
	}

	var sum float64
	for s := 0; s < samples; s++ {
		g := EndToEnd(m, rng)
		sum += g * g
	}
	return sum / float64(samples), nil
}

// MeanCosines estimates ⟨cos∠(b_i, b_0)⟩ for every bond index i.
// For the FRC this decays as cos(θ)^i.
func MeanCosines(m Model, rng *rand.Rand, samples int) ([]float64, error) {
	if err := validateSampling(MethodMeanCosines, m, rng, samples); err != nil {
		return nil, err
	}

	out := make([]float64, m.Links())
	for s := 0; s < samples; s++ {
		cfg, err := Generate(m, rng)
		if err != nil {
			return nil, err
		}
		for i, c := range cfg.Cosines {
			out[i] += c
		}
	}
	inv := 1 / float64(samples)
	for i := range out {
		out[i] *= inv
	}
	return out, nil
}

func validateSampling(method string, m Model, rng *rand.Rand, samples int) error {
	if m == nil {
		return chainErrorf(method, ErrNilModel, "model")
	}
	if rng == nil {
		return chainErrorf(method, ErrNilRand, "rng")
	}
	if m.Links() < MinLinks {
		return chainErrorf(method, ErrBadLinkCount, "got %d", m.Links())
	}
	if samples < 1 {
		return chainErrorf(method, ErrBadSampleCount, "got %d", samples)
	}
	return nil
}
