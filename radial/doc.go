// SPDX-License-Identifier: MIT

// Package radial estimates the nondimensional equilibrium radial
// distribution g_eq(γ) of a chain model by Monte Carlo sampling.
//
// 🚀 What does it compute?
//
//	Draw S independent chains, reduce each to γ = |R|/N, drop γ into B
//	equal-width bins over (0, γ_max], and rescale the counts into a
//	probability density:
//
//	  density[i] = count[i] / (S/B · γ_max)
//
//	so that Σ density[i]·(γ_max/B) = 1.
//
// ✨ Key features:
//   - Histogram with the exact right-edge tie-break: a sample equal to an
//     interior edge belongs to the upper bin (first bin whose right edge is
//     strictly greater), found in O(1) by index arithmetic.
//   - Samples outside [0, γ_max] are never clamped or dropped: they abort
//     the estimation with ErrBoundExceeded.
//   - Optional intra-estimation parallelism (WithWorkers): each worker owns a
//     private PCG stream and histogram; counts are merged after all workers
//     finish and normalized exactly once.
//   - Reproducible: WithSeed + the same worker count gives bit-identical
//     output.
//
// ⚙️ Usage:
//
//	m, _ := chain.NewFJC(8)
//	dist, err := radial.Estimate(m, 100, 100_000, radial.WithSeed(42))
//	// dist.Centers, dist.Densities
//
// Complexity:
//
//   - Time:   O(S·N) sampling + O(B) normalization
//   - Memory: O(B) per worker
package radial
