// SPDX-License-Identifier: MIT

// Package chain generates random single-chain configurations for the
// freely-jointed family of polymer models and reduces them to the
// nondimensional end-to-end length per link, γ = |R|/(N·ℓ).
//
// Models:
//
//   - FJC  — freely-jointed chain: N rigid unit links, each orientation
//     isotropic and independent of the others. γ_max = 1.
//   - FRC  — freely-rotating chain: every bond makes the fixed angle θ with
//     the previous bond, the azimuth around it is uniform.
//     γ_max = sqrt(2 − 2cos(π − θ))/2 = cos(θ/2).
//   - EFJC — extensible freely-jointed chain: isotropic directions, link
//     stretch λ drawn from the harmonic-link Boltzmann density
//     ∝ λ²·exp(−κ(λ−1)²/2) truncated to a finite window. γ_max = λ_max.
//
// Every model implements Model, so the radial estimator treats them alike.
//
// Sampling:
//
//	cfg, err := chain.Generate(model, rng) // full configuration
//	gamma := chain.EndToEnd(model, rng)    // running sum only, no storage
//
// A Configuration is created fresh per call and owned by the caller. The only
// state shared between calls is the *rand.Rand passed in; give each goroutine
// its own generator.
//
// Errors:
//
//	Constructors validate parameters and return sentinels from errors.go
//	(ErrBadLinkCount, ErrBadAngle, ErrBadStiffness); match with errors.Is.
package chain
