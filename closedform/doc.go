// SPDX-License-Identifier: MIT

// Package closedform holds the analytic reference results the Monte Carlo
// estimator is checked against.
//
//   - Ideal: Gaussian radial distribution of the ideal chain.
//   - FJC: exact radial distribution of the freely-jointed chain (Treloar's
//     finite sum), valid for N >= 2.
//   - WLC: wormlike-chain radial distribution (Becker–Rosa–Everaers
//     interpolation) for persistence length κ = P/L.
//   - FJCMeanSquare, FRCMeanSquare, WLCMeanSquare, EFJCMeanSquare: second
//     moments ⟨γ²⟩ of the nondimensional end-to-end length per link.
//
// All distributions are radial densities in γ = |R|/N normalized to unit area.
package closedform
