// Package chainstat samples single polymer chains and estimates their
// equilibrium radial distributions by Monte Carlo.
//
// 🚀 What is in the box?
//
//	• Chain models: freely-jointed (FJC), freely-rotating (FRC) and
//	  extensible freely-jointed (EFJC) chains of N links
//	• Sampling: whole configurations, end-to-end ratios, ⟨γ²⟩ and
//	  bond-cosine decay
//	• Radial distributions: fixed-bin histograms normalized to unit area,
//	  optionally spread over several goroutines
//	• Closed forms: Treloar's exact FJC density, the ideal Gaussian chain,
//	  FRC and wormlike mean squares
//	• A CLI for one-off runs and YAML batches, with TSV and PNG output
//
// ✨ Guarantees
//
//   - Reproducible: every random draw comes from an explicit seeded source;
//     same seed, same inputs and same worker count give identical output.
//   - Bounded: every sample lies in [0, γ_max] of its model; anything else is
//     an error, never a silently dropped sample.
//   - No panics on user input; option constructors panic on programmer error.
//
// Packages:
//
//	vec3/       — 3-vectors, angles and random directions (cone steps)
//	chain/      — chain models and the configuration sampler
//	radial/     — histogram and radial-distribution estimator
//	closedform/ — analytical densities and moments
//	compare/    — interpolating comparison of empirical and exact curves
//	config/     — YAML/env job configuration for the CLI
//	cmd/chainstat — the command-line driver
//
// Quick example:
//
//	m, _ := chain.NewFRC(256, vec3.Angle(math.Sqrt(2/(256*0.4545))))
//	d, _ := radial.Estimate(m, 1000, 1_000_000, radial.WithSeed(1), radial.WithWorkers(4))
//	fmt.Println(d.Centers[500], d.Densities[500])
//
//	go install github.com/katalvlaran/chainstat/cmd/chainstat@latest
package chainstat
