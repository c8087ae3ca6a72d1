// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chainstat/chain"
	"github.com/katalvlaran/chainstat/closedform"
	"github.com/katalvlaran/chainstat/config"
	"github.com/katalvlaran/chainstat/radial"
)

// bindModelFlags registers the flags that describe a chain model on cmd.
func bindModelFlags(cmd *cobra.Command, j *config.Job) {
	f := cmd.Flags()
	f.StringVar(&j.Model, "model", config.ModelFJC, "chain model: fjc, frc or efjc")
	f.IntVar(&j.Links, "links", 8, "number of links N")
	f.Float64Var(&j.Angle, "angle", 0, "frc constraint angle θ in radians")
	f.Float64Var(&j.Persistence, "persistence", 0, "frc persistence length κ = P/L; sets θ = sqrt(2/(Nκ))")
	f.Float64Var(&j.Stiffness, "stiffness", 0, "efjc nondimensional link stiffness")
}

// jobSeed returns the job's seed, drawing one from rng when it has none.
func jobSeed(j config.Job, rng *rand.Rand) uint64 {
	if j.Seed != nil {
		return *j.Seed
	}
	return rng.Uint64()
}

// randomSource returns a PCG stream seeded from seed, or a randomly seeded
// one when seed is nil.
func randomSource(seed *uint64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewPCG(*seed, 0))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// estimate builds the job's model and runs one radial estimation.
func estimate(ctx context.Context, log *slog.Logger, j config.Job, seed uint64) (*radial.Distribution, error) {
	m, err := j.Build()
	if err != nil {
		return nil, err
	}
	log = log.With("job", j.Name, "seed", seed)
	d, err := radial.Estimate(m, j.Bins, j.Samples,
		radial.WithContext(ctx),
		radial.WithSeed(seed),
		radial.WithWorkers(j.Workers),
		radial.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	attrs := []any{"max_gamma", d.MaxGamma, "mean", d.Mean(), "mean_square", d.MeanSquare()}
	if want, ok := theoryMeanSquare(m); ok {
		attrs = append(attrs, "mean_square_theory", want)
	}
	log.Info("job finished", attrs...)
	return d, nil
}

// theoryMeanSquare returns the closed-form ⟨γ²⟩ for the job's model.
func theoryMeanSquare(m chain.Model) (float64, bool) {
	var (
		v   float64
		err error
	)
	switch mm := m.(type) {
	case *chain.FJC:
		v, err = closedform.FJCMeanSquare(mm.Links())
	case *chain.FRC:
		v, err = closedform.FRCMeanSquare(mm.Links(), mm.Theta().Radians())
	case *chain.EFJC:
		v, err = closedform.EFJCMeanSquare(mm.Links(), mm.Kappa())
	default:
		return 0, false
	}
	return v, err == nil
}
