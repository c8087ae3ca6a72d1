// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chainstat/chain"
	"github.com/katalvlaran/chainstat/config"
)

func newMomentsCmd(a *app) *cobra.Command {
	j := config.Job{Name: "moments", Bins: 1, Workers: 1}
	var (
		seed    uint64
		samples int
		lags    int
	)
	cmd := &cobra.Command{
		Use:   "moments",
		Short: "Compare sampled ⟨γ²⟩ and bond-cosine decay with closed forms",
		Args:  cobra.NoArgs,
	}
	bindModelFlags(cmd, &j)
	f := cmd.Flags()
	f.IntVar(&samples, "samples", 100_000, "number of sampled chains")
	f.IntVar(&lags, "lags", 10, "bond lags of the cosine table (0 skips it)")
	f.Uint64Var(&seed, "seed", 0, "random seed (random when unset)")

	cmd.RunE = a.run(func(cmd *cobra.Command, _ []string) error {
		j.Samples = samples
		if err := config.ValidateJob(j); err != nil {
			return err
		}
		if lags < 0 {
			return fmt.Errorf("lags must be >= 0, got %d", lags)
		}
		var s *uint64
		if cmd.Flags().Changed("seed") {
			s = &seed
		}
		m, err := j.Build()
		if err != nil {
			return err
		}
		rng := randomSource(s)

		ms, err := chain.MeanSquare(m, rng, samples)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "model\t%s\n", m.Name())
		fmt.Fprintf(tw, "links\t%d\n", m.Links())
		fmt.Fprintf(tw, "max_gamma\t%.6g\n", m.MaxGamma())
		if want, ok := theoryMeanSquare(m); ok {
			fmt.Fprintf(tw, "mean_square\t%.6g\t(theory %.6g)\n", ms, want)
		} else {
			fmt.Fprintf(tw, "mean_square\t%.6g\n", ms)
		}

		if lags > 0 {
			cos, err := chain.MeanCosines(m, rng, samples)
			if err != nil {
				return err
			}
			fmt.Fprintln(tw, "\nlag\t⟨cos⟩\ttheory")
			for i := 0; i < lags && i < len(cos); i++ {
				fmt.Fprintf(tw, "%d\t%.6f\t%.6f\n", i, cos[i], cosineTheory(m, i))
			}
		}
		a.log.Debug("moments finished", "model", m.Name(), "links", m.Links(), "samples", samples)
		return tw.Flush()
	})
	return cmd
}

// cosineTheory is ⟨cos∠(b_i, b_0)⟩: cos(θ)^i for the frc, zero past lag 0
// for models with independent bond directions.
func cosineTheory(m chain.Model, lag int) float64 {
	if lag == 0 {
		return 1
	}
	if frc, ok := m.(*chain.FRC); ok {
		return math.Pow(frc.Theta().Cos(), float64(lag))
	}
	return 0
}
