// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chainstat/config"
)

func newSampleCmd(a *app) *cobra.Command {
	j := config.Job{Name: "sample"}
	var (
		seed     uint64
		out      string
		plotPath string
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Estimate one radial distribution from flags",
		Long: `Sample chains of one model and print the normalized radial
distribution as "gamma<TAB>density" lines, to stdout or to --out.`,
		Args: cobra.NoArgs,
	}
	bindModelFlags(cmd, &j)
	f := cmd.Flags()
	f.IntVar(&j.Bins, "bins", config.DefaultBins, "number of histogram bins")
	f.IntVar(&j.Samples, "samples", config.DefaultSamples, "number of sampled chains")
	f.IntVar(&j.Workers, "workers", 1, "sampling goroutines")
	f.Uint64Var(&seed, "seed", 0, "random seed (random when unset)")
	f.StringVarP(&out, "out", "o", "", "output file (stdout when empty)")
	f.StringVar(&plotPath, "plot", "", "write a PNG plot to this path")

	cmd.RunE = a.run(func(cmd *cobra.Command, _ []string) error {
		if cmd.Flags().Changed("seed") {
			j.Seed = &seed
		}
		if err := config.ValidateJob(j); err != nil {
			return err
		}
		s := jobSeed(j, randomSource(nil))
		d, err := estimate(cmd.Context(), a.log, j, s)
		if err != nil {
			return err
		}

		if out == "" {
			err = writeTSV(a.out, d)
		} else {
			err = writeTSVFile(out, d)
		}
		if err != nil {
			return err
		}
		if plotPath != "" {
			return writePlot(plotPath, j, d)
		}
		return nil
	})
	return cmd
}
