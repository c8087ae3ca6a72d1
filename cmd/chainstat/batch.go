// SPDX-License-Identifier: MIT

package main

import (
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/chainstat/config"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		seed   uint64
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "batch <jobs.yaml>",
		Short: "Run every job of a YAML file in parallel",
		Long: `Run the jobs of a YAML file, at most "workers" at a time. Each job is
an independent estimation with its own seed and writes <output_dir>/<name>.tsv,
plus <name>.png when plot is set. The first failing job cancels the rest.`,
		Args: cobra.ExactArgs(1),
	}
	f := cmd.Flags()
	f.Uint64Var(&seed, "seed", 0, "seed for jobs without one (random when unset)")
	f.StringVar(&outDir, "output-dir", "", "override output_dir")

	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(args[0])
		if err != nil {
			return err
		}
		if outDir != "" {
			cfg.OutputDir = outDir
		}
		log := a.log
		if !cmd.Flags().Changed("log-level") && !cmd.Flags().Changed("log-format") {
			log = cfg.NewLogger(a.errOut)
		}

		var master *uint64
		if cmd.Flags().Changed("seed") {
			master = &seed
		}
		rng := randomSource(master)
		// seeds are fixed in job order before anything runs
		seeds := make([]uint64, len(cfg.Jobs))
		for i, j := range cfg.Jobs {
			seeds[i] = jobSeed(j, rng)
		}

		log.Info("batch started", "jobs", len(cfg.Jobs), "workers", cfg.Workers, "output_dir", cfg.OutputDir)
		start := time.Now()

		g, ctx := errgroup.WithContext(cmd.Context())
		g.SetLimit(cfg.Workers)
		for i, j := range cfg.Jobs {
			g.Go(func() error {
				d, err := estimate(ctx, log, j, seeds[i])
				if err != nil {
					return err
				}
				base := filepath.Join(cfg.OutputDir, j.Name)
				if err = writeTSVFile(base+".tsv", d); err != nil {
					return err
				}
				if j.Plot {
					return writePlot(base+".png", j, d)
				}
				return nil
			})
		}
		if err = g.Wait(); err != nil {
			log.Error("batch failed", "err", err)
			return err
		}
		log.Info("batch finished", "elapsed", time.Since(start))
		return nil
	})
	return cmd
}
