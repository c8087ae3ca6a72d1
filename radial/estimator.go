// SPDX-License-Identifier: MIT

package radial

import (
	"context"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/chainstat/chain"
)

// cancelCheckMask sets how often a worker looks at its context (every 4096
// samples) so a failing peer stops the others quickly.
const cancelCheckMask = 1<<12 - 1

// Estimate computes the nondimensional equilibrium radial distribution of m
// from the given number of samples binned into the given number of bins.
//
// Implementation:
//   - Stage 1: validate model, bins and samples before any sampling.
//   - Stage 2: resolve options; derive one PCG stream per worker from the
//     base generator (a single worker uses the base generator itself).
//   - Stage 3: each worker fills a private Histogram with chain.EndToEnd
//     samples; the first ErrBoundExceeded cancels the rest.
//   - Stage 4: merge the worker histograms, then normalize once.
//
// Determinism:
//   - Same seed, model, bins, samples and worker count ⇒ bit-identical output.
//
// Errors:
//   - ErrNilModel, ErrBadLinkCount, ErrBadMaxGamma, ErrBadBinCount,
//     ErrBadSampleCount — validation.
//   - ErrBoundExceeded — a sample fell outside [0, γ_max].
//   - the context error when WithContext's context is cancelled.
//
// Complexity: O(S·N) time, O(B·workers) memory.
func Estimate(m chain.Model, bins, samples int, opts ...Option) (*Distribution, error) {
	// Stage 1 (Validate).
	if m == nil {
		return nil, radialErrorf(methodEstimate, ErrNilModel, "model")
	}
	if m.Links() < chain.MinLinks {
		return nil, radialErrorf(methodEstimate, ErrBadLinkCount, "%s links=%d", m.Name(), m.Links())
	}
	if bins < 1 {
		return nil, radialErrorf(methodEstimate, ErrBadBinCount, "got %d", bins)
	}
	if samples < 1 {
		return nil, radialErrorf(methodEstimate, ErrBadSampleCount, "got %d", samples)
	}
	merged, err := NewHistogram(bins, m.MaxGamma())
	if err != nil {
		return nil, radialErrorf(methodEstimate, err, "%s", m.Name())
	}

	// Stage 2 (Prepare).
	cfg := newEstimateConfig(opts...)
	workers := cfg.workers
	if workers > samples {
		workers = samples
	}
	log := cfg.logger.With(
		"model", m.Name(),
		"links", m.Links(),
		"bins", bins,
		"samples", samples,
		"workers", workers,
	)
	log.Debug("radial estimate started", "max_gamma", m.MaxGamma())
	start := time.Now()

	// Stage 3 (Execute).
	if workers == 1 {
		if err = fill(cfg.ctx, m, cfg.rng, merged, samples); err != nil {
			log.Error("radial estimate aborted", "err", err)
			return nil, err
		}
	} else {
		if err = fillParallel(cfg.ctx, m, cfg.rng, merged, samples, workers); err != nil {
			log.Error("radial estimate aborted", "err", err)
			return nil, err
		}
	}

	// Stage 4 (Finalize).
	dist, err := merged.Density()
	if err != nil {
		return nil, err
	}
	log.Debug("radial estimate finished", "elapsed", time.Since(start))
	return dist, nil
}

// RadialDistribution is Estimate returning the bare (centers, densities)
// pair.
func RadialDistribution(m chain.Model, bins, samples int, opts ...Option) (centers, densities []float64, err error) {
	d, err := Estimate(m, bins, samples, opts...)
	if err != nil {
		return nil, nil, err
	}
	return d.Centers, d.Densities, nil
}

// fill draws n samples into h using rng.
func fill(ctx context.Context, m chain.Model, rng *rand.Rand, h *Histogram, n int) error {
	for s := 0; s < n; s++ {
		if s&cancelCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := h.Add(chain.EndToEnd(m, rng)); err != nil {
			return radialErrorf(methodEstimate, err, "%s links=%d sample=%d", m.Name(), m.Links(), s)
		}
	}
	return nil
}

// fillParallel runs k workers with private streams and histograms and merges
// their counts into h once all of them are done.
func fillParallel(parent context.Context, m chain.Model, base *rand.Rand, h *Histogram, n, k int) error {
	parts := make([]*Histogram, k)
	streams := make([]*rand.Rand, k)
	for w := 0; w < k; w++ {
		// seeds come from the base stream in worker order, before any goroutine starts
		streams[w] = rand.New(rand.NewPCG(base.Uint64(), base.Uint64()))
		parts[w], _ = NewHistogram(h.Bins(), h.Max())
	}

	g, ctx := errgroup.WithContext(parent)
	share, extra := n/k, n%k
	for w := 0; w < k; w++ {
		count := share
		if w < extra {
			count++
		}
		g.Go(func() error {
			return fill(ctx, m, streams[w], parts[w], count)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, p := range parts {
		if err := h.Merge(p); err != nil {
			return err
		}
	}
	return nil
}
