// SPDX-License-Identifier: MIT
// Package: chainstat/radial
//
// options.go — functional options for Estimate.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs
//     (nil generator, nil logger, nil context, fewer than one worker).
//   - Determinism is explicit: WithSeed or WithRand. Without either, a
//     randomly seeded generator is used.
//   - No hidden globals; everything flows through estimateConfig.

package radial

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
)

// DefaultWorkers is the number of sampling goroutines per estimation.
const DefaultWorkers = 1

// Option customizes one Estimate call.
type Option func(*estimateConfig)

type estimateConfig struct {
	rng     *rand.Rand // base stream; worker streams are derived from it
	workers int        // >= 1
	logger  *slog.Logger
	ctx     context.Context
}

// WithSeed seeds a PCG generator for reproducible estimates.
func WithSeed(seed uint64) Option {
	return func(c *estimateConfig) {
		c.rng = rand.New(rand.NewPCG(seed, seedStream))
	}
}

// WithRand supplies the generator. With more than one worker it is only used
// to derive the worker seeds, so it is never touched concurrently.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("radial: WithRand(nil)")
	}
	return func(c *estimateConfig) {
		c.rng = r
	}
}

// WithWorkers splits the samples across k goroutines.
// Panics if k < 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("radial: WithWorkers(k<1)")
	}
	return func(c *estimateConfig) {
		c.workers = k
	}
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("radial: WithLogger(nil)")
	}
	return func(c *estimateConfig) {
		c.logger = l
	}
}

// WithContext lets the caller cancel a running estimation. Panics on nil.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("radial: WithContext(nil)")
	}
	return func(c *estimateConfig) {
		c.ctx = ctx
	}
}

// seedStream is the fixed PCG stream selector paired with user seeds.
const seedStream = 0x853c49e6748fea9b

func newEstimateConfig(opts ...Option) estimateConfig {
	cfg := estimateConfig{workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.ctx == nil {
		cfg.ctx = context.Background()
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg
}
