// SPDX-License-Identifier: MIT
// Package: chainstat/chain
//
// options.go — functional options for model constructors.
//
// Option constructors validate and PANIC on meaningless inputs; model
// constructors themselves return sentinel errors.

package chain

import "math"

// DefaultTruncation is the half-width, in standard deviations, of the
// window the EFJC link stretch is drawn from.
const DefaultTruncation = 6.0

// EFJCOption customizes an EFJC model before construction.
type EFJCOption func(*efjcConfig)

type efjcConfig struct {
	truncation float64 // > 0, in standard deviations
}

// WithTruncation sets the stretch window half-width in standard deviations.
// Panics on non-finite or non-positive values.
func WithTruncation(sigmas float64) EFJCOption {
	if math.IsNaN(sigmas) || math.IsInf(sigmas, 0) || sigmas <= 0 {
		panic("chain: WithTruncation(sigmas<=0)")
	}
	return func(c *efjcConfig) {
		c.truncation = sigmas
	}
}

func newEFJCConfig(opts ...EFJCOption) efjcConfig {
	cfg := efjcConfig{truncation: DefaultTruncation}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
