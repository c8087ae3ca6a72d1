// SPDX-License-Identifier: MIT

package chain_test

import (
	"testing"

	"github.com/katalvlaran/chainstat/chain"
	"github.com/katalvlaran/chainstat/vec3"
)

func benchmarkEndToEnd(b *testing.B, m chain.Model) {
	rng := newRand(1)
	var sink float64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink += chain.EndToEnd(m, rng)
	}
	_ = sink
}

// BenchmarkEndToEnd_FJC8 measures one 8-link freely-jointed sample.
func BenchmarkEndToEnd_FJC8(b *testing.B) {
	m, _ := chain.NewFJC(8)
	benchmarkEndToEnd(b, m)
}

// BenchmarkEndToEnd_FRC256 measures one 256-link freely-rotating sample.
func BenchmarkEndToEnd_FRC256(b *testing.B) {
	m, _ := chain.NewFRC(256, vec3.DegToAngle(7.5))
	benchmarkEndToEnd(b, m)
}

// BenchmarkGenerate_FRC256 measures a full stored configuration.
func BenchmarkGenerate_FRC256(b *testing.B) {
	m, _ := chain.NewFRC(256, vec3.DegToAngle(7.5))
	rng := newRand(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := chain.Generate(m, rng); err != nil {
			b.Fatalf("Generate: %v", err)
		}
	}
}
