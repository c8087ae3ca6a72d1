// SPDX-License-Identifier: MIT

// Package compare checks an empirical radial distribution against a
// theoretical one.
//
// For every theoretical point (x, y) the empirical series is linearly
// interpolated at x and the pair is accepted when the absolute or the
// relative difference is within tolerance. The first failing point is
// reported through ErrMismatch.
//
//	emp := compare.Series{X: dist.Centers, Y: dist.Densities}
//	ref := compare.Series{X: xs, Y: ys}
//	if err := compare.AllClose(emp, ref, 0.05); err != nil { ... }
package compare
