// SPDX-License-Identifier: MIT

package closedform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/katalvlaran/chainstat/closedform"
)

func grid(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	floats.Span(xs, lo, hi)
	return xs
}

func TestFJC_TwoLinksIsLinear(t *testing.T) {
	t.Parallel()

	xs := []float64{0.1, 0.25, 0.5, 0.9, 1}
	ys, err := closedform.FJC(2, xs)
	require.NoError(t, err)
	for i, x := range xs {
		assert.InDelta(t, 2*x, ys[i], 1e-12, "γ=%v", x)
	}
}

func TestFJC_ThreeLinksPiecewise(t *testing.T) {
	t.Parallel()

	xs := []float64{0.1, 1.0 / 3, 0.5, 0.8}
	ys, err := closedform.FJC(3, xs)
	require.NoError(t, err)

	assert.InDelta(t, 13.5*0.01, ys[0], 1e-12)
	assert.InDelta(t, 1.5, ys[1], 1e-12)
	assert.InDelta(t, 6.75*0.5*0.5, ys[2], 1e-12)
	assert.InDelta(t, 6.75*0.8*0.2, ys[3], 1e-12)
}

func TestFJC_Normalized(t *testing.T) {
	t.Parallel()

	xs := grid(0, 1, 20001)
	for _, n := range []int{2, 4, 8, 16} {
		ys, err := closedform.FJC(n, xs)
		require.NoError(t, err)
		assert.InDelta(t, 1, integrate.Trapezoidal(xs, ys), 1e-4, "N=%d", n)
		assert.GreaterOrEqual(t, floats.Min(ys), 0.0)
	}
}

func TestFJC_OutsideDomainIsZero(t *testing.T) {
	t.Parallel()

	ys, err := closedform.FJC(8, []float64{-0.1, 0, 1.2})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, ys)
}

func TestFJC_BadLinks(t *testing.T) {
	t.Parallel()

	_, err := closedform.FJC(1, []float64{0.5})
	assert.ErrorIs(t, err, closedform.ErrBadLinkCount)
	_, err = closedform.FJC(closedform.MaxTreloarLinks+1, []float64{0.5})
	assert.ErrorIs(t, err, closedform.ErrBadLinkCount)
}

func TestIdeal_NormalizedAndPeak(t *testing.T) {
	t.Parallel()

	const n = 10
	xs := grid(0, 3, 30001)
	ys, err := closedform.Ideal(n, xs)
	require.NoError(t, err)
	assert.InDelta(t, 1, integrate.Trapezoidal(xs, ys), 1e-6)

	// the maximum sits at γ* = sqrt(2/(3N))
	peak := math.Sqrt(2.0 / (3 * n))
	assert.InDelta(t, peak, xs[floats.MaxIdx(ys)], 1e-3)

	_, err = closedform.Ideal(0, xs)
	assert.ErrorIs(t, err, closedform.ErrBadLinkCount)
}

func TestFJC_ApproachesIdeal(t *testing.T) {
	t.Parallel()

	xs := grid(0.05, 0.3, 6)
	exact, err := closedform.FJC(30, xs)
	require.NoError(t, err)
	ideal, err := closedform.Ideal(30, xs)
	require.NoError(t, err)
	for i := range xs {
		assert.InDelta(t, ideal[i], exact[i], 0.15*ideal[i]+0.02, "γ=%v", xs[i])
	}
}

func TestMeanSquares(t *testing.T) {
	t.Parallel()

	got, err := closedform.FJCMeanSquare(8)
	require.NoError(t, err)
	assert.Equal(t, 0.125, got)

	// right-angle bonds are uncorrelated on average: same as the FJC
	got, err = closedform.FRCMeanSquare(8, math.Pi/2)
	require.NoError(t, err)
	assert.InDelta(t, 0.125, got, 1e-12)

	// two links: R² = 2 + 2cos θ
	got, err = closedform.FRCMeanSquare(2, math.Pi/3)
	require.NoError(t, err)
	assert.InDelta(t, (2+2*0.5)/4, got, 1e-12)

	stiff, err := closedform.WLCMeanSquare(1e6)
	require.NoError(t, err)
	assert.InDelta(t, 1, stiff, 1e-5)
	floppy, err := closedform.WLCMeanSquare(1e-3)
	require.NoError(t, err)
	assert.InDelta(t, 2e-3, floppy, 1e-5)

	got, err = closedform.EFJCMeanSquare(4, 1e12)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, got, 1e-9)
}

func TestMeanSquares_BadInput(t *testing.T) {
	t.Parallel()

	_, err := closedform.FJCMeanSquare(0)
	assert.ErrorIs(t, err, closedform.ErrBadLinkCount)
	_, err = closedform.FRCMeanSquare(4, 0)
	assert.ErrorIs(t, err, closedform.ErrBadParameter)
	_, err = closedform.FRCMeanSquare(4, math.Pi)
	assert.ErrorIs(t, err, closedform.ErrBadParameter)
	_, err = closedform.WLCMeanSquare(-1)
	assert.ErrorIs(t, err, closedform.ErrBadParameter)
	_, err = closedform.EFJCMeanSquare(4, 0)
	assert.ErrorIs(t, err, closedform.ErrBadParameter)
}

func TestWLC_NormalizedAndMeanSquare(t *testing.T) {
	t.Parallel()

	xs := grid(0, 1, 20001)
	for _, tc := range []struct{ kappa, tol float64 }{
		{0.05, 0.02},
		{0.2, 0.05},
		{5.0 / 11, 0.01},
		{1, 0.01},
		{3, 0.01},
	} {
		ys, err := closedform.WLC(tc.kappa, xs)
		require.NoError(t, err)
		assert.InDelta(t, 1, integrate.Trapezoidal(xs, ys), 1e-3, "κ=%v", tc.kappa)

		sq := make([]float64, len(xs))
		for i, x := range xs {
			sq[i] = x * x * ys[i]
			assert.GreaterOrEqual(t, ys[i], 0.0)
		}
		want, err := closedform.WLCMeanSquare(tc.kappa)
		require.NoError(t, err)
		assert.InDelta(t, want, integrate.Trapezoidal(xs, sq), tc.tol*want, "κ=%v", tc.kappa)
	}
}

func TestWLC_StiffChainPeaksNearFullStretch(t *testing.T) {
	t.Parallel()

	xs := grid(0.01, 0.99, 99)
	ys, err := closedform.WLC(5.0/11, xs)
	require.NoError(t, err)
	peak := floats.MaxIdx(ys)
	assert.InDelta(t, 0.82, xs[peak], 0.03)
	assert.InDelta(t, 3.55, ys[peak], 0.15)
}

func TestWLC_OutsideAndErrors(t *testing.T) {
	t.Parallel()

	ys, err := closedform.WLC(1, []float64{-0.5, 0, 1, 1.5, math.NaN()})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0, 0}, ys)

	for _, k := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = closedform.WLC(k, []float64{0.5})
		assert.ErrorIs(t, err, closedform.ErrBadParameter, "κ=%v", k)
	}
}
