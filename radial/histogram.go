// SPDX-License-Identifier: MIT

package radial

import (
	"math"
)

// boundSlack is the relative overshoot of γ_max accepted as floating-point
// rounding (unit bonds are unit only to ~1e-16). Such samples go to the last
// bin; anything beyond is ErrBoundExceeded.
const boundSlack = 1e-12

// Histogram counts samples in B equal-width bins spanning (0, max].
//
// Bin i covers [max·i/B, max·(i+1)/B): a sample equal to an interior edge
// belongs to the upper bin. The top edge is closed, so γ = max lands in the
// last bin. Edges and centers are fixed at construction; only counts change.
//
// A Histogram is not safe for concurrent use; give each goroutine its own and
// Merge them afterwards.
type Histogram struct {
	max     float64
	edges   []float64 // right edges, edges[B-1] == max
	centers []float64
	counts  []uint64
	total   uint64
}

// NewHistogram returns an empty histogram with the given bin count over
// (0, max].
func NewHistogram(bins int, max float64) (*Histogram, error) {
	if bins < 1 {
		return nil, radialErrorf(methodNewHistogram, ErrBadBinCount, "got %d", bins)
	}
	if math.IsNaN(max) || math.IsInf(max, 0) || max <= 0 {
		return nil, radialErrorf(methodNewHistogram, ErrBadMaxGamma, "got %v", max)
	}

	h := &Histogram{
		max:     max,
		edges:   make([]float64, bins),
		centers: make([]float64, bins),
		counts:  make([]uint64, bins),
	}
	b := float64(bins)
	for i := 0; i < bins; i++ {
		h.edges[i] = max * float64(i+1) / b
		h.centers[i] = max * (float64(i) + 0.5) / b
	}
	h.edges[bins-1] = max

	return h, nil
}

// Bins returns the bin count B.
func (h *Histogram) Bins() int { return len(h.counts) }

// Max returns the upper end of the binned domain.
func (h *Histogram) Max() float64 { return h.max }

// Total returns the number of samples added so far.
func (h *Histogram) Total() uint64 { return h.total }

// Edges returns a copy of the right bin edges.
func (h *Histogram) Edges() []float64 { return append([]float64(nil), h.edges...) }

// Centers returns a copy of the bin centers.
func (h *Histogram) Centers() []float64 { return append([]float64(nil), h.centers...) }

// Counts returns a copy of the per-bin counts.
func (h *Histogram) Counts() []uint64 { return append([]uint64(nil), h.counts...) }

// Index returns the bin of g: the first bin whose right edge is strictly
// greater than g, or the last bin for g == max.
//
// Implementation:
//   - Stage 1: reject NaN, negatives and values past max (beyond boundSlack).
//   - Stage 2: guess floor(g/max·B), then step at most a bin either way so
//     the answer agrees with comparing g against the stored edges.
//
// Complexity: O(1).
func (h *Histogram) Index(g float64) (int, error) {
	if math.IsNaN(g) || g < 0 || g > h.max*(1+boundSlack) {
		return -1, radialErrorf(methodAdd, ErrBoundExceeded, "gamma=%v max=%v", g, h.max)
	}
	last := len(h.edges) - 1
	if g >= h.max {
		return last, nil
	}

	i := int(g / h.max * float64(len(h.edges)))
	if i > last {
		i = last
	}
	for i > 0 && g < h.edges[i-1] {
		i--
	}
	for i < last && g >= h.edges[i] {
		i++
	}
	return i, nil
}

// Add records one sample. On error the histogram is left unchanged.
func (h *Histogram) Add(g float64) error {
	i, err := h.Index(g)
	if err != nil {
		return err
	}
	h.counts[i]++
	h.total++
	return nil
}

// Merge adds the counts of o into h. Both must share bin count and max.
func (h *Histogram) Merge(o *Histogram) error {
	if o == nil || len(o.counts) != len(h.counts) || o.max != h.max {
		return radialErrorf(methodMerge, ErrHistogramMismatch, "cannot merge")
	}
	for i, c := range o.counts {
		h.counts[i] += c
	}
	h.total += o.total
	return nil
}

// Density converts the counts into a normalized radial distribution,
// density[i] = count[i] / (S/B · max). The histogram is not modified.
func (h *Histogram) Density() (*Distribution, error) {
	if h.total == 0 {
		return nil, radialErrorf(methodDensity, ErrEmptyHistogram, "bins=%d", len(h.counts))
	}

	expected := float64(h.total) / float64(len(h.counts)) * h.max
	d := &Distribution{
		Centers:   h.Centers(),
		Densities: make([]float64, len(h.counts)),
		MaxGamma:  h.max,
		Samples:   h.total,
	}
	for i, c := range h.counts {
		d.Densities[i] = float64(c) / expected
	}
	return d, nil
}
