// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chainstat/config"
	"github.com/katalvlaran/chainstat/radial"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(&out, &errOut)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestWriteTSV(t *testing.T) {
	t.Parallel()

	d := &radial.Distribution{
		Centers:   []float64{0.25, 0.75},
		Densities: []float64{0.5, 1.5},
		MaxGamma:  1,
	}
	var buf bytes.Buffer
	require.NoError(t, writeTSV(&buf, d))
	assert.Equal(t, "gamma\tdensity\n0.25\t0.5\n0.75\t1.5\n", buf.String())
}

func TestReference(t *testing.T) {
	t.Parallel()

	xs := []float64{0.1, 0.2, 0.3}
	name, ys := reference(config.Job{Model: config.ModelFJC, Links: 8}, xs)
	assert.Equal(t, "exact", name)
	assert.Len(t, ys, 3)

	name, ys = reference(config.Job{Model: config.ModelFJC, Links: 500}, xs)
	assert.Equal(t, "ideal", name)
	assert.Len(t, ys, 3)

	_, ys = reference(config.Job{Model: config.ModelFRC, Links: 8, Angle: 1}, xs)
	assert.Nil(t, ys)

	name, ys = reference(config.Job{Model: config.ModelFRC, Links: 64, Persistence: 0.5}, xs)
	assert.Equal(t, "wormlike", name)
	assert.Len(t, ys, 3)
}

func TestSample_Stdout(t *testing.T) {
	t.Parallel()

	args := []string{"sample", "--model", "frc", "--links", "16", "--angle", "0.5",
		"--bins", "20", "--samples", "2000", "--seed", "3", "--workers", "2"}
	out, _, err := execute(t, args...)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 21)
	assert.Equal(t, "gamma\tdensity", lines[0])

	again, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestSample_FileAndPlot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tsv := filepath.Join(dir, "fjc", "fjc8.tsv")
	png := filepath.Join(dir, "fjc8.png")
	_, _, err := execute(t, "sample", "--links", "8", "--bins", "10", "--samples", "500",
		"--seed", "1", "-o", tsv, "--plot", png)
	require.NoError(t, err)

	data, err := os.ReadFile(tsv)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "gamma\tdensity\n"))
	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSample_Invalid(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "sample", "--model", "frc", "--links", "8")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "sample", "--model", "efjc", "--links", "8")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = execute(t, "sample", "--bins", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRoot_UnknownProfile(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "moments", "--profile", "gpu", "--samples", "10")
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jobs := `
workers: 2
log_format: json
defaults:
  bins: 25
  samples: 3000
jobs:
  - name: fjc8
    model: fjc
    links: 8
    seed: 11
    plot: true
  - name: frc
    model: frc
    links: 32
    persistence: 0.5
    workers: 2
  - name: efjc
    model: efjc
    links: 6
    stiffness: 100
`
	path := filepath.Join(dir, "jobs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(jobs), 0o600))

	out := filepath.Join(dir, "out")
	_, stderr, err := execute(t, "batch", path, "--output-dir", out, "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"batch finished"`)

	for _, name := range []string{"fjc8.tsv", "frc.tsv", "efjc.tsv", "fjc8.png"} {
		_, err := os.Stat(filepath.Join(out, name))
		assert.NoError(t, err, name)
	}
	_, err = os.Stat(filepath.Join(out, "frc.png"))
	assert.True(t, os.IsNotExist(err))

	first, err := os.ReadFile(filepath.Join(out, "frc.tsv"))
	require.NoError(t, err)
	_, _, err = execute(t, "batch", path, "--output-dir", out, "--seed", "5")
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(out, "frc.tsv"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBatch_BadFile(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "batch", filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestMoments(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "moments", "--model", "frc", "--links", "20", "--angle", "0.4",
		"--samples", "4000", "--lags", "3", "--seed", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "mean_square")
	assert.Contains(t, out, "theory")
	assert.Contains(t, out, "lag")
}

func TestEstimate_Job(t *testing.T) {
	t.Parallel()

	j := config.Job{Name: "j", Model: config.ModelFRC, Links: 12, Angle: 0.7, Bins: 30, Samples: 3000, Workers: 2}
	log := config.Runtime{LogLevel: "error", LogFormat: "text"}.NewLogger(&bytes.Buffer{})
	d, err := estimate(context.Background(), log, j, 9)
	require.NoError(t, err)
	assert.Equal(t, 30, d.Bins())
	assert.InDelta(t, 1, d.Integral(), 1e-9)

	j.Model = "wlc"
	_, err = estimate(context.Background(), log, j, 9)
	assert.ErrorIs(t, err, config.ErrUnknownModel)
}
