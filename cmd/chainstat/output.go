// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/chainstat/closedform"
	"github.com/katalvlaran/chainstat/config"
	"github.com/katalvlaran/chainstat/radial"
)

// writeTSV writes one "gamma<TAB>density" line per bin, preceded by a header.
func writeTSV(w io.Writer, d *radial.Distribution) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("gamma\tdensity\n"); err != nil {
		return err
	}
	var line []byte
	for i, c := range d.Centers {
		line = strconv.AppendFloat(line[:0], c, 'g', -1, 64)
		line = append(line, '\t')
		line = strconv.AppendFloat(line, d.Densities[i], 'g', -1, 64)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// writeTSVFile writes d to path, creating parent directories.
func writeTSVFile(path string, d *radial.Distribution) (err error) {
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return writeTSV(f, d)
}

// reference returns a closed-form curve to draw next to an estimate. An fjc
// gets the exact Treloar density while it is numerically usable and the
// ideal-chain Gaussian beyond that; an frc given by persistence length gets
// the wormlike chain it approximates. Other jobs get none.
func reference(j config.Job, centers []float64) (string, []float64) {
	if j.Model == config.ModelFRC && j.Angle == 0 && j.Persistence > 0 {
		ys, err := closedform.WLC(j.Persistence, centers)
		if err != nil {
			return "", nil
		}
		return "wormlike", ys
	}
	if j.Model != config.ModelFJC {
		return "", nil
	}
	if j.Links >= 2 && j.Links <= closedform.MaxTreloarLinks {
		if ys, err := closedform.FJC(j.Links, centers); err == nil {
			return "exact", ys
		}
	}
	ys, err := closedform.Ideal(j.Links, centers)
	if err != nil {
		return "", nil
	}
	return "ideal", ys
}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return pts
}

// writePlot renders the estimate, and the reference curve when there is
// one, to a PNG at path.
func writePlot(path string, j config.Job, d *radial.Distribution) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s %s, N=%d", j.Name, j.Model, j.Links)
	p.X.Label.Text = "γ"
	p.Y.Label.Text = "g(γ)"
	p.X.Min, p.X.Max = 0, d.MaxGamma

	lines := []interface{}{"monte carlo", xys(d.Centers, d.Densities)}
	if name, ys := reference(j, d.Centers); ys != nil {
		lines = append(lines, name, xys(d.Centers, ys))
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return fmt.Errorf("plot %s: %w", j.Name, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
