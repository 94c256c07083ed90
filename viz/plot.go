// Package viz renders a finished run as a time-series plot: noisy
// measurements, truth, the filter estimate, and shaded confidence bands
// at one, two and three standard deviations around the estimate.
package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"kalman-go/filter"
)

// yLimit clips the vertical axis so the converged tail stays readable,
// matching the reference demo's view window.
const yLimit = 0.2

func seriesXYs(values []float64) plotter.XYs {
	pts := make(plotter.XYs, len(values))
	for k, v := range values {
		pts[k].X = float64(k)
		pts[k].Y = v
	}
	return pts
}

// bandXYs builds the closed outline of the estimate ± m*sigma region:
// upper edge left to right, then lower edge right to left.
func bandXYs(estimates, sigma []float64, m float64) plotter.XYs {
	n := len(estimates)
	pts := make(plotter.XYs, 0, 2*n)
	for k := 0; k < n; k++ {
		pts = append(pts, plotter.XY{X: float64(k), Y: estimates[k] + m*sigma[k]})
	}
	for k := n - 1; k >= 0; k-- {
		pts = append(pts, plotter.XY{X: float64(k), Y: estimates[k] - m*sigma[k]})
	}
	return pts
}

// Render builds the plot for a run. Bands are added widest first so the
// narrower ones draw on top.
func Render(res *filter.Result) (*plot.Plot, error) {
	if res == nil || res.Len() == 0 {
		return nil, fmt.Errorf("empty result")
	}

	p := plot.New()
	p.Title.Text = "Estimate vs. iteration step"
	p.X.Label.Text = "Iteration"
	p.Add(plotter.NewGrid())

	sigma := res.Sigma()
	bands := []struct {
		m     float64
		label string
		fill  color.Color
	}{
		{3, "3 sigma", color.NRGBA{R: 158, G: 202, B: 225, A: 255}},
		{2, "2 sigma", color.NRGBA{R: 107, G: 174, B: 214, A: 255}},
		{1, "1 sigma", color.NRGBA{R: 49, G: 130, B: 189, A: 255}},
	}
	for _, b := range bands {
		poly, err := plotter.NewPolygon(bandXYs(res.Estimates, sigma, b.m))
		if err != nil {
			return nil, fmt.Errorf("build %s band: %w", b.label, err)
		}
		poly.Color = b.fill
		poly.LineStyle.Width = 0
		p.Add(poly)
		p.Legend.Add(b.label, poly)
	}

	meas, err := plotter.NewScatter(seriesXYs(res.Measurements))
	if err != nil {
		return nil, fmt.Errorf("build measurement scatter: %w", err)
	}
	meas.GlyphStyle.Shape = draw.PlusGlyph{}
	meas.GlyphStyle.Color = color.NRGBA{A: 128}
	meas.GlyphStyle.Radius = vg.Points(2)
	p.Add(meas)
	p.Legend.Add("Noisy measurements", meas)

	est, err := plotter.NewLine(seriesXYs(res.Estimates))
	if err != nil {
		return nil, fmt.Errorf("build estimate line: %w", err)
	}
	est.Color = color.NRGBA{R: 214, G: 39, B: 40, A: 255}
	est.Width = vg.Points(1.5)
	p.Add(est)
	p.Legend.Add("Estimate", est)

	truth, err := plotter.NewLine(seriesXYs(res.Truth))
	if err != nil {
		return nil, fmt.Errorf("build truth line: %w", err)
	}
	truth.Color = color.Black
	p.Add(truth)
	p.Legend.Add("Truth", truth)

	p.X.Min = 0
	p.X.Max = float64(res.Len())
	p.Y.Min = -yLimit
	p.Y.Max = yLimit
	p.Legend.Top = true

	return p, nil
}

// Save renders the run and writes it as a PNG.
func Save(res *filter.Result, path string) error {
	p, err := Render(res)
	if err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
