package qpi

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Fixed viewport of the convergence plot.
const (
	plotXMin = 1.5
	plotXMax = 12.5
	plotYMin = 1.5
	plotYMax = 4.5
)

/*
SaveConvergencePlot writes the estimates against their qubit counts, with
a constant π reference line, to the given image path. The axis bounds are
fixed so successive runs render comparably.
*/
func SaveConvergencePlot(estimates []Estimate, path string) error {
	if len(estimates) == 0 {
		return fmt.Errorf("no estimates to plot")
	}

	p := plot.New()
	p.Title.Text = "Estimating π with quantum phase estimation"
	p.X.Label.Text = "Number of qubits"
	p.Y.Label.Text = "π estimate"
	p.X.Min, p.X.Max = plotXMin, plotXMax
	p.Y.Min, p.Y.Max = plotYMin, plotYMax

	pts := make(plotter.XYs, len(estimates))
	for i, est := range estimates {
		pts[i].X = float64(est.Qubits)
		pts[i].Y = est.Value
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("build estimate series: %w", err)
	}
	p.Add(line, points)
	p.Legend.Add("estimate", line, points)

	ref, err := plotter.NewLine(plotter.XYs{
		{X: plotXMin, Y: math.Pi},
		{X: plotXMax, Y: math.Pi},
	})
	if err != nil {
		return fmt.Errorf("build reference line: %w", err)
	}
	ref.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(ref)
	p.Legend.Add("π", ref)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
