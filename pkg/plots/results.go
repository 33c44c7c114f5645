package plots

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ElbowCurve draws inertia against cluster count, k starting at 1.
func ElbowCurve(inertias []float64, path string) error {
	p := plot.New()
	p.Title.Text = "Elbow Plot for Optimal Clusters"
	p.X.Label.Text = "Number of Clusters"
	p.Y.Label.Text = "SSE"

	pts := make(plotter.XYs, len(inertias))
	for i, v := range inertias {
		pts[i] = plotter.XY{X: float64(i + 1), Y: v}
	}
	line, scatter, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("elbow curve: %w", err)
	}
	line.Color = color.RGBA{B: 255, A: 255}
	scatter.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
	p.Add(line, scatter)

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

// ClusterScatter draws x against y colored by cluster label, with the
// label annotated on every annotateEvery-th row.
func ClusterScatter(x, y []float64, labels []int, xName, yName string, annotateEvery int, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Clusters Based on %s and %s", xName, yName)
	p.X.Label.Text = xName
	p.Y.Label.Text = yName

	byCluster := make(map[int]plotter.XYs)
	for i := range x {
		byCluster[labels[i]] = append(byCluster[labels[i]], plotter.XY{X: x[i], Y: y[i]})
	}
	maxLabel := 0
	for l := range byCluster {
		if l > maxLabel {
			maxLabel = l
		}
	}
	for k := 0; k <= maxLabel; k++ {
		pts, ok := byCluster[k]
		if !ok {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("cluster scatter: %w", err)
		}
		s.GlyphStyle.Color = plotutil.Color(k)
		s.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("cluster %d", k), s)
	}

	ann := plotter.XYLabels{}
	for i := range x {
		if annotateEvery <= 0 || i%annotateEvery != 0 {
			continue
		}
		ann.XYs = append(ann.XYs, plotter.XY{X: x[i], Y: y[i]})
		ann.Labels = append(ann.Labels, fmt.Sprintf("%d", labels[i]))
	}
	if len(ann.XYs) > 0 {
		l, err := plotter.NewLabels(ann)
		if err != nil {
			return fmt.Errorf("cluster annotations: %w", err)
		}
		p.Add(l)
	}

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

// RegressionLine draws x against y with the simple one-feature
// regression line fitted over the plotted points. This is an
// illustration only; the reported model fits the full feature set.
func RegressionLine(x, y []float64, xName, yName string, path string) error {
	if len(x) == 0 || len(x) != len(y) {
		return fmt.Errorf("regression plot needs matching non-empty series")
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Regression Line: %s vs %s", xName, yName)
	p.X.Label.Text = xName
	p.Y.Label.Text = yName

	pts := make(plotter.XYs, len(x))
	minX, maxX := x[0], x[0]
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
		if x[i] < minX {
			minX = x[i]
		}
		if x[i] > maxX {
			maxX = x[i]
		}
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("regression scatter: %w", err)
	}
	s.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
	s.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(s)

	alpha, beta := stat.LinearRegression(x, y, nil, false)
	line, err := plotter.NewLine(plotter.XYs{
		{X: minX, Y: alpha + beta*minX},
		{X: maxX, Y: alpha + beta*maxX},
	})
	if err != nil {
		return fmt.Errorf("regression line: %w", err)
	}
	line.Color = color.RGBA{R: 255, A: 255}
	line.Width = vg.Points(2)
	p.Add(line)

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}
