// Package plots renders the pipeline's PNG artifacts with gonum/plot.
// Every writer overwrites any existing file at the target path.
package plots

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BoxPlot draws one box per column for outlier inspection.
func BoxPlot(columns map[string][]float64, order []string, path string) error {
	p := plot.New()
	p.Title.Text = "Box Plot of All Variables"
	p.Y.Label.Text = "Value"

	for j, name := range order {
		vals := columns[name]
		box, err := plotter.NewBoxPlot(vg.Points(18), float64(j), plotter.Values(vals))
		if err != nil {
			return fmt.Errorf("box plot %q: %w", name, err)
		}
		p.Add(box)
	}
	p.NominalX(order...)
	p.X.Tick.Label.Rotation = 1.2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}

// CountPlot draws a bar per category with the count annotated above it.
func CountPlot(categories []string, counts []float64, path string) error {
	p := plot.New()
	p.Title.Text = "Count of Wine Types"
	p.Y.Label.Text = "Count"

	bars, err := plotter.NewBarChart(plotter.Values(counts), vg.Points(40))
	if err != nil {
		return fmt.Errorf("count plot: %w", err)
	}
	bars.Color = color.RGBA{R: 102, G: 194, B: 165, A: 255}
	p.Add(bars)
	p.NominalX(categories...)

	labels := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(counts)),
		Labels: make([]string, len(counts)),
	}
	for i, c := range counts {
		labels.XYs[i] = plotter.XY{X: float64(i), Y: c * 1.01}
		labels.Labels[i] = fmt.Sprintf("%.0f", c)
	}
	l, err := plotter.NewLabels(labels)
	if err != nil {
		return fmt.Errorf("count plot labels: %w", err)
	}
	p.Add(l)

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

// Histogram draws the distribution of values over the given number of bins.
func Histogram(values []float64, bins int, title, xLabel, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Frequency"

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return fmt.Errorf("histogram: %w", err)
	}
	h.FillColor = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	h.LineStyle.Color = color.Black
	p.Add(h)

	return p.Save(8*vg.Inch, 6*vg.Inch, path)
}

// corrGrid adapts a symmetric correlation matrix to plotter.GridXYZ.
type corrGrid struct {
	m *mat.SymDense
}

func (g corrGrid) Dims() (int, int)   { n, _ := g.m.Dims(); return n, n }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }
func (g corrGrid) Z(c, r int) float64 { return g.m.At(r, c) }

// Heatmap draws the correlation matrix on a diverging blue/red palette
// pinned to [-1, 1].
func Heatmap(corr *mat.SymDense, names []string, path string) error {
	p := plot.New()
	p.Title.Text = "Heatmap of Feature Correlations"

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	hm := plotter.NewHeatMap(corrGrid{m: corr}, cm.Palette(255))
	hm.Min = -1
	hm.Max = 1
	p.Add(hm)

	ticks := make([]plot.Tick, len(names))
	for i, name := range names {
		ticks[i] = plot.Tick{Value: float64(i), Label: name}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Rotation = 1.2
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)

	return p.Save(10*vg.Inch, 8*vg.Inch, path)
}
