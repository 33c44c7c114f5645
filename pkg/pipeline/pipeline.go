// Package pipeline runs the full analysis sequentially: load, explore,
// clean, cluster, regress, and render every artifact along the way.
package pipeline

import (
	"fmt"
	"log/slog"
	"math"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"winelab/pkg/data"
	"winelab/pkg/dataprep"
	"winelab/pkg/model"
	"winelab/pkg/plots"
	"winelab/pkg/stats"
)

// Fixed artifact filenames, written into Config.OutDir.
const (
	BoxPlotFile     = "boxplot_outliers.png"
	CountPlotFile   = "countplot_wine_type.png"
	HistogramFile   = "histogram_quality.png"
	HeatmapFile     = "correlation_heatmap.png"
	ElbowFile       = "elbow_plot.png"
	ClusterPlotFile = "cluster_plot.png"
	RegressionFile  = "regression_line.png"
)

// Scatter axes and annotation stride for the cluster plot.
const (
	scatterX      = "alcohol"
	scatterY      = "volatile acidity"
	annotateEvery = 100
)

// Config holds the pipeline parameters. Zero values are replaced by
// the defaults the original analysis used.
type Config struct {
	RedPath      string
	WhitePath    string
	OutDir       string
	Clusters     int
	MaxIter      int
	MaxElbowK    int
	Seed         int64
	TestFraction float64
	Logger       *slog.Logger
}

func (c *Config) setDefaults() {
	if c.Clusters == 0 {
		c.Clusters = 3
	}
	if c.MaxIter == 0 {
		c.MaxIter = 300
	}
	if c.MaxElbowK == 0 {
		c.MaxElbowK = 10
	}
	if c.TestFraction == 0 {
		c.TestFraction = 0.3
	}
	if c.OutDir == "" {
		c.OutDir = "."
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Result collects everything the run computed.
type Result struct {
	RowsLoaded     int
	RowsAfterClean int
	DuplicateRows  int

	MissingByColumn  map[string]int
	MissingTotal     int
	OutliersByColumn map[string]int
	Summaries        []stats.ColumnSummary

	Silhouette float64
	Inertia    float64
	Inertias   []float64 // elbow sweep, k = 1..MaxElbowK

	MSE  float64
	RMSE float64
	R2   float64

	// Frame is the cleaned table annotated with the cluster column.
	Frame dataframe.DataFrame
}

// Run executes every stage in order. Any stage error aborts the run.
func Run(cfg Config) (*Result, error) {
	cfg.setDefaults()
	log := cfg.Logger
	res := &Result{}

	df, err := data.Load(cfg.RedPath, cfg.WhitePath)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	res.RowsLoaded = df.Nrow()
	log.Info("loaded datasets", "rows", res.RowsLoaded, "columns", df.Ncol())

	res.MissingByColumn = stats.MissingCounts(df)
	for _, c := range res.MissingByColumn {
		res.MissingTotal += c
	}
	res.DuplicateRows = stats.DuplicateCount(df)
	log.Info("explored data", "missing_cells", res.MissingTotal, "duplicate_rows", res.DuplicateRows)

	res.Summaries, err = stats.Describe(df)
	if err != nil {
		return nil, fmt.Errorf("describe: %w", err)
	}
	res.OutliersByColumn, err = stats.OutlierCounts(df)
	if err != nil {
		return nil, fmt.Errorf("outlier counts: %w", err)
	}

	if err := renderEDA(df, cfg, log); err != nil {
		return nil, err
	}

	df = dataprep.Clean(df)
	if df.Err != nil {
		return nil, fmt.Errorf("clean: %w", df.Err)
	}
	res.RowsAfterClean = df.Nrow()
	log.Info("cleaned data", "rows", res.RowsAfterClean, "removed", res.RowsLoaded-res.RowsAfterClean)

	quality, err := data.Column(df, data.TargetColumn)
	if err != nil {
		return nil, fmt.Errorf("histogram: %w", err)
	}
	if err := plots.Histogram(quality, 10, "Histogram of Wine Quality", "Quality",
		filepath.Join(cfg.OutDir, HistogramFile)); err != nil {
		return nil, err
	}

	df, err = cluster(df, cfg, res, log)
	if err != nil {
		return nil, err
	}

	if err := regress(df, cfg, res, log); err != nil {
		return nil, err
	}

	res.Frame = df
	return res, nil
}

// renderEDA writes the pre-cleaning artifacts: box plot, count plot
// and correlation heatmap. The heatmap is computed over the raw
// combined table, before any rows are dropped.
func renderEDA(df dataframe.DataFrame, cfg Config, log *slog.Logger) error {
	numeric := stats.NumericColumns(df)
	columns := make(map[string][]float64, len(numeric))
	for _, name := range numeric {
		vals, err := data.Column(df, name)
		if err != nil {
			return fmt.Errorf("box plot: %w", err)
		}
		// Rows are not yet cleaned; drop NaN cells from the plot data.
		present := vals[:0:0]
		for _, v := range vals {
			if !math.IsNaN(v) {
				present = append(present, v)
			}
		}
		columns[name] = present
	}
	if err := plots.BoxPlot(columns, numeric, filepath.Join(cfg.OutDir, BoxPlotFile)); err != nil {
		return err
	}

	types := df.Col(data.TypeColumn)
	if types.Err != nil {
		return fmt.Errorf("count plot: %w", types.Err)
	}
	var categories []string
	counts := make(map[string]int)
	for _, v := range types.Records() {
		if _, ok := counts[v]; !ok {
			categories = append(categories, v)
		}
		counts[v]++
	}
	countVals := make([]float64, len(categories))
	for i, c := range categories {
		countVals[i] = float64(counts[c])
	}
	if err := plots.CountPlot(categories, countVals, filepath.Join(cfg.OutDir, CountPlotFile)); err != nil {
		return err
	}

	corr, names, err := stats.CorrelationMatrix(df)
	if err != nil {
		return fmt.Errorf("correlation: %w", err)
	}
	if err := plots.Heatmap(corr, names, filepath.Join(cfg.OutDir, HeatmapFile)); err != nil {
		return err
	}
	log.Debug("rendered exploration plots", "numeric_columns", len(numeric))
	return nil
}

// cluster runs the primary k-means fit, annotates the frame with the
// cluster column, scores the separation and renders the elbow curve
// and the cluster scatter.
func cluster(df dataframe.DataFrame, cfg Config, res *Result, log *slog.Logger) (dataframe.DataFrame, error) {
	X, err := data.Matrix(df, data.FeatureColumns)
	if err != nil {
		return df, fmt.Errorf("cluster features: %w", err)
	}

	km := model.NewKMeans(cfg.Clusters, cfg.MaxIter, cfg.Seed)
	labels, err := km.FitPredict(X)
	if err != nil {
		return df, fmt.Errorf("kmeans: %w", err)
	}
	res.Inertia = km.Inertia

	res.Silhouette, err = model.Silhouette(X, labels)
	if err != nil {
		return df, fmt.Errorf("silhouette: %w", err)
	}
	log.Info("clustered samples", "k", cfg.Clusters, "silhouette", res.Silhouette, "inertia", res.Inertia)

	df = df.Mutate(series.New(labels, series.Int, data.ClusterColumn))
	if df.Err != nil {
		return df, fmt.Errorf("annotate clusters: %w", df.Err)
	}

	res.Inertias, err = model.ElbowSweep(X, cfg.MaxElbowK, cfg.MaxIter, cfg.Seed)
	if err != nil {
		return df, fmt.Errorf("elbow sweep: %w", err)
	}
	if err := plots.ElbowCurve(res.Inertias, filepath.Join(cfg.OutDir, ElbowFile)); err != nil {
		return df, err
	}

	x, err := data.Column(df, scatterX)
	if err != nil {
		return df, fmt.Errorf("cluster scatter: %w", err)
	}
	y, err := data.Column(df, scatterY)
	if err != nil {
		return df, fmt.Errorf("cluster scatter: %w", err)
	}
	if err := plots.ClusterScatter(x, y, labels, scatterX, scatterY, annotateEvery,
		filepath.Join(cfg.OutDir, ClusterPlotFile)); err != nil {
		return df, err
	}
	return df, nil
}

// regress fits OLS on the full feature set over a seeded 70/30 split
// and reports test-set error. The rendered line uses alcohol alone;
// the fitted model does not.
func regress(df dataframe.DataFrame, cfg Config, res *Result, log *slog.Logger) error {
	X, err := data.Matrix(df, data.FeatureColumns)
	if err != nil {
		return fmt.Errorf("regression features: %w", err)
	}
	y, err := data.Column(df, data.TargetColumn)
	if err != nil {
		return fmt.Errorf("regression target: %w", err)
	}

	XTrain, XTest, yTrain, yTest := dataprep.TrainTestSplit(X, y, cfg.TestFraction, cfg.Seed)
	lr := model.NewLinearRegression()
	if err := lr.Fit(XTrain, yTrain); err != nil {
		return fmt.Errorf("regression fit: %w", err)
	}
	pred, err := lr.Predict(XTest)
	if err != nil {
		return fmt.Errorf("regression predict: %w", err)
	}
	res.MSE = model.MSE(yTest, pred)
	res.RMSE = model.RMSE(yTest, pred)
	res.R2 = model.R2(yTest, pred)
	log.Info("fitted regression",
		"train_rows", len(XTrain), "test_rows", len(XTest),
		"mse", res.MSE, "rmse", res.RMSE, "r2", res.R2)

	alcohol, err := data.Column(df, scatterX)
	if err != nil {
		return fmt.Errorf("regression plot: %w", err)
	}
	return plots.RegressionLine(alcohol, y, scatterX, data.TargetColumn,
		filepath.Join(cfg.OutDir, RegressionFile))
}
