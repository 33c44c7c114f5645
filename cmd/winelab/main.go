// Command winelab runs the wine-quality analysis pipeline: it loads
// the red and white datasets, cleans them, clusters the samples,
// fits a quality regression and writes the diagnostic plots.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"winelab/pkg/pipeline"
)

var (
	flagRed      string
	flagWhite    string
	flagOut      string
	flagClusters int
	flagSeed     int64
	flagTestFrac float64
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:          "winelab",
	Short:        "Exploratory analysis, clustering and regression over the combined wine-quality dataset",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagRed, "red", "winequality-red.csv", "path to the red wine CSV")
	f.StringVar(&flagWhite, "white", "winequality-white.csv", "path to the white wine CSV")
	f.StringVar(&flagOut, "out", ".", "directory for the rendered plots")
	f.IntVar(&flagClusters, "clusters", 3, "cluster count for the primary k-means run")
	f.Int64Var(&flagSeed, "seed", 42, "random seed for clustering and the train/test split")
	f.Float64Var(&flagTestFrac, "test-frac", 0.3, "fraction of rows held out for regression testing")
	f.BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	res, err := pipeline.Run(pipeline.Config{
		RedPath:      flagRed,
		WhitePath:    flagWhite,
		OutDir:       flagOut,
		Clusters:     flagClusters,
		Seed:         flagSeed,
		TestFraction: flagTestFrac,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	printSummary(res)
	return nil
}

func printSummary(res *pipeline.Result) {
	fmt.Println("Missing values:")
	cols := make([]string, 0, len(res.MissingByColumn))
	for name := range res.MissingByColumn {
		cols = append(cols, name)
	}
	sort.Strings(cols)
	for _, name := range cols {
		fmt.Printf("  %-22s %d\n", name, res.MissingByColumn[name])
	}
	fmt.Printf("Duplicate rows: %d\n", res.DuplicateRows)

	fmt.Println("Column summaries:")
	fmt.Printf("  %-22s %8s %10s %10s %10s %10s %10s %10s %10s\n",
		"column", "count", "mean", "std", "min", "25%", "50%", "75%", "max")
	for _, s := range res.Summaries {
		fmt.Printf("  %-22s %8d %10.4f %10.4f %10.4f %10.4f %10.4f %10.4f %10.4f\n",
			s.Name, s.Count, s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max)
	}

	fmt.Printf("Rows after cleaning: %d (from %d)\n", res.RowsAfterClean, res.RowsLoaded)
	fmt.Printf("Silhouette Score: %v\n", res.Silhouette)
	fmt.Printf("Mean Squared Error (Regression): %v\n", res.MSE)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
