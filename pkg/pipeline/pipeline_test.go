package pipeline

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"winelab/pkg/data"
)

// writeWineCSV writes a synthetic semicolon-separated wine file with
// the full physicochemical header. The second data row is duplicated
// once and one row has a missing alcohol value, so each file carries
// exactly one duplicate and one incomplete row.
func writeWineCSV(t *testing.T, path string, n int, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))

	var b strings.Builder
	b.WriteString(strings.Join(data.FeatureColumns, ";"))
	b.WriteString(";" + data.TargetColumn + "\n")

	row := func(i int) string {
		vals := make([]string, 0, len(data.FeatureColumns)+1)
		for range data.FeatureColumns {
			vals = append(vals, fmt.Sprintf("%.4f", 1+rng.Float64()*10))
		}
		quality := 3 + i%5
		return strings.Join(vals, ";") + fmt.Sprintf(";%d", quality)
	}

	var dup string
	for i := 0; i < n; i++ {
		r := row(i)
		if i == 1 {
			dup = r
		}
		b.WriteString(r + "\n")
	}
	b.WriteString(dup + "\n") // exact duplicate

	missing := row(n)
	cells := strings.Split(missing, ";")
	cells[len(data.FeatureColumns)-1] = "" // blank out alcohol
	b.WriteString(strings.Join(cells, ";") + "\n")

	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o644))
}

func testConfig(t *testing.T) Config {
	dir := t.TempDir()
	red := filepath.Join(dir, "red.csv")
	white := filepath.Join(dir, "white.csv")
	writeWineCSV(t, red, 150, 1)
	writeWineCSV(t, white, 120, 2)

	return Config{
		RedPath:   red,
		WhitePath: white,
		OutDir:    dir,
		Seed:      42,
		Logger:    slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}
}

func TestRunEndToEnd(t *testing.T) {
	cfg := testConfig(t)
	res, err := Run(cfg)
	require.NoError(t, err)

	// 150+120 real rows plus one duplicate and one incomplete per file.
	assert.Equal(t, 274, res.RowsLoaded)
	assert.Equal(t, 2, res.DuplicateRows)
	assert.Equal(t, 2, res.MissingTotal)
	assert.Equal(t, 270, res.RowsAfterClean)

	for _, name := range []string{
		BoxPlotFile, CountPlotFile, HistogramFile, HeatmapFile,
		ElbowFile, ClusterPlotFile, RegressionFile,
	} {
		info, err := os.Stat(filepath.Join(cfg.OutDir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}

	assert.GreaterOrEqual(t, res.Silhouette, -1.0)
	assert.LessOrEqual(t, res.Silhouette, 1.0)
	assert.GreaterOrEqual(t, res.Inertia, 0.0)
	assert.Len(t, res.Inertias, 10)

	assert.False(t, math.IsNaN(res.MSE))
	assert.GreaterOrEqual(t, res.MSE, 0.0)
	assert.False(t, math.IsNaN(res.R2))

	assert.Contains(t, res.Frame.Names(), data.ClusterColumn)
	labels := res.Frame.Col(data.ClusterColumn)
	require.NoError(t, labels.Err)
	for _, v := range labels.Records() {
		assert.Contains(t, []string{"0", "1", "2"}, v)
	}
}

func TestRunDeterministicLabels(t *testing.T) {
	cfg := testConfig(t)

	first, err := Run(cfg)
	require.NoError(t, err)
	second, err := Run(cfg)
	require.NoError(t, err)

	assert.Equal(t,
		first.Frame.Col(data.ClusterColumn).Records(),
		second.Frame.Col(data.ClusterColumn).Records())
	assert.Equal(t, first.Silhouette, second.Silhouette)
	assert.Equal(t, first.MSE, second.MSE)
}

func TestRunMissingInput(t *testing.T) {
	cfg := testConfig(t)
	cfg.RedPath = filepath.Join(cfg.OutDir, "nope.csv")

	_, err := Run(cfg)
	assert.Error(t, err)
}
