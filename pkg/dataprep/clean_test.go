package dataprep

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tenRows has one fully duplicated row and one row with a missing
// value; cleaning must yield 8 rows.
func tenRows() dataframe.DataFrame {
	return dataframe.LoadRecords([][]string{
		{"alcohol", "quality", "wine_type"},
		{"9.4", "5", "red"},
		{"9.8", "5", "red"},
		{"9.8", "6", "red"},
		{"10.0", "7", "red"},
		{"9.4", "5", "red"}, // duplicate of row 1
		{"8.8", "6", "white"},
		{"", "6", "white"}, // missing alcohol
		{"9.5", "6", "white"},
		{"10.1", "6", "white"},
		{"11.0", "8", "white"},
	})
}

func TestCleanDropsMissingAndDuplicates(t *testing.T) {
	df := tenRows()
	require.NoError(t, df.Err)
	require.Equal(t, 10, df.Nrow())

	cleaned := Clean(df)
	require.NoError(t, cleaned.Err)
	assert.Equal(t, 8, cleaned.Nrow())
}

func TestCleanIdempotent(t *testing.T) {
	once := Clean(tenRows())
	require.NoError(t, once.Err)
	twice := Clean(once)
	require.NoError(t, twice.Err)

	assert.Equal(t, once.Records(), twice.Records())
}

func TestCleanPreservesColumnsAndOrder(t *testing.T) {
	df := tenRows()
	cleaned := Clean(df)
	require.NoError(t, cleaned.Err)

	assert.Equal(t, df.Names(), cleaned.Names())
	assert.LessOrEqual(t, cleaned.Nrow(), df.Nrow())

	// First surviving row is unchanged.
	assert.Equal(t, df.Records()[1], cleaned.Records()[1])
}

func TestCleanPreservesCellPrecision(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"v", "q"},
		{"0.123456789", "5"},
		{"0.123456789", "5"}, // true duplicate
		{"0.2", "6"},
	})
	require.NoError(t, df.Err)

	cleaned := Clean(df)
	require.NoError(t, cleaned.Err)
	require.Equal(t, 2, cleaned.Nrow())

	vals := cleaned.Col("v").Float()
	assert.Equal(t, 0.123456789, vals[0])
	assert.Equal(t, 0.2, vals[1])
}

func TestDropDuplicatesKeepsNearDuplicates(t *testing.T) {
	// Rows differing only in the seventh decimal are distinct rows.
	df := dataframe.LoadRecords([][]string{
		{"v"},
		{"0.1234567"},
		{"0.1234568"},
	})
	require.NoError(t, df.Err)

	out := DropDuplicates(df)
	require.NoError(t, out.Err)
	assert.Equal(t, 2, out.Nrow())
}

func TestDropDuplicatesKeepsFirst(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"a", "b"},
		{"1", "x"},
		{"1", "x"},
		{"2", "y"},
	})
	out := DropDuplicates(df)
	require.NoError(t, out.Err)
	assert.Equal(t, 2, out.Nrow())
}
