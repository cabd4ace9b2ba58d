package bench_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelljawhari/ArgRankLab/bench"
)

// writeMatrix writes a minimal two-semantics correlation CSV.
func writeMatrix(t *testing.T, dir, name, value string) {
	t.Helper()
	body := ",Cat,Dbs\nCat,1.0," + value + "\nDbs," + value + ",1.0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestBuildAggregate_MeanMedianStdDev(t *testing.T) {
	dir := t.TempDir()
	writeMatrix(t, dir, "a_kendall.csv", "0.2")
	writeMatrix(t, dir, "b_kendall.csv", "0.4")
	writeMatrix(t, dir, "c_kendall.csv", "0.6")
	writeMatrix(t, dir, "d_spearman.csv", "0.9") // other metric, ignored

	agg, err := bench.BuildAggregate(dir, "kendall", "all", nil)
	require.NoError(t, err)

	assert.Equal(t, 3, agg.Frameworks)
	assert.Equal(t, []string{"Cat", "Dbs"}, agg.Semantics)

	var sb strings.Builder
	_, err = agg.WriteTo(&sb)
	require.NoError(t, err)
	text := sb.String()
	assert.Contains(t, text, "0.4000", "mean of 0.2, 0.4, 0.6")
	assert.Contains(t, text, "Kendall mean")
}

func TestBuildAggregate_Stratified(t *testing.T) {
	dir := t.TempDir()
	writeMatrix(t, dir, "a_kendall.csv", "0.2")
	writeMatrix(t, dir, "b_kendall.csv", "0.8")

	classes := map[string]bench.Properties{
		"a.af": {FrameworkName: "a.af", Cyclicity: "Cyclic", DensityGroup: "Sparse"},
		"b.af": {FrameworkName: "b.af", Cyclicity: "Acyclic", DensityGroup: "Dense"},
	}

	cyclic, err := bench.BuildAggregate(dir, "kendall", "cyclic", classes)
	require.NoError(t, err)
	assert.Equal(t, 1, cyclic.Frameworks)

	dense, err := bench.BuildAggregate(dir, "kendall", "dense", classes)
	require.NoError(t, err)
	assert.Equal(t, 1, dense.Frameworks)

	all, err := bench.BuildAggregate(dir, "kendall", "all", classes)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Frameworks)
}

func TestAggregate_WriteCSV(t *testing.T) {
	dir := t.TempDir()
	writeMatrix(t, dir, "a_kendall.csv", "0.5")

	agg, err := bench.BuildAggregate(dir, "kendall", "all", nil)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "mean.csv")
	require.NoError(t, agg.WriteCSV(out, "mean"))

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "0.5000")

	assert.ErrorIs(t, agg.WriteCSV(out, "mode"), bench.ErrInput)
}

func TestBuildAggregate_MissingDir(t *testing.T) {
	_, err := bench.BuildAggregate(filepath.Join(t.TempDir(), "absent"), "kendall", "all", nil)
	assert.ErrorIs(t, err, bench.ErrInput)
}

func TestRenderChart(t *testing.T) {
	dir := t.TempDir()
	writeMatrix(t, dir, "a_kendall.csv", "0.5")
	writeMatrix(t, dir, "b_kendall.csv", "0.7")

	agg, err := bench.BuildAggregate(dir, "kendall", "all", nil)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, agg.RenderChart(out))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
