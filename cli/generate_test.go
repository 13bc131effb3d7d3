package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/TFMV/nowgen/config"
	"github.com/TFMV/nowgen/storage/parquet"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		Output: config.OutputConfig{Dir: dir, Compression: "zstd"},
		Cases: []config.CaseConfig{
			{Scale: "day", Samples: 2, Filename: "day.parquet"},
			{Scale: "week", Samples: 3, Filename: "week.parquet"},
		},
	}
}

func TestGenerateAll(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)

	err := generateAll(context.Background(), zerolog.Nop(), cfg)
	require.NoError(t, err)

	day, err := parquet.Inspect(filepath.Join(dir, "day.parquet"))
	require.NoError(t, err)
	assert.Equal(t, int64(35*50*30*2), day.Rows)
	assert.Equal(t, 8, day.Columns)
	assert.Greater(t, day.Size, int64(0))

	week, err := parquet.Inspect(filepath.Join(dir, "week.parquet"))
	require.NoError(t, err)
	assert.Equal(t, int64(6*50*30*3), week.Rows)
	assert.Equal(t, 8, week.Columns)
}

func TestGenerateAllRereadable(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.Cases = cfg.Cases[1:] // week only, the smaller table

	require.NoError(t, generateAll(context.Background(), zerolog.Nop(), cfg))

	tbl, err := parquet.ReadTable(context.Background(), filepath.Join(dir, "week.parquet"))
	require.NoError(t, err)
	defer tbl.Release()

	assert.Equal(t, int64(6*50*30*3), tbl.NumRows())
	assert.Equal(t, 8, tbl.Schema().NumFields())
}

func TestGenerateConfigLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "nowgen.log")
	outDir := filepath.Join(dir, "out")

	content := fmt.Sprintf(`
log:
  level: info
  console: false
  file_path: %s
output:
  dir: %s
  compression: snappy
cases:
  - scale: week
    samples: 1
    filename: tiny.parquet
`, logPath, outDir)
	cfgPath := filepath.Join(dir, "nowgen.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))

	rootCmd.SetArgs([]string{"generate", "--config", cfgPath})
	defer rootCmd.SetArgs(nil)

	err := ExecuteWithContext(WithLogger(context.Background(), zerolog.Nop()))
	require.NoError(t, err)

	info, err := parquet.Inspect(filepath.Join(outDir, "tiny.parquet"))
	require.NoError(t, err)
	assert.Equal(t, int64(6*50*30), info.Rows)

	// The log section of the config file drives the command logger, so the
	// per-table write lands in the configured log file
	stat, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Greater(t, stat.Size(), int64(0))
}

func TestGenerateAllUnknownCompression(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Output.Compression = "deflate"

	assert.Error(t, generateAll(context.Background(), zerolog.Nop(), cfg))
}

func TestGenerateAllBadCase(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Cases = append(cfg.Cases, config.CaseConfig{Scale: "month", Samples: 1, Filename: "bad.parquet"})

	assert.Error(t, generateAll(context.Background(), zerolog.Nop(), cfg))
}
