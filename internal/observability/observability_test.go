package observability

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn", "text")

	logger.Info("hidden")
	logger.Warn("shown", "path", "sites.xlsx")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "path=sites.xlsx")
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "info", "json")

	logger.Info("run complete", "rows", 3)

	assert.Contains(t, buf.String(), `"msg":"run complete"`)
	assert.Contains(t, buf.String(), `"rows":3`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseLevel("info"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestNewMetrics_Independent(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.RowsRead.Add(3)

	assert.InDelta(t, 3, testutil.ToFloat64(a.RowsRead), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(b.RowsRead), 0)
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.RowsWritten.Add(2)
	m.RunFailures.WithLabelValues(StageLoad).Inc()

	path := filepath.Join(t.TempDir(), "site_coords.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "site_coords_rows_written_total 2")
	assert.Contains(t, string(data), `site_coords_run_failures_total{stage="load"} 1`)
}

func TestMetrics_WriteTextfileBadPath(t *testing.T) {
	m := NewMetrics()
	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "site_coords.prom"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metrics textfile")
}
