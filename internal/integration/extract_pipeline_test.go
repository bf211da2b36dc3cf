package integration_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/site-coordinates-etl/internal/adapter/csvfile"
	"github.com/couchcryptid/site-coordinates-etl/internal/adapter/xlsx"
	"github.com/couchcryptid/site-coordinates-etl/internal/domain"
	"github.com/couchcryptid/site-coordinates-etl/internal/observability"
	"github.com/couchcryptid/site-coordinates-etl/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHeader = "Site_Description,Latitude,Longitude\n"

type paths struct {
	input  string
	output string
}

func newPaths(t *testing.T) paths {
	t.Helper()
	dir := t.TempDir()
	return paths{
		input:  filepath.Join(dir, "MonitoringSites_Summary.xlsx"),
		output: filepath.Join(dir, "site_coordinates.csv"),
	}
}

// runExtractor wires the real workbook reader and CSV writer.
func runExtractor(t *testing.T, p paths) (pipeline.Summary, error) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pl := pipeline.New(
		xlsx.NewReader(p.input, logger),
		csvfile.NewWriter(p.output, logger),
		domain.DefaultSiteColumn,
		logger,
		observability.NewMetrics(),
	)
	return pl.Run(context.Background())
}

func readOutput(t *testing.T, p paths) string {
	t.Helper()
	data, err := os.ReadFile(p.output)
	require.NoError(t, err)
	return string(data)
}

func TestExtract_PortRiverScenario(t *testing.T) {
	p := newPaths(t)
	require.NoError(t, xlsx.WriteSheet(p.input, "Sites", [][]any{
		{"SiteName", "Latitude", "Longitude"},
		{"Port River", -34.8, 138.5},
		{"Barker Inlet", nil, 138.6},
	}))

	summary, err := runExtractor(t, p)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.RowsWritten)
	assert.Equal(t, testHeader+"Port River,-34.8,138.5\n", readOutput(t, p))
}

func TestExtract_HeaderBelowBlankRow(t *testing.T) {
	p := newPaths(t)
	require.NoError(t, xlsx.WriteSheet(p.input, "Sites", [][]any{
		{},
		{"SiteName", "Latitude", "Longitude"},
		{"Port River", -34.8, 138.5},
	}))

	summary, err := runExtractor(t, p)
	require.NoError(t, err)

	assert.Equal(t, []string{"SiteName", "Latitude", "Longitude"}, summary.Columns)
	assert.Equal(t, testHeader+"Port River,-34.8,138.5\n", readOutput(t, p))
}

func TestExtract_ZeroRows(t *testing.T) {
	p := newPaths(t)
	require.NoError(t, xlsx.WriteSheet(p.input, "Sites", [][]any{
		{"SiteName", "Latitude", "Longitude"},
	}))

	summary, err := runExtractor(t, p)
	require.NoError(t, err)

	assert.Equal(t, 0, summary.RowsWritten)
	assert.Equal(t, testHeader, readOutput(t, p))
}

func TestExtract_FiltersAndKeepsOrder(t *testing.T) {
	p := newPaths(t)
	require.NoError(t, xlsx.WriteSheet(p.input, "Sites", [][]any{
		{"SiteID", "SiteName", "Region", "Latitude", "Longitude", "Notes"},
		{"OH01", "Outer Harbor", "North", -34.77, 138.48, "buoy"},
		{"NA01", nil, "North", -34.75, 138.5, ""},
		{"GP01", "Garden Island", "North", -34.81, 138.53},
		{"ST01", "Semaphore", "Metro", "#N/A", 138.47},
		{"HB01", "Henley Beach", "Metro", -34.92, 138},
	}))

	summary, err := runExtractor(t, p)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.RowsRead)
	assert.Equal(t, 3, summary.RowsWritten)
	assert.Equal(t, []string{"SiteID", "SiteName", "Region", "Latitude", "Longitude", "Notes"}, summary.Columns)
	assert.Equal(t, testHeader+
		"Outer Harbor,-34.77,138.48\n"+
		"Garden Island,-34.81,138.53\n"+
		"Henley Beach,-34.92,138.0\n",
		readOutput(t, p))
}

func TestExtract_Idempotent(t *testing.T) {
	p := newPaths(t)
	require.NoError(t, xlsx.WriteSheet(p.input, "Sites", [][]any{
		{"SiteName", "Latitude", "Longitude"},
		{"Port River", -34.8, 138.5},
		{"Outer Harbor", -34.77, 138.48},
	}))

	_, err := runExtractor(t, p)
	require.NoError(t, err)
	first := readOutput(t, p)

	_, err = runExtractor(t, p)
	require.NoError(t, err)
	assert.Equal(t, first, readOutput(t, p))
}

func TestExtract_MissingLatitudeLeavesOutputUntouched(t *testing.T) {
	p := newPaths(t)
	require.NoError(t, xlsx.WriteSheet(p.input, "Sites", [][]any{
		{"SiteName", "Lat", "Longitude"},
		{"Port River", -34.8, 138.5},
	}))
	previous := testHeader + "Old Site,-35.0,138.0\n"
	require.NoError(t, os.WriteFile(p.output, []byte(previous), 0o644))

	_, err := runExtractor(t, p)
	require.ErrorIs(t, err, domain.ErrColumnMissing)

	assert.Equal(t, previous, readOutput(t, p))
}

func TestExtract_MissingLatitudeCreatesNothing(t *testing.T) {
	p := newPaths(t)
	require.NoError(t, xlsx.WriteSheet(p.input, "Sites", [][]any{
		{"SiteName", "Longitude"},
	}))

	_, err := runExtractor(t, p)
	require.ErrorIs(t, err, domain.ErrColumnMissing)

	_, statErr := os.Stat(p.output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestExtract_SourceMissing(t *testing.T) {
	p := newPaths(t)

	_, err := runExtractor(t, p)
	require.ErrorIs(t, err, domain.ErrSourceUnreadable)

	_, statErr := os.Stat(p.output)
	assert.True(t, os.IsNotExist(statErr))
}
