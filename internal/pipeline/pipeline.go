package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/site-coordinates-etl/internal/domain"
	"github.com/couchcryptid/site-coordinates-etl/internal/observability"
	"github.com/jonboulle/clockwork"
)

// Extractor reads the source sheet.
type Extractor interface {
	ReadTable(ctx context.Context) (domain.SourceTable, error)
}

// Loader replaces the coordinate table at the destination.
type Loader interface {
	WriteRecords(ctx context.Context, records []domain.CoordinateRecord) error
	Path() string
}

// Summary describes a completed run.
type Summary struct {
	// Columns are the source sheet's column names before the rename.
	Columns     []string
	RowsRead    int
	RowsWritten int
	OutputPath  string
	Duration    time.Duration
}

// RowsDropped is the number of source rows excluded for a null field.
func (s Summary) RowsDropped() int {
	return s.RowsRead - s.RowsWritten
}

// Pipeline runs one extract-transform-load pass.
type Pipeline struct {
	extractor  Extractor
	loader     Loader
	siteColumn string
	logger     *slog.Logger
	metrics    *observability.Metrics
	clock      clockwork.Clock
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock replaces the real clock, e.g. with a fake in tests.
func WithClock(c clockwork.Clock) Option {
	return func(p *Pipeline) { p.clock = c }
}

// New creates a Pipeline that renames siteColumn to Site_Description.
func New(e Extractor, l Loader, siteColumn string, logger *slog.Logger, metrics *observability.Metrics, opts ...Option) *Pipeline {
	p := &Pipeline{
		extractor:  e,
		loader:     l,
		siteColumn: siteColumn,
		logger:     logger,
		metrics:    metrics,
		clock:      clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run reads the source sheet, derives the coordinate table and writes it.
// Nothing is written unless extraction and projection both succeed.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	start := p.clock.Now()
	p.logger.Info("run started", "site_column", p.siteColumn, "output", p.loader.Path())

	table, err := p.extractor.ReadTable(ctx)
	if err != nil {
		p.metrics.RunFailures.WithLabelValues(observability.StageExtract).Inc()
		return Summary{}, fmt.Errorf("extract: %w", err)
	}
	p.metrics.RowsRead.Add(float64(len(table.Rows)))

	summary := Summary{
		Columns:    table.Columns,
		RowsRead:   len(table.Rows),
		OutputPath: p.loader.Path(),
	}

	records, err := domain.ExtractCoordinates(table, p.siteColumn)
	if err != nil {
		p.metrics.RunFailures.WithLabelValues(observability.StageTransform).Inc()
		p.logger.Error("source sheet is missing required columns",
			"site_column", p.siteColumn,
			"columns", table.Columns,
		)
		return summary, fmt.Errorf("transform: %w", err)
	}

	if err := p.loader.WriteRecords(ctx, records); err != nil {
		p.metrics.RunFailures.WithLabelValues(observability.StageLoad).Inc()
		return summary, fmt.Errorf("load: %w", err)
	}

	summary.RowsWritten = len(records)
	summary.Duration = p.clock.Since(start)

	p.metrics.RowsWritten.Add(float64(summary.RowsWritten))
	p.metrics.RowsDropped.Add(float64(summary.RowsDropped()))
	p.metrics.RunDuration.Observe(summary.Duration.Seconds())
	p.metrics.LastSuccess.Set(float64(p.clock.Now().Unix()))

	p.logger.Info("run complete",
		"rows_read", summary.RowsRead,
		"rows_written", summary.RowsWritten,
		"rows_dropped", summary.RowsDropped(),
		"duration", summary.Duration,
	)
	return summary, nil
}
