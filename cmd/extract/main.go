// Command extract converts the monitoring-site summary workbook into the
// site_coordinates.csv table read by the dashboard.
//
// Usage:
//
//	INPUT_FILE=MonitoringSites_Summary_29092025.xlsx \
//	OUTPUT_FILE=site_coordinates.csv \
//	go run ./cmd/extract
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/site-coordinates-etl/internal/adapter/csvfile"
	"github.com/couchcryptid/site-coordinates-etl/internal/adapter/xlsx"
	"github.com/couchcryptid/site-coordinates-etl/internal/config"
	"github.com/couchcryptid/site-coordinates-etl/internal/domain"
	"github.com/couchcryptid/site-coordinates-etl/internal/observability"
	"github.com/couchcryptid/site-coordinates-etl/internal/pipeline"
	"github.com/couchcryptid/site-coordinates-etl/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, cfg, logger, os.Stdout)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer) int {
	metrics := observability.NewMetrics()
	defer func() {
		if cfg.MetricsTextfile == "" {
			return
		}
		if err := metrics.WriteTextfile(cfg.MetricsTextfile); err != nil {
			logger.Warn("metrics export failed", "path", cfg.MetricsTextfile, "error", err)
		}
	}()

	reader := xlsx.NewReader(cfg.InputFile, logger)
	writer := csvfile.NewWriter(cfg.OutputFile, logger)
	p := pipeline.New(reader, writer, cfg.SiteColumn, logger, metrics)

	summary, err := p.Run(ctx)
	if err != nil {
		logger.Error("extraction failed", "input", cfg.InputFile, "output", cfg.OutputFile, "error", err)
		if errors.Is(err, domain.ErrColumnMissing) {
			// The listing is the quickest way to find what the site column
			// was renamed to.
			if perr := report.PrintColumns(stdout, summary.Columns); perr != nil {
				logger.Warn("print column listing failed", "error", perr)
			}
		}
		return 1
	}

	if err := report.Print(stdout, summary); err != nil {
		logger.Warn("print summary failed", "error", err)
	}
	return 0
}
