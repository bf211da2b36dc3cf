package xlsx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/site-coordinates-etl/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Reader loads the first worksheet of an .xlsx workbook.
// It implements pipeline.Extractor.
type Reader struct {
	path   string
	logger *slog.Logger
}

// NewReader creates a Reader for the workbook at path.
func NewReader(path string, logger *slog.Logger) *Reader {
	return &Reader{path: path, logger: logger}
}

// Path returns the workbook path.
func (r *Reader) Path() string {
	return r.path
}

// ReadTable parses the first worksheet into a SourceTable. Any failure to
// open or read the workbook is reported as domain.ErrSourceUnreadable.
func (r *Reader) ReadTable(ctx context.Context) (domain.SourceTable, error) {
	if err := ctx.Err(); err != nil {
		return domain.SourceTable{}, err
	}

	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return domain.SourceTable{}, fmt.Errorf("%w: open %s: %w", domain.ErrSourceUnreadable, r.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			r.logger.Warn("close workbook failed", "path", r.path, "error", cerr)
		}
	}()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return domain.SourceTable{}, fmt.Errorf("%w: %s: %w", domain.ErrSourceUnreadable, r.path, errNoSheets)
	}

	// Raw values keep numbers as stored rather than as displayed, so a
	// coordinate formatted to two decimals in Excel is not rounded here.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return domain.SourceTable{}, fmt.Errorf("%w: read sheet %q: %w", domain.ErrSourceUnreadable, sheet, err)
	}

	table := domain.NewSourceTable(rows)
	r.logger.Debug("workbook read",
		"path", r.path,
		"sheet", sheet,
		"columns", len(table.Columns),
		"rows", len(table.Rows),
	)
	return table, nil
}

var errNoSheets = errors.New("workbook has no sheets")
