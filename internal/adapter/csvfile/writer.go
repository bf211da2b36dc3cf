package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/couchcryptid/site-coordinates-etl/internal/domain"
	"github.com/google/renameio/v2"
)

// Writer replaces the coordinate CSV at a fixed path.
// It implements pipeline.Loader.
type Writer struct {
	path   string
	logger *slog.Logger
}

// NewWriter creates a Writer for the CSV at path.
func NewWriter(path string, logger *slog.Logger) *Writer {
	return &Writer{path: path, logger: logger}
}

// Path returns the destination path.
func (w *Writer) Path() string {
	return w.path
}

// WriteRecords writes the header and one line per record to a temporary file
// next to the destination, then renames it into place. The destination is
// either fully replaced or left untouched. Failures are reported as
// domain.ErrDestinationUnwritable.
func (w *Writer) WriteRecords(ctx context.Context, records []domain.CoordinateRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	pending, err := renameio.NewPendingFile(w.path,
		renameio.WithTempDir(filepath.Dir(w.path)),
		renameio.WithPermissions(0o644),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", domain.ErrDestinationUnwritable, w.path, err)
	}
	defer func() {
		if cerr := pending.Cleanup(); cerr != nil {
			w.logger.Warn("remove temporary csv failed", "path", w.path, "error", cerr)
		}
	}()

	if err := encode(pending, records); err != nil {
		return fmt.Errorf("%w: write %s: %w", domain.ErrDestinationUnwritable, w.path, err)
	}

	// Last point at which an interrupt leaves the previous file in place.
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("%w: replace %s: %w", domain.ErrDestinationUnwritable, w.path, err)
	}

	w.logger.Debug("coordinates written", "path", w.path, "rows", len(records))
	return nil
}

// encode writes the coordinate table with encoding/csv defaults: comma
// delimiter, minimal quoting and \n line endings.
func encode(pending *renameio.PendingFile, records []domain.CoordinateRecord) error {
	cw := csv.NewWriter(pending)
	if err := cw.Write(domain.OutputColumns); err != nil {
		return err
	}
	for i := range records {
		if err := cw.Write(records[i].Fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
