// Package report prints the console summary of an extractor run.
package report

import (
	"fmt"
	"io"

	"github.com/couchcryptid/site-coordinates-etl/internal/pipeline"
)

// PrintColumns lists the source sheet's column names, one per line. The
// listing helps spot a renamed site column in a new export.
func PrintColumns(w io.Writer, columns []string) error {
	if _, err := fmt.Fprintln(w, "Available columns:"); err != nil {
		return err
	}
	for _, c := range columns {
		if _, err := fmt.Fprintf(w, "- %s\n", c); err != nil {
			return err
		}
	}
	return nil
}

// Print writes the column listing followed by the completion line.
func Print(w io.Writer, s pipeline.Summary) error {
	if err := PrintColumns(w, s.Columns); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "✅ Saved %d site coordinates to %s\n", s.RowsWritten, s.OutputPath)
	return err
}
