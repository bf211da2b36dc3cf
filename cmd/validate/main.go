// Command validate checks a site_coordinates.csv against the contract the
// dashboard relies on: the exact header, three fields per row, no missing
// values, and numeric in-range coordinates. With -xlsx it also re-derives
// the expected rows from the source workbook and compares them in order.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -csv site_coordinates.csv \
//	  -xlsx MonitoringSites_Summary_29092025.xlsx
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/couchcryptid/site-coordinates-etl/internal/adapter/xlsx"
	"github.com/couchcryptid/site-coordinates-etl/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
	notes  []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) notef(format string, args ...any) {
	p.notes = append(p.notes, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	csvPath := flag.String("csv", "", "path to the coordinate CSV to check")
	xlsxPath := flag.String("xlsx", "", "optional source workbook to compare against")
	siteColumn := flag.String("site-column", domain.DefaultSiteColumn, "site column in the source workbook")
	flag.Parse()

	if *csvPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(os.Stdout, *csvPath, *xlsxPath, *siteColumn); code != 0 {
		os.Exit(code)
	}
}

func run(out io.Writer, csvPath, xlsxPath, siteColumn string) int {
	fmt.Fprintln(out, "=== Site Coordinate Validation ===")

	rows, err := loadCSV(csvPath)
	if err != nil {
		fmt.Fprintf(out, "FATAL: load CSV: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateHeader(rows),
		validateRows(rows),
	}

	if xlsxPath != "" {
		expected, err := expectedRows(xlsxPath, siteColumn)
		if err != nil {
			fmt.Fprintf(out, "FATAL: load workbook: %v\n", err)
			return 1
		}
		phases = append(phases, validateAgainstSource(rows, expected))
	}

	fmt.Fprintln(out)
	allPassed := true
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = fmt.Sprintf("FAIL (%d errors)", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(out, "  %-32s %s\n", p.name, status)
	}

	fmt.Fprintf(out, "\nRecords: %d\n", max(len(rows)-1, 0))

	for _, p := range phases {
		for _, n := range p.notes {
			fmt.Fprintf(out, "  Note: %s\n", n)
		}
		if p.passed() {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(out, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(out, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(out, "\nValidation FAILED.")
	return 1
}

// loadCSV reads every record; field counts are checked by validateRows.
func loadCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func expectedRows(path, siteColumn string) ([][]string, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	table, err := xlsx.NewReader(path, logger).ReadTable(context.Background())
	if err != nil {
		return nil, err
	}
	records, err := domain.ExtractCoordinates(table, siteColumn)
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(records))
	for i := range records {
		rows[i] = records[i].Fields()
	}
	return rows, nil
}

func validateHeader(rows [][]string) *phase {
	p := &phase{name: "Header"}
	if len(rows) == 0 {
		p.errorf("file is empty, expected header %v", domain.OutputColumns)
		return p
	}
	if !slices.Equal(rows[0], domain.OutputColumns) {
		p.errorf("header is %v, expected %v", rows[0], domain.OutputColumns)
	}
	return p
}

func validateRows(rows [][]string) *phase {
	p := &phase{name: "Rows"}
	if len(rows) < 2 {
		return p
	}

	seen := make(map[string]int)
	for i, row := range rows[1:] {
		line := i + 2
		if len(row) != len(domain.OutputColumns) {
			p.errorf("line %d: %d fields, expected %d", line, len(row), len(domain.OutputColumns))
			continue
		}
		for j, field := range row {
			if domain.ParseValue(field).IsNull() {
				p.errorf("line %d: %s is missing", line, domain.OutputColumns[j])
			}
		}
		checkCoordinate(p, line, domain.ColumnLatitude, row[1], 90)
		checkCoordinate(p, line, domain.ColumnLongitude, row[2], 180)

		if first, ok := seen[row[0]]; ok {
			p.notef("site %q on line %d repeats line %d", row[0], line, first)
		} else {
			seen[row[0]] = line
		}
	}
	return p
}

func checkCoordinate(p *phase, line int, column, field string, limit float64) {
	v := domain.ParseValue(field)
	switch {
	case v.IsNull():
		// reported as missing
	case v.Kind != domain.KindNumber:
		p.errorf("line %d: %s %q is not a number", line, column, field)
	case v.Number < -limit || v.Number > limit:
		p.errorf("line %d: %s %s outside ±%g", line, column, field, limit)
	}
}

func validateAgainstSource(rows, expected [][]string) *phase {
	p := &phase{name: "Source consistency"}
	var got [][]string
	if len(rows) > 1 {
		got = rows[1:]
	}
	if len(got) != len(expected) {
		p.errorf("csv has %d rows, workbook yields %d", len(got), len(expected))
	}
	for i := 0; i < min(len(got), len(expected)); i++ {
		if !slices.Equal(got[i], expected[i]) {
			p.errorf("line %d: csv %v, workbook %v", i+2, got[i], expected[i])
		}
	}
	return p
}
