package domain

import (
	"fmt"
	"strings"
)

// Rename returns a copy of the table with every column named from renamed to
// to. Rows are shared with the input; only the header is copied.
func Rename(table SourceTable, from, to string) SourceTable {
	columns := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		if c == from {
			c = to
		}
		columns[i] = c
	}
	return SourceTable{Columns: columns, Rows: table.Rows}
}

// Project selects Site_Description, Latitude and Longitude from every row.
// It fails with ErrColumnMissing naming each absent column.
func Project(table SourceTable) ([]CoordinateRecord, error) {
	idx := make([]int, len(OutputColumns))
	var missing []string
	for i, name := range OutputColumns {
		idx[i] = table.ColumnIndex(name)
		if idx[i] < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrColumnMissing, strings.Join(missing, ", "))
	}

	records := make([]CoordinateRecord, len(table.Rows))
	for i, row := range table.Rows {
		records[i] = CoordinateRecord{
			SiteDescription: cell(row, idx[0]),
			Latitude:        cell(row, idx[1]),
			Longitude:       cell(row, idx[2]),
		}
	}
	return records, nil
}

// DropIncomplete keeps the records with no null field, preserving order.
func DropIncomplete(records []CoordinateRecord) []CoordinateRecord {
	kept := make([]CoordinateRecord, 0, len(records))
	for _, r := range records {
		if r.Complete() {
			kept = append(kept, r)
		}
	}
	return kept
}

// ExtractCoordinates applies rename, projection and the null filter in order.
func ExtractCoordinates(table SourceTable, siteColumn string) ([]CoordinateRecord, error) {
	projected, err := Project(Rename(table, siteColumn, ColumnSiteDescription))
	if err != nil {
		return nil, err
	}
	return DropIncomplete(projected), nil
}

// cell returns the value at i, or Null when the row is short.
func cell(row []Value, i int) Value {
	if i < len(row) {
		return row[i]
	}
	return Null
}
