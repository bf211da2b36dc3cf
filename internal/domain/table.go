package domain

import "strconv"

// SourceTable is the first worksheet held in memory: a normalised header and
// rows aligned with it.
type SourceTable struct {
	Columns []string
	Rows    [][]Value
}

// NewSourceTable builds a table from raw sheet rows. The first non-blank row
// is the header; a sheet with no non-blank row yields a table with no
// columns. Data rows are padded with nulls or truncated to the header width.
func NewSourceTable(sheet [][]string) SourceTable {
	for len(sheet) > 0 && blankRow(sheet[0]) {
		sheet = sheet[1:]
	}
	if len(sheet) == 0 {
		return SourceTable{}
	}

	columns := normalizeHeader(sheet[0])
	rows := make([][]Value, 0, len(sheet)-1)
	for _, cells := range sheet[1:] {
		row := make([]Value, len(columns))
		for i := range row {
			if i < len(cells) {
				row[i] = ParseValue(cells[i])
			} else {
				row[i] = Null
			}
		}
		rows = append(rows, row)
	}

	return SourceTable{Columns: columns, Rows: rows}
}

// blankRow reports whether every cell in the row is empty.
func blankRow(cells []string) bool {
	for _, c := range cells {
		if c != "" {
			return false
		}
	}
	return true
}

// ColumnIndex returns the position of the named column, or -1.
func (t SourceTable) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// normalizeHeader names blank header cells "Unnamed: <i>" and suffixes
// repeated names with ".1", ".2", ... in order of appearance.
func normalizeHeader(header []string) []string {
	columns := make([]string, len(header))
	seen := make(map[string]int, len(header))

	for i, name := range header {
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		base := name
		for n := seen[base]; ; n++ {
			if _, taken := seen[name]; !taken {
				break
			}
			name = base + "." + strconv.Itoa(n)
			seen[base] = n + 1
		}
		seen[name]++
		columns[i] = name
	}

	return columns
}
