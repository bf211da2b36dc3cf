// Package domain models monitoring-site metadata as read from a site summary
// spreadsheet and the coordinate table derived from it.
//
// # Source Sheet
//
// The source is the first worksheet of the site summary workbook. Its first
// row is the header; every following row describes one monitoring site. Only
// three columns matter downstream:
//
//	SiteName   →  renamed to Site_Description
//	Latitude   →  decimal degrees (WGS-84)
//	Longitude  →  decimal degrees (WGS-84)
//
// The site column name is configurable because the upstream export has
// changed it before. All other columns are ignored apart from the column
// listing printed after each run.
//
// # Cell Conventions
//
// Empty cells, cells past the end of a short row, and the usual spreadsheet
// "missing" markers (#N/A, NULL, NaN, ...) are null. See [nullSentinels].
// A cell that parses as a finite float is a number; anything else is text.
// No other coercion takes place.
//
// Header cells are normalised before use: a blank header at position i
// becomes "Unnamed: i", and a repeated name gets ".1", ".2", ... suffixes so
// every column has a unique name.
//
// # Coordinate Table
//
// The output keeps rows whose Site_Description, Latitude and Longitude are
// all non-null, in source order. Rows with any null are dropped, never
// repaired. Coordinates are written in shortest round-trip form with a
// fractional part ("138" is written "138.0"), matching how a float column
// was always exported to the dashboard.
package domain
