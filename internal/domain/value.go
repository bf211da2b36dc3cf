package domain

import (
	"math"
	"strconv"
	"strings"
)

// Kind classifies a cell value.
type Kind int

const (
	KindNull Kind = iota
	KindText
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindNumber:
		return "number"
	default:
		return "unknown"
	}
}

// nullSentinels are the cell texts treated as missing values, in addition to
// the empty string. These are the markers spreadsheet exports commonly use
// for "no data".
var nullSentinels = map[string]struct{}{
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// Value is a single spreadsheet cell.
type Value struct {
	Kind   Kind
	Raw    string
	Number float64
}

// Null is the missing value.
var Null = Value{Kind: KindNull}

// ParseValue classifies a raw cell string.
func ParseValue(raw string) Value {
	if raw == "" {
		return Null
	}
	if _, ok := nullSentinels[raw]; ok {
		return Null
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return Value{Kind: KindNumber, Raw: raw, Number: f}
	}
	return Value{Kind: KindText, Raw: raw}
}

// Text returns a text value without any classification.
func Text(s string) Value {
	return Value{Kind: KindText, Raw: s}
}

// Number returns a numeric value whose raw form is its shortest decimal.
func Number(f float64) Value {
	return Value{Kind: KindNumber, Raw: strconv.FormatFloat(f, 'f', -1, 64), Number: f}
}

// IsNull reports whether the value is missing.
func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// String returns the raw cell text, or "" for null.
func (v Value) String() string {
	return v.Raw
}

// FormatCoordinate renders a coordinate cell. Numbers are written in
// shortest round-trip form with a fractional part; text is written as is.
func (v Value) FormatCoordinate() string {
	if v.Kind != KindNumber {
		return v.Raw
	}
	s := strconv.FormatFloat(v.Number, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
