package core

// normalize.go validates the upload header and coerces raw cells into
// the canonical Input shape.
//
// Coercion policy: the source is a hand-edited spreadsheet, so numeric
// cells tolerate currency symbols, thousands separators and accounting
// parentheses; anything still unparseable becomes 0 rather than an
// error. SKU and the description are opaque strings and are passed
// through untouched.

import (
	"regexp"
	"strconv"
	"strings"
)

// numericRegex validates a numeric string after cleanup. Matches
// integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Normalize validates the header and converts raw rows into an Input.
//
// It strips whitespace from every header cell, verifies all of
// RequiredColumns are present (returning a *MissingColumnsError naming
// every missing one), coerces the numeric columns that exist, and
// synthesizes "End Weight" (ounces) from "End Weight (lbs)" when the
// ounces column is absent. The caller's slices are never mutated.
func Normalize(header []string, rows [][]string) (*Input, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	_, hasOz := idx[ColEndWeight]
	_, hasBurn := idx[ColBurnTime]
	_, hasHeight := idx[ColHeight]
	_, hasWidth := idx[ColWidth]

	in := &Input{
		Rows:        make([]SourceRow, 0, len(rows)),
		HasBurnTime: hasBurn,
		HasHeight:   hasHeight,
		HasWidth:    hasWidth,
	}

	for _, row := range rows {
		sr := SourceRow{
			SKU:         cell(row, idx, ColSKU),
			Description: cell(row, idx, ColDescription),
			RetailPrice: CoerceNumber(cell(row, idx, ColRetailPrice)),
			EndWeightLb: CoerceNumber(cell(row, idx, ColEndWeightLbs)),
			Quantity:    CoerceNumber(cell(row, idx, ColQuantity)),
		}

		if hasBurn {
			sr.BurnTime = CoerceNumber(cell(row, idx, ColBurnTime))
		}
		if hasOz {
			sr.EndWeightOz = CoerceNumber(cell(row, idx, ColEndWeight))
		} else {
			sr.EndWeightOz = sr.EndWeightLb * 16
		}
		if hasHeight {
			sr.Height = CoerceNumber(cell(row, idx, ColHeight))
		}
		if hasWidth {
			sr.Width = CoerceNumber(cell(row, idx, ColWidth))
		}

		in.Rows = append(in.Rows, sr)
	}

	return in, nil
}

// cell returns the value at the named column, or "" when the row is
// shorter than the header.
func cell(row []string, idx map[string]int, col string) string {
	pos, ok := idx[col]
	if !ok || pos >= len(row) {
		return ""
	}
	return row[pos]
}

// CoerceNumber parses a spreadsheet cell as a float64. Empty or
// unparseable values become 0.
//
// Handles currency symbols, thousands separators, and accounting
// format (parentheses for negative) before parsing.
func CoerceNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	// Detect negative accounting format "(123.45)"
	isNegative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		isNegative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	// Remove common currency symbols and thousands separators
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "") // Euro
	s = strings.ReplaceAll(s, "£", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if isNegative {
		s = "-" + s
	}

	if !numericRegex.MatchString(s) {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
