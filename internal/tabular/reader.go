// Package tabular decodes an uploaded spreadsheet into a header row and
// data rows, handling the artifacts real exports carry: UTF-8 BOMs,
// Excel formula prefixes, invalid byte sequences, ragged and fully
// blank lines. Both CSV and XLSX uploads are supported so the source
// sheet can be uploaded without a save-as-CSV step.
package tabular

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// ErrEmptyFile is returned when the upload has no header or no data
// rows after blank-line filtering.
var ErrEmptyFile = errors.New("empty file")

// Decode reads an uploaded file into header + data rows. The format is
// chosen by file extension: .csv (and .txt) parse as CSV, .xlsx as an
// Excel workbook. Anything else is rejected.
func Decode(filename string, data []byte) (header []string, rows [][]string, err error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return decodeCSV(data)
	case ".xlsx":
		return decodeXLSX(data)
	default:
		return nil, nil, fmt.Errorf("unsupported file type %q", filepath.Ext(filename))
	}
}

func decodeCSV(data []byte) ([]string, [][]string, error) {
	data = sanitizeUTF8(data)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parse csv: %w", err)
	}
	return splitHeader(records)
}

func decodeXLSX(data []byte) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, ErrEmptyFile
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return splitHeader(records)
}

// splitHeader drops fully blank lines, cleans the header cells, and
// separates the first surviving row as the header.
func splitHeader(records [][]string) ([]string, [][]string, error) {
	kept := records[:0:0]
	for _, row := range records {
		if !isEmptyRow(row) {
			kept = append(kept, row)
		}
	}

	if len(kept) == 0 {
		return nil, nil, ErrEmptyFile
	}

	header := make([]string, len(kept[0]))
	for i, h := range kept[0] {
		header[i] = CleanHeader(h)
	}

	if len(kept) == 1 {
		return nil, nil, ErrEmptyFile
	}
	return header, kept[1:], nil
}

// CleanHeader removes common export artifacts from a header cell:
// leading BOM, surrounding whitespace, Excel formula prefix (="..."),
// and stray surrounding quotes. Data cells are left untouched; only
// headers are matched by name.
func CleanHeader(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// sanitizeUTF8 replaces invalid byte sequences with the Unicode
// replacement rune so encoding/csv never sees broken input.
func sanitizeUTF8(data []byte) []byte {
	if utf8.Valid(data) {
		return data
	}

	var buf bytes.Buffer
	buf.Grow(len(data))

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			buf.WriteRune('�')
			data = data[1:]
		} else {
			buf.WriteRune(r)
			data = data[size:]
		}
	}

	return buf.Bytes()
}
